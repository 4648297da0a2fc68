package model

import (
	"time"

	"github.com/google/uuid"
)

// TestimonialVideoModel is a learner testimonial clip.
type TestimonialVideoModel struct {
	TestimonialID uuid.UUID `gorm:"column:testimonial_id;type:uuid;default:gen_random_uuid();primaryKey" json:"testimonial_id"`
	Name          string    `gorm:"column:name;size:255;not null" json:"name"`
	Role          string    `gorm:"column:role;size:255" json:"role"`
	Quote         string    `gorm:"column:quote;type:text" json:"quote"`

	VideoURL      string  `gorm:"column:video_url;size:500" json:"video_url"`
	VideoPublicID string  `gorm:"column:video_public_id;size:500" json:"video_public_id"`
	VideoBytes    int64   `gorm:"column:video_bytes;not null;default:0" json:"video_bytes"`
	VideoFormat   string  `gorm:"column:video_format;size:32" json:"video_format"`
	VideoDuration float64 `gorm:"column:video_duration;not null;default:0" json:"video_duration"`

	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (TestimonialVideoModel) TableName() string {
	return "testimonial_videos"
}

// ExpertVideoModel is a subject-expert talk clip.
type ExpertVideoModel struct {
	ExpertVideoID uuid.UUID `gorm:"column:expert_video_id;type:uuid;default:gen_random_uuid();primaryKey" json:"expert_video_id"`
	Title         string    `gorm:"column:title;size:255;not null" json:"title"`
	ExpertName    string    `gorm:"column:expert_name;size:255" json:"expert_name"`
	ExpertTitle   string    `gorm:"column:expert_title;size:255" json:"expert_title"`

	VideoURL      string  `gorm:"column:video_url;size:500" json:"video_url"`
	VideoPublicID string  `gorm:"column:video_public_id;size:500" json:"video_public_id"`
	VideoBytes    int64   `gorm:"column:video_bytes;not null;default:0" json:"video_bytes"`
	VideoFormat   string  `gorm:"column:video_format;size:32" json:"video_format"`
	VideoDuration float64 `gorm:"column:video_duration;not null;default:0" json:"video_duration"`

	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ExpertVideoModel) TableName() string {
	return "expert_videos"
}

// WhyGradusVideoModel holds the single "why Gradus" pitch video; at most
// one row is active at a time.
type WhyGradusVideoModel struct {
	WhyGradusVideoID uuid.UUID `gorm:"column:why_gradus_video_id;type:uuid;default:gen_random_uuid();primaryKey" json:"why_gradus_video_id"`
	Title            string    `gorm:"column:title;size:255" json:"title"`

	VideoURL      string  `gorm:"column:video_url;size:500" json:"video_url"`
	VideoPublicID string  `gorm:"column:video_public_id;size:500" json:"video_public_id"`
	VideoBytes    int64   `gorm:"column:video_bytes;not null;default:0" json:"video_bytes"`
	VideoFormat   string  `gorm:"column:video_format;size:32" json:"video_format"`
	VideoDuration float64 `gorm:"column:video_duration;not null;default:0" json:"video_duration"`

	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WhyGradusVideoModel) TableName() string {
	return "why_gradus_videos"
}
