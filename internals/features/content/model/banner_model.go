package model

import (
	"time"

	"github.com/google/uuid"
)

// BannerModel is a homepage banner with separate desktop and mobile
// renditions.
type BannerModel struct {
	BannerID uuid.UUID `gorm:"column:banner_id;type:uuid;default:gen_random_uuid();primaryKey" json:"banner_id"`
	Title    string    `gorm:"column:title;size:255" json:"title"`
	Subtitle string    `gorm:"column:subtitle;size:500" json:"subtitle"`
	LinkURL  string    `gorm:"column:link_url;size:500" json:"link_url"`

	DesktopURL      string `gorm:"column:desktop_url;size:500" json:"desktop_url"`
	DesktopPublicID string `gorm:"column:desktop_public_id;size:500" json:"desktop_public_id"`
	DesktopWidth    int    `gorm:"column:desktop_width" json:"desktop_width"`
	DesktopHeight   int    `gorm:"column:desktop_height" json:"desktop_height"`

	MobileURL      string `gorm:"column:mobile_url;size:500" json:"mobile_url"`
	MobilePublicID string `gorm:"column:mobile_public_id;size:500" json:"mobile_public_id"`
	MobileWidth    int    `gorm:"column:mobile_width" json:"mobile_width"`
	MobileHeight   int    `gorm:"column:mobile_height" json:"mobile_height"`

	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BannerModel) TableName() string {
	return "banners"
}
