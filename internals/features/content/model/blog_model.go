package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BlogModel is a marketing blog post.
type BlogModel struct {
	BlogID   uuid.UUID `gorm:"column:blog_id;type:uuid;default:gen_random_uuid();primaryKey" json:"blog_id"`
	Title    string    `gorm:"column:title;size:255;not null" json:"title"`
	BlogSlug string    `gorm:"column:blog_slug;size:255;uniqueIndex;not null" json:"blog_slug"`

	Excerpt string         `gorm:"column:excerpt;size:500" json:"excerpt"`
	Content string         `gorm:"column:content;type:text" json:"content"`
	Author  string         `gorm:"column:author;size:255" json:"author"`
	Tags    pq.StringArray `gorm:"column:tags;type:text[]" json:"tags"`

	CoverURL      string `gorm:"column:cover_url;size:500" json:"cover_url"`
	CoverPublicID string `gorm:"column:cover_public_id;size:500" json:"cover_public_id"`

	Published   bool       `gorm:"column:published;not null;default:false" json:"published"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BlogModel) TableName() string {
	return "blogs"
}
