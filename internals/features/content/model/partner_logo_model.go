package model

import (
	"time"

	"github.com/google/uuid"
)

type PartnerLogoModel struct {
	PartnerLogoID uuid.UUID `gorm:"column:partner_logo_id;type:uuid;default:gen_random_uuid();primaryKey" json:"partner_logo_id"`
	Name          string    `gorm:"column:name;size:255;not null" json:"name"`
	Website       string    `gorm:"column:website;size:500" json:"website"`

	LogoURL      string `gorm:"column:logo_url;size:500" json:"logo_url"`
	LogoPublicID string `gorm:"column:logo_public_id;size:500" json:"logo_public_id"`
	LogoWidth    int    `gorm:"column:logo_width" json:"logo_width"`
	LogoHeight   int    `gorm:"column:logo_height" json:"logo_height"`

	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PartnerLogoModel) TableName() string {
	return "partner_logos"
}
