package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Event lifecycle.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Delivery modes.
const (
	ModeOnline   = "online"
	ModeInPerson = "in-person"
	ModeHybrid   = "hybrid"
)

func IsAllowedMode(m string) bool {
	return m == ModeOnline || m == ModeInPerson || m == ModeHybrid
}

// EventModel represents marketing events and masterclasses. Only
// published rows are visible on the public site.
type EventModel struct {
	EventID   uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	Title     string    `gorm:"column:title;size:255;not null" json:"title"`
	EventSlug string    `gorm:"column:event_slug;size:255;uniqueIndex;not null" json:"event_slug"`

	Subtitle    string         `gorm:"column:subtitle;size:500" json:"subtitle"`
	Summary     string         `gorm:"column:summary;type:text" json:"summary"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	Category    string         `gorm:"column:category;size:100;not null;default:'General'" json:"category"`
	Badge       string         `gorm:"column:badge;size:100" json:"badge"`
	EventType   string         `gorm:"column:event_type;size:100;not null;default:'Webinar'" json:"event_type"`
	Tags        pq.StringArray `gorm:"column:tags;type:text[]" json:"tags"`
	Level       string         `gorm:"column:level;size:100" json:"level"`
	TrackLabel  string         `gorm:"column:track_label;size:100" json:"track_label"`

	HeroImageURL      string `gorm:"column:hero_image_url;size:500" json:"hero_image_url"`
	HeroImageAlt      string `gorm:"column:hero_image_alt;size:255" json:"hero_image_alt"`
	HeroImagePublicID string `gorm:"column:hero_image_public_id;size:500" json:"hero_image_public_id"`

	HostName   string `gorm:"column:host_name;size:255" json:"host_name"`
	HostTitle  string `gorm:"column:host_title;size:255" json:"host_title"`
	HostAvatar string `gorm:"column:host_avatar;size:500" json:"host_avatar"`
	HostBio    string `gorm:"column:host_bio;type:text" json:"host_bio"`

	PriceLabel    string `gorm:"column:price_label;size:100" json:"price_label"`
	PriceAmount   int64  `gorm:"column:price_amount;not null;default:0" json:"price_amount"`
	PriceCurrency string `gorm:"column:price_currency;size:8;not null;default:'INR'" json:"price_currency"`
	PriceIsFree   bool   `gorm:"column:price_is_free;not null;default:true" json:"price_is_free"`

	CtaLabel    string `gorm:"column:cta_label;size:100;not null;default:'Join us live'" json:"cta_label"`
	CtaURL      string `gorm:"column:cta_url;size:500" json:"cta_url"`
	CtaExternal bool   `gorm:"column:cta_external;not null;default:false" json:"cta_external"`

	ScheduleStart time.Time  `gorm:"column:schedule_start;not null;index:idx_events_status_start" json:"schedule_start"`
	ScheduleEnd   *time.Time `gorm:"column:schedule_end" json:"schedule_end"`
	Timezone      string     `gorm:"column:timezone;size:64;not null;default:'Asia/Kolkata'" json:"timezone"`

	Mode            string `gorm:"column:mode;type:varchar(16);not null;default:'online'" json:"mode"`
	Location        string `gorm:"column:location;size:255" json:"location"`
	SeatLimit       *int   `gorm:"column:seat_limit" json:"seat_limit"`
	DurationMinutes *int   `gorm:"column:duration_minutes" json:"duration_minutes"`

	RecordingAvailable bool `gorm:"column:recording_available;not null;default:false" json:"recording_available"`
	IsFeatured         bool `gorm:"column:is_featured;not null;default:false" json:"is_featured"`

	Status    string `gorm:"column:status;type:varchar(16);not null;default:'draft';index:idx_events_status_start" json:"status"`
	SortOrder int    `gorm:"column:sort_order;not null;default:0" json:"sort_order"`

	Highlights pq.StringArray `gorm:"column:highlights;type:text[]" json:"highlights"`
	Agenda     pq.StringArray `gorm:"column:agenda;type:text[]" json:"agenda"`

	IsMasterclass      bool           `gorm:"column:is_masterclass;not null;default:false" json:"is_masterclass"`
	MasterclassDetails datatypes.JSON `gorm:"column:masterclass_details;type:jsonb" json:"masterclass_details"`

	CreatedBy *uuid.UUID `gorm:"column:created_by;type:uuid" json:"created_by"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}
