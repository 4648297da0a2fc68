package dto

import "time"

type HostInput struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	AvatarURL string `json:"avatarUrl"`
	Bio       string `json:"bio"`
}

type PriceInput struct {
	Label    string `json:"label"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	IsFree   *bool  `json:"isFree"`
}

type CtaInput struct {
	Label    string `json:"label"`
	URL      string `json:"url"`
	External bool   `json:"external"`
}

type ScheduleInput struct {
	Start    time.Time  `json:"start" validate:"required"`
	End      *time.Time `json:"end"`
	Timezone string     `json:"timezone"`
}

// MasterclassDetails is stored as-is in JSONB; the admin editor owns its
// internal shape.
type MasterclassDetails struct {
	Overview   map[string]any   `json:"overview"`
	Curriculum []map[string]any `json:"curriculum"`
	FAQs       []map[string]any `json:"faqs"`
}

type EventRequest struct {
	Title       string   `json:"title" validate:"required"`
	Slug        string   `json:"slug"`
	Subtitle    string   `json:"subtitle"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Badge       string   `json:"badge"`
	EventType   string   `json:"eventType"`
	Tags        []string `json:"tags"`
	Level       string   `json:"level"`
	TrackLabel  string   `json:"trackLabel"`

	Host     HostInput     `json:"host"`
	Price    PriceInput    `json:"price"`
	Cta      CtaInput      `json:"cta"`
	Schedule ScheduleInput `json:"schedule" validate:"required"`

	Mode            string `json:"mode"`
	Location        string `json:"location"`
	SeatLimit       *int   `json:"seatLimit"`
	DurationMinutes *int   `json:"durationMinutes"`

	RecordingAvailable bool     `json:"recordingAvailable"`
	IsFeatured         bool     `json:"isFeatured"`
	SortOrder          *int     `json:"sortOrder"`
	Highlights         []string `json:"highlights"`
	Agenda             []string `json:"agenda"`

	IsMasterclass      bool                `json:"isMasterclass"`
	MasterclassDetails *MasterclassDetails `json:"masterclassDetails"`
}
