package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Programme catalogue, closed set.
const (
	ProgrammeX      = "Gradus X"
	ProgrammeFinlit = "Gradus Finlit"
	ProgrammeLead   = "Gradus Lead"
)

var AllowedProgrammes = []string{ProgrammeX, ProgrammeFinlit, ProgrammeLead}

func IsAllowedProgramme(p string) bool {
	for _, a := range AllowedProgrammes {
		if a == p {
			return true
		}
	}
	return false
}

// CourseModel represents the courses table. Slug is the course segment
// only; the public detail URL prepends the programme slug.
type CourseModel struct {
	CourseID      uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`
	CourseName    string    `gorm:"column:course_name;size:255;not null" json:"course_name"`
	CourseSlug    string    `gorm:"column:course_slug;size:255;uniqueIndex;not null" json:"course_slug"`
	Programme     string    `gorm:"column:programme;type:varchar(32);not null;default:'Gradus X'" json:"programme"`
	ProgrammeSlug string    `gorm:"column:programme_slug;size:64;not null" json:"programme_slug"`

	Subtitle       string `gorm:"column:subtitle;size:500" json:"subtitle"`
	Focus          string `gorm:"column:focus;size:500" json:"focus"`
	Level          string `gorm:"column:level;size:100" json:"level"`
	Duration       string `gorm:"column:duration;size:100" json:"duration"`
	Mode           string `gorm:"column:mode;size:100" json:"mode"`
	Price          string `gorm:"column:price;size:100" json:"price"`
	PriceINR       int64  `gorm:"column:price_inr;not null;default:0" json:"price_inr"`
	PlacementRange string `gorm:"column:placement_range;size:100" json:"placement_range"`
	OutcomeSummary string `gorm:"column:outcome_summary;type:text" json:"outcome_summary"`
	FinalAward     string `gorm:"column:final_award;size:255" json:"final_award"`

	DetailsEffort        string `gorm:"column:details_effort;size:255" json:"details_effort"`
	DetailsLanguage      string `gorm:"column:details_language;size:100" json:"details_language"`
	DetailsPrerequisites string `gorm:"column:details_prerequisites;size:500" json:"details_prerequisites"`

	Approvals       pq.StringArray `gorm:"column:approvals;type:text[]" json:"approvals"`
	Skills          pq.StringArray `gorm:"column:skills;type:text[]" json:"skills"`
	Deliverables    pq.StringArray `gorm:"column:deliverables;type:text[]" json:"deliverables"`
	Outcomes        pq.StringArray `gorm:"column:outcomes;type:text[]" json:"outcomes"`
	CapstonePoints  pq.StringArray `gorm:"column:capstone_points;type:text[]" json:"capstone_points"`
	CareerOutcomes  pq.StringArray `gorm:"column:career_outcomes;type:text[]" json:"career_outcomes"`
	ToolsFrameworks pq.StringArray `gorm:"column:tools_frameworks;type:text[]" json:"tools_frameworks"`

	Weeks          datatypes.JSON `gorm:"column:weeks;type:jsonb" json:"weeks"`
	Partners       datatypes.JSON `gorm:"column:partners;type:jsonb" json:"partners"`
	Certifications datatypes.JSON `gorm:"column:certifications;type:jsonb" json:"certifications"`

	ImageURL      string `gorm:"column:image_url;size:500" json:"image_url"`
	ImageAlt      string `gorm:"column:image_alt;size:255" json:"image_alt"`
	ImagePublicID string `gorm:"column:image_public_id;size:500" json:"image_public_id"`

	BannerURL      string `gorm:"column:banner_url;size:500" json:"banner_url"`
	BannerPublicID string `gorm:"column:banner_public_id;size:500" json:"banner_public_id"`
	BannerWidth    int    `gorm:"column:banner_width" json:"banner_width"`
	BannerHeight   int    `gorm:"column:banner_height" json:"banner_height"`
	BannerFormat   string `gorm:"column:banner_format;size:32" json:"banner_format"`

	AssessmentMaxAttempts int `gorm:"column:assessment_max_attempts;not null;default:3" json:"assessment_max_attempts"`
	SortOrder             int `gorm:"column:sort_order;not null;default:0" json:"sort_order"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}

// PublicPath is the detail-page URL segment, programme slug first.
func (m *CourseModel) PublicPath() string {
	return "/" + m.ProgrammeSlug + "/" + m.CourseSlug
}
