package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CourseDetailModel holds the deep curriculum tree for one course,
// one row per course slug. The tree itself lives in a JSONB column; it
// is always written whole and normalized first.
type CourseDetailModel struct {
	CourseDetailID uuid.UUID      `gorm:"column:course_detail_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_detail_id"`
	CourseSlug     string         `gorm:"column:course_slug;size:255;uniqueIndex;not null" json:"course_slug"`
	CourseName     string         `gorm:"column:course_name;size:255" json:"course_name"`
	Programme      string         `gorm:"column:programme;type:varchar(32)" json:"programme"`
	ProgrammeSlug  string         `gorm:"column:programme_slug;size:64" json:"programme_slug"`
	Modules        datatypes.JSON `gorm:"column:modules;type:jsonb;not null;default:'[]'" json:"modules"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CourseDetailModel) TableName() string {
	return "course_details"
}
