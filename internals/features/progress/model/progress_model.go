package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgressModel is one learner's completion state for one lecture.
type ProgressModel struct {
	ProgressID uuid.UUID `gorm:"column:progress_id;type:uuid;default:gen_random_uuid();primaryKey" json:"progress_id"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_progress_user_course_lecture" json:"user_id"`
	CourseSlug string    `gorm:"column:course_slug;size:255;not null;uniqueIndex:idx_progress_user_course_lecture" json:"course_slug"`
	LectureID  string    `gorm:"column:lecture_id;size:64;not null;uniqueIndex:idx_progress_user_course_lecture" json:"lecture_id"`

	CompletionRatio float64    `gorm:"column:completion_ratio;not null;default:0" json:"completion_ratio"`
	CompletedAt     *time.Time `gorm:"column:completed_at" json:"completed_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProgressModel) TableName() string {
	return "progress"
}
