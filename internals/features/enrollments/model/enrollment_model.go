package model

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment status.
const (
	StatusActive    = "ACTIVE"
	StatusCancelled = "CANCELLED"
)

// Payment status.
const (
	PaymentPending  = "PENDING"
	PaymentPaid     = "PAID"
	PaymentFailed   = "FAILED"
	PaymentRefunded = "REFUNDED"
)

// EnrollmentModel links a learner to a course. One row per (user,
// course); checkout retries reuse the pending row.
type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_enrollment_user_course" json:"user_id"`
	CourseSlug   string    `gorm:"column:course_slug;size:255;not null;uniqueIndex:idx_enrollment_user_course" json:"course_slug"`

	Status        string `gorm:"column:status;type:varchar(16);not null;default:'ACTIVE'" json:"status"`
	PaymentStatus string `gorm:"column:payment_status;type:varchar(16);not null;default:'PENDING'" json:"payment_status"`

	OrderID          string `gorm:"column:order_id;size:64;uniqueIndex" json:"order_id"`
	PaymentReference string `gorm:"column:payment_reference;size:128" json:"payment_reference"`

	PriceBase  int64 `gorm:"column:price_base;not null;default:0" json:"price_base"`
	PriceTax   int64 `gorm:"column:price_tax;not null;default:0" json:"price_tax"`
	PriceTotal int64 `gorm:"column:price_total;not null;default:0" json:"price_total"`

	PaidAt    *time.Time `gorm:"column:paid_at" json:"paid_at"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
