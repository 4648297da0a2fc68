package model

import (
	"time"

	"github.com/google/uuid"
)

// Admin account status values.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// AdminUserModel represents the admin_users table.
type AdminUserModel struct {
	AdminUserID       uuid.UUID `gorm:"column:admin_user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_user_id"`
	AdminUserName     string    `gorm:"column:admin_user_name;size:100;not null" json:"admin_user_name"`
	AdminUserEmail    string    `gorm:"column:admin_user_email;size:255;unique;not null" json:"admin_user_email"`
	AdminUserPassword string    `gorm:"column:admin_user_password;not null" json:"-"`
	AdminUserRole     string    `gorm:"column:admin_user_role;type:varchar(32);not null;default:'sales'" json:"admin_user_role"`
	AdminUserStatus   string    `gorm:"column:admin_user_status;type:varchar(16);not null;default:'active'" json:"admin_user_status"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AdminUserModel) TableName() string {
	return "admin_users"
}
