package dto

import (
	"time"

	"gradus_backend/internals/features/admins/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateAdminRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

// UpdateAdminRequest carries optional fields; nil means leave as is.
type UpdateAdminRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=3,max=100"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Role     *string `json:"role"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type AdminUserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	RoleLabel string    `json:"role_label"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LoginResponse struct {
	Token string            `json:"token"`
	Admin AdminUserResponse `json:"admin"`
}

func ToAdminUserResponse(m *model.AdminUserModel, roleLabel string) AdminUserResponse {
	return AdminUserResponse{
		ID:        m.AdminUserID.String(),
		Name:      m.AdminUserName,
		Email:     m.AdminUserEmail,
		Role:      m.AdminUserRole,
		RoleLabel: roleLabel,
		Status:    m.AdminUserStatus,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
