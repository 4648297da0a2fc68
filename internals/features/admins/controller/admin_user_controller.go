package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gradus_backend/internals/constants"
	"gradus_backend/internals/features/admins/dto"
	"gradus_backend/internals/features/admins/model"
	helper "gradus_backend/internals/helpers"
	authmw "gradus_backend/internals/middlewares/auth"
)

type AdminUserController struct {
	DB *gorm.DB
}

func NewAdminUserController(db *gorm.DB) *AdminUserController {
	return &AdminUserController{DB: db}
}

// List returns all admin accounts, newest first.
func (ctrl *AdminUserController) List(c *fiber.Ctx) error {
	var admins []model.AdminUserModel
	if err := ctrl.DB.Order("created_at DESC").Find(&admins).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admins")
	}

	out := make([]dto.AdminUserResponse, 0, len(admins))
	for i := range admins {
		role := constants.AdminRole(admins[i].AdminUserRole)
		out = append(out, dto.ToAdminUserResponse(&admins[i], role.Label()))
	}
	return helper.JsonOK(c, "OK", out)
}

// Create registers a new admin account. The actor may only assign roles
// it is allowed to hand out.
func (ctrl *AdminUserController) Create(c *fiber.Ctx) error {
	actorRole := authmw.AdminRoleFromCtx(c)

	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	newRole := constants.AdminRole(req.Role)
	if !newRole.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown role")
	}
	if !actorRole.CanAssign(newRole) {
		return helper.JsonError(c, fiber.StatusForbidden, "Cannot assign this role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	admin := model.AdminUserModel{
		AdminUserName:     strings.TrimSpace(req.Name),
		AdminUserEmail:    strings.ToLower(strings.TrimSpace(req.Email)),
		AdminUserPassword: string(hash),
		AdminUserRole:     string(newRole),
		AdminUserStatus:   model.StatusActive,
	}
	if err := ctrl.DB.Create(&admin).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin")
	}
	return helper.JsonCreated(c, "Admin created", dto.ToAdminUserResponse(&admin, newRole.Label()))
}

// Update edits another admin account. Self-modification through this
// endpoint is rejected so an actor cannot lock itself out.
func (ctrl *AdminUserController) Update(c *fiber.Ctx) error {
	actorID := authmw.AdminIDFromCtx(c)
	actorRole := authmw.AdminRoleFromCtx(c)
	targetID := c.Params("id")

	if targetID == actorID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Use the profile endpoint to edit your own account")
	}

	var req dto.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var target model.AdminUserModel
	if err := ctrl.DB.Where("admin_user_id = ?", targetID).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	targetRole := constants.AdminRole(target.AdminUserRole)
	if !actorRole.CanManage(targetRole) {
		return helper.JsonError(c, fiber.StatusForbidden, "Cannot manage this admin")
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["admin_user_name"] = strings.TrimSpace(*req.Name)
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		updates["admin_user_password"] = string(hash)
	}
	if req.Role != nil {
		newRole := constants.AdminRole(*req.Role)
		if !newRole.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown role")
		}
		if actorRole != constants.RoleProgrammerAdmin {
			return helper.JsonError(c, fiber.StatusForbidden, "Only programmer admins may change roles")
		}
		if !actorRole.CanAssign(newRole) {
			return helper.JsonError(c, fiber.StatusForbidden, "Cannot assign this role")
		}
		if string(newRole) != target.AdminUserRole {
			updates["admin_user_role"] = string(newRole)
		}
	}
	if req.Status != nil && *req.Status != target.AdminUserStatus {
		updates["admin_user_status"] = *req.Status
	}

	// No effective change still reports success.
	if len(updates) == 0 {
		return helper.JsonOK(c, "Admin updated", dto.ToAdminUserResponse(&target, targetRole.Label()))
	}

	if err := ctrl.DB.Model(&target).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update admin")
	}
	if err := ctrl.DB.Where("admin_user_id = ?", targetID).First(&target).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	role := constants.AdminRole(target.AdminUserRole)
	return helper.JsonOK(c, "Admin updated", dto.ToAdminUserResponse(&target, role.Label()))
}

// Delete removes an admin account the actor is allowed to manage.
func (ctrl *AdminUserController) Delete(c *fiber.Ctx) error {
	actorID := authmw.AdminIDFromCtx(c)
	actorRole := authmw.AdminRoleFromCtx(c)
	targetID := c.Params("id")

	if targetID == actorID {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot delete your own account")
	}

	var target model.AdminUserModel
	if err := ctrl.DB.Where("admin_user_id = ?", targetID).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !actorRole.CanManage(constants.AdminRole(target.AdminUserRole)) {
		return helper.JsonError(c, fiber.StatusForbidden, "Cannot manage this admin")
	}
	if err := ctrl.DB.Delete(&target).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete admin")
	}
	return helper.JsonOK(c, "Admin deleted", nil)
}
