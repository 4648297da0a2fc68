package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gradus_backend/internals/configs"
	"gradus_backend/internals/constants"
	"gradus_backend/internals/features/admins/dto"
	"gradus_backend/internals/features/admins/model"
	helper "gradus_backend/internals/helpers"
	authmw "gradus_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func accessTokenTTL() time.Duration {
	hours := configs.GetEnvInt("ADMIN_TOKEN_TTL_HOURS", 24)
	return time.Duration(hours) * time.Hour
}

// Login authenticates by email and issues an access token. The response
// never distinguishes "unknown email" from "wrong password".
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var admin model.AdminUserModel
	err := ctrl.DB.Where("LOWER(admin_user_email) = ?", email).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.AdminUserPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if admin.AdminUserStatus != model.StatusActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is inactive")
	}

	ttl := accessTokenTTL()
	token, err := helper.CreateAccessToken(admin.AdminUserID.String(), configs.JWTSecret, ttl)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	helper.SetAccessCookie(c, token, ttl)

	role := constants.AdminRole(admin.AdminUserRole)
	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		Token: token,
		Admin: dto.ToAdminUserResponse(&admin, role.Label()),
	})
}

// Logout revokes the presented token until its natural expiry.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	expiredAt := time.Now().Add(accessTokenTTL())
	if tok, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
	}

	entry := model.TokenBlacklist{Token: raw, ExpiredAt: expiredAt}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		// Already blacklisted counts as logged out.
		if !strings.Contains(err.Error(), "duplicate") {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke token")
		}
	}
	helper.ClearAccessCookie(c)
	return helper.JsonOK(c, "Logged out", nil)
}

// Me returns the acting admin's own profile.
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	adminID := authmw.AdminIDFromCtx(c)

	var admin model.AdminUserModel
	if err := ctrl.DB.Where("admin_user_id = ?", adminID).First(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unknown admin account")
	}
	role := constants.AdminRole(admin.AdminUserRole)
	return helper.JsonOK(c, "OK", dto.ToAdminUserResponse(&admin, role.Label()))
}
