package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"gradus_backend/internals/configs"
	"gradus_backend/internals/constants"
	adminModel "gradus_backend/internals/features/admins/model"
	helper "gradus_backend/internals/helpers"
)

// Locals keys hydrated by the middlewares below.
const (
	LocAdminID   = "admin_id"
	LocAdminRole = "admin_role"
	LocUserID    = "user_id"
)

func parseSubject(c *fiber.Ctx, secret string) (string, string, error) {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return "", "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", "", fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	if strings.TrimSpace(sub) == "" {
		return "", "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token subject")
	}
	return raw, sub, nil
}

// AdminAuth verifies the bearer token (or access_token cookie), rejects
// blacklisted tokens, and re-reads the admin row so role and status are
// always current. The token is identity only.
func AdminAuth(db *gorm.DB) fiber.Handler {
	secret := configs.JWTSecret
	return func(c *fiber.Ctx) error {
		raw, sub, err := parseSubject(c, secret)
		if err != nil {
			return err
		}

		var black adminModel.TokenBlacklist
		if err := db.Where("token = ?", raw).First(&black).Error; err == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		var admin adminModel.AdminUserModel
		if err := db.Where("admin_user_id = ?", sub).First(&admin).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unknown admin account")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if admin.AdminUserStatus != adminModel.StatusActive {
			return fiber.NewError(fiber.StatusForbidden, "Account is inactive")
		}

		helper.SetRawAccessToken(c, raw)
		c.Locals(LocAdminID, admin.AdminUserID.String())
		c.Locals(LocAdminRole, constants.AdminRole(admin.AdminUserRole))
		return c.Next()
	}
}

// UserAuth is the learner-facing variant: token subject only, no role.
func UserAuth() fiber.Handler {
	secret := configs.JWTSecret
	return func(c *fiber.Ctx) error {
		raw, sub, err := parseSubject(c, secret)
		if err != nil {
			return err
		}
		helper.SetRawAccessToken(c, raw)
		c.Locals(LocUserID, sub)
		return c.Next()
	}
}

// AdminRoleFromCtx returns the role hydrated by AdminAuth.
func AdminRoleFromCtx(c *fiber.Ctx) constants.AdminRole {
	if r, ok := c.Locals(LocAdminRole).(constants.AdminRole); ok {
		return r
	}
	return ""
}

// AdminIDFromCtx returns the acting admin id hydrated by AdminAuth.
func AdminIDFromCtx(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocAdminID).(string); ok {
		return s
	}
	return ""
}

// UserIDFromCtx returns the learner id hydrated by UserAuth.
func UserIDFromCtx(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocUserID).(string); ok {
		return s
	}
	return ""
}
