package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gradus_backend/internals/configs"
	"gradus_backend/internals/features/users/model"
	helper "gradus_backend/internals/helpers"
	authmw "gradus_backend/internals/middlewares/auth"
)

var validate = validator.New()

type UserAuthController struct {
	DB *gorm.DB
}

func NewUserAuthController(db *gorm.DB) *UserAuthController {
	return &UserAuthController{DB: db}
}

func userTokenTTL() time.Duration {
	hours := configs.GetEnvInt("USER_TOKEN_TTL_HOURS", 24*7)
	return time.Duration(hours) * time.Hour
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a learner account and signs it in.
func (ctrl *UserAuthController) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		UserName:     strings.TrimSpace(req.Name),
		UserEmail:    strings.ToLower(strings.TrimSpace(req.Email)),
		UserPassword: string(hash),
		IsActive:     true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	ttl := userTokenTTL()
	token, err := helper.CreateAccessToken(user.UserID.String(), configs.JWTSecret, ttl)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	helper.SetAccessCookie(c, token, ttl)

	return helper.JsonCreated(c, "Account created", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login authenticates a learner by email.
func (ctrl *UserAuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err := ctrl.DB.Where("LOWER(user_email) = ?", strings.ToLower(strings.TrimSpace(req.Email))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is inactive")
	}

	ttl := userTokenTTL()
	token, err := helper.CreateAccessToken(user.UserID.String(), configs.JWTSecret, ttl)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	helper.SetAccessCookie(c, token, ttl)

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Me returns the signed-in learner's profile.
func (ctrl *UserAuthController) Me(c *fiber.Ctx) error {
	var user model.UserModel
	if err := ctrl.DB.Where("user_id = ?", authmw.UserIDFromCtx(c)).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unknown account")
	}
	return helper.JsonOK(c, "OK", user)
}
