package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "gradus_backend/internals/features/courses/course/model"
	"gradus_backend/internals/features/enrollments/dto"
	"gradus_backend/internals/features/enrollments/model"
	"gradus_backend/internals/features/enrollments/service"
	helper "gradus_backend/internals/helpers"
	authmw "gradus_backend/internals/middlewares/auth"
)

type EnrollmentUserController struct {
	DB *gorm.DB
}

func NewEnrollmentUserController(db *gorm.DB) *EnrollmentUserController {
	return &EnrollmentUserController{DB: db}
}

// Checkout creates (or reuses) a pending enrollment and returns a Snap
// token for the hosted payment page. Free courses are marked paid
// immediately with no gateway round trip.
func (ctrl *EnrollmentUserController) Checkout(c *fiber.Ctx) error {
	userID, err := uuid.Parse(authmw.UserIDFromCtx(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.Where("LOWER(course_slug) = LOWER(?)", req.CourseSlug).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var enrollment model.EnrollmentModel
	dbErr := ctrl.DB.Where("user_id = ? AND course_slug = ?", userID, course.CourseSlug).
		First(&enrollment).Error
	switch {
	case dbErr == nil:
		if enrollment.PaymentStatus == model.PaymentPaid {
			return helper.JsonError(c, fiber.StatusConflict, "Already enrolled in this course")
		}
		// retry keeps the row, refreshes the order id
	case errors.Is(dbErr, gorm.ErrRecordNotFound):
		enrollment = model.EnrollmentModel{
			UserID:     userID,
			CourseSlug: course.CourseSlug,
		}
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	enrollment.Status = model.StatusActive
	enrollment.PaymentStatus = model.PaymentPending
	enrollment.OrderID = fmt.Sprintf("enr-%s", uuid.NewString())
	enrollment.PriceBase = course.PriceINR
	enrollment.PriceTax = 0
	enrollment.PriceTotal = course.PriceINR

	snapToken, redirectURL := "", ""
	if enrollment.PriceTotal > 0 {
		snapToken, redirectURL, err = service.GenerateSnapToken(enrollment, req.Name, req.Email)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadGateway, "Failed to start payment")
		}
	} else {
		now := time.Now()
		enrollment.PaymentStatus = model.PaymentPaid
		enrollment.PaidAt = &now
	}

	if err := ctrl.DB.Save(&enrollment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save enrollment")
	}

	return helper.JsonCreated(c, "Checkout started", dto.CheckoutResponse{
		EnrollmentID: enrollment.EnrollmentID.String(),
		OrderID:      enrollment.OrderID,
		SnapToken:    snapToken,
		RedirectURL:  redirectURL,
		PriceTotal:   enrollment.PriceTotal,
	})
}

// MyEnrollments lists the learner's own enrollments.
func (ctrl *EnrollmentUserController) MyEnrollments(c *fiber.Ctx) error {
	userID := authmw.UserIDFromCtx(c)

	var rows []model.EnrollmentModel
	if err := ctrl.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}
	return helper.JsonOK(c, "OK", rows)
}

// PaymentWebhook receives gateway notifications. It always answers 200
// for known orders so the gateway stops retrying.
func (ctrl *EnrollmentUserController) PaymentWebhook(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := service.HandlePaymentWebhook(ctrl.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	}
	return helper.JsonOK(c, "OK", nil)
}
