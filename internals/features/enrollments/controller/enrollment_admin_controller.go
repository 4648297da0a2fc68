package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradus_backend/internals/features/enrollments/dto"
	"gradus_backend/internals/features/enrollments/model"
	helper "gradus_backend/internals/helpers"
)

var validate = validator.New()

type EnrollmentAdminController struct {
	DB *gorm.DB
}

func NewEnrollmentAdminController(db *gorm.DB) *EnrollmentAdminController {
	return &EnrollmentAdminController{DB: db}
}

func applyFilters(q *gorm.DB, c *fiber.Ctx) *gorm.DB {
	if v := c.Query("course"); v != "" {
		q = q.Where("course_slug = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("status = ?", v)
	}
	if v := c.Query("payment"); v != "" {
		q = q.Where("payment_status = ?", v)
	}
	if v := c.Query("user"); v != "" {
		q = q.Where("user_id = ?", v)
	}
	return q
}

// List returns enrollments newest first with optional course/status/
// payment/user filters.
func (ctrl *EnrollmentAdminController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := applyFilters(ctrl.DB.Model(&model.EnrollmentModel{}), c).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	var rows []model.EnrollmentModel
	if err := applyFilters(ctrl.DB, c).
		Order("created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"enrollments": rows,
		"pagination":  helper.BuildPagination(p, total),
	})
}

// Summary groups enrollments per course with total and paid counts.
func (ctrl *EnrollmentAdminController) Summary(c *fiber.Ctx) error {
	var rows []model.EnrollmentModel
	if err := applyFilters(ctrl.DB, c).Order("created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch enrollments")
	}
	return helper.JsonOK(c, "OK", dto.SummarizeByCourse(rows))
}

// Cancel marks an enrollment CANCELLED without touching payment state.
func (ctrl *EnrollmentAdminController) Cancel(c *fiber.Ctx) error {
	res := ctrl.DB.Model(&model.EnrollmentModel{}).
		Where("enrollment_id = ?", c.Params("id")).
		Update("status", model.StatusCancelled)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel enrollment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
	}
	return helper.JsonOK(c, "Enrollment cancelled", nil)
}
