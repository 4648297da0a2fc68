package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	detailDto "gradus_backend/internals/features/courses/course_detail/dto"
	detailModel "gradus_backend/internals/features/courses/course_detail/model"
	"gradus_backend/internals/features/progress/dto"
	"gradus_backend/internals/features/progress/model"
	helper "gradus_backend/internals/helpers"
	authmw "gradus_backend/internals/middlewares/auth"
)

var validate = validator.New()

type ProgressController struct {
	DB *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db}
}

// Record upserts one lecture's completion for the learner. The ratio is
// clamped to [0,1]; reaching 1 stamps completedAt once.
func (ctrl *ProgressController) Record(c *fiber.Ctx) error {
	userID, err := uuid.Parse(authmw.UserIDFromCtx(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.RecordProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	slug := strings.ToLower(strings.TrimSpace(req.CourseSlug))
	ratio := dto.ClampRatio(req.CompletionRatio)

	var row model.ProgressModel
	dbErr := ctrl.DB.Where("user_id = ? AND course_slug = ? AND lecture_id = ?",
		userID, slug, req.LectureID).First(&row).Error
	switch {
	case errors.Is(dbErr, gorm.ErrRecordNotFound):
		row = model.ProgressModel{
			UserID:     userID,
			CourseSlug: slug,
			LectureID:  req.LectureID,
		}
	case dbErr != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	row.CompletionRatio = ratio
	if ratio >= 1 && row.CompletedAt == nil {
		now := time.Now()
		row.CompletedAt = &now
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save progress")
	}
	return helper.JsonOK(c, "Progress saved", row)
}

// My returns the learner's progress rows for one course.
func (ctrl *ProgressController) My(c *fiber.Ctx) error {
	userID := authmw.UserIDFromCtx(c)
	slug := strings.ToLower(strings.TrimSpace(c.Query("course")))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "course query parameter is required")
	}

	var rows []model.ProgressModel
	if err := ctrl.DB.Where("user_id = ? AND course_slug = ?", userID, slug).
		Order("updated_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch progress")
	}
	return helper.JsonOK(c, "OK", rows)
}

func (ctrl *ProgressController) totalLectures(slug string) int {
	var detail detailModel.CourseDetailModel
	if err := ctrl.DB.Where("course_slug = ?", slug).First(&detail).Error; err != nil {
		return 0
	}
	var modules []detailDto.Module
	if err := sonic.Unmarshal(detail.Modules, &modules); err != nil {
		return 0
	}
	return dto.CountLectures(modules)
}

// ByLearner returns per-learner rollups for a course; the lecture total
// comes from the stored curriculum tree, queried fresh each call.
func (ctrl *ProgressController) ByLearner(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Query("course")))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "course query parameter is required")
	}

	var rows []model.ProgressModel
	if err := ctrl.DB.Where("course_slug = ?", slug).
		Order("created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch progress")
	}

	total := ctrl.totalLectures(slug)
	return helper.JsonOK(c, "OK", fiber.Map{
		"courseSlug":    slug,
		"totalLectures": total,
		"learners":      dto.RollupByLearner(rows, total),
	})
}

// ByLecture returns per-lecture rollups for a course.
func (ctrl *ProgressController) ByLecture(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Query("course")))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "course query parameter is required")
	}

	var rows []model.ProgressModel
	if err := ctrl.DB.Where("course_slug = ?", slug).
		Order("created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch progress")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"courseSlug": slug,
		"lectures":   dto.RollupByLecture(rows),
	})
}
