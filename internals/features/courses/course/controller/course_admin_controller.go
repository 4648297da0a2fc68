package controller

import (
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gradus_backend/internals/features/courses/course/dto"
	"gradus_backend/internals/features/courses/course/model"
	helper "gradus_backend/internals/helpers"
	ossHelper "gradus_backend/internals/helpers/oss"
)

var validate = validator.New()

type CourseAdminController struct {
	DB *gorm.DB
}

func NewCourseAdminController(db *gorm.DB) *CourseAdminController {
	return &CourseAdminController{DB: db}
}

func marshalJSONB(v any) datatypes.JSON {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

// applyPayload maps a validated request onto the model. Slug handling is
// done by the caller so create and update can scope uniqueness differently.
func applyPayload(m *model.CourseModel, req *dto.CourseRequest) {
	m.CourseName = strings.TrimSpace(req.Name)

	if model.IsAllowedProgramme(strings.TrimSpace(req.Programme)) {
		m.Programme = strings.TrimSpace(req.Programme)
	} else if m.Programme == "" {
		m.Programme = model.ProgrammeX
	}
	m.ProgrammeSlug = helper.Slugify(m.Programme)

	m.Subtitle = strings.TrimSpace(req.Subtitle)
	m.Focus = strings.TrimSpace(req.Focus)
	m.Level = strings.TrimSpace(req.Level)
	m.Duration = strings.TrimSpace(req.Duration)
	m.Mode = strings.TrimSpace(req.Mode)
	m.Price = strings.TrimSpace(req.Price)
	if req.PriceINR != nil && *req.PriceINR >= 0 {
		m.PriceINR = *req.PriceINR
	}
	m.PlacementRange = strings.TrimSpace(req.PlacementRange)
	m.OutcomeSummary = strings.TrimSpace(req.OutcomeSummary)
	m.FinalAward = strings.TrimSpace(req.FinalAward)

	m.DetailsEffort = strings.TrimSpace(req.Effort)
	m.DetailsLanguage = strings.TrimSpace(req.Language)
	m.DetailsPrerequisites = strings.TrimSpace(req.Prerequisites)

	m.Approvals = dto.NormalizeStringArray(req.Approvals)
	m.Skills = dto.NormalizeStringArray(req.Skills)
	m.Deliverables = dto.NormalizeStringArray(req.Deliverables)
	m.Outcomes = dto.NormalizeStringArray(req.Outcomes)
	m.CapstonePoints = dto.NormalizeStringArray(req.CapstonePoints)
	m.CareerOutcomes = dto.NormalizeStringArray(req.CareerOutcomes)
	m.ToolsFrameworks = dto.NormalizeStringArray(req.ToolsFrameworks)

	m.Weeks = marshalJSONB(dto.NormalizeWeeks(req.Weeks))
	m.Partners = marshalJSONB(dto.NormalizePartners(req.Partners))
	m.Certifications = marshalJSONB(dto.NormalizeCertifications(req.Certifications))

	if req.ImageURL != "" {
		m.ImageURL = strings.TrimSpace(req.ImageURL)
	}
	if req.ImageAlt != "" {
		m.ImageAlt = strings.TrimSpace(req.ImageAlt)
	}
	if req.ImagePublicID != "" {
		m.ImagePublicID = strings.TrimSpace(req.ImagePublicID)
	}

	if req.AssessmentMaxAttempts != nil && *req.AssessmentMaxAttempts >= 1 {
		m.AssessmentMaxAttempts = *req.AssessmentMaxAttempts
	} else if m.AssessmentMaxAttempts < 1 {
		m.AssessmentMaxAttempts = 3
	}
	if req.Order != nil {
		m.SortOrder = *req.Order
	}
}

// Create inserts a course. The slug is derived server-side from the name
// (or an explicit slug field) and made unique with numeric suffixes.
func (ctrl *CourseAdminController) Create(c *fiber.Ctx) error {
	var req dto.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	base := helper.Slugify(req.Slug)
	if base == "" {
		base = helper.Slugify(req.Name)
	}
	if base == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course name is required")
	}

	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "courses", "course_slug", base, nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to derive slug")
	}

	course := model.CourseModel{CourseSlug: slug}
	applyPayload(&course, &req)

	if err := ctrl.DB.Create(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.JsonCreated(c, "Course created", course)
}

// Update edits a course by id. Renaming re-derives the slug, keeping
// uniqueness against every other course.
func (ctrl *CourseAdminController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var course model.CourseModel
	if err := ctrl.DB.Where("course_id = ?", id).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var req dto.CourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	base := helper.Slugify(req.Slug)
	if base == "" {
		base = helper.Slugify(req.Name)
	}
	if base == "" {
		base = course.CourseSlug
	}
	if base != course.CourseSlug {
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "courses", "course_slug", base,
			func(q *gorm.DB) *gorm.DB { return q.Where("course_id <> ?", course.CourseID) })
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to derive slug")
		}
		course.CourseSlug = slug
	}

	applyPayload(&course, &req)

	if err := ctrl.DB.Save(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.JsonOK(c, "Course updated", course)
}

// List returns the catalogue in manual sort order for the dashboard.
func (ctrl *CourseAdminController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := ctrl.DB.Model(&model.CourseModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	var courses []model.CourseModel
	if err := ctrl.DB.
		Order("sort_order ASC, created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"courses":    courses,
		"pagination": helper.BuildPagination(p, total),
	})
}

// Get returns one course by id.
func (ctrl *CourseAdminController) Get(c *fiber.Ctx) error {
	var course model.CourseModel
	if err := ctrl.DB.Where("course_id = ?", c.Params("id")).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "OK", course)
}

// Delete removes the course row; remote media cleanup is best effort and
// never blocks the delete.
func (ctrl *CourseAdminController) Delete(c *fiber.Ctx) error {
	var course model.CourseModel
	if err := ctrl.DB.Where("course_id = ?", c.Params("id")).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if err := ctrl.DB.Delete(&course).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}

	ossHelper.BestEffortDelete(course.ImagePublicID)
	ossHelper.BestEffortDelete(course.BannerPublicID)
	return helper.JsonOK(c, "Course deleted", nil)
}

// UploadImage replaces the card image. The previous remote object is
// removed best effort after the row is updated.
func (ctrl *CourseAdminController) UploadImage(c *fiber.Ctx) error {
	var course model.CourseModel
	if err := ctrl.DB.Where("course_id = ?", c.Params("id")).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	fh := ossHelper.PickFile(c, "file", "image", "thumbnail")
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file uploaded")
	}

	blob, err := ossHelper.NewBlobService()
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Media storage is not configured")
	}
	asset, err := blob.UploadImage(c.Context(), ossHelper.FolderCourseImages, fh)
	if err != nil {
		if errors.Is(err, ossHelper.ErrFileTooLarge) {
			return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "File exceeds the upload limit")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	oldID := course.ImagePublicID
	updates := map[string]any{
		"image_url":       asset.URL,
		"image_public_id": asset.PublicID,
	}
	if alt := strings.TrimSpace(c.FormValue("alt")); alt != "" {
		updates["image_alt"] = alt
	}
	if err := ctrl.DB.Model(&course).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save image")
	}
	if oldID != asset.PublicID {
		ossHelper.BestEffortDelete(oldID)
	}
	return helper.JsonOK(c, "Image uploaded", asset)
}

// UploadBanner replaces the wide banner image.
func (ctrl *CourseAdminController) UploadBanner(c *fiber.Ctx) error {
	var course model.CourseModel
	if err := ctrl.DB.Where("course_id = ?", c.Params("id")).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	fh := ossHelper.PickFile(c, "file", "banner", "image")
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file uploaded")
	}

	blob, err := ossHelper.NewBlobService()
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Media storage is not configured")
	}
	asset, err := blob.UploadImage(c.Context(), ossHelper.FolderCourseImages, fh)
	if err != nil {
		if errors.Is(err, ossHelper.ErrFileTooLarge) {
			return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "File exceeds the upload limit")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	oldID := course.BannerPublicID
	if err := ctrl.DB.Model(&course).Updates(map[string]any{
		"banner_url":       asset.URL,
		"banner_public_id": asset.PublicID,
		"banner_width":     asset.Width,
		"banner_height":    asset.Height,
		"banner_format":    asset.Format,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save banner")
	}
	if oldID != asset.PublicID {
		ossHelper.BestEffortDelete(oldID)
	}
	return helper.JsonOK(c, "Banner uploaded", asset)
}
