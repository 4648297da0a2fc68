package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	courseModel "gradus_backend/internals/features/courses/course/model"
	"gradus_backend/internals/features/courses/course_detail/dto"
	"gradus_backend/internals/features/courses/course_detail/model"
	helper "gradus_backend/internals/helpers"
	ossHelper "gradus_backend/internals/helpers/oss"
)

type CourseDetailController struct {
	DB *gorm.DB
}

func NewCourseDetailController(db *gorm.DB) *CourseDetailController {
	return &CourseDetailController{DB: db}
}

func (ctrl *CourseDetailController) findCourse(c *fiber.Ctx) (*courseModel.CourseModel, string, error) {
	slug := strings.ToLower(strings.TrimSpace(c.Query("slug")))
	if slug == "" {
		return nil, "", helper.JsonError(c, fiber.StatusBadRequest, "slug query parameter is required")
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.Where("LOWER(course_slug) = ?", slug).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return nil, "", helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return &course, slug, nil
}

// Get loads the curriculum tree for a course. A course without a stored
// detail row gets a single-module placeholder built from the course
// summary so the editor always has something to render.
func (ctrl *CourseDetailController) Get(c *fiber.Ctx) error {
	course, slug, err := ctrl.findCourse(c)
	if course == nil {
		return err
	}

	var modules []dto.Module
	updatedAt := course.UpdatedAt

	var detail model.CourseDetailModel
	dbErr := ctrl.DB.Where("course_slug = ?", slug).First(&detail).Error
	switch {
	case dbErr == nil:
		if err := sonic.Unmarshal(detail.Modules, &modules); err != nil {
			modules = nil
		}
		updatedAt = detail.UpdatedAt
	case errors.Is(dbErr, gorm.ErrRecordNotFound):
		// lazy create happens on first save, not on read
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if len(modules) == 0 {
		modules = dto.DefaultModules(course.CourseName)
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"course": fiber.Map{
			"slug":          slug,
			"name":          course.CourseName,
			"programme":     course.Programme,
			"programmeSlug": course.ProgrammeSlug,
		},
		"detail": fiber.Map{
			"courseSlug": slug,
			"modules":    modules,
			"updatedAt":  updatedAt,
		},
	})
}

// Upsert persists the whole tree, normalized. Concurrent saves are not
// reconciled; the last writer wins.
func (ctrl *CourseDetailController) Upsert(c *fiber.Ctx) error {
	course, slug, err := ctrl.findCourse(c)
	if course == nil {
		return err
	}

	var req dto.UpsertDetailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	modules := dto.NormalizeModules(req.Modules)
	raw, err := sonic.Marshal(modules)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to encode modules")
	}

	var detail model.CourseDetailModel
	dbErr := ctrl.DB.Where("course_slug = ?", slug).First(&detail).Error
	switch {
	case errors.Is(dbErr, gorm.ErrRecordNotFound):
		detail = model.CourseDetailModel{
			CourseSlug:    slug,
			CourseName:    course.CourseName,
			Programme:     course.Programme,
			ProgrammeSlug: course.ProgrammeSlug,
			Modules:       datatypes.JSON(raw),
		}
		if err := ctrl.DB.Create(&detail).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save course detail")
		}
	case dbErr == nil:
		if err := ctrl.DB.Model(&detail).Updates(map[string]any{
			"course_name":    course.CourseName,
			"programme":      course.Programme,
			"programme_slug": course.ProgrammeSlug,
			"modules":        datatypes.JSON(raw),
		}).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save course detail")
		}
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonOK(c, "Detailed course data saved", fiber.Map{
		"courseSlug": slug,
		"modules":    modules,
	})
}

// UploadLectureVideo stores one lecture video and returns the asset
// metadata; the client writes it into the tree and saves. Module,
// section and lecture indices are echoed back so the editor can match
// the response to the right lecture.
func (ctrl *CourseDetailController) UploadLectureVideo(c *fiber.Ctx) error {
	course, slug, err := ctrl.findCourse(c)
	if course == nil {
		return err
	}

	fh := ossHelper.PickFile(c, "file", "video")
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Video file is required")
	}

	blob, err := ossHelper.NewBlobService()
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Media storage is not configured")
	}

	asset, err := blob.UploadVideo(c.Context(), ossHelper.FolderLectureVideos, fh)
	if err != nil {
		if errors.Is(err, ossHelper.ErrFileTooLarge) {
			return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "File exceeds the upload limit")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if d, convErr := strconv.ParseFloat(c.FormValue("duration"), 64); convErr == nil && d > 0 {
		asset.Duration = d
	}

	return helper.JsonWithCode(c, fiber.StatusCreated, "Video uploaded", fiber.Map{
		"courseSlug":   slug,
		"moduleIndex":  c.QueryInt("module", 0),
		"sectionIndex": c.QueryInt("section", 0),
		"lectureIndex": c.QueryInt("lecture", 0),
		"asset":        asset,
	})
}
