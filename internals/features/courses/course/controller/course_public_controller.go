package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradus_backend/internals/features/courses/course/model"
	helper "gradus_backend/internals/helpers"
)

type CoursePublicController struct {
	DB *gorm.DB
}

func NewCoursePublicController(db *gorm.DB) *CoursePublicController {
	return &CoursePublicController{DB: db}
}

// List returns the catalogue, optionally filtered by ?programme=.
func (ctrl *CoursePublicController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Order("sort_order ASC, created_at DESC")
	if prog := c.Query("programme"); prog != "" {
		q = q.Where("programme = ?", prog)
	}

	var courses []model.CourseModel
	if err := q.Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}

	out := make([]fiber.Map, 0, len(courses))
	for i := range courses {
		m := &courses[i]
		out = append(out, fiber.Map{
			"slug":          m.CourseSlug,
			"name":          m.CourseName,
			"programme":     m.Programme,
			"programmeSlug": m.ProgrammeSlug,
			"path":          m.PublicPath(),
			"subtitle":      m.Subtitle,
			"level":         m.Level,
			"duration":      m.Duration,
			"mode":          m.Mode,
			"price":         m.Price,
			"imageUrl":      m.ImageURL,
		})
	}
	return helper.JsonOK(c, "OK", out)
}

// GetBySlug returns the full course record for a detail page.
func (ctrl *CoursePublicController) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var course model.CourseModel
	if err := ctrl.DB.Where("LOWER(course_slug) = LOWER(?)", slug).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "OK", course)
}
