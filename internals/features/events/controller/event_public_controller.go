package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradus_backend/internals/features/events/model"
	helper "gradus_backend/internals/helpers"
)

type EventPublicController struct {
	DB *gorm.DB
}

func NewEventPublicController(db *gorm.DB) *EventPublicController {
	return &EventPublicController{DB: db}
}

// List returns published events, soonest first.
func (ctrl *EventPublicController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Where("status = ?", model.StatusPublished).
		Order("schedule_start ASC")
	if v := c.Query("category"); v != "" {
		q = q.Where("category = ?", v)
	}
	if c.QueryBool("masterclass") {
		q = q.Where("is_masterclass = TRUE")
	}

	var events []model.EventModel
	if err := q.Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}
	return helper.JsonOK(c, "OK", events)
}

// GetBySlug serves one published event; drafts and archived rows 404.
func (ctrl *EventPublicController) GetBySlug(c *fiber.Ctx) error {
	var event model.EventModel
	err := ctrl.DB.Where("LOWER(event_slug) = LOWER(?) AND status = ?",
		c.Params("slug"), model.StatusPublished).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "OK", event)
}
