package controller

import (
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gradus_backend/internals/features/events/dto"
	"gradus_backend/internals/features/events/model"
	helper "gradus_backend/internals/helpers"
	ossHelper "gradus_backend/internals/helpers/oss"
	authmw "gradus_backend/internals/middlewares/auth"
)

var validate = validator.New()

type EventAdminController struct {
	DB *gorm.DB
}

func NewEventAdminController(db *gorm.DB) *EventAdminController {
	return &EventAdminController{DB: db}
}

func cleanTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func applyEventPayload(m *model.EventModel, req *dto.EventRequest) {
	m.Title = strings.TrimSpace(req.Title)
	m.Subtitle = strings.TrimSpace(req.Subtitle)
	m.Summary = strings.TrimSpace(req.Summary)
	m.Description = strings.TrimSpace(req.Description)
	if v := strings.TrimSpace(req.Category); v != "" {
		m.Category = v
	} else if m.Category == "" {
		m.Category = "General"
	}
	m.Badge = strings.TrimSpace(req.Badge)
	if v := strings.TrimSpace(req.EventType); v != "" {
		m.EventType = v
	} else if m.EventType == "" {
		m.EventType = "Webinar"
	}
	m.Tags = cleanTags(req.Tags)
	m.Level = strings.TrimSpace(req.Level)
	m.TrackLabel = strings.TrimSpace(req.TrackLabel)

	m.HostName = strings.TrimSpace(req.Host.Name)
	m.HostTitle = strings.TrimSpace(req.Host.Title)
	m.HostAvatar = strings.TrimSpace(req.Host.AvatarURL)
	m.HostBio = strings.TrimSpace(req.Host.Bio)

	m.PriceLabel = strings.TrimSpace(req.Price.Label)
	if req.Price.Amount >= 0 {
		m.PriceAmount = req.Price.Amount
	}
	if v := strings.TrimSpace(req.Price.Currency); v != "" {
		m.PriceCurrency = v
	} else if m.PriceCurrency == "" {
		m.PriceCurrency = "INR"
	}
	if req.Price.IsFree != nil {
		m.PriceIsFree = *req.Price.IsFree
	} else {
		m.PriceIsFree = m.PriceAmount == 0
	}

	if v := strings.TrimSpace(req.Cta.Label); v != "" {
		m.CtaLabel = v
	} else if m.CtaLabel == "" {
		m.CtaLabel = "Join us live"
	}
	m.CtaURL = strings.TrimSpace(req.Cta.URL)
	m.CtaExternal = req.Cta.External

	m.ScheduleStart = req.Schedule.Start
	m.ScheduleEnd = req.Schedule.End
	if v := strings.TrimSpace(req.Schedule.Timezone); v != "" {
		m.Timezone = v
	} else if m.Timezone == "" {
		m.Timezone = "Asia/Kolkata"
	}

	if model.IsAllowedMode(req.Mode) {
		m.Mode = req.Mode
	} else if m.Mode == "" {
		m.Mode = model.ModeOnline
	}
	m.Location = strings.TrimSpace(req.Location)
	m.SeatLimit = req.SeatLimit
	m.DurationMinutes = req.DurationMinutes

	m.RecordingAvailable = req.RecordingAvailable
	m.IsFeatured = req.IsFeatured
	if req.SortOrder != nil {
		m.SortOrder = *req.SortOrder
	}
	m.Highlights = cleanTags(req.Highlights)
	m.Agenda = cleanTags(req.Agenda)

	m.IsMasterclass = req.IsMasterclass
	if req.MasterclassDetails != nil {
		if raw, err := sonic.Marshal(req.MasterclassDetails); err == nil {
			m.MasterclassDetails = datatypes.JSON(raw)
		}
	}
}

// Create inserts a draft event with a server-derived unique slug.
func (ctrl *EventAdminController) Create(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	base := helper.Slugify(req.Slug)
	if base == "" {
		base = helper.Slugify(req.Title)
	}
	if base == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event title is required")
	}
	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "events", "event_slug", base, nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to derive slug")
	}

	event := model.EventModel{EventSlug: slug, Status: model.StatusDraft}
	if actorID, parseErr := uuid.Parse(authmw.AdminIDFromCtx(c)); parseErr == nil {
		event.CreatedBy = &actorID
	}
	applyEventPayload(&event, &req)

	if err := ctrl.DB.Create(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}
	return helper.JsonCreated(c, "Event created", event)
}

// Update edits an event by id; the slug survives renames unless an
// explicit slug is sent.
func (ctrl *EventAdminController) Update(c *fiber.Ctx) error {
	var event model.EventModel
	if err := ctrl.DB.Where("event_id = ?", c.Params("id")).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if base := helper.Slugify(req.Slug); base != "" && base != event.EventSlug {
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "events", "event_slug", base,
			func(q *gorm.DB) *gorm.DB { return q.Where("event_id <> ?", event.EventID) })
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to derive slug")
		}
		event.EventSlug = slug
	}

	applyEventPayload(&event, &req)

	if err := ctrl.DB.Save(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	return helper.JsonOK(c, "Event updated", event)
}

// List returns all events for the dashboard, drafts included.
func (ctrl *EventAdminController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Order("schedule_start DESC")
	if v := c.Query("status"); v != "" {
		q = q.Where("status = ?", v)
	}
	if v := c.Query("category"); v != "" {
		q = q.Where("category = ?", v)
	}

	var events []model.EventModel
	if err := q.Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}
	return helper.JsonOK(c, "OK", events)
}

// Get returns one event by id.
func (ctrl *EventAdminController) Get(c *fiber.Ctx) error {
	var event model.EventModel
	if err := ctrl.DB.Where("event_id = ?", c.Params("id")).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "OK", event)
}

func (ctrl *EventAdminController) setStatus(c *fiber.Ctx, status, message string) error {
	res := ctrl.DB.Model(&model.EventModel{}).
		Where("event_id = ?", c.Params("id")).
		Update("status", status)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonOK(c, message, nil)
}

// Publish makes the event visible on the public site.
func (ctrl *EventAdminController) Publish(c *fiber.Ctx) error {
	return ctrl.setStatus(c, model.StatusPublished, "Event published")
}

// Archive hides the event from the public site.
func (ctrl *EventAdminController) Archive(c *fiber.Ctx) error {
	return ctrl.setStatus(c, model.StatusArchived, "Event archived")
}

// Delete removes the event and best-effort cleans up the hero image.
func (ctrl *EventAdminController) Delete(c *fiber.Ctx) error {
	var event model.EventModel
	if err := ctrl.DB.Where("event_id = ?", c.Params("id")).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if err := ctrl.DB.Delete(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	ossHelper.BestEffortDelete(event.HeroImagePublicID)
	return helper.JsonOK(c, "Event deleted", nil)
}

// UploadHeroImage replaces the hero image.
func (ctrl *EventAdminController) UploadHeroImage(c *fiber.Ctx) error {
	var event model.EventModel
	if err := ctrl.DB.Where("event_id = ?", c.Params("id")).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	fh := ossHelper.PickFile(c, "file", "image", "heroImage")
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file uploaded")
	}

	blob, err := ossHelper.NewBlobService()
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Media storage is not configured")
	}
	asset, err := blob.UploadImage(c.Context(), ossHelper.FolderEventImages, fh)
	if err != nil {
		if errors.Is(err, ossHelper.ErrFileTooLarge) {
			return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "File exceeds the upload limit")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	oldID := event.HeroImagePublicID
	updates := map[string]any{
		"hero_image_url":       asset.URL,
		"hero_image_public_id": asset.PublicID,
	}
	if alt := strings.TrimSpace(c.FormValue("alt")); alt != "" {
		updates["hero_image_alt"] = alt
	}
	if err := ctrl.DB.Model(&event).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save hero image")
	}
	if oldID != asset.PublicID {
		ossHelper.BestEffortDelete(oldID)
	}
	return helper.JsonOK(c, "Hero image uploaded", asset)
}
