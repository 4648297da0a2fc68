package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradus_backend/internals/features/content/model"
	helper "gradus_backend/internals/helpers"
	ossHelper "gradus_backend/internals/helpers/oss"
)

// VideoContentController covers the three video-backed content types:
// testimonials, expert videos, and the single why-Gradus pitch video.
type VideoContentController struct {
	DB *gorm.DB
}

func NewVideoContentController(db *gorm.DB) *VideoContentController {
	return &VideoContentController{DB: db}
}

func (ctrl *VideoContentController) uploadVideo(c *fiber.Ctx, folder ossHelper.AssetFolder) (*ossHelper.MediaAsset, error) {
	fh := ossHelper.PickFile(c, "video", "file")
	if fh == nil {
		return nil, nil
	}
	blob, err := ossHelper.NewBlobService()
	if err != nil {
		return nil, err
	}
	asset, err := blob.UploadVideo(c.Context(), folder, fh)
	if err != nil {
		return nil, err
	}
	if d, convErr := strconv.ParseFloat(c.FormValue("duration"), 64); convErr == nil && d > 0 {
		asset.Duration = d
	}
	return &asset, nil
}

// ---------- Testimonials ----------

func (ctrl *VideoContentController) CreateTestimonial(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Name is required")
	}

	row := model.TestimonialVideoModel{
		Name:      name,
		Role:      strings.TrimSpace(c.FormValue("role")),
		Quote:     strings.TrimSpace(c.FormValue("quote")),
		Active:    formBool(c, "active", true),
		SortOrder: formInt(c, "order", 0),
	}

	if asset, err := ctrl.uploadVideo(c, ossHelper.FolderTestimonials); err != nil {
		return uploadErrorResponse(c, err)
	} else if asset != nil {
		row.VideoURL = asset.URL
		row.VideoPublicID = asset.PublicID
		row.VideoBytes = asset.Bytes
		row.VideoFormat = asset.Format
		row.VideoDuration = asset.Duration
	}

	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create testimonial")
	}
	return helper.JsonCreated(c, "Testimonial created", row)
}

func (ctrl *VideoContentController) UpdateTestimonial(c *fiber.Ctx) error {
	var row model.TestimonialVideoModel
	if err := ctrl.DB.Where("testimonial_id = ?", c.Params("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Testimonial not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if v := strings.TrimSpace(c.FormValue("name")); v != "" {
		row.Name = v
	}
	if v := strings.TrimSpace(c.FormValue("role")); v != "" {
		row.Role = v
	}
	if v := strings.TrimSpace(c.FormValue("quote")); v != "" {
		row.Quote = v
	}
	row.Active = formBool(c, "active", row.Active)
	row.SortOrder = formInt(c, "order", row.SortOrder)

	oldVideo := ""
	if asset, err := ctrl.uploadVideo(c, ossHelper.FolderTestimonials); err != nil {
		return uploadErrorResponse(c, err)
	} else if asset != nil {
		oldVideo = row.VideoPublicID
		row.VideoURL = asset.URL
		row.VideoPublicID = asset.PublicID
		row.VideoBytes = asset.Bytes
		row.VideoFormat = asset.Format
		row.VideoDuration = asset.Duration
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update testimonial")
	}
	ossHelper.BestEffortDelete(oldVideo)
	return helper.JsonOK(c, "Testimonial updated", row)
}

func (ctrl *VideoContentController) ListTestimonials(c *fiber.Ctx) error {
	var rows []model.TestimonialVideoModel
	if err := ctrl.DB.Order("sort_order ASC, created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch testimonials")
	}
	return helper.JsonOK(c, "OK", rows)
}

func (ctrl *VideoContentController) DeleteTestimonial(c *fiber.Ctx) error {
	var row model.TestimonialVideoModel
	if err := ctrl.DB.Where("testimonial_id = ?", c.Params("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Testimonial not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if err := ctrl.DB.Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete testimonial")
	}
	ossHelper.BestEffortDelete(row.VideoPublicID)
	return helper.JsonOK(c, "Testimonial deleted", nil)
}

func (ctrl *VideoContentController) PublicTestimonials(c *fiber.Ctx) error {
	var rows []model.TestimonialVideoModel
	if err := ctrl.DB.Where("active = TRUE").
		Order("sort_order ASC, created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch testimonials")
	}
	return helper.JsonOK(c, "OK", rows)
}

// ---------- Expert videos ----------

func (ctrl *VideoContentController) CreateExpertVideo(c *fiber.Ctx) error {
	title := strings.TrimSpace(c.FormValue("title"))
	if title == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title is required")
	}

	row := model.ExpertVideoModel{
		Title:       title,
		ExpertName:  strings.TrimSpace(c.FormValue("expertName")),
		ExpertTitle: strings.TrimSpace(c.FormValue("expertTitle")),
		Active:      formBool(c, "active", true),
		SortOrder:   formInt(c, "order", 0),
	}

	if asset, err := ctrl.uploadVideo(c, ossHelper.FolderExpertVideos); err != nil {
		return uploadErrorResponse(c, err)
	} else if asset != nil {
		row.VideoURL = asset.URL
		row.VideoPublicID = asset.PublicID
		row.VideoBytes = asset.Bytes
		row.VideoFormat = asset.Format
		row.VideoDuration = asset.Duration
	}

	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create expert video")
	}
	return helper.JsonCreated(c, "Expert video created", row)
}

func (ctrl *VideoContentController) UpdateExpertVideo(c *fiber.Ctx) error {
	var row model.ExpertVideoModel
	if err := ctrl.DB.Where("expert_video_id = ?", c.Params("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Expert video not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if v := strings.TrimSpace(c.FormValue("title")); v != "" {
		row.Title = v
	}
	if v := strings.TrimSpace(c.FormValue("expertName")); v != "" {
		row.ExpertName = v
	}
	if v := strings.TrimSpace(c.FormValue("expertTitle")); v != "" {
		row.ExpertTitle = v
	}
	row.Active = formBool(c, "active", row.Active)
	row.SortOrder = formInt(c, "order", row.SortOrder)

	oldVideo := ""
	if asset, err := ctrl.uploadVideo(c, ossHelper.FolderExpertVideos); err != nil {
		return uploadErrorResponse(c, err)
	} else if asset != nil {
		oldVideo = row.VideoPublicID
		row.VideoURL = asset.URL
		row.VideoPublicID = asset.PublicID
		row.VideoBytes = asset.Bytes
		row.VideoFormat = asset.Format
		row.VideoDuration = asset.Duration
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update expert video")
	}
	ossHelper.BestEffortDelete(oldVideo)
	return helper.JsonOK(c, "Expert video updated", row)
}

func (ctrl *VideoContentController) ListExpertVideos(c *fiber.Ctx) error {
	var rows []model.ExpertVideoModel
	if err := ctrl.DB.Order("sort_order ASC, created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch expert videos")
	}
	return helper.JsonOK(c, "OK", rows)
}

func (ctrl *VideoContentController) DeleteExpertVideo(c *fiber.Ctx) error {
	var row model.ExpertVideoModel
	if err := ctrl.DB.Where("expert_video_id = ?", c.Params("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Expert video not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if err := ctrl.DB.Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete expert video")
	}
	ossHelper.BestEffortDelete(row.VideoPublicID)
	return helper.JsonOK(c, "Expert video deleted", nil)
}

func (ctrl *VideoContentController) PublicExpertVideos(c *fiber.Ctx) error {
	var rows []model.ExpertVideoModel
	if err := ctrl.DB.Where("active = TRUE").
		Order("sort_order ASC, created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch expert videos")
	}
	return helper.JsonOK(c, "OK", rows)
}

// ---------- Why Gradus (single record) ----------

// UpsertWhyGradusVideo replaces the single pitch video; the previous
// remote object is removed best effort after the row is saved.
func (ctrl *VideoContentController) UpsertWhyGradusVideo(c *fiber.Ctx) error {
	var row model.WhyGradusVideoModel
	dbErr := ctrl.DB.Order("created_at ASC").First(&row).Error
	if dbErr != nil && !errors.Is(dbErr, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if v := strings.TrimSpace(c.FormValue("title")); v != "" {
		row.Title = v
	}
	row.Active = formBool(c, "active", true)

	oldVideo := ""
	if asset, err := ctrl.uploadVideo(c, ossHelper.FolderSiteVideos); err != nil {
		return uploadErrorResponse(c, err)
	} else if asset != nil {
		oldVideo = row.VideoPublicID
		row.VideoURL = asset.URL
		row.VideoPublicID = asset.PublicID
		row.VideoBytes = asset.Bytes
		row.VideoFormat = asset.Format
		row.VideoDuration = asset.Duration
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save video")
	}
	if oldVideo != "" && oldVideo != row.VideoPublicID {
		ossHelper.BestEffortDelete(oldVideo)
	}
	return helper.JsonOK(c, "Video saved", row)
}

// WhyGradusVideo serves the active pitch video, or 404 when none is set.
func (ctrl *VideoContentController) WhyGradusVideo(c *fiber.Ctx) error {
	var row model.WhyGradusVideoModel
	err := ctrl.DB.Where("active = TRUE").Order("updated_at DESC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No video configured")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "OK", row)
}
