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

type BannerController struct {
	DB *gorm.DB
}

func NewBannerController(db *gorm.DB) *BannerController {
	return &BannerController{DB: db}
}

func formBool(c *fiber.Ctx, field string, fallback bool) bool {
	v := strings.TrimSpace(c.FormValue(field))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func formInt(c *fiber.Ctx, field string, fallback int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(c.FormValue(field))); err == nil {
		return n
	}
	return fallback
}

func (ctrl *BannerController) uploadBannerImage(c *fiber.Ctx, field string) (*ossHelper.MediaAsset, error) {
	fh := ossHelper.PickFile(c, field)
	if fh == nil {
		return nil, nil
	}
	blob, err := ossHelper.NewBlobService()
	if err != nil {
		return nil, err
	}
	asset, err := blob.UploadImage(c.Context(), ossHelper.FolderBannerImages, fh)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func uploadErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ossHelper.ErrNotConfigured):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Media storage is not configured")
	case errors.Is(err, ossHelper.ErrFileTooLarge):
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "File exceeds the upload limit")
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
}

// Create accepts multipart form data with desktopImage and mobileImage
// files alongside the copy fields.
func (ctrl *BannerController) Create(c *fiber.Ctx) error {
	banner := model.BannerModel{
		Title:     strings.TrimSpace(c.FormValue("title")),
		Subtitle:  strings.TrimSpace(c.FormValue("subtitle")),
		LinkURL:   strings.TrimSpace(c.FormValue("link")),
		Active:    formBool(c, "active", true),
		SortOrder: formInt(c, "order", 0),
	}

	if asset, err := ctrl.uploadBannerImage(c, "desktopImage"); err != nil {
		return uploadErrorResponse(c, err)
	} else if asset != nil {
		banner.DesktopURL = asset.URL
		banner.DesktopPublicID = asset.PublicID
		banner.DesktopWidth = asset.Width
		banner.DesktopHeight = asset.Height
	}
	if asset, err := ctrl.uploadBannerImage(c, "mobileImage"); err != nil {
		return uploadErrorResponse(c, err)
	} else if asset != nil {
		banner.MobileURL = asset.URL
		banner.MobilePublicID = asset.PublicID
		banner.MobileWidth = asset.Width
		banner.MobileHeight = asset.Height
	}

	if err := ctrl.DB.Create(&banner).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create banner")
	}
	return helper.JsonCreated(c, "Banner created", banner)
}

// Update edits copy fields and optionally replaces either rendition.
func (ctrl *BannerController) Update(c *fiber.Ctx) error {
	var banner model.BannerModel
	if err := ctrl.DB.Where("banner_id = ?", c.Params("id")).First(&banner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Banner not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if v := strings.TrimSpace(c.FormValue("title")); v != "" {
		banner.Title = v
	}
	if v := strings.TrimSpace(c.FormValue("subtitle")); v != "" {
		banner.Subtitle = v
	}
	if v := strings.TrimSpace(c.FormValue("link")); v != "" {
		banner.LinkURL = v
	}
	banner.Active = formBool(c, "active", banner.Active)
	banner.SortOrder = formInt(c, "order", banner.SortOrder)

	oldDesktop, oldMobile := "", ""
	if asset, err := ctrl.uploadBannerImage(c, "desktopImage"); err != nil {
		return uploadErrorResponse(c, err)
	} else if asset != nil {
		oldDesktop = banner.DesktopPublicID
		banner.DesktopURL = asset.URL
		banner.DesktopPublicID = asset.PublicID
		banner.DesktopWidth = asset.Width
		banner.DesktopHeight = asset.Height
	}
	if asset, err := ctrl.uploadBannerImage(c, "mobileImage"); err != nil {
		return uploadErrorResponse(c, err)
	} else if asset != nil {
		oldMobile = banner.MobilePublicID
		banner.MobileURL = asset.URL
		banner.MobilePublicID = asset.PublicID
		banner.MobileWidth = asset.Width
		banner.MobileHeight = asset.Height
	}

	if err := ctrl.DB.Save(&banner).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update banner")
	}
	ossHelper.BestEffortDelete(oldDesktop)
	ossHelper.BestEffortDelete(oldMobile)
	return helper.JsonOK(c, "Banner updated", banner)
}

// List returns all banners for the dashboard.
func (ctrl *BannerController) List(c *fiber.Ctx) error {
	var banners []model.BannerModel
	if err := ctrl.DB.Order("sort_order ASC, created_at DESC").Find(&banners).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch banners")
	}
	return helper.JsonOK(c, "OK", banners)
}

// Delete removes the row, then best-effort removes both remote images.
func (ctrl *BannerController) Delete(c *fiber.Ctx) error {
	var banner model.BannerModel
	if err := ctrl.DB.Where("banner_id = ?", c.Params("id")).First(&banner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Banner not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if err := ctrl.DB.Delete(&banner).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete banner")
	}
	ossHelper.BestEffortDelete(banner.DesktopPublicID)
	ossHelper.BestEffortDelete(banner.MobilePublicID)
	return helper.JsonOK(c, "Banner deleted", nil)
}

// PublicList serves active banners only.
func (ctrl *BannerController) PublicList(c *fiber.Ctx) error {
	var banners []model.BannerModel
	if err := ctrl.DB.Where("active = TRUE").
		Order("sort_order ASC, created_at DESC").Find(&banners).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch banners")
	}
	return helper.JsonOK(c, "OK", banners)
}
