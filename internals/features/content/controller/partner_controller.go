package controller

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradus_backend/internals/features/content/model"
	helper "gradus_backend/internals/helpers"
	ossHelper "gradus_backend/internals/helpers/oss"
)

type PartnerController struct {
	DB *gorm.DB
}

func NewPartnerController(db *gorm.DB) *PartnerController {
	return &PartnerController{DB: db}
}

func (ctrl *PartnerController) uploadLogo(c *fiber.Ctx) (*ossHelper.MediaAsset, error) {
	fh := ossHelper.PickFile(c, "logo", "file", "image")
	if fh == nil {
		return nil, nil
	}
	blob, err := ossHelper.NewBlobService()
	if err != nil {
		return nil, err
	}
	asset, err := blob.UploadImage(c.Context(), ossHelper.FolderPartnerLogos, fh)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// deriveLogoName turns "acme-corp.png" into "acme corp" for bulk rows
// uploaded without an explicit name.
func deriveLogoName(filename string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		filename = filename[:i]
	}
	filename = strings.NewReplacer("-", " ", "_", " ").Replace(filename)
	return strings.TrimSpace(filename)
}

// Create accepts multipart form data with a logo file. Sending several
// files under "logos" creates one partner per file.
func (ctrl *PartnerController) Create(c *fiber.Ctx) error {
	if files := ossHelper.PickFiles(c, "logos"); len(files) > 0 {
		return ctrl.createBulk(c, files)
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Partner name is required")
	}

	partner := model.PartnerLogoModel{
		Name:      name,
		Website:   strings.TrimSpace(c.FormValue("website")),
		Active:    formBool(c, "active", true),
		SortOrder: formInt(c, "order", 0),
	}

	if asset, err := ctrl.uploadLogo(c); err != nil {
		return uploadErrorResponse(c, err)
	} else if asset != nil {
		partner.LogoURL = asset.URL
		partner.LogoPublicID = asset.PublicID
		partner.LogoWidth = asset.Width
		partner.LogoHeight = asset.Height
	}

	if err := ctrl.DB.Create(&partner).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create partner")
	}
	return helper.JsonCreated(c, "Partner created", partner)
}

// createBulk uploads every file and creates one record per logo. Shared
// form values (website, active) become the defaults; order counts up
// from orderStart.
func (ctrl *PartnerController) createBulk(c *fiber.Ctx, files []*multipart.FileHeader) error {
	blob, err := ossHelper.NewBlobService()
	if err != nil {
		return uploadErrorResponse(c, err)
	}

	website := strings.TrimSpace(c.FormValue("website"))
	active := formBool(c, "active", true)
	orderStart := formInt(c, "orderStart", 0)

	created := make([]model.PartnerLogoModel, 0, len(files))
	for i, fh := range files {
		asset, err := blob.UploadImage(c.Context(), ossHelper.FolderPartnerLogos, fh)
		if err != nil {
			return uploadErrorResponse(c, err)
		}

		name := deriveLogoName(fh.Filename)
		if name == "" {
			name = "Partner"
		}
		partner := model.PartnerLogoModel{
			Name:         name,
			Website:      website,
			Active:       active,
			SortOrder:    orderStart + i,
			LogoURL:      asset.URL,
			LogoPublicID: asset.PublicID,
			LogoWidth:    asset.Width,
			LogoHeight:   asset.Height,
		}
		if err := ctrl.DB.Create(&partner).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create partner")
		}
		created = append(created, partner)
	}

	return helper.JsonCreated(c, "Partners created", created)
}

func (ctrl *PartnerController) Update(c *fiber.Ctx) error {
	var partner model.PartnerLogoModel
	if err := ctrl.DB.Where("partner_logo_id = ?", c.Params("id")).First(&partner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Partner not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if v := strings.TrimSpace(c.FormValue("name")); v != "" {
		partner.Name = v
	}
	if v := strings.TrimSpace(c.FormValue("website")); v != "" {
		partner.Website = v
	}
	partner.Active = formBool(c, "active", partner.Active)
	partner.SortOrder = formInt(c, "order", partner.SortOrder)

	oldLogo := ""
	if asset, err := ctrl.uploadLogo(c); err != nil {
		return uploadErrorResponse(c, err)
	} else if asset != nil {
		oldLogo = partner.LogoPublicID
		partner.LogoURL = asset.URL
		partner.LogoPublicID = asset.PublicID
		partner.LogoWidth = asset.Width
		partner.LogoHeight = asset.Height
	}

	if err := ctrl.DB.Save(&partner).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update partner")
	}
	ossHelper.BestEffortDelete(oldLogo)
	return helper.JsonOK(c, "Partner updated", partner)
}

func (ctrl *PartnerController) List(c *fiber.Ctx) error {
	var partners []model.PartnerLogoModel
	if err := ctrl.DB.Order("sort_order ASC, created_at DESC").Find(&partners).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch partners")
	}
	return helper.JsonOK(c, "OK", partners)
}

func (ctrl *PartnerController) Delete(c *fiber.Ctx) error {
	var partner model.PartnerLogoModel
	if err := ctrl.DB.Where("partner_logo_id = ?", c.Params("id")).First(&partner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Partner not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if err := ctrl.DB.Delete(&partner).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete partner")
	}
	ossHelper.BestEffortDelete(partner.LogoPublicID)
	return helper.JsonOK(c, "Partner deleted", nil)
}

func (ctrl *PartnerController) PublicList(c *fiber.Ctx) error {
	var partners []model.PartnerLogoModel
	if err := ctrl.DB.Where("active = TRUE").
		Order("sort_order ASC, created_at DESC").Find(&partners).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch partners")
	}
	return helper.JsonOK(c, "OK", partners)
}
