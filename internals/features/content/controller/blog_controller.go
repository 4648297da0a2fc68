package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradus_backend/internals/features/content/model"
	helper "gradus_backend/internals/helpers"
	ossHelper "gradus_backend/internals/helpers/oss"
)

var validate = validator.New()

type BlogController struct {
	DB *gorm.DB
}

func NewBlogController(db *gorm.DB) *BlogController {
	return &BlogController{DB: db}
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

type blogRequest struct {
	Title     string   `json:"title" validate:"required"`
	Slug      string   `json:"slug"`
	Excerpt   string   `json:"excerpt"`
	Content   string   `json:"content"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"published"`
}

func (ctrl *BlogController) applyBlogPayload(blog *model.BlogModel, req *blogRequest) {
	blog.Title = strings.TrimSpace(req.Title)
	blog.Excerpt = strings.TrimSpace(req.Excerpt)
	blog.Content = req.Content
	blog.Author = strings.TrimSpace(req.Author)
	blog.Tags = cleanTags(req.Tags)
	if req.Published != nil {
		wasPublished := blog.Published
		blog.Published = *req.Published
		if blog.Published && !wasPublished {
			now := time.Now()
			blog.PublishedAt = &now
		}
	}
}

func (ctrl *BlogController) Create(c *fiber.Ctx) error {
	var req blogRequest
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
		return helper.JsonError(c, fiber.StatusBadRequest, "Blog title is required")
	}
	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "blogs", "blog_slug", base, nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to derive slug")
	}

	blog := model.BlogModel{BlogSlug: slug}
	ctrl.applyBlogPayload(&blog, &req)

	if err := ctrl.DB.Create(&blog).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create blog")
	}
	return helper.JsonCreated(c, "Blog created", blog)
}

func (ctrl *BlogController) Update(c *fiber.Ctx) error {
	var blog model.BlogModel
	if err := ctrl.DB.Where("blog_id = ?", c.Params("id")).First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Blog not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var req blogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if base := helper.Slugify(req.Slug); base != "" && base != blog.BlogSlug {
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "blogs", "blog_slug", base,
			func(q *gorm.DB) *gorm.DB { return q.Where("blog_id <> ?", blog.BlogID) })
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to derive slug")
		}
		blog.BlogSlug = slug
	}
	ctrl.applyBlogPayload(&blog, &req)

	if err := ctrl.DB.Save(&blog).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update blog")
	}
	return helper.JsonOK(c, "Blog updated", blog)
}

func (ctrl *BlogController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := ctrl.DB.Model(&model.BlogModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch blogs")
	}

	var blogs []model.BlogModel
	if err := ctrl.DB.Order("created_at DESC").
		Offset(p.Offset).Limit(p.Limit).Find(&blogs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch blogs")
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"blogs":      blogs,
		"pagination": helper.BuildPagination(p, total),
	})
}

func (ctrl *BlogController) Delete(c *fiber.Ctx) error {
	var blog model.BlogModel
	if err := ctrl.DB.Where("blog_id = ?", c.Params("id")).First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Blog not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if err := ctrl.DB.Delete(&blog).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete blog")
	}
	ossHelper.BestEffortDelete(blog.CoverPublicID)
	return helper.JsonOK(c, "Blog deleted", nil)
}

// UploadCover replaces the cover image.
func (ctrl *BlogController) UploadCover(c *fiber.Ctx) error {
	var blog model.BlogModel
	if err := ctrl.DB.Where("blog_id = ?", c.Params("id")).First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Blog not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	fh := ossHelper.PickFile(c, "file", "image", "cover")
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file uploaded")
	}

	blob, err := ossHelper.NewBlobService()
	if err != nil {
		return uploadErrorResponse(c, err)
	}
	asset, err := blob.UploadImage(c.Context(), ossHelper.FolderBlogImages, fh)
	if err != nil {
		return uploadErrorResponse(c, err)
	}

	oldID := blog.CoverPublicID
	if err := ctrl.DB.Model(&blog).Updates(map[string]any{
		"cover_url":       asset.URL,
		"cover_public_id": asset.PublicID,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save cover")
	}
	if oldID != asset.PublicID {
		ossHelper.BestEffortDelete(oldID)
	}
	return helper.JsonOK(c, "Cover uploaded", asset)
}

// PublicList serves published posts only.
func (ctrl *BlogController) PublicList(c *fiber.Ctx) error {
	var blogs []model.BlogModel
	if err := ctrl.DB.Where("published = TRUE").
		Order("published_at DESC").Find(&blogs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch blogs")
	}
	return helper.JsonOK(c, "OK", blogs)
}

// PublicGet serves one published post by slug.
func (ctrl *BlogController) PublicGet(c *fiber.Ctx) error {
	var blog model.BlogModel
	err := ctrl.DB.Where("LOWER(blog_slug) = LOWER(?) AND published = TRUE", c.Params("slug")).
		First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Blog not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.JsonOK(c, "OK", blog)
}
