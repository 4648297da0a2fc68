package controller

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"gradus_backend/internals/features/sitemaps/service"
	helper "gradus_backend/internals/helpers"
)

type SitemapController struct{}

func NewSitemapController() *SitemapController {
	return &SitemapController{}
}

// List returns the sitemap file names, seeding a default sitemap.xml on
// first use.
func (ctrl *SitemapController) List(c *fiber.Ctx) error {
	names, err := service.List()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list sitemaps")
	}
	return helper.JsonOK(c, "OK", names)
}

// Get returns one file's XML content for the editor.
func (ctrl *SitemapController) Get(c *fiber.Ctx) error {
	name := c.Params("filename")
	if !service.ValidFilename(name) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sitemap filename")
	}
	content, err := service.Read(name)
	if err != nil {
		if os.IsNotExist(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sitemap not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read sitemap")
	}
	return helper.JsonOK(c, "OK", fiber.Map{
		"filename": name,
		"content":  string(content),
	})
}

// Update replaces one file's content.
func (ctrl *SitemapController) Update(c *fiber.Ctx) error {
	name := c.Params("filename")
	if !service.ValidFilename(name) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sitemap filename")
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Content == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Content is required")
	}

	if err := service.Write(name, []byte(req.Content)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to write sitemap")
	}
	return helper.JsonOK(c, "Sitemap updated", fiber.Map{"filename": name})
}

// Serve is the public pass-through, restricted to sitemap*.xml.
func (ctrl *SitemapController) Serve(c *fiber.Ctx) error {
	name := c.Params("filename")
	if !service.ValidPublicFilename(name) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	content, err := service.Read(name)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	return c.Send(content)
}
