package routes

import (
	"github.com/gofiber/fiber/v2"

	sitemapController "gradus_backend/internals/features/sitemaps/controller"
)

func SitemapAdminRoutes(admin fiber.Router) {
	ctrl := sitemapController.NewSitemapController()

	admin.Get("/sitemaps", ctrl.List)
	admin.Get("/sitemaps/:filename", ctrl.Get)
	admin.Put("/sitemaps/:filename", ctrl.Update)
}

// SitemapPublicRoutes mounts the pass-through at the app root so
// crawlers can fetch /sitemap.xml directly.
func SitemapPublicRoutes(app fiber.Router) {
	ctrl := sitemapController.NewSitemapController()

	app.Get("/:filename<regex(sitemap.*\\.xml)>", ctrl.Serve)
}
