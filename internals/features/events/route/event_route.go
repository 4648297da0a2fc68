package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "gradus_backend/internals/features/events/controller"
)

func EventAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventAdminController(db)

	grp := admin.Group("/events")
	grp.Get("/", ctrl.List)
	grp.Post("/", ctrl.Create)
	grp.Get("/:id", ctrl.Get)
	grp.Put("/:id", ctrl.Update)
	grp.Delete("/:id", ctrl.Delete)
	grp.Post("/:id/publish", ctrl.Publish)
	grp.Post("/:id/archive", ctrl.Archive)
	grp.Post("/:id/hero-image", ctrl.UploadHeroImage)
}

func EventPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventPublicController(db)

	public.Get("/events", ctrl.List)
	public.Get("/events/:slug", ctrl.GetBySlug)
}
