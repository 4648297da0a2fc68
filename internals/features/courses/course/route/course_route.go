package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "gradus_backend/internals/features/courses/course/controller"
)

func CourseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseAdminController(db)

	grp := admin.Group("/courses")
	grp.Get("/", ctrl.List)
	grp.Post("/", ctrl.Create)
	grp.Get("/:id", ctrl.Get)
	grp.Put("/:id", ctrl.Update)
	grp.Delete("/:id", ctrl.Delete)
	grp.Post("/:id/image", ctrl.UploadImage)
	grp.Post("/:id/banner", ctrl.UploadBanner)
}

func CoursePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCoursePublicController(db)

	public.Get("/courses", ctrl.List)
	public.Get("/courses/:slug", ctrl.GetBySlug)
}
