package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	detailController "gradus_backend/internals/features/courses/course_detail/controller"
)

func CourseDetailAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := detailController.NewCourseDetailController(db)

	admin.Get("/course-details", ctrl.Get)
	admin.Put("/course-details", ctrl.Upsert)
	admin.Post("/course-details/lecture-video", ctrl.UploadLectureVideo)
}

func CourseDetailPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := detailController.NewCourseDetailController(db)

	public.Get("/course-details", ctrl.Get)
}
