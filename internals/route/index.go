package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoutes "gradus_backend/internals/features/admins/route"
	contentRoutes "gradus_backend/internals/features/content/route"
	courseRoutes "gradus_backend/internals/features/courses/course/route"
	detailRoutes "gradus_backend/internals/features/courses/course_detail/route"
	enrollmentRoutes "gradus_backend/internals/features/enrollments/route"
	eventRoutes "gradus_backend/internals/features/events/route"
	progressRoutes "gradus_backend/internals/features/progress/route"
	sitemapRoutes "gradus_backend/internals/features/sitemaps/route"
	uploadRoutes "gradus_backend/internals/features/uploads/route"
	userRoutes "gradus_backend/internals/features/users/route"
	authmw "gradus_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the public API under /api and the admin API under
// /api/admin behind JWT auth. The sitemap pass-through sits at the app
// root for crawlers.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	public := app.Group("/api")
	admin := app.Group("/api/admin", authmw.AdminAuth(db))

	// auth endpoints (login is public, logout/me are not)
	adminRoutes.AuthRoutes(public, admin, db)
	adminRoutes.AdminUserRoutes(admin, db)

	courseRoutes.CoursePublicRoutes(public, db)
	courseRoutes.CourseAdminRoutes(admin, db)

	detailRoutes.CourseDetailPublicRoutes(public, db)
	detailRoutes.CourseDetailAdminRoutes(admin, db)

	enrollmentRoutes.EnrollmentUserRoutes(public, db)
	enrollmentRoutes.EnrollmentAdminRoutes(admin, db)

	progressRoutes.ProgressUserRoutes(public, db)
	progressRoutes.ProgressAdminRoutes(admin, db)

	eventRoutes.EventPublicRoutes(public, db)
	eventRoutes.EventAdminRoutes(admin, db)

	contentRoutes.ContentPublicRoutes(public, db)
	contentRoutes.ContentAdminRoutes(admin, db)

	userRoutes.UserRoutes(public, db)

	uploadRoutes.UploadRoutes(admin)

	sitemapRoutes.SitemapAdminRoutes(admin)
	sitemapRoutes.SitemapPublicRoutes(app)
}
