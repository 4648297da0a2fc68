package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "gradus_backend/internals/features/enrollments/controller"
	authmw "gradus_backend/internals/middlewares/auth"
)

func EnrollmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentAdminController(db)

	grp := admin.Group("/enrollments")
	grp.Get("/", ctrl.List)
	grp.Get("/summary", ctrl.Summary)
	grp.Post("/:id/cancel", ctrl.Cancel)
}

// EnrollmentUserRoutes mounts learner checkout plus the payment webhook;
// the webhook is called server-to-server and carries no user token.
func EnrollmentUserRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentUserController(db)

	public.Post("/payments/webhook", ctrl.PaymentWebhook)

	me := public.Group("/me", authmw.UserAuth())
	me.Post("/enrollments/checkout", ctrl.Checkout)
	me.Get("/enrollments", ctrl.MyEnrollments)
}
