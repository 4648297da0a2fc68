package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressController "gradus_backend/internals/features/progress/controller"
	authmw "gradus_backend/internals/middlewares/auth"
)

func ProgressAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := progressController.NewProgressController(db)

	admin.Get("/progress/by-learner", ctrl.ByLearner)
	admin.Get("/progress/by-lecture", ctrl.ByLecture)
}

func ProgressUserRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := progressController.NewProgressController(db)

	me := public.Group("/me", authmw.UserAuth())
	me.Get("/progress", ctrl.My)
	me.Post("/progress", ctrl.Record)
}
