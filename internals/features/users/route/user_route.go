package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradus_backend/internals/middlewares"
	authmw "gradus_backend/internals/middlewares/auth"

	userController "gradus_backend/internals/features/users/controller"
)

func UserRoutes(public fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserAuthController(db)

	public.Post("/users/register", middlewares.LoginRateLimiter(), ctrl.Register)
	public.Post("/users/login", middlewares.LoginRateLimiter(), ctrl.Login)

	me := public.Group("/me", authmw.UserAuth())
	me.Get("/profile", ctrl.Me)
}
