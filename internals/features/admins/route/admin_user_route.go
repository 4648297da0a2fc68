package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gradus_backend/internals/constants"
	adminController "gradus_backend/internals/features/admins/controller"
	"gradus_backend/internals/middlewares"
	authmw "gradus_backend/internals/middlewares/auth"
)

// AuthRoutes mounts login on the public group; logout and me require a
// valid token.
func AuthRoutes(public fiber.Router, admin fiber.Router, db *gorm.DB) {
	authCtrl := adminController.NewAuthController(db)

	public.Post("/auth/login", middlewares.LoginRateLimiter(), authCtrl.Login)

	admin.Post("/auth/logout", authCtrl.Logout)
	admin.Get("/auth/me", authCtrl.Me)
}

// AdminUserRoutes mounts account management for admin-tier actors. The
// per-target role matrix is enforced inside the controller.
func AdminUserRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewAdminUserController(db)

	grp := admin.Group("/admin-users", authmw.RequireRoles(constants.AdminAndAbove...))
	grp.Get("/", ctrl.List)
	grp.Post("/", ctrl.Create)
	grp.Patch("/:id", ctrl.Update)
	grp.Delete("/:id", ctrl.Delete)
}
