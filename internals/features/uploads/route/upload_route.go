package routes

import (
	"github.com/gofiber/fiber/v2"

	uploadController "gradus_backend/internals/features/uploads/controller"
)

func UploadRoutes(admin fiber.Router) {
	ctrl := uploadController.NewUploadController()

	admin.Post("/uploads", ctrl.Create)
	admin.Delete("/uploads", ctrl.Delete)
}
