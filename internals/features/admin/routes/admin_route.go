package routes

import (
	"github.com/gofiber/fiber/v2"

	adminController "codekar_backend/internals/features/admin/controller"
	"codekar_backend/internals/middlewares"
)

// AdminAuthRoutes wires the organizer login.
func AdminAuthRoutes(api fiber.Router) {
	ctrl := adminController.NewAdminController()
	api.Post("/admin/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
