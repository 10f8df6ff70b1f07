package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registrationController "codekar_backend/internals/features/registration/controller"
	"codekar_backend/internals/features/registration/service"
	"codekar_backend/internals/middlewares"
)

// RegistrationRoutes wires the public submission flow.
func RegistrationRoutes(api fiber.Router, db *gorm.DB, flow *service.FlowService) {
	ctrl := registrationController.NewRegistrationController(db, flow)

	reg := api.Group("/registrations")
	reg.Post("/payment", middlewares.RegisterRateLimiter(), ctrl.SubmitPayment)
	reg.Post("/:order_id/finalize", ctrl.Finalize)
}
