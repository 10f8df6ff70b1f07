package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registrationController "codekar_backend/internals/features/registration/controller"
	"codekar_backend/internals/features/registration/service"
)

// RegistrationAdminRoutes wires the organizer views. The caller mounts this
// behind the admin JWT guard.
func RegistrationAdminRoutes(api fiber.Router, db *gorm.DB, flow *service.FlowService) {
	ctrl := registrationController.NewRegistrationController(db, flow)

	api.Get("/registrations", ctrl.ListRegistrations)
	api.Get("/registrations/export", ctrl.ExportRegistrationsCSV)
}
