package routes

import (
	"github.com/gofiber/fiber/v2"

	paymentController "codekar_backend/internals/features/payment/controller"
	registrationController "codekar_backend/internals/features/registration/controller"
	registrationService "codekar_backend/internals/features/registration/service"

	"gorm.io/gorm"
)

// PaymentRoutes wires the gateway callback and the return-page status view.
func PaymentRoutes(api fiber.Router, db *gorm.DB, flow *registrationService.FlowService) {
	ctrl := paymentController.NewPaymentController(flow)
	regCtrl := registrationController.NewRegistrationController(db, flow)

	payments := api.Group("/payments")
	payments.Post("/callback", ctrl.HandleCallback)
	payments.Get("/status/:order_id", regCtrl.SessionStatus)
}
