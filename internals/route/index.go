package routes

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"codekar_backend/internals/configs"
	adminRoutes "codekar_backend/internals/features/admin/routes"
	paymentRoutes "codekar_backend/internals/features/payment/routes"
	paymentService "codekar_backend/internals/features/payment/service"
	registrationRoutes "codekar_backend/internals/features/registration/routes"
	registrationService "codekar_backend/internals/features/registration/service"
	"codekar_backend/internals/features/sheetexport"
	contentRoutes "codekar_backend/internals/features/sitecontent/routes"

	notifService "codekar_backend/internals/features/notification/service"
	authMiddleware "codekar_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes builds the flow service and mounts every feature.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	provider, err := paymentService.NewProviderFromConfig()
	if err != nil {
		log.Fatalf("❌ payment provider: %v", err)
	}
	log.Printf("[INFO] payment provider: %s", provider.Name())

	notifier := notifService.NewEmailJSClient(
		configs.EmailJSServiceID,
		configs.EmailJSTemplateID,
		configs.EmailJSPublicKey,
	)

	flow := registrationService.NewFlowService(
		registrationService.NewStore(db),
		provider,
		notifier,
		configs.FeeIndividual,
		configs.FeeTeam,
	)

	if configs.SheetsSpreadsheetID != "" && configs.GoogleServiceAccountJSON != "" {
		exporter, err := sheetexport.New(context.Background(), configs.GoogleServiceAccountJSON, configs.SheetsSpreadsheetID)
		if err != nil {
			log.Printf("[WARN] sheet export disabled: %v", err)
		} else {
			flow.WithExporter(exporter)
			log.Println("[INFO] sheet export enabled")
		}
	}

	BaseRoutes(app, db)

	api := app.Group("/api")

	contentRoutes.ContentRoutes(api)
	registrationRoutes.RegistrationRoutes(api, db, flow)
	paymentRoutes.PaymentRoutes(api, db, flow)
	adminRoutes.AdminAuthRoutes(api)

	admin := app.Group("/api/a", authMiddleware.AdminOnly())
	registrationRoutes.RegistrationAdminRoutes(admin, db, flow)
}
