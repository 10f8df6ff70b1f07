package routes

import (
	"github.com/gofiber/fiber/v2"

	contentController "codekar_backend/internals/features/sitecontent/controller"
)

// ContentRoutes wires the public site-content API.
func ContentRoutes(api fiber.Router) {
	ctrl := contentController.NewContentController()

	content := api.Group("/content")
	content.Get("/tracks", ctrl.GetTracks)
	content.Get("/:section", ctrl.GetSection)
}
