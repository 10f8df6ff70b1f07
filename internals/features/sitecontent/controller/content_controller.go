package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"codekar_backend/internals/configs"
	"codekar_backend/internals/constants"
	"codekar_backend/internals/features/sitecontent/model"
	helper "codekar_backend/internals/helpers"
)

type ContentController struct{}

func NewContentController() *ContentController {
	return &ContentController{}
}

// GetTracks serves the closed track list the registration form selects from.
func (ctrl *ContentController) GetTracks(c *fiber.Ctx) error {
	c.Set("Cache-Control", "public, max-age=300")
	return helper.Success(c, "OK", constants.Tracks)
}

// GetSection serves one marketing section. Hidden sections keep their shell
// but carry no details.
func (ctrl *ContentController) GetSection(c *fiber.Ctx) error {
	name := strings.ToLower(c.Params("section"))

	details := model.Details(name)
	if details == nil {
		return helper.Error(c, fiber.StatusNotFound, "Unknown section")
	}

	section := model.Section{Name: name, Shown: configs.SectionShown(name)}
	if section.Shown {
		section.Details = details
	}

	c.Set("Cache-Control", "public, max-age=300")
	return helper.Success(c, "OK", section)
}
