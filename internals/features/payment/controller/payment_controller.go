package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	registrationService "codekar_backend/internals/features/registration/service"
	helper "codekar_backend/internals/helpers"
)

type PaymentController struct {
	Flow *registrationService.FlowService
}

func NewPaymentController(flow *registrationService.FlowService) *PaymentController {
	return &PaymentController{Flow: flow}
}

// HandleCallback receives the gateway's asynchronous status notification.
// The checksum contract is verified inside the flow; tampered payloads end
// as failed no matter what status they claim.
func (ctrl *PaymentController) HandleCallback(c *fiber.Ctx) error {
	fields, err := parseCallbackFields(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid callback payload")
	}

	orderID := fields["order_id"]
	if orderID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Callback carries no order_id")
	}

	result, err := ctrl.Flow.Finalize(c.UserContext(), orderID, fields)
	if err != nil {
		if errors.Is(err, registrationService.ErrSessionNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Unknown order id")
		}
		log.Printf("[ERROR] callback for %s: %v", orderID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Callback processing failed")
	}

	// Gateways retry on non-2xx; the outcome itself travels in the body.
	return helper.Success(c, result.Message, result)
}

// parseCallbackFields accepts JSON or form-encoded bodies; the exact shape
// is provider-specific. Form bodies are read straight off the request args,
// BodyParser cannot decode a form into a map.
func parseCallbackFields(c *fiber.Ctx) (map[string]string, error) {
	fields := map[string]string{}

	ctype := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	if strings.HasPrefix(ctype, fiber.MIMEApplicationForm) {
		c.Request().PostArgs().VisitAll(func(key, value []byte) {
			fields[string(key)] = string(value)
		})
		return fields, nil
	}

	var loose map[string]interface{}
	if err := c.BodyParser(&loose); err != nil {
		return nil, err
	}
	for k, v := range loose {
		switch t := v.(type) {
		case string:
			fields[k] = t
		case float64:
			fields[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			fields[k] = strconv.FormatBool(t)
		}
	}
	return fields, nil
}
