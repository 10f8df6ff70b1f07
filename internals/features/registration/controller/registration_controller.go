package controller

import (
	"encoding/csv"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"codekar_backend/internals/features/registration/dto"
	"codekar_backend/internals/features/registration/model"
	"codekar_backend/internals/features/registration/service"
	helper "codekar_backend/internals/helpers"

	paymentService "codekar_backend/internals/features/payment/service"
)

type RegistrationController struct {
	DB       *gorm.DB
	Flow     *service.FlowService
	Validate *validator.Validate
}

func NewRegistrationController(db *gorm.DB, flow *service.FlowService) *RegistrationController {
	return &RegistrationController{
		DB:       db,
		Flow:     flow,
		Validate: validator.New(),
	}
}

// SubmitPayment validates a draft and opens a payment session. The response
// carries the gateway URL the frontend navigates to.
func (ctrl *RegistrationController) SubmitPayment(c *fiber.Ctx) error {
	var draft dto.RegistrationDraft
	if err := c.BodyParser(&draft); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&draft); err != nil {
		return helper.ValidationError(c, err)
	}

	result, err := ctrl.Flow.SubmitForPayment(c.UserContext(), &draft)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			return helper.Error(c, fiber.StatusBadRequest, ve.Msg)
		case errors.Is(err, paymentService.ErrNotConfigured):
			return helper.Error(c, fiber.StatusServiceUnavailable, err.Error())
		case errors.Is(err, paymentService.ErrGateway):
			return helper.Error(c, fiber.StatusBadGateway, err.Error())
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to initiate payment. Please try again.")
		}
	}

	return helper.Success(c, "Payment initiated. Redirect the participant to the payment URL.", result)
}

// Finalize resumes a suspended flow for gateways that only redirect the
// browser back without a server callback. Callback fields come in the body.
func (ctrl *RegistrationController) Finalize(c *fiber.Ctx) error {
	orderID := c.Params("order_id")
	if orderID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Missing order id")
	}

	var fields map[string]string
	if err := c.BodyParser(&fields); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid callback payload")
	}

	result, err := ctrl.Flow.Finalize(c.UserContext(), orderID, fields)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Payment session not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, result.Message, result)
}

// SessionStatus serves the payment return pages.
func (ctrl *RegistrationController) SessionStatus(c *fiber.Ctx) error {
	view, err := ctrl.Flow.SessionStatus(c.UserContext(), c.Params("order_id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Payment session not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load payment session")
	}
	return helper.Success(c, "OK", view)
}

// ListRegistrations is the paged organizer view.
func (ctrl *RegistrationController) ListRegistrations(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.Registration{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to count registrations")
	}

	var records []model.Registration
	if err := ctrl.DB.
		Order("submitted_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&records).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load registrations")
	}

	return helper.Success(c, "OK", fiber.Map{
		"registrations": records,
		"pagination":    helper.BuildPagination(total, paging, len(records)),
	})
}

// ExportRegistrationsCSV streams all registrations as CSV.
func (ctrl *RegistrationController) ExportRegistrationsCSV(c *fiber.Ctx) error {
	var records []model.Registration
	if err := ctrl.DB.Order("submitted_at ASC").Find(&records).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load registrations")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="registrations.csv"`)

	w := csv.NewWriter(c.Response().BodyWriter())
	_ = w.Write([]string{
		"submitted_at", "registration_type", "team_name", "project_track",
		"project_title", "amount", "transaction_id", "members",
	})
	for _, r := range records {
		_ = w.Write([]string{
			r.SubmittedAt.Format("2006-01-02 15:04:05"),
			r.RegistrationType,
			r.TeamName,
			r.ProjectTrack,
			r.ProjectTitle,
			strconv.Itoa(r.Amount),
			r.TransactionID,
			string(r.Members),
		})
	}
	w.Flush()
	return w.Error()
}
