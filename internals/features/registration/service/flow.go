package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"codekar_backend/internals/constants"
	"codekar_backend/internals/features/registration/dto"
	"codekar_backend/internals/features/registration/model"

	notifService "codekar_backend/internals/features/notification/service"
	paymentService "codekar_backend/internals/features/payment/service"
)

// ValidationError is a recoverable required-field failure. It never reaches
// a network call and never creates a payment session.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Outcome classifies how a finalize attempt ended. Each value maps to its
// own user-facing message; they must stay distinguishable.
type Outcome string

const (
	OutcomeSucceeded             Outcome = "succeeded"
	OutcomeSucceededEmailWarning Outcome = "succeeded_email_warning"
	OutcomeDuplicateDetected     Outcome = "duplicate_detected"
	OutcomePersistFailed         Outcome = "persist_failed"
	OutcomePaymentFailed         Outcome = "payment_failed"
	OutcomePaymentCancelled      Outcome = "payment_cancelled"
	OutcomePaymentPending        Outcome = "payment_pending"
)

// PaymentInit is handed back to the frontend, which performs the full
// browser navigation to PaymentURL.
type PaymentInit struct {
	OrderID       string `json:"order_id"`
	PaymentURL    string `json:"payment_url"`
	TransactionID string `json:"transaction_id"`
	Amount        int    `json:"amount"`
}

// FinalizeResult is the terminal state of one submission attempt.
type FinalizeResult struct {
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message"`
}

// SessionView is the sanitized session state for the payment return pages.
type SessionView struct {
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	Amount        int    `json:"amount"`
	TransactionID string `json:"transaction_id"`
}

// Notifier sends the confirmation email. Satisfied by the EmailJS client.
type Notifier interface {
	Send(ctx context.Context, params notifService.TemplateParams) error
}

// Exporter mirrors finalized registrations somewhere convenient for the
// organizing team. Best effort, never fails the flow.
type Exporter interface {
	AppendRegistration(ctx context.Context, r *model.Registration) error
}

// FlowService orchestrates validation -> payment -> persistence ->
// notification. One submission at a time per draft; nothing is retried
// automatically.
type FlowService struct {
	store    Store
	provider paymentService.Provider
	notifier Notifier
	exporter Exporter

	feeIndividual int
	feeTeam       int
}

func NewFlowService(store Store, provider paymentService.Provider, notifier Notifier, feeIndividual, feeTeam int) *FlowService {
	return &FlowService{
		store:         store,
		provider:      provider,
		notifier:      notifier,
		feeIndividual: feeIndividual,
		feeTeam:       feeTeam,
	}
}

// WithExporter enables the optional sheet mirror.
func (f *FlowService) WithExporter(e Exporter) *FlowService {
	f.exporter = e
	return f
}

// validateDraft runs the required-field checks in a fixed order; the first
// failure wins and its message is shown to the participant as-is.
func validateDraft(d *dto.RegistrationDraft) error {
	leader := d.Leader()
	if leader == nil || leader.Name == "" || leader.Email == "" {
		return &ValidationError{Msg: "Please fill in your name and email before proceeding to payment."}
	}
	if d.ProjectTrack == "" || d.ProjectTitle == "" || d.ProjectIdea == "" {
		return &ValidationError{Msg: "Please complete all project details before proceeding to payment."}
	}
	if !constants.IsValidTrack(d.ProjectTrack) {
		return &ValidationError{Msg: "Please select a valid project track."}
	}
	if d.IsTeam() && d.TeamName == "" {
		return &ValidationError{Msg: "Please enter a team name."}
	}
	return nil
}

// SubmitForPayment validates the draft, persists the resume state and opens
// a gateway session. On any failure before the redirect the participant is
// back in an editable state and no record exists.
func (f *FlowService) SubmitForPayment(ctx context.Context, draft *dto.RegistrationDraft) (*PaymentInit, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	draft.Normalize()

	orderID := paymentService.GenerateOrderID()
	amount := draft.Fee(f.feeIndividual, f.feeTeam)

	snapshot, err := json.Marshal(draft)
	if err != nil {
		return nil, err
	}

	sess := &model.PaymentSession{
		OrderID: orderID,
		Amount:  amount,
		Status:  model.SessionAwaitingPayment,
		Draft:   snapshot,
	}
	if err := f.store.CreateSession(ctx, sess); err != nil {
		return nil, err
	}

	leader := draft.Leader()
	result, err := f.provider.Initiate(ctx, paymentService.Request{
		Amount:           amount,
		CustomerName:     leader.Name,
		CustomerEmail:    leader.Email,
		CustomerPhone:    leader.Phone,
		OrderID:          orderID,
		Description:      "Codekar Registration - " + draft.DisplayTeamName(),
		RegistrationType: draft.RegistrationType,
	})
	if err != nil {
		sess.Status = model.SessionPaymentFailed
		if uerr := f.store.UpdateSession(ctx, sess); uerr != nil {
			log.Printf("[ERROR] session %s: mark payment_failed: %v", orderID, uerr)
		}
		return nil, err
	}

	sess.TransactionID = result.TransactionID
	sess.Status = model.SessionPaymentRedirected
	if err := f.store.UpdateSession(ctx, sess); err != nil {
		return nil, err
	}

	return &PaymentInit{
		OrderID:       orderID,
		PaymentURL:    result.PaymentURL,
		TransactionID: result.TransactionID,
		Amount:        amount,
	}, nil
}

// Finalize resumes the flow after the gateway redirect: verify the callback,
// insert the record, send the confirmation. Sessions finalize at most once;
// a replayed callback for a completed session is acknowledged without a
// second insert.
func (f *FlowService) Finalize(ctx context.Context, orderID string, callback map[string]string) (*FinalizeResult, error) {
	sess, err := f.store.SessionByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch sess.Status {
	case model.SessionCompleted:
		return &FinalizeResult{Outcome: OutcomeSucceeded, Message: "Registration already finalized."}, nil
	case model.SessionPaymentRedirected, model.SessionAwaitingPayment:
		// resumable
	default:
		return nil, fmt.Errorf("session %s is not resumable (status %s)", orderID, sess.Status)
	}

	switch f.provider.Verify(callback) {
	case paymentService.StatusFailed:
		sess.Status = model.SessionPaymentFailed
		f.saveSession(ctx, sess)
		return &FinalizeResult{Outcome: OutcomePaymentFailed, Message: "Payment verification failed. No registration was recorded."}, nil
	case paymentService.StatusCancelled:
		sess.Status = model.SessionPaymentCancelled
		f.saveSession(ctx, sess)
		return &FinalizeResult{Outcome: OutcomePaymentCancelled, Message: "Payment was cancelled. You can submit the registration again."}, nil
	case paymentService.StatusPending:
		return &FinalizeResult{Outcome: OutcomePaymentPending, Message: "Payment is still pending. The registration will complete once the gateway confirms it."}, nil
	}

	if txid := callback["transaction_id"]; txid != "" {
		sess.TransactionID = txid
	}
	if sess.TransactionID == "" {
		sess.TransactionID = sess.OrderID
	}

	var draft dto.RegistrationDraft
	if err := json.Unmarshal(sess.Draft, &draft); err != nil {
		return nil, fmt.Errorf("session %s: corrupt draft snapshot: %w", orderID, err)
	}

	record, err := buildRecord(&draft, sess)
	if err != nil {
		return nil, err
	}

	if err := f.store.InsertRegistration(ctx, record); err != nil {
		if errors.Is(err, ErrDuplicateRecord) {
			sess.Status = model.SessionDuplicate
			f.saveSession(ctx, sess)
			return &FinalizeResult{
				Outcome: OutcomeDuplicateDetected,
				Message: "Duplicate entry detected: this transaction ID or team/email has already been registered. Please check your details or contact support.",
			}, nil
		}
		sess.Status = model.SessionPaidPendingRecord
		f.saveSession(ctx, sess)
		return &FinalizeResult{
			Outcome: OutcomePersistFailed,
			Message: fmt.Sprintf("Payment was received but the registration could not be recorded (%v). Please contact support with order id %s.", err, orderID),
		}, nil
	}

	sess.Status = model.SessionCompleted
	f.saveSession(ctx, sess)

	if f.exporter != nil {
		if err := f.exporter.AppendRegistration(ctx, record); err != nil {
			log.Printf("[WARN] sheet export for %s failed: %v", orderID, err)
		}
	}

	leader := draft.Leader()
	params := notifService.TemplateParams{
		ToName:   leader.Name,
		ToEmail:  leader.Email,
		TeamName: draft.DisplayTeamName(),
		Message: fmt.Sprintf("Application received for %s registration. Amount Paid: ₹%d. TxID: %s",
			draft.RegistrationType, sess.Amount, sess.TransactionID),
	}
	if err := f.notifier.Send(ctx, params); err != nil {
		return &FinalizeResult{
			Outcome: OutcomeSucceededEmailWarning,
			Message: notifyErrorMessage(err),
		}, nil
	}

	return &FinalizeResult{Outcome: OutcomeSucceeded, Message: "Registration successful! A confirmation email is on its way."}, nil
}

// SessionStatus exposes the sanitized session state for the return pages.
func (f *FlowService) SessionStatus(ctx context.Context, orderID string) (*SessionView, error) {
	sess, err := f.store.SessionByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &SessionView{
		OrderID:       sess.OrderID,
		Status:        sess.Status,
		Amount:        sess.Amount,
		TransactionID: sess.TransactionID,
	}, nil
}

func (f *FlowService) saveSession(ctx context.Context, sess *model.PaymentSession) {
	if err := f.store.UpdateSession(ctx, sess); err != nil {
		log.Printf("[ERROR] session %s: save status %s: %v", sess.OrderID, sess.Status, err)
	}
}

func buildRecord(draft *dto.RegistrationDraft, sess *model.PaymentSession) (*model.Registration, error) {
	submittedAt := time.Now().UTC()

	members, err := json.Marshal(draft.Members)
	if err != nil {
		return nil, err
	}

	backup, err := json.Marshal(map[string]interface{}{
		"registration_type": draft.RegistrationType,
		"team_name":         draft.DisplayTeamName(),
		"project_track":     draft.ProjectTrack,
		"project_title":     draft.ProjectTitle,
		"project_idea":      draft.ProjectIdea,
		"members":           draft.Members,
		"amount":            sess.Amount,
		"transaction_id":    sess.TransactionID,
		"order_id":          sess.OrderID,
		"submitted_at":      submittedAt.Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}

	return &model.Registration{
		RegistrationType: draft.RegistrationType,
		TeamName:         draft.DisplayTeamName(),
		ProjectTrack:     draft.ProjectTrack,
		ProjectTitle:     draft.ProjectTitle,
		ProjectIdea:      draft.ProjectIdea,
		Members:          members,
		Amount:           sess.Amount,
		TransactionID:    sess.TransactionID,
		RequestData:      backup,
		SubmittedAt:      submittedAt,
	}, nil
}

// notifyErrorMessage keeps the three notification failure classes apart:
// template mismatch, bad credential, everything else.
func notifyErrorMessage(err error) string {
	switch {
	case errors.Is(err, notifService.ErrTemplateMismatch):
		return "Registered, but the confirmation email failed (422): the EmailJS template must use {{to_name}}, {{to_email}}, {{team_name}} and {{message}}."
	case errors.Is(err, notifService.ErrInvalidPublicKey):
		return "Registered, but the confirmation email failed: invalid EmailJS public key. Update EMAILJS_PUBLIC_KEY from the dashboard."
	case errors.Is(err, notifService.ErrNotConfigured):
		return "Registered, but the confirmation email is disabled: EmailJS credentials are not configured."
	default:
		return fmt.Sprintf("Registered, but the confirmation email failed: %v", err)
	}
}
