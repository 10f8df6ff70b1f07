package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Status is the verified outcome of a gateway callback.
type Status string

const (
	StatusSuccess   Status = "success"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
	StatusFailed    Status = "failed"
)

var (
	// ErrNotConfigured means the gateway credentials are missing or still
	// the shipped placeholders. No network call is made in that case.
	ErrNotConfigured = errors.New("payment gateway is not configured")

	// ErrGateway wraps non-2xx or malformed gateway responses.
	ErrGateway = errors.New("payment gateway error")
)

// Request carries everything a provider needs to open a payment session.
type Request struct {
	Amount           int
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	OrderID          string
	Description      string
	RegistrationType string
}

// InitiateResult is the redirect target returned by a provider.
type InitiateResult struct {
	PaymentURL    string
	TransactionID string
}

// Provider is a payment gateway. Verify must fail closed: any callback it
// cannot authenticate maps to StatusFailed no matter what the payload claims.
type Provider interface {
	Name() string
	Initiate(ctx context.Context, req Request) (*InitiateResult, error)
	Verify(fields map[string]string) Status
}

// Signer computes the integrity checksum over callback/request fields. The
// concrete algorithm is provider-specific and swappable.
type Signer interface {
	Sign(fields map[string]string) string
}

const base36Upper = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderID returns CODEKAR-<epoch-ms>-<7 base36 chars>. Unique within
// a session with overwhelming probability; the store's unique constraint
// catches the rest.
func GenerateOrderID() string {
	var suffix [7]byte
	for i := range suffix {
		suffix[i] = base36Upper[rand.Intn(len(base36Upper))]
	}
	return fmt.Sprintf("CODEKAR-%d-%s", time.Now().UnixMilli(), suffix[:])
}
