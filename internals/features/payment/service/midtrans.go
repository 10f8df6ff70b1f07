package service

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// MidtransProvider is the Snap-based alternative gateway.
type MidtransProvider struct {
	client    snap.Client
	serverKey string
}

func NewMidtransProvider(serverKey string, production bool) *MidtransProvider {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	p := &MidtransProvider{serverKey: serverKey}
	p.client.New(serverKey, env)
	return p
}

func (p *MidtransProvider) Name() string { return "midtrans" }

func (p *MidtransProvider) Initiate(ctx context.Context, req Request) (*InitiateResult, error) {
	if p.serverKey == "" {
		return nil, fmt.Errorf("%w: MIDTRANS_SERVER_KEY is empty", ErrNotConfigured)
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: int64(req.Amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
	}

	resp, err := p.client.CreateTransaction(snapReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	return &InitiateResult{
		PaymentURL:    resp.RedirectURL,
		TransactionID: req.OrderID,
	}, nil
}

// Verify checks the notification signature, then maps transaction_status.
// Signature per Midtrans docs: sha512(order_id + status_code + gross_amount + server key).
func (p *MidtransProvider) Verify(fields map[string]string) Status {
	raw := fields["order_id"] + fields["status_code"] + fields["gross_amount"] + p.serverKey
	sum := sha512.Sum512([]byte(raw))
	if hex.EncodeToString(sum[:]) != fields["signature_key"] {
		return StatusFailed
	}

	switch strings.ToLower(fields["transaction_status"]) {
	case "capture", "settlement":
		return StatusSuccess
	case "pending":
		return StatusPending
	case "cancel", "expire":
		return StatusCancelled
	default:
		return StatusFailed
	}
}
