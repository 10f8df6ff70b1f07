package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Gateway endpoints per environment.
var zohoPaymentURLs = map[string]string{
	"sandbox":    "https://payments-sandbox.zoho.com/v1/payment",
	"production": "https://payments.zoho.com/v1/payment",
}

// ZohoConfig holds the merchant credentials and deployment URLs.
type ZohoConfig struct {
	OrgID       string
	GatewayKey  string
	Environment string // "sandbox" | "production"
	// EndpointURL overrides the environment URL (tests).
	EndpointURL string
	// BasePublicURL is where the gateway sends the user back.
	BasePublicURL string
	// Configured reports whether real credentials are present.
	Configured bool
}

// ZohoProvider builds signed payment requests and verifies callbacks.
type ZohoProvider struct {
	cfg    ZohoConfig
	signer Signer
	client *http.Client
}

func NewZohoProvider(cfg ZohoConfig, signer Signer) *ZohoProvider {
	return &ZohoProvider{
		cfg:    cfg,
		signer: signer,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *ZohoProvider) Name() string { return "zoho" }

func (p *ZohoProvider) endpoint() string {
	if p.cfg.EndpointURL != "" {
		return p.cfg.EndpointURL
	}
	if u, ok := zohoPaymentURLs[p.cfg.Environment]; ok {
		return u
	}
	return zohoPaymentURLs["sandbox"]
}

func (p *ZohoProvider) Initiate(ctx context.Context, req Request) (*InitiateResult, error) {
	if !p.cfg.Configured {
		return nil, fmt.Errorf("%w: please add your Zoho API keys", ErrNotConfigured)
	}

	description := req.Description
	if description == "" {
		description = "Registration for " + req.RegistrationType
	}

	fields := map[string]string{
		"organization_id": p.cfg.OrgID,
		"gateway_key":     p.cfg.GatewayKey,
		"amount":          strconv.Itoa(req.Amount),
		"currency":        "INR",
		"country":         "IN",
		"language":        "en",
		"order_id":        req.OrderID,
		"customer_name":   req.CustomerName,
		"customer_email":  req.CustomerEmail,
		"customer_phone":  req.CustomerPhone,
		"description":     description,
		"return_url":      p.cfg.BasePublicURL + "/payment-success",
		"cancel_url":      p.cfg.BasePublicURL + "/payment-cancel",
		"callback_url":    p.cfg.BasePublicURL + "/api/payments/callback",
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	}
	checksum := p.signer.Sign(fields)

	payload := make(map[string]string, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["checksum"] = checksum

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrGateway, resp.Status)
	}

	var result struct {
		PaymentURL    string `json:"payment_url"`
		RedirectURL   string `json:"redirect_url"`
		TransactionID string `json:"transaction_id"`
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: invalid response body", ErrGateway)
	}

	paymentURL := result.PaymentURL
	if paymentURL == "" {
		paymentURL = result.RedirectURL
	}
	if paymentURL == "" {
		return nil, fmt.Errorf("%w: response carries no payment URL", ErrGateway)
	}

	transactionID := result.TransactionID
	if transactionID == "" {
		transactionID = req.OrderID
	}

	return &InitiateResult{
		PaymentURL:    paymentURL,
		TransactionID: transactionID,
	}, nil
}

// Verify pops the checksum field, recomputes it over the remaining fields and
// compares. A mismatch wins over any status the payload claims.
func (p *ZohoProvider) Verify(fields map[string]string) Status {
	received, ok := fields["checksum"]
	if !ok || received == "" {
		return StatusFailed
	}

	rest := make(map[string]string, len(fields)-1)
	for k, v := range fields {
		if k == "checksum" {
			continue
		}
		rest[k] = v
	}

	if p.signer.Sign(rest) != received {
		return StatusFailed
	}

	switch strings.ToLower(fields["status"]) {
	case "success":
		return StatusSuccess
	case "pending":
		return StatusPending
	case "cancelled":
		return StatusCancelled
	default:
		return StatusFailed
	}
}
