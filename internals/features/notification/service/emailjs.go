package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

var (
	// ErrNotConfigured means service/template/key env vars are missing.
	ErrNotConfigured = errors.New("emailjs is not configured")

	// ErrTemplateMismatch is the 422 class: the EmailJS template does not
	// use the expected {{to_name}}/{{to_email}}/{{team_name}}/{{message}}
	// variables, or the recipient address is invalid.
	ErrTemplateMismatch = errors.New("emailjs rejected the template fields")

	// ErrInvalidPublicKey is the credential class, the most common
	// misconfiguration in practice.
	ErrInvalidPublicKey = errors.New("emailjs public key is invalid")
)

// TemplateParams is the fixed field contract of the confirmation template.
type TemplateParams struct {
	ToName   string `json:"to_name"`
	ToEmail  string `json:"to_email"`
	TeamName string `json:"team_name"`
	Message  string `json:"message"`
}

type EmailJSClient struct {
	serviceID  string
	templateID string
	publicKey  string
	endpoint   string
	client     *http.Client
}

// NewEmailJSClient trims the public key, stray whitespace from copy-pasted
// dashboard values is a recurring support issue.
func NewEmailJSClient(serviceID, templateID, publicKey string) *EmailJSClient {
	return &EmailJSClient{
		serviceID:  strings.TrimSpace(serviceID),
		templateID: strings.TrimSpace(templateID),
		publicKey:  strings.TrimSpace(publicKey),
		endpoint:   defaultEmailJSEndpoint,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

// WithEndpoint overrides the API URL (tests).
func (c *EmailJSClient) WithEndpoint(url string) *EmailJSClient {
	c.endpoint = url
	return c
}

func (c *EmailJSClient) Send(ctx context.Context, params TemplateParams) error {
	if c.serviceID == "" || c.templateID == "" || c.publicKey == "" {
		return ErrNotConfigured
	}

	payload := map[string]interface{}{
		"service_id":      c.serviceID,
		"template_id":     c.templateID,
		"user_id":         c.publicKey,
		"template_params": params,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	text := strings.TrimSpace(string(raw))

	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrTemplateMismatch, text)
	case strings.Contains(text, "Public Key"):
		return fmt.Errorf("%w: %s", ErrInvalidPublicKey, text)
	default:
		return fmt.Errorf("emailjs send failed (%d): %s", resp.StatusCode, text)
	}
}
