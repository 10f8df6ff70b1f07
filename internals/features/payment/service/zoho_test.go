package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testZohoProvider(endpoint string, configured bool) *ZohoProvider {
	return NewZohoProvider(ZohoConfig{
		OrgID:         "org-1",
		GatewayKey:    "key-1",
		Environment:   "sandbox",
		EndpointURL:   endpoint,
		BasePublicURL: "https://codekar.example",
		Configured:    configured,
	}, SaltChecksumSigner{Salt: "salt-1"})
}

func TestChecksumDeterministic(t *testing.T) {
	signer := SaltChecksumSigner{Salt: "s3cret"}
	fields := map[string]string{
		"order_id": "CODEKAR-1-ABCDEFG",
		"amount":   "1000",
		"status":   "success",
	}

	first := signer.Sign(fields)
	second := signer.Sign(fields)
	assert.Equal(t, first, second)

	fields["amount"] = "1001"
	assert.NotEqual(t, first, signer.Sign(fields))
}

func TestChecksumIgnoresInsertionOrder(t *testing.T) {
	signer := SaltChecksumSigner{Salt: "s3cret"}

	a := map[string]string{"b": "2", "a": "1", "c": "3"}
	b := map[string]string{"c": "3", "a": "1", "b": "2"}
	assert.Equal(t, signer.Sign(a), signer.Sign(b))
}

func TestVerifyTamperedCallbackFailsClosed(t *testing.T) {
	p := testZohoProvider("", true)
	signer := SaltChecksumSigner{Salt: "salt-1"}

	original := map[string]string{
		"order_id":       "CODEKAR-1-ABCDEFG",
		"transaction_id": "TX-1",
		"amount":         "1000",
		"status":         "success",
	}
	checksum := signer.Sign(original)

	tampered := map[string]string{
		"order_id":       "CODEKAR-1-ABCDEFG",
		"transaction_id": "TX-1",
		"amount":         "1", // changed after signing
		"status":         "success",
		"checksum":       checksum,
	}

	// Integrity beats the face-value status field.
	assert.Equal(t, StatusFailed, p.Verify(tampered))
}

func TestVerifyStatusMapping(t *testing.T) {
	p := testZohoProvider("", true)
	signer := SaltChecksumSigner{Salt: "salt-1"}

	cases := []struct {
		status string
		want   Status
	}{
		{"success", StatusSuccess},
		{"SUCCESS", StatusSuccess},
		{"pending", StatusPending},
		{"cancelled", StatusCancelled},
		{"failed", StatusFailed},
		{"weird-new-status", StatusFailed},
		{"", StatusFailed},
	}

	for _, tc := range cases {
		fields := map[string]string{
			"order_id": "CODEKAR-1-ABCDEFG",
			"status":   tc.status,
		}
		fields["checksum"] = signer.Sign(map[string]string{
			"order_id": fields["order_id"],
			"status":   fields["status"],
		})
		assert.Equal(t, tc.want, p.Verify(fields), "status %q", tc.status)
	}
}

func TestVerifyMissingChecksumFails(t *testing.T) {
	p := testZohoProvider("", true)
	assert.Equal(t, StatusFailed, p.Verify(map[string]string{"status": "success"}))
}

func TestInitiateNotConfigured(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	p := testZohoProvider(srv.URL, false)
	_, err := p.Initiate(context.Background(), Request{OrderID: "CODEKAR-1-ABCDEFG", Amount: 1})

	require.ErrorIs(t, err, ErrNotConfigured)
	assert.Zero(t, hits, "unconfigured adapter must not call the gateway")
}

func TestInitiateSuccess(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"payment_url":"https://pay.example/abc","transaction_id":"TX-9"}`))
	}))
	defer srv.Close()

	p := testZohoProvider(srv.URL, true)
	result, err := p.Initiate(context.Background(), Request{
		Amount:           1000,
		CustomerName:     "Asha Rao",
		CustomerEmail:    "asha@example.com",
		OrderID:          "CODEKAR-1-ABCDEFG",
		RegistrationType: "team",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/abc", result.PaymentURL)
	assert.Equal(t, "TX-9", result.TransactionID)

	assert.Equal(t, "CODEKAR-1-ABCDEFG", got["order_id"])
	assert.Equal(t, "1000", got["amount"])
	assert.Equal(t, "INR", got["currency"])
	assert.NotEmpty(t, got["checksum"])
	assert.Equal(t, "Registration for team", got["description"])
}

func TestInitiateFallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"redirect_url":"https://pay.example/alt"}`))
	}))
	defer srv.Close()

	p := testZohoProvider(srv.URL, true)
	result, err := p.Initiate(context.Background(), Request{OrderID: "CODEKAR-2-HIJKLMN", Amount: 1})

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/alt", result.PaymentURL)
	assert.Equal(t, "CODEKAR-2-HIJKLMN", result.TransactionID)
}

func TestInitiateGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	p := testZohoProvider(srv.URL, true)
	_, err := p.Initiate(context.Background(), Request{OrderID: "CODEKAR-3-OPQRSTU", Amount: 1})

	require.ErrorIs(t, err, ErrGateway)
	assert.Contains(t, err.Error(), "502")
}

func TestInitiateNoPaymentURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"transaction_id":"TX-1"}`))
	}))
	defer srv.Close()

	p := testZohoProvider(srv.URL, true)
	_, err := p.Initiate(context.Background(), Request{OrderID: "CODEKAR-4-VWXYZAB", Amount: 1})
	require.ErrorIs(t, err, ErrGateway)
}

func TestGenerateOrderIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^CODEKAR-\d+-[0-9A-Z]{7}$`)

	first := GenerateOrderID()
	second := GenerateOrderID()

	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.NotEqual(t, first, second)
}
