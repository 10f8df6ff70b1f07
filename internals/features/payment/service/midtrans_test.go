package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func midtransSignature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func TestMidtransVerify(t *testing.T) {
	p := NewMidtransProvider("server-key", false)

	fields := func(status string) map[string]string {
		f := map[string]string{
			"order_id":           "CODEKAR-1-ABCDEFG",
			"status_code":        "200",
			"gross_amount":       "1000.00",
			"transaction_status": status,
		}
		f["signature_key"] = midtransSignature(f["order_id"], f["status_code"], f["gross_amount"], "server-key")
		return f
	}

	assert.Equal(t, StatusSuccess, p.Verify(fields("settlement")))
	assert.Equal(t, StatusSuccess, p.Verify(fields("capture")))
	assert.Equal(t, StatusPending, p.Verify(fields("pending")))
	assert.Equal(t, StatusCancelled, p.Verify(fields("cancel")))
	assert.Equal(t, StatusCancelled, p.Verify(fields("expire")))
	assert.Equal(t, StatusFailed, p.Verify(fields("deny")))
}

func TestMidtransVerifyBadSignature(t *testing.T) {
	p := NewMidtransProvider("server-key", false)

	f := map[string]string{
		"order_id":           "CODEKAR-1-ABCDEFG",
		"status_code":        "200",
		"gross_amount":       "1000.00",
		"transaction_status": "settlement",
		"signature_key":      "not-the-right-signature",
	}
	assert.Equal(t, StatusFailed, p.Verify(f))
}
