package controller

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callbackTestApp(got *map[string]string) *fiber.App {
	app := fiber.New()
	app.Post("/cb", func(c *fiber.Ctx) error {
		fields, err := parseCallbackFields(c)
		if err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		*got = fields
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestParseCallbackFieldsFormEncoded(t *testing.T) {
	var got map[string]string
	app := callbackTestApp(&got)

	form := url.Values{}
	form.Set("order_id", "CODEKAR-1-ABCDEFG")
	form.Set("status", "success")
	form.Set("amount", "1000")
	form.Set("transaction_id", "TX-1")

	req := httptest.NewRequest(fiber.MethodPost, "/cb", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "CODEKAR-1-ABCDEFG", got["order_id"])
	assert.Equal(t, "success", got["status"])
	assert.Equal(t, "1000", got["amount"])
	assert.Equal(t, "TX-1", got["transaction_id"])
}

func TestParseCallbackFieldsFormWithCharset(t *testing.T) {
	var got map[string]string
	app := callbackTestApp(&got)

	req := httptest.NewRequest(fiber.MethodPost, "/cb", strings.NewReader("order_id=CODEKAR-2-HIJKLMN&status=pending"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm+"; charset=utf-8")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "CODEKAR-2-HIJKLMN", got["order_id"])
	assert.Equal(t, "pending", got["status"])
}

func TestParseCallbackFieldsJSON(t *testing.T) {
	var got map[string]string
	app := callbackTestApp(&got)

	body := `{"order_id":"CODEKAR-3-OPQRSTU","status":"success","amount":1000,"recurring":false}`
	req := httptest.NewRequest(fiber.MethodPost, "/cb", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "CODEKAR-3-OPQRSTU", got["order_id"])
	assert.Equal(t, "success", got["status"])
	assert.Equal(t, "1000", got["amount"], "numbers arrive as plain strings")
	assert.Equal(t, "false", got["recurring"])
}

func TestParseCallbackFieldsMalformedJSON(t *testing.T) {
	var got map[string]string
	app := callbackTestApp(&got)

	req := httptest.NewRequest(fiber.MethodPost, "/cb", strings.NewReader("{not json"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
