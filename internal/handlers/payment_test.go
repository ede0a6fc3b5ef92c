package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/blossom/internal/utils"
)

func TestCreatePaymentReturnsCheckoutURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/payment-requests", r.URL.Path)
		assert.Equal(t, "api-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "client-id", r.Header.Get("x-client-id"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"00","desc":"success","data":{"checkoutUrl":"https://pay.payos.vn/web/abc123"}}`))
	}))
	defer server.Close()

	env := newTestEnv(t, server.URL)

	status, body := env.doJSON(t, http.MethodPost, "/create-payos-payment", map[string]interface{}{
		"totalPrice": 150000,
	}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "https://pay.payos.vn/web/abc123", body["checkoutUrl"])
}

func TestCreatePaymentRejectsNonPositiveAmount(t *testing.T) {
	env := newTestEnv(t, "http://unused")

	status, body := env.doJSON(t, http.MethodPost, "/create-payos-payment", map[string]interface{}{
		"totalPrice": 0,
	}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "totalPrice must be positive", body["error"])
}

func TestCreatePaymentProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	env := newTestEnv(t, server.URL)

	status, body := env.doJSON(t, http.MethodPost, "/create-payos-payment", map[string]interface{}{
		"totalPrice": 150000,
	}, nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Unable to create PayOS payment session.", body["error"])
}

func TestWebhookValidSignature(t *testing.T) {
	env := newTestEnv(t, "http://unused")

	signature := utils.Sign(utils.WebhookCanonical(123456, "COMPLETED"), "webhook-secret")

	status, _ := env.doJSON(t, http.MethodPost, "/payos-webhook", map[string]interface{}{
		"orderCode": 123456,
		"status":    "COMPLETED",
		"signature": signature,
	}, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []int64{123456}, env.listener.completed)
}

func TestWebhookInvalidSignature(t *testing.T) {
	env := newTestEnv(t, "http://unused")

	status, body := env.doJSON(t, http.MethodPost, "/payos-webhook", map[string]interface{}{
		"orderCode": 123456,
		"status":    "COMPLETED",
		"signature": "deadbeef",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid signature", body["error"])
	assert.Empty(t, env.listener.completed)
}

func TestWebhookTamperedStatus(t *testing.T) {
	env := newTestEnv(t, "http://unused")

	// Signature covers COMPLETED; the payload claims FAILED.
	signature := utils.Sign(utils.WebhookCanonical(123456, "COMPLETED"), "webhook-secret")

	status, _ := env.doJSON(t, http.MethodPost, "/payos-webhook", map[string]interface{}{
		"orderCode": 123456,
		"status":    "FAILED",
		"signature": signature,
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Empty(t, env.listener.failed)
}

func TestWebhookUnknownStatusAccepted(t *testing.T) {
	env := newTestEnv(t, "http://unused")

	signature := utils.Sign(utils.WebhookCanonical(123456, "EXPIRED"), "webhook-secret")

	status, _ := env.doJSON(t, http.MethodPost, "/payos-webhook", map[string]interface{}{
		"orderCode": 123456,
		"status":    "EXPIRED",
		"signature": signature,
	}, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, env.listener.completed)
	assert.Empty(t, env.listener.failed)
	assert.Empty(t, env.listener.cancelled)
	assert.Empty(t, env.listener.pending)
}
