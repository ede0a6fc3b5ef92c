package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Sign computes the hex-encoded HMAC-SHA256 of canonical under secret.
func Sign(canonical, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a provided signature against a fresh one in constant
// time. Any mismatch fails closed.
func VerifySignature(canonical, secret, signature string) bool {
	expected := Sign(canonical, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// PaymentCanonical builds the canonical string for an outbound payment
// request. Fields are in fixed alphabetical order per the PayOS contract.
func PaymentCanonical(amount int64, cancelURL, description string, orderCode int64, returnURL string) string {
	return fmt.Sprintf("amount=%d&cancelUrl=%s&description=%s&orderCode=%d&returnUrl=%s",
		amount, cancelURL, description, orderCode, returnURL)
}

// WebhookCanonical builds the canonical string for an inbound webhook.
func WebhookCanonical(orderCode int64, status string) string {
	return fmt.Sprintf("orderCode=%d&status=%s", orderCode, status)
}
