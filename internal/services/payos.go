package services

import (
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/example/blossom/internal/config"
	"github.com/example/blossom/internal/utils"
)

const sessionTTL = 3600 // seconds until a checkout link expires

// PayOSClient talks to the PayOS payment-request API and verifies inbound
// webhook signatures.
type PayOSClient struct {
	http          *resty.Client
	apiKey        string
	clientID      string
	checksumKey   string
	webhookSecret string
	frontendURL   string
}

// NewPayOSClient builds a client from configuration.
func NewPayOSClient(cfg *config.Config) *PayOSClient {
	return &PayOSClient{
		http:          resty.New().SetBaseURL(cfg.PayOSEndpoint),
		apiKey:        cfg.PayOSAPIKey,
		clientID:      cfg.PayOSClientID,
		checksumKey:   cfg.PayOSChecksumKey,
		webhookSecret: cfg.PayOSWebhookSecret,
		frontendURL:   cfg.FrontendURL,
	}
}

type paymentRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
	ReturnURL   string `json:"returnUrl"`
	CancelURL   string `json:"cancelUrl"`
	FailedURL   string `json:"failedUrl"`
	OrderCode   int64  `json:"orderCode"`
	ExpiredAt   int64  `json:"expiredAt"`
	Signature   string `json:"signature"`
}

type paymentResponse struct {
	Code string `json:"code"`
	Desc string `json:"desc"`
	Data struct {
		CheckoutURL string `json:"checkoutUrl"`
	} `json:"data"`
}

// CreatePaymentLink registers a payment session with PayOS and returns the
// hosted checkout URL.
func (p *PayOSClient) CreatePaymentLink(amount int64, description string) (string, error) {
	orderCode, err := utils.GenerateOrderCode()
	if err != nil {
		return "", fmt.Errorf("generate order code: %w", err)
	}

	returnURL := p.frontendURL + "/success"
	cancelURL := p.frontendURL + "/cancel"
	failedURL := p.frontendURL + "/failed"

	canonical := utils.PaymentCanonical(amount, cancelURL, description, orderCode, returnURL)

	payload := paymentRequest{
		Amount:      amount,
		Description: description,
		ReturnURL:   returnURL,
		CancelURL:   cancelURL,
		FailedURL:   failedURL,
		OrderCode:   orderCode,
		ExpiredAt:   time.Now().Unix() + sessionTTL,
		Signature:   utils.Sign(canonical, p.checksumKey),
	}

	var result paymentResponse
	resp, err := p.http.R().
		SetHeader("x-api-key", p.apiKey).
		SetHeader("x-client-id", p.clientID).
		SetBody(payload).
		SetResult(&result).
		Post("/v2/payment-requests")
	if err != nil {
		return "", fmt.Errorf("payos request failed: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("payos returned status %d: %s", resp.StatusCode(), resp.String())
	}

	if result.Data.CheckoutURL == "" {
		return "", fmt.Errorf("payos response missing checkout url: %s", resp.String())
	}

	return result.Data.CheckoutURL, nil
}

// VerifyWebhook checks the webhook signature against one computed with the
// webhook secret.
func (p *PayOSClient) VerifyWebhook(orderCode int64, status, signature string) bool {
	return utils.VerifySignature(utils.WebhookCanonical(orderCode, status), p.webhookSecret, signature)
}

// ConfirmWebhook registers our public webhook URL with the provider. Called
// once at startup; a failure is logged by the caller, not fatal.
func (p *PayOSClient) ConfirmWebhook(webhookURL string) error {
	resp, err := p.http.R().
		SetHeader("x-api-key", p.apiKey).
		SetHeader("x-client-id", p.clientID).
		SetBody(map[string]string{"webhookUrl": webhookURL}).
		Post("/confirm-webhook")
	if err != nil {
		return err
	}

	if resp.IsError() {
		return fmt.Errorf("payos returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}

// PaymentListener receives verified webhook status updates. Order fulfillment
// plugs in here without touching signature verification.
type PaymentListener interface {
	PaymentCompleted(orderCode int64)
	PaymentFailed(orderCode int64)
	PaymentCancelled(orderCode int64)
	PaymentPending(orderCode int64)
}

// LogListener is the default PaymentListener; it only logs each update.
type LogListener struct{}

func (LogListener) PaymentCompleted(orderCode int64) {
	log.Printf("[PayOS] order %d paid", orderCode)
}

func (LogListener) PaymentFailed(orderCode int64) {
	log.Printf("[PayOS] order %d payment failed", orderCode)
}

func (LogListener) PaymentCancelled(orderCode int64) {
	log.Printf("[PayOS] order %d cancelled", orderCode)
}

func (LogListener) PaymentPending(orderCode int64) {
	log.Printf("[PayOS] order %d pending", orderCode)
}

// DispatchStatus routes a verified webhook status to the listener. Unknown
// statuses are accepted and ignored.
func DispatchStatus(listener PaymentListener, status string, orderCode int64) {
	switch status {
	case "COMPLETED":
		listener.PaymentCompleted(orderCode)
	case "FAILED":
		listener.PaymentFailed(orderCode)
	case "CANCELLED":
		listener.PaymentCancelled(orderCode)
	case "PENDING":
		listener.PaymentPending(orderCode)
	}
}
