package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/example/blossom/internal/services"
)

// PaymentHandler exposes the PayOS checkout and webhook endpoints.
type PaymentHandler struct {
	payos    *services.PayOSClient
	listener services.PaymentListener
}

// NewPaymentHandler constructs a PaymentHandler. The listener receives
// verified status updates; pass services.LogListener{} for the default.
func NewPaymentHandler(payos *services.PayOSClient, listener services.PaymentListener) *PaymentHandler {
	return &PaymentHandler{payos: payos, listener: listener}
}

type createPaymentRequest struct {
	TotalPrice int64 `json:"totalPrice"`
}

// CreatePayment registers a payment session with PayOS and relays the hosted
// checkout URL.
func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	var req createPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.TotalPrice <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "totalPrice must be positive",
		})
	}

	checkoutURL, err := h.payos.CreatePaymentLink(req.TotalPrice, "Order payment")
	if err != nil {
		log.Printf("[PayOS] create payment failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to create PayOS payment session.",
		})
	}

	return c.JSON(fiber.Map{
		"checkoutUrl": checkoutURL,
	})
}

type webhookRequest struct {
	Status    string `json:"status"`
	OrderCode int64  `json:"orderCode"`
	Signature string `json:"signature"`
}

// Webhook verifies the provider signature before any side effect. A valid
// webhook is always acknowledged with 200 so the provider does not retry;
// unknown statuses are accepted and ignored.
func (h *PaymentHandler) Webhook(c *fiber.Ctx) error {
	var req webhookRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if !h.payos.VerifyWebhook(req.OrderCode, req.Status, req.Signature) {
		log.Printf("[PayOS] webhook for order %d has an invalid signature", req.OrderCode)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid signature",
		})
	}

	services.DispatchStatus(h.listener, req.Status, req.OrderCode)

	return c.SendStatus(fiber.StatusOK)
}
