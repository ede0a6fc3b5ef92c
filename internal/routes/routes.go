package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/blossom/internal/config"
	"github.com/example/blossom/internal/handlers"
	"github.com/example/blossom/internal/middleware"
	"github.com/example/blossom/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, mailer services.Mailer, payos *services.PayOSClient, listener services.PaymentListener) {
	authHandler := handlers.NewAuthHandler(db, cfg, mailer)
	productHandler := handlers.NewProductHandler(db)
	discountHandler := handlers.NewDiscountHandler(db)
	contactHandler := handlers.NewContactHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	paymentHandler := handlers.NewPaymentHandler(payos, listener)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Server is running")
	})

	// Auth / OTP lifecycle
	app.Post("/send-otp", authHandler.SendOTP)
	app.Post("/verify-otp", authHandler.VerifyOTP)
	app.Post("/login", authHandler.Login)
	app.Post("/forgot-password", authHandler.ForgotPassword)
	app.Post("/reset-password", authHandler.ResetPassword)
	app.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Catalog
	app.Post("/uploadProduct", productHandler.UploadProduct)
	app.Get("/product", productHandler.ListProducts)
	app.Get("/product/search", productHandler.SearchProducts)

	// Discounts
	app.Post("/uploadDiscount", discountHandler.UploadDiscount)
	app.Get("/discounts", discountHandler.ListDiscounts)

	// Contact form
	app.Post("/submit-contact", contactHandler.SubmitContact)
	app.Get("/get-contacts", contactHandler.ListContacts)

	// Customer info
	app.Post("/update-customer-info", customerHandler.UpdateCustomerInfo)
	app.Get("/get-customer-info/:email", customerHandler.GetCustomerInfo)

	// Payments
	app.Post("/create-payos-payment", paymentHandler.CreatePayment)
	app.Post("/payos-webhook", paymentHandler.Webhook)
}
