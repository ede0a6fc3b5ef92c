package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/blossom/internal/config"
	"github.com/example/blossom/internal/middleware"
	"github.com/example/blossom/internal/models"
	"github.com/example/blossom/internal/services"
	"github.com/example/blossom/internal/utils"
)

const otpTTL = 5 * time.Minute

// AuthHandler bundles dependencies for signup, verification and login.
type AuthHandler struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer services.Mailer
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config, mailer services.Mailer) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg, mailer: mailer}
}

type sendOTPRequest struct {
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Image           string `json:"image" validate:"required"`
}

// SendOTP starts the signup flow: it mails a 6-digit code and only then
// persists the unverified account, so a delivery failure leaves no row behind.
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var req sendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed!",
			"errors":  errs,
		})
	}

	var existing models.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Email already registered!",
		})
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate OTP")
	}
	expiresAt := time.Now().Add(otpTTL)

	msg := services.Message{
		To:      req.Email,
		Subject: "Your OTP for Signup Verification",
		Text:    fmt.Sprintf("Your OTP is: %s. It will expire in 5 minutes.\n\nThank you!", otp),
	}
	if err := h.mailer.Send(msg); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to send OTP. Please try again.",
		})
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Image:        req.Image,
		Otp:          &otp,
		OtpExpiresAt: &expiresAt,
		IsVerified:   false,
	}

	if err := h.db.Create(&user).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "OTP sent to your email successfully!",
		"alert":   true,
	})
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	Otp   string `json:"otp" validate:"required,len=6"`
}

// VerifyOTP confirms the signup code. An expired code deletes the pending
// account; a valid one marks it verified and clears both OTP columns in a
// single update.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req verifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid OTP or email!",
		})
	}

	var user models.User
	if err := h.db.Where("email = ? AND otp = ?", req.Email, req.Otp).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid OTP or email!",
			})
		}
		return err
	}

	if user.OtpExpiresAt != nil && time.Now().After(*user.OtpExpiresAt) {
		if err := h.db.Delete(&user).Error; err != nil {
			return err
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "OTP has expired. Please request a new one.",
		})
	}

	updates := map[string]interface{}{
		"is_verified":    true,
		"otp":            nil,
		"otp_expires_at": nil,
	}
	if err := h.db.Model(&user).Updates(updates).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "OTP verified successfully!",
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a verified account.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Email and password is required",
		})
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Email is not available, please sign up",
				"alert":   false,
			})
		}
		return err
	}

	if !user.IsVerified {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Account not verified. Please verify your email.",
		})
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid password",
			"alert":   false,
		})
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"message": "Login is successfully",
		"alert":   true,
		"data": fiber.Map{
			"_id":       user.ID,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"email":     user.Email,
			"image":     user.Image,
		},
		"token": token,
	})
}

// Me returns the authenticated account's profile.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return err
	}

	return c.JSON(fiber.Map{
		"data": user,
	})
}
