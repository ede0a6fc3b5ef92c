package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/blossom/internal/models"
	"github.com/example/blossom/internal/services"
	"github.com/example/blossom/internal/utils"
)

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword issues a password-reset code, independent of any pending
// signup OTP, and mails it to the account's address.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed!",
			"errors":  errs,
		})
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Email not found",
				"alert":   false,
			})
		}
		return err
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate OTP")
	}
	expiresAt := time.Now().Add(otpTTL)

	updates := map[string]interface{}{
		"reset_otp":         otp,
		"reset_otp_expires": expiresAt,
	}
	if err := h.db.Model(&user).Updates(updates).Error; err != nil {
		return err
	}

	msg := services.Message{
		To:      req.Email,
		Subject: "Your password reset OTP",
		HTML: fmt.Sprintf(`
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2>Your password reset code</h2>
				<p>Your OTP is: <strong>%s</strong></p>
				<p>It will expire in 5 minutes.</p>
				<p>If you did not request a password reset, please ignore this email.</p>
			</div>
		`, otp),
	}
	if err := h.mailer.Send(msg); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to send OTP. Please try again.",
			"alert":   false,
		})
	}

	return c.JSON(fiber.Map{
		"message": "OTP has been sent to your email",
		"alert":   true,
	})
}

type resetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Otp         string `json:"otp" validate:"required,len=6"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// ResetPassword replaces the password after matching the reset code. The
// expiry check is a strict greater-than: a code expiring exactly now fails.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := utils.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed!",
			"errors":  errs,
		})
	}

	var user models.User
	err := h.db.
		Where("email = ? AND reset_otp = ? AND reset_otp_expires > ?", req.Email, req.Otp, time.Now()).
		First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid or expired OTP",
				"alert":   false,
			})
		}
		return err
	}

	passwordHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	updates := map[string]interface{}{
		"password_hash":     passwordHash,
		"reset_otp":         nil,
		"reset_otp_expires": nil,
	}
	if err := h.db.Model(&user).Updates(updates).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Password reset successfully",
		"alert":   true,
	})
}
