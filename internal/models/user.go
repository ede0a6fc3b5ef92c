package models

import (
	"time"
)

// User represents a customer account. Accounts are created unverified by the
// signup OTP flow and either verified within the OTP window or removed by the
// expiry sweeper.
type User struct {
	BaseModel
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	Image        string `json:"image"`

	// Signup verification code. Both columns are cleared on verification.
	Otp          *string    `json:"-"`
	OtpExpiresAt *time.Time `gorm:"index" json:"-"`
	IsVerified   bool       `json:"is_verified"`

	// Password-reset code, independent of the signup OTP.
	ResetOtp        *string    `json:"-"`
	ResetOtpExpires *time.Time `json:"-"`
}
