package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/example/blossom/internal/models"
)

func TestZZDebugOtpClear(t *testing.T) {
	env := newTestEnv(t, "http://unused")

	status, _ := env.doJSON(t, http.MethodPost, "/send-otp", signupBody("linh@example.com"), nil)
	require.Equal(t, http.StatusOK, status)

	var user models.User
	require.NoError(t, env.db.Where("email = ?", "linh@example.com").First(&user).Error)
	t.Logf("before verify: otp=%v exp=%v", user.Otp, user.OtpExpiresAt)

	status, _ = env.doJSON(t, http.MethodPost, "/verify-otp", map[string]interface{}{
		"email": "linh@example.com",
		"otp":   *user.Otp,
	}, nil)
	require.Equal(t, http.StatusOK, status)

	type row struct {
		Otp          *string
		OtpExpiresAt *time.Time
		IsVerified   bool
	}
	var r row
	require.NoError(t, env.db.Raw("SELECT otp, otp_expires_at, is_verified FROM users WHERE email = ?", "linh@example.com").Scan(&r).Error)
	t.Logf("raw row: otp=%v exp=%v verified=%v", r.Otp, r.OtpExpiresAt, r.IsVerified)

	var fresh models.User
	require.NoError(t, env.db.Where("email = ?", "linh@example.com").First(&fresh).Error)
	t.Logf("fresh struct: otp=%v exp=%v verified=%v", fresh.Otp, fresh.OtpExpiresAt, fresh.IsVerified)

	require.NoError(t, env.db.Where("email = ?", "linh@example.com").First(&user).Error)
	t.Logf("reused struct: otp=%v exp=%v verified=%v", user.Otp, user.OtpExpiresAt, user.IsVerified)
}
