package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/blossom/internal/config"
	"github.com/example/blossom/internal/database"
	"github.com/example/blossom/internal/routes"
	"github.com/example/blossom/internal/services"
)

// fakeMailer records outgoing messages and can be told to fail.
type fakeMailer struct {
	sent     []services.Message
	failSend bool
}

func (m *fakeMailer) Send(msg services.Message) error {
	if m.failSend {
		return errors.New("smtp: connection refused")
	}
	m.sent = append(m.sent, msg)
	return nil
}

// recordingListener captures verified webhook status updates.
type recordingListener struct {
	completed []int64
	failed    []int64
	cancelled []int64
	pending   []int64
}

func (r *recordingListener) PaymentCompleted(orderCode int64) { r.completed = append(r.completed, orderCode) }
func (r *recordingListener) PaymentFailed(orderCode int64)    { r.failed = append(r.failed, orderCode) }
func (r *recordingListener) PaymentCancelled(orderCode int64) { r.cancelled = append(r.cancelled, orderCode) }
func (r *recordingListener) PaymentPending(orderCode int64)   { r.pending = append(r.pending, orderCode) }

type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	cfg      *config.Config
	mailer   *fakeMailer
	listener *recordingListener
}

// newTestEnv spins up the full route tree against an in-memory database.
// payosEndpoint may point at an httptest server; tests that never reach
// PayOS can pass any value.
func newTestEnv(t *testing.T, payosEndpoint string) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:          "test-secret",
		TokenExpires:       time.Hour,
		PayOSEndpoint:      payosEndpoint,
		PayOSAPIKey:        "api-key",
		PayOSClientID:      "client-id",
		PayOSChecksumKey:   "checksum-key",
		PayOSWebhookSecret: "webhook-secret",
		FrontendURL:        "http://localhost:3000",
	}

	mailer := &fakeMailer{}
	listener := &recordingListener{}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			return c.Status(code).JSON(fiber.Map{"message": err.Error()})
		},
	})
	routes.Register(app, db, cfg, mailer, services.NewPayOSClient(cfg), listener)

	return &testEnv{app: app, db: db, cfg: cfg, mailer: mailer, listener: listener}
}

// doJSON performs a request with a JSON body and decodes the JSON response.
func (e *testEnv) doJSON(t *testing.T, method, path string, body interface{}, headers map[string]string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}

	return resp.StatusCode, decoded
}

// getJSONList performs a GET and decodes a JSON array response.
func (e *testEnv) getJSONList(t *testing.T, path string) (int, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var list []map[string]interface{}
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	}

	return resp.StatusCode, list
}
