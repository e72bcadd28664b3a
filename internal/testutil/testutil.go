// Package testutil wires the real application against a throwaway SQLite
// database for handler and service tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/server"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/services"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const Password = "password123"

// Config returns settings suitable for tests: fixed secret, no rate limits.
func Config() *config.Config {
	return &config.Config{
		DBDriver:            "sqlite",
		JWTSecret:           "test-secret",
		JWTExpiry:           7 * 24 * time.Hour,
		Port:                "0",
		CORSOrigins:         "*",
		RateLimitPerMin:     0,
		AuthRateLimitPerMin: 0,
		LogRetentionDays:    30,
	}
}

// OpenDB opens a migrated SQLite database that lives for the test.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "monjez.db")
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, database.MigrateShared(db))
	for _, m := range routes.Modules() {
		require.NoError(t, database.MigrateModels(db, m.Models()))
	}

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

type Harness struct {
	App  *fiber.App
	DB   *gorm.DB
	Cfg  *config.Config
	Auth *services.AuthService
}

// New builds the full application on a fresh database.
func New(t *testing.T) *Harness {
	t.Helper()

	db := OpenDB(t)
	cfg := Config()
	return &Harness{
		App:  server.New(cfg, db, routes.Modules(), server.Options{}),
		DB:   db,
		Cfg:  cfg,
		Auth: services.NewAuthService(db, cfg),
	}
}

// CreateUser inserts an account with the shared test password.
func (h *Harness) CreateUser(t *testing.T, email, role string) models.User {
	t.Helper()

	hash, err := services.HashPassword(Password)
	require.NoError(t, err)

	user := models.User{
		Name:      email,
		FirstName: "Test",
		LastName:  "User",
		FullName:  "Test User",
		Email:     email,
		Password:  hash,
		Role:      role,
		Avatar:    models.DefaultAvatar,
	}
	require.NoError(t, h.DB.Create(&user).Error)
	return user
}

// Token signs a token for user the same way login does.
func (h *Harness) Token(t *testing.T, user models.User) string {
	t.Helper()

	token, err := h.Auth.IssueToken(&user)
	require.NoError(t, err)
	return token
}

// Do sends a JSON request through the app. body may be nil.
func (h *Harness) Do(t *testing.T, method, path string, body interface{}, token string) *http.Response {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := h.App.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Decode reads a JSON response body into v.
func Decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// ErrorMessage returns the "error" field of a JSON error body.
func ErrorMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]interface{}
	Decode(t, resp, &body)
	msg, _ := body["error"].(string)
	return msg
}
