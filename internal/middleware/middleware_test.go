package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/testutil"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTProtected(t *testing.T) {
	h := testutil.New(t)
	user := h.CreateUser(t, "user@example.com", models.RoleUser)
	valid := h.Token(t, user)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": user.ID, "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id": user.ID, "role": "user", "exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte(h.Cfg.JWTSecret))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"garbage", "not-a-token", http.StatusUnauthorized},
		{"wrong signature", forged, http.StatusUnauthorized},
		{"expired", expired, http.StatusUnauthorized},
		{"valid", valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := h.Do(t, http.MethodGet, "/api/user/me", nil, tt.token)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status == http.StatusUnauthorized {
				assert.Equal(t, "Unauthorized", testutil.ErrorMessage(t, resp))
			}
		})
	}
}

func TestAdminRequired(t *testing.T) {
	h := testutil.New(t)
	admin := h.CreateUser(t, "admin@example.com", models.RoleAdmin)
	user := h.CreateUser(t, "user@example.com", models.RoleUser)

	resp := h.Do(t, http.MethodGet, "/api/admin/users", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = h.Do(t, http.MethodGet, "/api/admin/users", nil, h.Token(t, user))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = h.Do(t, http.MethodGet, "/api/admin/users", nil, h.Token(t, admin))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRequiredChecksStoredRole(t *testing.T) {
	h := testutil.New(t)
	admin := h.CreateUser(t, "admin@example.com", models.RoleAdmin)
	token := h.Token(t, admin)

	require.NoError(t, h.DB.Model(&admin).Update("role", models.RoleUser).Error)

	resp := h.Do(t, http.MethodGet, "/api/admin/users", nil, token)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRateLimit(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RateLimit(2))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimitDisabled(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RateLimit(0))
	app.Get("/", func(c *fiber.Ctx) error { return c.JSON(dto.MessageResponse{Message: "ok"}) })

	for i := 0; i < 5; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}
