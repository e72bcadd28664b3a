package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("bad"), fiber.StatusBadRequest},
		{"missing fields", MissingFields("name"), fiber.StatusBadRequest},
		{"unauthorized", Unauthorized("no"), fiber.StatusUnauthorized},
		{"forbidden", Forbidden("no"), fiber.StatusForbidden},
		{"not found", NotFound("gone"), fiber.StatusNotFound},
		{"conflict", Conflict("dup"), fiber.StatusConflict},
		{"wrapped", fmt.Errorf("ctx: %w", NotFound("gone")), fiber.StatusNotFound},
		{"internal", errors.New("db down"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestMissingFieldsNamesFields(t *testing.T) {
	err := MissingFields("app_type_id", "platform")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "app_type_id, platform")
}

func TestRespond(t *testing.T) {
	app := fiber.New()
	app.Get("/known", func(c *fiber.Ctx) error {
		return Respond(c, NotFound("Not found"), "Server error")
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return Respond(c, errors.New("connection refused"), "Server error")
	})

	tests := []struct {
		path   string
		status int
		msg    string
	}{
		{"/known", fiber.StatusNotFound, "Not found"},
		{"/internal", fiber.StatusInternalServerError, "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.msg, body["error"])
		})
	}
}
