package identity

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredicates(t *testing.T) {
	admin := Identity{ID: 1, Role: "admin"}
	alice := Identity{ID: 2, Role: "user"}

	tests := []struct {
		name     string
		ident    Identity
		owner    uint
		canView  bool
		ownsThis bool
	}{
		{"admin other", admin, 2, true, false},
		{"admin own", admin, 1, true, true},
		{"user own", alice, 2, true, true},
		{"user other", alice, 3, false, false},
		{"anonymous", Identity{}, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canView, CanView(tt.ident, tt.owner))
			assert.Equal(t, tt.ownsThis, Owns(tt.ident, tt.owner))
		})
	}
}

func TestFromContext(t *testing.T) {
	app := fiber.New()
	var got Identity
	var gotErr error
	app.Get("/with", func(c *fiber.Ctx) error {
		// Round-trip through signing so claims carry JSON-decoded numbers.
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims(7, "admin")).SignedString([]byte("k"))
		require.NoError(t, err)
		token, err := jwt.Parse(signed, func(*jwt.Token) (interface{}, error) { return []byte("k"), nil })
		require.NoError(t, err)
		c.Locals("user", token)
		got, gotErr = FromContext(c)
		return nil
	})
	app.Get("/without", func(c *fiber.Ctx) error {
		got, gotErr = FromContext(c)
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/with", nil))
	require.NoError(t, err)
	require.NoError(t, gotErr)
	assert.Equal(t, Identity{ID: 7, Role: "admin"}, got)
	assert.True(t, got.IsAdmin())

	_, err = app.Test(httptest.NewRequest("GET", "/without", nil))
	require.NoError(t, err)
	assert.ErrorIs(t, gotErr, ErrNoIdentity)
}

func TestWithParamID(t *testing.T) {
	app := fiber.New()
	withToken := func(c *fiber.Ctx) error {
		if c.Get("X-Anonymous") == "" {
			c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"id": float64(3), "role": "user"}})
		}
		return c.Next()
	}

	var (
		gotIdent Identity
		gotID    uint
		gotErr   error
	)
	app.Get("/rows/:id", withToken, func(c *fiber.Ctx) error {
		gotIdent, gotID, gotErr = WithParamID(c)
		return nil
	})

	tests := []struct {
		name      string
		path      string
		anonymous bool
		wantID    uint
		wantKind  error
	}{
		{"valid", "/rows/12", false, 12, nil},
		{"not a number", "/rows/abc", false, 0, apperr.ErrValidation},
		{"zero", "/rows/0", false, 0, apperr.ErrValidation},
		{"negative", "/rows/-4", false, 0, apperr.ErrValidation},
		{"no identity", "/rows/12", true, 0, apperr.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.anonymous {
				req.Header.Set("X-Anonymous", "1")
			}
			_, err := app.Test(req)
			require.NoError(t, err)

			if tt.wantKind != nil {
				assert.True(t, errors.Is(gotErr, tt.wantKind), "got %v", gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, tt.wantID, gotID)
			assert.Equal(t, Identity{ID: 3, Role: "user"}, gotIdent)
		})
	}
}
