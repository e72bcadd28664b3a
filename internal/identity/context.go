package identity

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var ErrNoIdentity = errors.New("no identity in request context")

// Identity is the {id, role} pair carried by a verified token.
type Identity struct {
	ID   uint
	Role string
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// FromContext reads the identity stored by the JWT middleware.
func FromContext(c *fiber.Ctx) (Identity, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Identity{}, ErrNoIdentity
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}

	// JSON numbers decode as float64.
	rawID, ok := claims["id"].(float64)
	if !ok || rawID <= 0 {
		return Identity{}, errors.New("missing id claim")
	}
	role, _ := claims["role"].(string)

	return Identity{ID: uint(rawID), Role: role}, nil
}

// WithParamID reads the caller and the positive :id route param for
// per-row handlers. Failures are apperr values ready for apperr.Respond.
func WithParamID(c *fiber.Ctx) (Identity, uint, error) {
	ident, err := FromContext(c)
	if err != nil {
		return ident, 0, apperr.Unauthorized("Unauthorized")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return ident, 0, apperr.Validation("Invalid id")
	}
	return ident, uint(id), nil
}

// Claims builds the token payload for an account.
func Claims(id uint, role string) jwt.MapClaims {
	return jwt.MapClaims{
		"id":   id,
		"role": role,
	}
}
