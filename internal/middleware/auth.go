package middleware

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected verifies the bearer token and stores it under Locals("user").
// Missing and invalid tokens both answer 401; only the log line differs.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				slog.Info("unauthorized: no token provided", "path", c.Path())
			} else {
				slog.Info("unauthorized: invalid token", "path", c.Path(), "error", err)
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Unauthorized",
			})
		},
	})
}
