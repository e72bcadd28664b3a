package middleware

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminRequired runs after JWTProtected and admits only accounts whose
// stored role is admin. The token role alone is not trusted, so demoted
// admins lose access before their token expires.
func AdminRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ident, err := identity.FromContext(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Unauthorized",
			})
		}

		var user models.User
		if err := db.Select("id", "role").First(&user, ident.ID).Error; err == nil {
			if user.Role == models.RoleAdmin {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: "Admin access required",
		})
	}
}
