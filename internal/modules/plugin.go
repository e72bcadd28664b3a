package modules

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Module is one feature area of the API.
type Module interface {
	// ID names the module in logs.
	ID() string

	// Models returns the GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts the module's routes on the /api group.
	// Routes pick their own guards: the group carries none.
	RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}

// AdminModule extends Module with routes under /api/admin.
type AdminModule interface {
	Module

	// RegisterAdminRoutes mounts admin-only routes on the given group.
	// The group has both JWT and Admin middleware applied.
	RegisterAdminRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}
