package routes

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/modules"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/modules/admin"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/modules/catalog"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/modules/inbox"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/modules/notifications"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/modules/orders"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Modules lists every feature module in mount order.
func Modules() []modules.Module {
	return []modules.Module{
		catalog.New(),
		orders.New(),
		admin.New(),
		inbox.New(),
		notifications.New(),
	}
}

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
	mods []modules.Module,
) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Monjez API is running")
	})

	api := app.Group("/api")

	// General API rate limiter
	api.Use(middleware.RateLimit(cfg.RateLimitPerMin))

	api.Get("/health", healthHandler.Check)

	// Auth: stricter per-IP limit
	authLimit := middleware.RateLimit(cfg.AuthRateLimitPerMin)
	api.Post("/login", authLimit, authHandler.Login)
	api.Post("/register", authLimit, authHandler.Register)

	// Protected routes (JWT required) - apply middleware to individual routes
	// so public catalog reads stay open.
	jwt := middleware.JWTProtected(cfg)
	api.Post("/create-user", jwt, middleware.AdminRequired(db), authHandler.CreateUser)
	api.Get("/user/me", jwt, userHandler.GetMe)
	api.Patch("/user/me", jwt, userHandler.UpdateMe)

	// Module routes first: the admin self-profile routes must be matched
	// before the admin group's middleware.
	for _, m := range mods {
		m.RegisterRoutes(api, db, cfg)
	}

	adminGroup := api.Group("/admin", jwt, middleware.AdminRequired(db))
	for _, m := range mods {
		if am, ok := m.(modules.AdminModule); ok {
			am.RegisterAdminRoutes(adminGroup, db, cfg)
		}
	}
}
