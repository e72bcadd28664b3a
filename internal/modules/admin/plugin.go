package admin

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AdminModule struct{}

func New() *AdminModule {
	return &AdminModule{}
}

func (m *AdminModule) ID() string { return "admin" }

func (m *AdminModule) Models() []interface{} {
	return []interface{}{
		&models.Invoice{},
	}
}

// RegisterRoutes mounts the self-profile routes. They sit outside the admin
// group so the id check runs before the admin role check.
func (m *AdminModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := newHandler(db)
	auth := middleware.JWTProtected(cfg)

	router.Get("/admin/:id<int>", auth, handler.GetProfile)
	router.Patch("/admin/:id<int>", auth, handler.UpdateProfile)
	router.Patch("/admin/:id<int>/password", auth, handler.ChangePassword)

	// Legacy unprefixed report paths, admin-only.
	adminOnly := middleware.AdminRequired(db)
	router.Get("/users-stats", auth, adminOnly, handler.UserStats)
	router.Get("/orders-stats-daily", auth, adminOnly, handler.DailyStats)
}

func (m *AdminModule) RegisterAdminRoutes(router fiber.Router, db *gorm.DB, _ *config.Config) {
	handler := newHandler(db)

	// Orders
	router.Get("/orders", handler.ListOrders)
	router.Get("/orders/revenue-chart", handler.RevenueChart)
	router.Put("/orders/:id/status", handler.UpdateStatus)
	router.Post("/orders/bulk-delete", handler.BulkDelete)
	router.Patch("/order/:id", handler.PatchOrder)
	router.Delete("/order/:id", handler.DeleteOrder)

	// Reports
	router.Get("/order-stats", handler.OrderStats)
	router.Get("/orders-stats-daily", handler.DailyStats)
	router.Get("/users-stats", handler.UserStats)

	// Users and billing
	router.Get("/users", handler.ListUsers)
	router.Delete("/user/:id", handler.DeleteUser)
	router.Get("/team", handler.Team)
	router.Get("/invoices", handler.Invoices)
	router.Get("/invoices-stats", handler.InvoiceStats)
}

func newHandler(db *gorm.DB) *AdminHandler {
	return NewAdminHandler(NewReportService(db), NewAccountService(db))
}
