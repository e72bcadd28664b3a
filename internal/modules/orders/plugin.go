package orders

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrdersModule struct{}

func New() *OrdersModule {
	return &OrdersModule{}
}

func (m *OrdersModule) ID() string { return "orders" }

func (m *OrdersModule) Models() []interface{} {
	return []interface{}{
		&models.OrderFeature{},
		&models.OrderMobileFeature{},
		&models.OrderSystemFeature{},
		&models.OrderPlatform{},
	}
}

func (m *OrdersModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewOrderHandler(NewOrderService(db))

	// Order submission is open: the storefront sends user_id in the body.
	router.Post("/orders", handler.CreateWeb)
	router.Post("/orders/mobile", handler.CreateMobile)
	router.Post("/orders/seo", handler.CreateSEO)
	router.Post("/orders/system", handler.CreateSystem)

	auth := middleware.JWTProtected(cfg)
	router.Get("/my-orders", auth, handler.MyOrders)
	router.Get("/my-orders/stats", auth, handler.MyStats)
}
