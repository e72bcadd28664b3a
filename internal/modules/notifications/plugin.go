package notifications

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type NotificationsModule struct{}

func New() *NotificationsModule {
	return &NotificationsModule{}
}

func (m *NotificationsModule) ID() string { return "notifications" }

func (m *NotificationsModule) Models() []interface{} {
	return []interface{}{&models.Notification{}}
}

func (m *NotificationsModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewHandler(NewService(db))
	auth := middleware.JWTProtected(cfg)

	router.Get("/notifications", auth, handler.List)
	router.Post("/notifications", auth, middleware.AdminRequired(db), handler.Create)
	router.Put("/notifications/read/:id", auth, handler.MarkRead)
	router.Delete("/notifications/delete/:id", auth, handler.Delete)
}
