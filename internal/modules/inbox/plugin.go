package inbox

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type InboxModule struct{}

func New() *InboxModule {
	return &InboxModule{}
}

func (m *InboxModule) ID() string { return "inbox" }

func (m *InboxModule) Models() []interface{} {
	return []interface{}{&models.InboxMessage{}}
}

func (m *InboxModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	h := &Handler{service: NewService(db)}
	auth := middleware.JWTProtected(cfg)

	router.Get("/inbox", auth, h.List)
	router.Post("/inbox/send", auth, h.Send)
	router.Put("/inbox/read/:id", auth, h.MarkRead)
	router.Delete("/inbox/delete/:id", auth, h.Delete)
}
