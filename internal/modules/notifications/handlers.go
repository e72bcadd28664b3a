package notifications

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *fiber.Ctx) error {
	ident, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}

	rows, err := h.service.List(ident)
	if err != nil {
		return apperr.Respond(c, err, "Failed to fetch notifications")
	}
	return c.JSON(rows)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	n, err := h.service.Create(req)
	if err != nil {
		return apperr.Respond(c, err, "Failed to create notification")
	}
	return c.Status(fiber.StatusCreated).JSON(n)
}

func (h *Handler) MarkRead(c *fiber.Ctx) error {
	ident, id, err := identity.WithParamID(c)
	if err != nil {
		return apperr.Respond(c, err, "Failed to update notification")
	}
	if err := h.service.MarkRead(ident, id); err != nil {
		return apperr.Respond(c, err, "Failed to update notification")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	ident, id, err := identity.WithParamID(c)
	if err != nil {
		return apperr.Respond(c, err, "Failed to delete notification")
	}
	if err := h.service.Delete(ident, id); err != nil {
		return apperr.Respond(c, err, "Failed to delete notification")
	}
	return c.JSON(fiber.Map{"success": true})
}
