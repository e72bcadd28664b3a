package inbox

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func (h *Handler) List(c *fiber.Ctx) error {
	ident, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}

	rows, err := h.service.List(ident)
	if err != nil {
		return apperr.Respond(c, err, "Failed to fetch messages")
	}
	return c.JSON(rows)
}

func (h *Handler) Send(c *fiber.Ctx) error {
	ident, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}
	var req SendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	msg, err := h.service.Send(ident.ID, req)
	if err != nil {
		return apperr.Respond(c, err, "Failed to send message")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": msg.ID})
}

func (h *Handler) MarkRead(c *fiber.Ctx) error {
	ident, id, err := identity.WithParamID(c)
	if err != nil {
		return apperr.Respond(c, err, "Failed to update message")
	}
	if err := h.service.MarkRead(ident, id); err != nil {
		return apperr.Respond(c, err, "Failed to update message")
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	ident, id, err := identity.WithParamID(c)
	if err != nil {
		return apperr.Respond(c, err, "Failed to delete message")
	}
	if err := h.service.Delete(ident, id); err != nil {
		return apperr.Respond(c, err, "Failed to delete message")
	}
	return c.JSON(fiber.Map{"success": true})
}
