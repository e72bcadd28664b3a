package handlers

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	authService *services.AuthService
}

func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	ident, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}

	me, err := h.authService.GetMe(ident.ID)
	if err != nil {
		return apperr.Respond(c, err, "خطأ في الخادم الداخلي")
	}

	return c.JSON(me)
}

func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	ident, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}

	var req dto.UpdateMeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	if err := h.authService.UpdateMe(ident.ID, &req); err != nil {
		return apperr.Respond(c, err, "حدث خطأ أثناء التحديث")
	}

	return c.JSON(dto.MessageResponse{Message: "✅ تم تحديث البيانات بنجاح!"})
}
