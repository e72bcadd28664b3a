package handlers

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		return apperr.Respond(c, err, "خطأ في التسجيل")
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return apperr.Respond(c, err, "فشل في الدخول")
	}

	return c.JSON(resp)
}

// CreateUser is mounted behind the admin guard.
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	if _, err := h.authService.CreateUser(&req); err != nil {
		return apperr.Respond(c, err, "Server error")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "User created successfully ✅"})
}
