package admin

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	reports  *ReportService
	accounts *AccountService
}

func NewAdminHandler(reports *ReportService, accounts *AccountService) *AdminHandler {
	return &AdminHandler{reports: reports, accounts: accounts}
}

func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	rows, err := h.reports.ListOrders(c.Query("section"), c.Query("platform"))
	if err != nil {
		return apperr.Respond(c, err, "Failed to fetch admin orders")
	}
	return c.JSON(rows)
}

func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "Invalid order id")
	if err != nil {
		return apperr.Respond(c, err, "Failed to update status")
	}
	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	if err := h.reports.SetStatus(id, req.Status); err != nil {
		return apperr.Respond(c, err, "Failed to update status")
	}
	return c.JSON(dto.MessageResponse{Message: "Order status updated successfully!"})
}

func (h *AdminHandler) PatchOrder(c *fiber.Ctx) error {
	id, err := paramID(c, "Invalid data")
	if err != nil {
		return apperr.Respond(c, err, "Update failed")
	}
	var req OrderPatch
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid data"})
	}

	if err := h.reports.PatchOrder(id, req); err != nil {
		return apperr.Respond(c, err, "Update failed")
	}
	return c.JSON(dto.MessageResponse{Message: "Order updated!"})
}

func (h *AdminHandler) DeleteOrder(c *fiber.Ctx) error {
	id, err := paramID(c, "Invalid order id")
	if err != nil {
		return apperr.Respond(c, err, "Delete failed")
	}
	if err := h.reports.DeleteOrder(id); err != nil {
		return apperr.Respond(c, err, "Delete failed")
	}
	return c.JSON(dto.MessageResponse{Message: "Order deleted"})
}

func (h *AdminHandler) BulkDelete(c *fiber.Ctx) error {
	var req BulkDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No orders provided"})
	}

	deleted, err := h.reports.DeleteOrders(req.IDs)
	if err != nil {
		return apperr.Respond(c, err, "Delete failed")
	}
	return c.JSON(fiber.Map{"message": "Orders deleted successfully", "deleted": deleted})
}

func (h *AdminHandler) RevenueChart(c *fiber.Ctx) error {
	points, err := h.reports.RevenueChart()
	if err != nil {
		return apperr.Respond(c, err, "Failed to fetch revenue data")
	}
	return c.JSON(points)
}

func (h *AdminHandler) OrderStats(c *fiber.Ctx) error {
	stats, err := h.reports.OrderStats()
	if err != nil {
		return apperr.Respond(c, err, "internal")
	}
	return c.JSON(stats)
}

func (h *AdminHandler) DailyStats(c *fiber.Ctx) error {
	days, err := h.reports.DailyStats()
	if err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	return c.JSON(days)
}

func (h *AdminHandler) UserStats(c *fiber.Ctx) error {
	stats, err := h.accounts.UserStats()
	if err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	return c.JSON(stats)
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.accounts.ListUsers()
	if err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	return c.JSON(users)
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := paramID(c, "Invalid user id")
	if err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	if err := h.accounts.DeleteUser(id); err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	return c.JSON(dto.MessageResponse{Message: "✅ تم الحذف"})
}

func (h *AdminHandler) Team(c *fiber.Ctx) error {
	members, err := h.accounts.Team()
	if err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	return c.JSON(members)
}

func (h *AdminHandler) Invoices(c *fiber.Ctx) error {
	invoices, err := h.accounts.Invoices(c.QueryInt("limit", defaultInvoiceLimit))
	if err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	return c.JSON(invoices)
}

func (h *AdminHandler) InvoiceStats(c *fiber.Ctx) error {
	stats, err := h.accounts.InvoiceStats()
	if err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	return c.JSON(stats)
}

// Self-profile handlers need only a token: the id must be the caller's own.

func (h *AdminHandler) GetProfile(c *fiber.Ctx) error {
	ident, id, err := self(c)
	if err != nil {
		return apperr.Respond(c, err, "Server error")
	}

	profile, err := h.accounts.Profile(ident.ID, id)
	if err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	return c.JSON(profile)
}

func (h *AdminHandler) UpdateProfile(c *fiber.Ctx) error {
	ident, id, err := self(c)
	if err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	var req ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	if err := h.accounts.UpdateProfile(ident.ID, id, req); err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	return c.JSON(dto.MessageResponse{Message: "Profile updated"})
}

func (h *AdminHandler) ChangePassword(c *fiber.Ctx) error {
	ident, id, err := self(c)
	if err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	var req PasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	if err := h.accounts.ChangePassword(ident.ID, id, req.NewPassword); err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	return c.JSON(dto.MessageResponse{Message: "Password changed"})
}

func self(c *fiber.Ctx) (identity.Identity, uint, error) {
	ident, err := identity.FromContext(c)
	if err != nil {
		return ident, 0, apperr.Unauthorized("Unauthorized")
	}
	id, err := paramID(c, "Invalid id")
	return ident, id, err
}

func paramID(c *fiber.Ctx, msg string) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperr.Validation(msg)
	}
	return uint(id), nil
}
