package orders

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/identity"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/order"
	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service *OrderService
}

func NewOrderHandler(service *OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

func (h *OrderHandler) CreateWeb(c *fiber.Ctx) error {
	var req WebOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	created, err := h.service.CreateWeb(req)
	if err != nil {
		return apperr.Respond(c, err, "فشل في إنشاء الطلب")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "✅ تم إنشاء الطلب بنجاح!",
		"order":   created,
	})
}

func (h *OrderHandler) CreateMobile(c *fiber.Ctx) error {
	var req MobileOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	id, err := h.service.CreateMobile(req)
	if err != nil {
		return apperr.Respond(c, err, "فشل في إرسال الطلب")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "✅ تم إرسال الطلب بنجاح!",
		"order_id": id,
	})
}

func (h *OrderHandler) CreateSEO(c *fiber.Ctx) error {
	var req SeoOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	id, err := h.service.CreateSEO(req)
	if err != nil {
		return apperr.Respond(c, err, "فشل في إرسال طلب SEO")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "✅ تم استلام طلب SEO بنجاح!",
		"order_id": id,
	})
}

func (h *OrderHandler) CreateSystem(c *fiber.Ctx) error {
	var req SystemOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	created, err := h.service.CreateSystem(req)
	if err != nil {
		return apperr.Respond(c, err, "فشل في إنشاء طلب النظام")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "✅ تم إنشاء طلب تطوير النظام بنجاح!",
		"order":   created,
	})
}

func (h *OrderHandler) MyOrders(c *fiber.Ctx) error {
	ident, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}

	filter, err := parseFilter(c)
	if err != nil {
		return apperr.Respond(c, err, "خطأ في جلب الطلبات")
	}

	rows, err := h.service.MyOrders(ident.ID, filter)
	if err != nil {
		return apperr.Respond(c, err, "خطأ في جلب الطلبات")
	}
	return c.JSON(MyOrdersResponse{Orders: rows})
}

func (h *OrderHandler) MyStats(c *fiber.Ctx) error {
	ident, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	}

	filter, err := parseFilter(c)
	if err != nil {
		return apperr.Respond(c, err, "internal server error")
	}

	stats, err := h.service.MyStats(ident.ID, filter)
	if err != nil {
		return apperr.Respond(c, err, "internal server error")
	}
	return c.JSON(stats)
}

// parseFilter reads status, section and the start_date/end_date pair.
// The date range applies only when both ends are given.
func parseFilter(c *fiber.Ctx) (MyOrdersFilter, error) {
	f := MyOrdersFilter{
		Status:  c.Query("status"),
		Section: c.Query("section"),
	}

	start, end := c.Query("start_date"), c.Query("end_date")
	if start == "" || end == "" {
		return f, nil
	}
	from, err := order.ParseDay(start)
	if err != nil {
		return f, apperr.Validation("start_date must be YYYY-MM-DD")
	}
	to, err := order.ParseDay(end)
	if err != nil {
		return f, apperr.Validation("end_date must be YYYY-MM-DD")
	}
	f.Start, f.End = &from, &to
	return f, nil
}
