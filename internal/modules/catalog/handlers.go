package catalog

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/links"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// texts holds the user-facing messages of one catalog family.
type texts struct {
	invalidID  string
	created    string
	updated    string
	deleted    string
	createdKey string
	failed     string
}

// familyHandler serves list/get/create/update/delete for one plan-like family.
type familyHandler[T any, PT interface {
	*T
	links.Holder
}, L any, R payload[T]] struct {
	svc    *family[T, PT, L]
	texts  texts
	filter func(c *fiber.Ctx) (func(*gorm.DB) *gorm.DB, error)
}

func (h *familyHandler[T, PT, L, R]) List(c *fiber.Ctx) error {
	var scopes []func(*gorm.DB) *gorm.DB
	if h.filter != nil {
		scope, err := h.filter(c)
		if err != nil {
			return apperr.Respond(c, err, h.texts.failed)
		}
		scopes = append(scopes, scope)
	}

	rows, err := h.svc.List(scopes...)
	if err != nil {
		return apperr.Respond(c, err, h.texts.failed)
	}
	return c.JSON(rows)
}

func (h *familyHandler[T, PT, L, R]) Get(c *fiber.Ctx) error {
	id, err := paramID(c, h.texts.invalidID)
	if err != nil {
		return apperr.Respond(c, err, h.texts.failed)
	}

	row, err := h.svc.Get(id)
	if err != nil {
		return apperr.Respond(c, err, h.texts.failed)
	}
	return c.JSON(row)
}

func (h *familyHandler[T, PT, L, R]) Create(c *fiber.Ctx) error {
	var req R
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	if missing := req.missing(false); len(missing) > 0 {
		return apperr.Respond(c, apperr.MissingFields(missing...), h.texts.failed)
	}

	row := req.row()
	id, err := h.svc.Create(&row, req.featureIDs())
	if err != nil {
		return apperr.Respond(c, err, h.texts.failed)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":          h.texts.created,
		h.texts.createdKey: id,
	})
}

func (h *familyHandler[T, PT, L, R]) Update(c *fiber.Ctx) error {
	id, err := paramID(c, h.texts.invalidID)
	if err != nil {
		return apperr.Respond(c, err, h.texts.failed)
	}

	var req R
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	if missing := req.missing(true); len(missing) > 0 {
		return apperr.Respond(c, apperr.MissingFields(missing...), h.texts.failed)
	}

	if err := h.svc.Update(id, req.values(), req.featureIDs()); err != nil {
		return apperr.Respond(c, err, h.texts.failed)
	}
	return c.JSON(dto.MessageResponse{Message: h.texts.updated})
}

func (h *familyHandler[T, PT, L, R]) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, h.texts.invalidID)
	if err != nil {
		return apperr.Respond(c, err, h.texts.failed)
	}

	if err := h.svc.Delete(id); err != nil {
		return apperr.Respond(c, err, h.texts.failed)
	}
	return c.JSON(dto.MessageResponse{Message: h.texts.deleted})
}

// mount registers the five routes of a family. Writes go through guards.
func (h *familyHandler[T, PT, L, R]) mount(router fiber.Router, path string, guards ...fiber.Handler) {
	router.Get(path, h.List)
	router.Get(path+"/:id", h.Get)
	router.Post(path, append(guards, h.Create)...)
	router.Put(path+"/:id", append(guards, h.Update)...)
	router.Delete(path+"/:id", append(guards, h.Delete)...)
}

func paramID(c *fiber.Ctx, msg string) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperr.Validation(msg)
	}
	return uint(id), nil
}

// LookupHandler serves one feature lookup table.
type LookupHandler struct {
	svc *LookupService
}

func (h *LookupHandler) List(c *fiber.Ctx) error {
	rows, err := h.svc.List()
	if err != nil {
		return apperr.Respond(c, err, "Failed to fetch features")
	}
	return c.JSON(rows)
}

func (h *LookupHandler) Create(c *fiber.Ctx) error {
	var req NameRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Feature name required"})
	}

	row, err := h.svc.Create(req.Name)
	if err != nil {
		return apperr.Respond(c, err, "Failed to add feature")
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

func (h *LookupHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "Invalid feature id")
	if err != nil {
		return apperr.Respond(c, err, "Failed to update feature")
	}
	var req NameRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid input"})
	}

	if err := h.svc.Rename(id, req.Name); err != nil {
		return apperr.Respond(c, err, "Failed to update feature")
	}
	return c.JSON(dto.MessageResponse{Message: "Feature updated"})
}

func (h *LookupHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "Invalid feature id")
	if err != nil {
		return apperr.Respond(c, err, "Failed to delete feature")
	}

	if err := h.svc.Delete(id); err != nil {
		return apperr.Respond(c, err, "Failed to delete feature")
	}
	return c.JSON(dto.MessageResponse{Message: "Feature deleted"})
}

func (h *LookupHandler) ForMobileType(c *fiber.Ctx) error {
	rows, err := h.svc.ForMobileType(c.Params("type"))
	if err != nil {
		return apperr.Respond(c, err, "Failed to fetch features")
	}
	return c.JSON(rows)
}

func (h *LookupHandler) mount(router fiber.Router, path string, guards ...fiber.Handler) {
	router.Get(path, h.List)
	router.Post(path, append(guards, h.Create)...)
	router.Put(path+"/:id<int>", append(guards, h.Update)...)
	router.Delete(path+"/:id<int>", append(guards, h.Delete)...)
}

// CatalogHandler serves budgets, platforms and system types.
type CatalogHandler struct {
	svc *CatalogService
}

func NewCatalogHandler(svc *CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) ListBudgets(c *fiber.Ctx) error {
	rows, err := h.svc.ListBudgets(c.Query("section"))
	if err != nil {
		return apperr.Respond(c, err, "فشل في جلب الميزانيات")
	}
	return c.JSON(rows)
}

func (h *CatalogHandler) BudgetsBySection(c *fiber.Ctx) error {
	rows, err := h.svc.ListBudgets(c.Params("section"))
	if err != nil {
		return apperr.Respond(c, err, "فشل في جلب الميزانيات")
	}
	return c.JSON(rows)
}

func (h *CatalogHandler) CreateBudget(c *fiber.Ctx) error {
	var req BudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	if req.Label == "" {
		return apperr.Respond(c, apperr.MissingFields("label"), "Server error")
	}

	budget := req.model()
	if err := h.svc.CreateBudget(&budget); err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Budget added", "id": budget.ID})
}

func (h *CatalogHandler) UpdateBudget(c *fiber.Ctx) error {
	id, err := paramID(c, "Invalid budget id")
	if err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	var req BudgetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	if req.Label == "" {
		return apperr.Respond(c, apperr.MissingFields("label"), "Server error")
	}

	budget := req.model()
	if err := h.svc.UpdateBudget(id, &budget); err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	return c.JSON(dto.MessageResponse{Message: "Budget updated"})
}

func (h *CatalogHandler) DeleteBudget(c *fiber.Ctx) error {
	id, err := paramID(c, "Invalid budget id")
	if err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	if err := h.svc.DeleteBudget(id); err != nil {
		return apperr.Respond(c, err, "Server error")
	}
	return c.JSON(dto.MessageResponse{Message: "Budget deleted"})
}

func (h *CatalogHandler) ListPlatforms(c *fiber.Ctx) error {
	rows, err := h.svc.ListPlatforms()
	if err != nil {
		return apperr.Respond(c, err, "فشل في جلب البيانات من app_platforms")
	}
	return c.JSON(rows)
}

func (h *CatalogHandler) ListSiteTypeOptions(c *fiber.Ctx) error {
	rows, err := h.svc.ListSiteTypeOptions()
	if err != nil {
		return apperr.Respond(c, err, "فشل في جلب البيانات من site_types")
	}
	return c.JSON(rows)
}

func (h *CatalogHandler) ListSystemTypes(c *fiber.Ctx) error {
	rows, err := h.svc.ListSystemTypes()
	if err != nil {
		return apperr.Respond(c, err, "فشل في جلب الخدمات")
	}
	return c.JSON(rows)
}

func (h *CatalogHandler) SystemTypeFeatures(c *fiber.Ctx) error {
	id, err := paramID(c, "رقم الخدمة غير صالح")
	if err != nil {
		return apperr.Respond(c, err, "خطأ في جلب ميزات الخدمة")
	}
	rows, err := h.svc.SystemTypeFeatures(id)
	if err != nil {
		return apperr.Respond(c, err, "خطأ في جلب ميزات الخدمة")
	}
	return c.JSON(rows)
}

func (h *CatalogHandler) ReplaceSystemTypeFeatures(c *fiber.Ctx) error {
	id, err := paramID(c, "رقم الخدمة غير صالح")
	if err != nil {
		return apperr.Respond(c, err, "خطأ في تحديث الميزات")
	}
	var req FeaturesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	if err := h.svc.ReplaceSystemTypeFeatures(id, req.Features); err != nil {
		return apperr.Respond(c, err, "خطأ في تحديث الميزات")
	}
	return c.JSON(dto.MessageResponse{Message: "تم تحديث الميزات بنجاح!"})
}

func mobileTypeFilter(c *fiber.Ctx) (func(*gorm.DB) *gorm.DB, error) {
	t := strings.ToLower(c.Query("type"))
	if t != "android" && t != "ios" {
		return nil, apperr.Validation("النوع (type) مطلوب: android أو ios")
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("type = ?", t)
	}, nil
}
