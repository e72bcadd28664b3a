package catalog

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CatalogModule struct{}

func New() *CatalogModule {
	return &CatalogModule{}
}

func (m *CatalogModule) ID() string { return "catalog" }

func (m *CatalogModule) Models() []interface{} {
	return []interface{}{
		&models.Plan{},
		&models.MobilePlan{},
		&models.SeoGoal{},
		&models.SiteType{},
		&models.WebDeveloper{},
		&models.SystemType{},
		&models.PlanFeature{},
		&models.MobilePlanFeature{},
		&models.SeoGoalFeature{},
		&models.WebTypeFeature{},
		&models.WebDeveloperFeature{},
		&models.SystemTypeFeature{},
	}
}

func (m *CatalogModule) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewCatalogService(db)
	handler := NewCatalogHandler(svc)

	auth := middleware.JWTProtected(cfg)
	admin := middleware.AdminRequired(db)

	// Plan families: reads are public, writes need an admin token.
	plans := &familyHandler[models.Plan, *models.Plan, models.PlanFeature, PlanRequest]{
		svc: svc.plans,
		texts: texts{
			invalidID:  "رقم الخطة غير صالح",
			created:    "✅ تم إضافة الخطة بنجاح",
			updated:    "✅ تم تحديث الخطة بنجاح!",
			deleted:    "✅ تم حذف الخطة بنجاح!",
			createdKey: "planId",
			failed:     "فشل في معالجة الخطة",
		},
	}
	plans.mount(router, "/plans", auth, admin)

	mobilePlans := &familyHandler[models.MobilePlan, *models.MobilePlan, models.MobilePlanFeature, MobilePlanRequest]{
		svc: svc.mobilePlans,
		texts: texts{
			invalidID:  "رقم خطة التطبيق غير صالح",
			created:    "✅ تم إضافة خطة التطبيق بنجاح",
			updated:    "✅ تم تحديث خطة التطبيق بنجاح!",
			deleted:    "✅ تم حذف خطة التطبيق بنجاح!",
			createdKey: "id",
			failed:     "فشل في معالجة خطة التطبيق",
		},
		filter: mobileTypeFilter,
	}
	mobilePlans.mount(router, "/mobile-plans", auth, admin)

	seoGoals := &familyHandler[models.SeoGoal, *models.SeoGoal, models.SeoGoalFeature, SeoGoalRequest]{
		svc: svc.seoGoals,
		texts: texts{
			invalidID:  "رقم خطة الـ SEO غير صالح",
			created:    "✅ تم إضافة خطة الـ SEO بنجاح",
			updated:    "✅ تم تحديث خطة الـ SEO بنجاح!",
			deleted:    "✅ تم حذف خطة الـ SEO بنجاح!",
			createdKey: "goalId",
			failed:     "فشل في معالجة خطة الـ SEO",
		},
	}
	seoGoals.mount(router, "/seo-goals", auth, admin)

	siteTypes := &familyHandler[models.SiteType, *models.SiteType, models.WebTypeFeature, SiteTypeRequest]{
		svc: svc.siteTypes,
		texts: texts{
			invalidID:  "رقم نوع الموقع غير صالح",
			created:    "✅ تم إضافة نوع الموقع بنجاح",
			updated:    "✅ تم تحديث نوع الموقع بنجاح!",
			deleted:    "✅ تم حذف نوع الموقع بنجاح!",
			createdKey: "typeId",
			failed:     "فشل في معالجة نوع الموقع",
		},
	}
	siteTypes.mount(router, "/site_types", auth, admin)

	developers := &familyHandler[models.WebDeveloper, *models.WebDeveloper, models.WebDeveloperFeature, DeveloperRequest]{
		svc: svc.developers,
		texts: texts{
			invalidID:  "رقم خطة المطور غير صالح",
			created:    "✅ تم إضافة خطة المطور بنجاح",
			updated:    "✅ تم تحديث خطة المطور بنجاح!",
			deleted:    "✅ تم حذف خطة المطور بنجاح!",
			createdKey: "devId",
			failed:     "فشل في معالجة خطة المطور",
		},
	}
	developers.mount(router, "/web-developer", auth, admin)

	// Feature lookups
	mobileFeatures := &LookupHandler{svc: NewLookupService(db, models.TableMobileFeatures)}
	router.Get("/mobile-features/:type", mobileFeatures.ForMobileType)
	mobileFeatures.mount(router, "/mobile-features", auth, admin)

	for path, table := range map[string]string{
		"/features":           models.TableFeatures,
		"/web-features":       models.TableWebFeatures,
		"/seo-features":       models.TableSeoFeatures,
		"/developer-features": models.TableDeveloperFeatures,
	} {
		lookup := &LookupHandler{svc: NewLookupService(db, table)}
		lookup.mount(router, path, auth, admin)
	}

	// Budgets
	router.Get("/budgets", handler.ListBudgets)
	router.Get("/budgets/:section", handler.BudgetsBySection)
	router.Post("/budgets", auth, admin, handler.CreateBudget)
	router.Put("/budgets/:id", auth, admin, handler.UpdateBudget)
	router.Delete("/budgets/:id", auth, admin, handler.DeleteBudget)

	// Flat lookups, system types
	router.Get("/site-types", handler.ListSiteTypeOptions)
	router.Get("/platforms", handler.ListPlatforms)
	router.Get("/system-types", handler.ListSystemTypes)
	router.Get("/system-types/:id/features", handler.SystemTypeFeatures)
	router.Post("/system-types/:id/features", auth, admin, handler.ReplaceSystemTypeFeatures)
}
