package catalog

import (
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/links"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"gorm.io/gorm"
)

const (
	MobileTypeAndroid = "android"
	MobileTypeIOS     = "ios"
)

type CatalogService struct {
	db *gorm.DB

	plans       *family[models.Plan, *models.Plan, models.PlanFeature]
	mobilePlans *family[models.MobilePlan, *models.MobilePlan, models.MobilePlanFeature]
	seoGoals    *family[models.SeoGoal, *models.SeoGoal, models.SeoGoalFeature]
	siteTypes   *family[models.SiteType, *models.SiteType, models.WebTypeFeature]
	developers  *family[models.WebDeveloper, *models.WebDeveloper, models.WebDeveloperFeature]
	systemTypes *family[systemTypeRow, *systemTypeRow, models.SystemTypeFeature]
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{
		db: db,
		plans: &family[models.Plan, *models.Plan, models.PlanFeature]{
			db:     db,
			parent: "plans",
			table:  links.PlanFeatures,
			link: func(p, f uint) models.PlanFeature {
				return models.PlanFeature{PlanID: p, FeatureID: f}
			},
			order:    "price ASC",
			notFound: "الخطة غير موجودة",
		},
		mobilePlans: &family[models.MobilePlan, *models.MobilePlan, models.MobilePlanFeature]{
			db:     db,
			parent: "mobile_plans",
			table:  links.MobilePlanFeatures,
			link: func(p, f uint) models.MobilePlanFeature {
				return models.MobilePlanFeature{MobilePlanID: p, FeatureID: f}
			},
			order:    "price ASC",
			notFound: "خطة التطبيق غير موجودة",
		},
		seoGoals: &family[models.SeoGoal, *models.SeoGoal, models.SeoGoalFeature]{
			db:     db,
			parent: "seo_goals",
			table:  links.SeoGoalFeatures,
			link: func(p, f uint) models.SeoGoalFeature {
				return models.SeoGoalFeature{SeoGoalID: p, FeatureID: f}
			},
			order: "budgets.min_price ASC",
			query: func(q *gorm.DB) *gorm.DB {
				return q.Select("seo_goals.*").
					Joins("LEFT JOIN budgets ON seo_goals.budget_id = budgets.id").
					Preload("Budget")
			},
			notFound: "خطة الـ SEO غير موجودة",
		},
		siteTypes: &family[models.SiteType, *models.SiteType, models.WebTypeFeature]{
			db:     db,
			parent: "site_types",
			table:  links.WebTypeFeatures,
			link: func(p, f uint) models.WebTypeFeature {
				return models.WebTypeFeature{WebTypeID: p, FeatureID: f}
			},
			order:    "price ASC",
			notFound: "نوع الموقع غير موجود",
		},
		developers: &family[models.WebDeveloper, *models.WebDeveloper, models.WebDeveloperFeature]{
			db:     db,
			parent: "web_developer",
			table:  links.WebDeveloperFeatures,
			link: func(p, f uint) models.WebDeveloperFeature {
				return models.WebDeveloperFeature{DeveloperID: p, FeatureID: f}
			},
			order:    "price ASC",
			notFound: "خطة المطور غير موجودة",
		},
		systemTypes: &family[systemTypeRow, *systemTypeRow, models.SystemTypeFeature]{
			db:     db,
			parent: "system_types",
			table:  links.SystemTypeFeatures,
			link: func(p, f uint) models.SystemTypeFeature {
				return models.SystemTypeFeature{SystemTypeID: p, FeatureID: f}
			},
			order:    "id ASC",
			notFound: "الخدمة غير موجودة",
		},
	}
}

// systemTypeRow lets SystemType reuse the family helpers. System types
// expose their features through a sub-resource, not inline.
type systemTypeRow models.SystemType

func (systemTypeRow) TableName() string { return "system_types" }

func (r *systemTypeRow) LinkID() uint {
	return r.ID
}

func (r *systemTypeRow) SetFeatures([]models.Feature) {}

// Budgets

func (s *CatalogService) ListBudgets(section string) ([]models.Budget, error) {
	rows := []models.Budget{}
	q := s.db.Order("min_price ASC")
	if section != "" {
		q = q.Where("section = ?", section)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (s *CatalogService) CreateBudget(b *models.Budget) error {
	return s.db.Create(b).Error
}

func (s *CatalogService) UpdateBudget(id uint, b *models.Budget) error {
	result := s.db.Model(&models.Budget{}).Where("id = ?", id).Updates(map[string]interface{}{
		"label":     b.Label,
		"value":     b.Value,
		"section":   b.Section,
		"min_price": b.MinPrice,
		"max_price": b.MaxPrice,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Budget not found")
	}
	return nil
}

func (s *CatalogService) DeleteBudget(id uint) error {
	result := s.db.Where("id = ?", id).Delete(&models.Budget{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Budget not found")
	}
	return nil
}

// Platforms

func (s *CatalogService) ListPlatforms() ([]models.AppPlatform, error) {
	rows := []models.AppPlatform{}
	err := s.db.Order("id ASC").Find(&rows).Error
	return rows, err
}

// ListSiteTypeOptions is the flat site-type lookup, without features.
func (s *CatalogService) ListSiteTypeOptions() ([]SiteTypeOption, error) {
	rows := []SiteTypeOption{}
	err := s.db.Model(&models.SiteType{}).Order("id ASC").Find(&rows).Error
	return rows, err
}

// System types

func (s *CatalogService) ListSystemTypes() ([]models.SystemType, error) {
	rows := []models.SystemType{}
	err := s.db.Order("id ASC").Find(&rows).Error
	return rows, err
}

func (s *CatalogService) SystemTypeFeatures(id uint) ([]models.Feature, error) {
	grouped, err := links.Load(s.db, links.SystemTypeFeatures, []uint{id})
	if err != nil {
		return nil, err
	}
	if fs := grouped[id]; fs != nil {
		return fs, nil
	}
	return []models.Feature{}, nil
}

func (s *CatalogService) ReplaceSystemTypeFeatures(id uint, featureIDs []uint) error {
	return s.systemTypes.ReplaceFeatures(id, featureIDs)
}
