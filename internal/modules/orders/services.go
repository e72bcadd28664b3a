package orders

import (
	"errors"
	"strings"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/apperr"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/links"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/order"
	"gorm.io/gorm"
)

var ErrUnknownSiteType = apperr.Validation("نوع الموقع غير موجود")

// featureTables are the order link tables whose names appear in order lists.
var featureTables = []links.Table{links.OrderFeatures, links.OrderMobileFeatures, links.OrderSystemFeatures}

type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateWeb stores a website order with its features and target platforms
// and returns the stored row.
func (s *OrderService) CreateWeb(req WebOrderRequest) (*models.Order, error) {
	if missing := req.missing(); len(missing) > 0 {
		return nil, apperr.MissingFields(missing...)
	}

	var created models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SiteType{}).Where("id = ?", req.SiteTypeID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrUnknownSiteType
		}

		id, err := order.NewInsert().
			UserID(req.UserID).
			SiteTypeID(req.SiteTypeID).
			Type(order.TypeWeb).
			Section(order.SectionWebLatin).
			Platform(order.PlatformWeb).
			Description(req.Description).
			Notes(req.Description).
			BudgetID(req.BudgetID).
			Status(order.StatusProcessing).
			Exec(tx)
		if err != nil {
			return err
		}

		if err := links.Insert(tx, id, req.Features, func(o, f uint) models.OrderFeature {
			return models.OrderFeature{OrderID: o, FeatureID: f}
		}); err != nil {
			return err
		}

		if len(req.Platforms) > 0 {
			var platformIDs []uint
			if err := tx.Model(&models.AppPlatform{}).Where("name IN ?", req.Platforms).Pluck("id", &platformIDs).Error; err != nil {
				return err
			}
			if err := links.Insert(tx, id, platformIDs, func(o, p uint) models.OrderPlatform {
				return models.OrderPlatform{OrderID: o, PlatformID: p}
			}); err != nil {
				return err
			}
		}

		return tx.First(&created, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateMobile stores an app order. The budget falls back to the chosen
// plan's budget, and the selected feature names are written to notes.
func (s *OrderService) CreateMobile(req MobileOrderRequest) (uint, error) {
	if missing := req.missing(); len(missing) > 0 {
		return 0, apperr.MissingFields(missing...)
	}

	platform, appType := order.PlatformAndroid, order.TypeAndroidApp
	if strings.EqualFold(req.Platform, "ios") {
		platform, appType = order.PlatformIOS, order.TypeIOSApp
	}

	var id uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		budget, budgetID := req.Budget, req.BudgetID
		if budget == "" || budgetID == 0 {
			pb, err := planBudget(tx, req.AppTypeID)
			if err != nil {
				return err
			}
			if pb != nil {
				budget, budgetID = pb.Label, pb.ID
			}
		}

		var names []string
		if ids := links.Unique(req.SelectedFeatures); len(ids) > 0 {
			if err := tx.Model(&models.MobileFeature{}).Where("id IN ?", ids).Order("id ASC").Pluck("name", &names).Error; err != nil {
				return err
			}
		}

		var err error
		id, err = order.NewInsert().
			UserID(req.UserID).
			AppTypeID(req.AppTypeID).
			Title(req.AppName).
			AppName(req.AppName).
			Description(req.Description).
			Idea(req.Idea).
			Audience(req.Audience).
			Details(req.Details).
			Notes(strings.Join(names, "\n")).
			Budget(budget).
			BudgetID(budgetID).
			Type(appType).
			Section(order.SectionMobile).
			Platform(platform).
			Status(order.StatusProcessing).
			Exec(tx)
		if err != nil {
			return err
		}

		return links.Insert(tx, id, req.SelectedFeatures, func(o, f uint) models.OrderMobileFeature {
			return models.OrderMobileFeature{OrderID: o, FeatureID: f}
		})
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// planBudget returns the budget attached to a mobile plan, or nil.
func planBudget(tx *gorm.DB, planID uint) (*models.Budget, error) {
	var plan models.MobilePlan
	err := tx.Select("id", "budget_id").First(&plan, planID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && plan.BudgetID == nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var budget models.Budget
	err = tx.First(&budget, *plan.BudgetID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

func (s *OrderService) CreateSEO(req SeoOrderRequest) (uint, error) {
	if missing := req.missing(); len(missing) > 0 {
		return 0, apperr.MissingFields(missing...)
	}

	return order.NewInsert().
		UserID(req.UserID).
		SEOGoalID(req.GoalID).
		Type(order.TypeSEORocket).
		Section(order.SectionSEO).
		Platform(order.PlatformSEO).
		Site(req.Site).
		Notes(req.Keywords).
		Details(req.Details).
		BudgetID(req.BudgetID).
		Status(order.StatusPending).
		Exec(s.db)
}

// CreateSystem stores a system-development order. The service name comes
// from the system type, falling back to the section name when unknown.
func (s *OrderService) CreateSystem(req SystemOrderRequest) (*SystemOrder, error) {
	if missing := req.missing(); len(missing) > 0 {
		return nil, apperr.MissingFields(missing...)
	}

	var result SystemOrder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var service *models.SystemType
		var st models.SystemType
		err := tx.First(&st, req.SystemTypeID).Error
		switch {
		case err == nil:
			service = &st
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		serviceName := order.SectionSystem
		if service != nil {
			serviceName = service.Name
		}

		var budget *models.Budget
		if req.BudgetID > 0 {
			var b models.Budget
			err := tx.First(&b, req.BudgetID).Error
			switch {
			case err == nil:
				budget = &b
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return err
			}
		}

		id, err := order.NewInsert().
			UserID(req.UserID).
			SystemTypeID(req.SystemTypeID).
			Type(serviceName).
			Section(order.SectionSystem).
			Platform(order.PlatformSystem).
			Description(req.Description).
			Idea(req.Idea).
			Details(req.Details).
			Notes(req.Audience).
			BudgetID(req.BudgetID).
			Status(order.StatusProcessing).
			Exec(tx)
		if err != nil {
			return err
		}

		if err := links.Insert(tx, id, req.Features, func(o, f uint) models.OrderSystemFeature {
			return models.OrderSystemFeature{OrderID: o, FeatureID: f}
		}); err != nil {
			return err
		}

		if err := tx.First(&result.Order, id).Error; err != nil {
			return err
		}
		features, err := links.Load(tx, links.OrderSystemFeatures, []uint{id})
		if err != nil {
			return err
		}

		result.Features = features[id]
		if result.Features == nil {
			result.Features = []models.Feature{}
		}
		result.Service = service
		if service != nil {
			result.ServiceName = &service.Name
		}
		result.Budget = budget
		if budget != nil {
			result.BudgetLabel = &budget.Label
			result.MinPrice = budget.MinPrice
			result.MaxPrice = budget.MaxPrice
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MyOrders lists a customer's orders, newest first, with effective status.
func (s *OrderService) MyOrders(userID uint, f MyOrdersFilter) ([]MyOrder, error) {
	q := order.Joined(s.db).Where("o.user_id = ?", userID)
	if f.Status != "" {
		q = q.Scopes(order.WithStatus(f.Status))
	}
	if f.Section != "" {
		q = q.Where("o.section = ?", f.Section)
	}
	if f.Start != nil && f.End != nil {
		q = q.Scopes(order.CreatedBetween(*f.Start, *f.End))
	}

	var rows []order.Row
	if err := q.Order("o.created_at DESC").Order("o.id DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	features, err := order.FeatureNames(s.db, ids, featureTables...)
	if err != nil {
		return nil, err
	}
	platforms, err := links.Names(s.db, links.OrderPlatforms, ids)
	if err != nil {
		return nil, err
	}

	out := make([]MyOrder, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		out = append(out, MyOrder{
			ID:          r.ID,
			Type:        r.Type,
			TypeAr:      r.TypeName(),
			Section:     r.Section,
			Platform:    r.Platform,
			Notes:       r.Notes,
			Status:      r.EffectiveStatus,
			CreatedAt:   r.CreatedAt,
			Description: r.Description,
			Budget:      r.Budget,
			BudgetObj:   r.BudgetView(),
			Features:    orEmpty(features[r.ID]),
			Platforms:   orEmpty(platforms[r.ID]),
		})
	}
	return out, nil
}

// MyStats counts a customer's orders by effective status.
func (s *OrderService) MyStats(userID uint, f MyOrdersFilter) (map[string]int64, error) {
	q := order.Joined(s.db).Where("o.user_id = ?", userID)
	if f.Start != nil && f.End != nil {
		q = q.Scopes(order.CreatedBetween(*f.Start, *f.End))
	}

	var rows []order.Row
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return order.CountStatuses(rows), nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
