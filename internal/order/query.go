package order

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/links"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"gorm.io/gorm"
)

// Row is an order plus the names and prices joined on by the list endpoints.
type Row struct {
	models.Order
	EffectiveStatus *string
	SiteTypeName    *string
	SystemTypeName  *string
	PlanName        *string
	PlanPrice       *float64
	BudgetLabel     *string
	MinPrice        *float64
	MaxPrice        *float64
	CustomerName    *string
	CustomerAvatar  *string
}

// Pricing returns the joined prices used by the revenue estimates.
func (r *Row) Pricing() Pricing {
	return Pricing{PlanPrice: r.PlanPrice, BudgetMinPrice: r.MinPrice}
}

// TypeName is the most specific label for what was ordered.
func (r *Row) TypeName() *string {
	for _, s := range []*string{r.SiteTypeName, r.SystemTypeName, r.PlanName} {
		if s != nil {
			return s
		}
	}
	return r.Type
}

// BudgetView is the budget as shown next to an order.
type BudgetView struct {
	Label *string  `json:"label"`
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
}

func (r *Row) BudgetView() BudgetView {
	label := r.BudgetLabel
	if label == nil {
		label = r.Budget
	}
	return BudgetView{Label: label, Min: r.MinPrice, Max: r.MaxPrice}
}

// Joined selects from orders (aliased o) with the effective status and the
// joined catalog, budget and customer columns that Row expects.
func Joined(db *gorm.DB) *gorm.DB {
	status, args := EffectiveStatusSQL("o")
	return db.Table("orders AS o").
		Select("o.*, ("+status+") AS effective_status, "+
			"st.name AS site_type_name, sy.name AS system_type_name, "+
			"mp.name AS plan_name, mp.price AS plan_price, "+
			"b.label AS budget_label, b.min_price AS min_price, b.max_price AS max_price, "+
			"u.full_name AS customer_name, u.avatar AS customer_avatar", args...).
		Joins("LEFT JOIN users u ON u.id = o.user_id").
		Joins("LEFT JOIN site_types st ON st.id = o.site_type_id").
		Joins("LEFT JOIN system_types sy ON sy.id = o.system_type_id").
		Joins("LEFT JOIN mobile_plans mp ON mp.id = o.app_type_id").
		Joins("LEFT JOIN budgets b ON b.id = o.budget_id")
}

// WithStatus filters on the effective status.
func WithStatus(status string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		expr, args := EffectiveStatusSQL("o")
		return db.Where("("+expr+") = ?", append(args, status)...)
	}
}

// CreatedBetween keeps orders created on any day from start to end, inclusive.
func CreatedBetween(start, end time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("o.created_at >= ? AND o.created_at < ?", start, end.AddDate(0, 0, 1))
	}
}

// ParseDay reads a YYYY-MM-DD date as midnight UTC.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(time.DateOnly, s, time.UTC)
}

// FeatureNames gathers the linked names of each order across tables.
// Orders with no links are absent from the map.
func FeatureNames(db *gorm.DB, ids []uint, tables ...links.Table) (map[uint][]string, error) {
	out := make(map[uint][]string, len(ids))
	for _, t := range tables {
		names, err := links.Names(db, t, ids)
		if err != nil {
			return nil, err
		}
		for id, ns := range names {
			out[id] = append(out[id], ns...)
		}
	}
	return out, nil
}

// CountStatuses tallies rows by effective status: "total" plus one key per
// tracked status, zero when absent.
func CountStatuses(rows []Row) map[string]int64 {
	counts := make(map[string]int64, len(TrackedStatuses)+1)
	for _, st := range TrackedStatuses {
		counts[st] = 0
	}
	for i := range rows {
		st := rows[i].EffectiveStatus
		if st == nil {
			continue
		}
		if _, ok := counts[*st]; ok {
			counts[*st]++
		}
	}
	counts["total"] = int64(len(rows))
	return counts
}
