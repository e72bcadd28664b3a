package order

import (
	"sort"
	"time"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
)

// budgetBuckets maps the budget labels used by web, system and developer
// orders to the amount reported as revenue.
var budgetBuckets = map[string]float64{
	"3000-7000":   5000,
	"7000-15000":  11000,
	"15000-30000": 22500,
	"30000+":      30000,
}

// BucketRevenue returns the fixed revenue for a budget label.
func BucketRevenue(label string) (float64, bool) {
	v, ok := budgetBuckets[label]
	return v, ok
}

// Pricing carries the prices joined onto an order for revenue estimates.
type Pricing struct {
	PlanPrice      *float64 // mobile_plans.price via app_type_id
	BudgetMinPrice *float64 // budgets.min_price via budget_id
}

// ListRevenue is the estimate shown in the admin order list: bucket first,
// then the plan price for app orders, then the budget floor for SEO orders.
func ListRevenue(o *models.Order, p Pricing) float64 {
	if v, ok := BucketRevenue(deref(o.Budget)); ok {
		return v
	}
	switch deref(o.Type) {
	case TypeIOSApp, TypeAndroidApp:
		if p.PlanPrice != nil {
			return *p.PlanPrice
		}
	case TypeSEORocket:
		if p.BudgetMinPrice != nil {
			return *p.BudgetMinPrice
		}
	}
	return 0
}

// ChartRevenue is the per-section estimate used by the revenue chart.
func ChartRevenue(o *models.Order, p Pricing) float64 {
	switch deref(o.Section) {
	case SectionSEO:
		if p.BudgetMinPrice != nil {
			return *p.BudgetMinPrice
		}
	case SectionMobile:
		if p.PlanPrice != nil {
			return *p.PlanPrice
		}
	case SectionWeb, SectionSystem, SectionDeveloper:
		v, _ := BucketRevenue(deref(o.Budget))
		return v
	}
	return 0
}

// DailyPoint is one day of the revenue chart.
type DailyPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// Priced pairs an order with its joined prices.
type Priced struct {
	Order   *models.Order
	Pricing Pricing
}

// DailyRevenue sums ChartRevenue per UTC calendar day, oldest first.
func DailyRevenue(rows []Priced) []DailyPoint {
	totals := make(map[string]float64)
	for _, r := range rows {
		day := r.Order.CreatedAt.UTC().Format(time.DateOnly)
		totals[day] += ChartRevenue(r.Order, r.Pricing)
	}

	points := make([]DailyPoint, 0, len(totals))
	for day, total := range totals {
		points = append(points, DailyPoint{Date: day, Revenue: total})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}
