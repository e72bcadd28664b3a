package orders

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/order"
)

type WebOrderRequest struct {
	UserID      uint     `json:"user_id"`
	SiteTypeID  uint     `json:"site_type_id"`
	Description string   `json:"description"`
	Features    []uint   `json:"features"`
	Platforms   []string `json:"platforms"`
	BudgetID    uint     `json:"budget_id"`
}

func (r WebOrderRequest) missing() []string {
	return missingFields(field{"site_type_id", r.SiteTypeID > 0}, field{"description", r.Description != ""})
}

type MobileOrderRequest struct {
	UserID           uint   `json:"user_id"`
	AppTypeID        uint   `json:"app_type_id"`
	AppName          string `json:"app_name"`
	Idea             string `json:"idea"`
	Description      string `json:"description"`
	Audience         string `json:"audience"`
	Budget           string `json:"budget"`
	BudgetID         uint   `json:"budget_id"`
	Platform         string `json:"platform"`
	SelectedFeatures []uint `json:"selectedFeatures"`
	Details          string `json:"details"`
}

func (r MobileOrderRequest) missing() []string {
	return missingFields(
		field{"user_id", r.UserID > 0},
		field{"app_type_id", r.AppTypeID > 0},
		field{"app_name", r.AppName != ""},
		field{"description", r.Description != ""},
		field{"platform", r.Platform != ""},
	)
}

type SeoOrderRequest struct {
	UserID   uint   `json:"user_id"`
	Site     string `json:"site"`
	GoalID   uint   `json:"goal_id"`
	Keywords string `json:"keywords"`
	Details  string `json:"details"`
	BudgetID uint   `json:"budget_id"`
}

func (r SeoOrderRequest) missing() []string {
	return missingFields(
		field{"user_id", r.UserID > 0},
		field{"site", r.Site != ""},
		field{"goal_id", r.GoalID > 0},
		field{"budget_id", r.BudgetID > 0},
	)
}

type SystemOrderRequest struct {
	UserID       uint   `json:"user_id"`
	SystemTypeID uint   `json:"system_type_id"`
	Description  string `json:"description"`
	Audience     string `json:"audience"`
	BudgetID     uint   `json:"budget_id"`
	Features     []uint `json:"features"`
	Idea         string `json:"idea"`
	Details      string `json:"details"`
}

func (r SystemOrderRequest) missing() []string {
	return missingFields(field{"system_type_id", r.SystemTypeID > 0}, field{"description", r.Description != ""})
}

// SystemOrder is a freshly created system order with its service, budget
// and features resolved.
type SystemOrder struct {
	models.Order
	ServiceName *string            `json:"service_name"`
	BudgetLabel *string            `json:"budget_label"`
	MinPrice    *float64           `json:"min_price"`
	MaxPrice    *float64           `json:"max_price"`
	Features    []models.Feature   `json:"features"`
	Budget      *models.Budget     `json:"budget"`
	Service     *models.SystemType `json:"service"`
}

// MyOrder is one row of a customer's order history.
type MyOrder struct {
	ID          uint             `json:"id"`
	Type        *string          `json:"type"`
	TypeAr      *string          `json:"type_ar"`
	Section     *string          `json:"section"`
	Platform    *string          `json:"platform"`
	Notes       *string          `json:"notes"`
	Status      *string          `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	Description *string          `json:"description"`
	Budget      *string          `json:"budget"`
	BudgetObj   order.BudgetView `json:"budget_obj"`
	Features    []string         `json:"features"`
	Platforms   []string         `json:"platforms"`
}

type MyOrdersResponse struct {
	Orders []MyOrder `json:"orders"`
}

// MyOrdersFilter narrows a customer's history. Zero values are ignored.
type MyOrdersFilter struct {
	Status  string
	Section string
	Start   *time.Time
	End     *time.Time
}

type field struct {
	name    string
	present bool
}

func missingFields(fields ...field) []string {
	var out []string
	for _, f := range fields {
		if !f.present {
			out = append(out, f.name)
		}
	}
	return out
}
