package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
)

// Flag decodes true/false, 0/1 and their string forms.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	switch strings.ToLower(s) {
	case "true", "1":
		*f = true
	case "false", "0", "", "null":
		*f = false
	default:
		return fmt.Errorf("invalid flag %q", s)
	}
	return nil
}

var _ json.Unmarshaler = (*Flag)(nil)

// payload is a create/update body for a plan-like row.
type payload[T any] interface {
	missing(update bool) []string
	row() T
	values() map[string]interface{}
	featureIDs() []uint
}

type PlanRequest struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Unit     string   `json:"unit"`
	IsBest   Flag     `json:"is_best"`
	Link     *string  `json:"link"`
	Features []uint   `json:"features"`
}

func (r PlanRequest) missing(bool) []string {
	return missingFields(field{"name", r.Name != ""}, field{"price", positive(r.Price)}, field{"unit", r.Unit != ""})
}

func (r PlanRequest) row() models.Plan {
	return models.Plan{Name: r.Name, Price: *r.Price, Unit: r.Unit, IsBest: bool(r.IsBest), Link: optional(r.Link)}
}

func (r PlanRequest) values() map[string]interface{} {
	return map[string]interface{}{"name": r.Name, "price": *r.Price, "unit": r.Unit, "is_best": bool(r.IsBest), "link": optional(r.Link)}
}

func (r PlanRequest) featureIDs() []uint { return r.Features }

type MobilePlanRequest struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Budget      *string  `json:"budget"`
	Audience    *string  `json:"audience"`
	Price       *float64 `json:"price"`
	Unit        string   `json:"unit"`
	Details     *string  `json:"details"`
	IsBest      Flag     `json:"is_best"`
	Link        *string  `json:"link"`
	Type        string   `json:"type"`
	BudgetID    *uint    `json:"budget_id"`
	Features    []uint   `json:"features"`
}

func (r MobilePlanRequest) missing(update bool) []string {
	fields := []field{
		{"name", r.Name != ""},
		{"title", r.Title != ""},
		{"description", r.Description != ""},
		{"price", positive(r.Price)},
		{"unit", r.Unit != ""},
		{"type", r.Type == MobileTypeAndroid || r.Type == MobileTypeIOS},
	}
	if update {
		fields = append(fields, field{"budget_id", r.BudgetID != nil && *r.BudgetID > 0})
	}
	return missingFields(fields...)
}

func (r MobilePlanRequest) row() models.MobilePlan {
	return models.MobilePlan{
		Name:        r.Name,
		Title:       r.Title,
		Description: r.Description,
		Budget:      optional(r.Budget),
		Audience:    optional(r.Audience),
		Price:       *r.Price,
		Unit:        r.Unit,
		Details:     optional(r.Details),
		IsBest:      bool(r.IsBest),
		Link:        optional(r.Link),
		Type:        r.Type,
		BudgetID:    r.BudgetID,
	}
}

func (r MobilePlanRequest) values() map[string]interface{} {
	return map[string]interface{}{
		"name":        r.Name,
		"title":       r.Title,
		"description": r.Description,
		"budget":      optional(r.Budget),
		"audience":    optional(r.Audience),
		"price":       *r.Price,
		"unit":        r.Unit,
		"details":     optional(r.Details),
		"is_best":     bool(r.IsBest),
		"link":        optional(r.Link),
		"type":        r.Type,
		"budget_id":   r.BudgetID,
	}
}

func (r MobilePlanRequest) featureIDs() []uint { return r.Features }

type SeoGoalRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	BudgetID    *uint   `json:"budget_id"`
	Unit        string  `json:"unit"`
	Duration    *string `json:"duration"`
	IsPopular   Flag    `json:"is_popular"`
	Link        *string `json:"link"`
	Features    []uint  `json:"features"`
}

func (r SeoGoalRequest) missing(bool) []string {
	return missingFields(field{"name", r.Name != ""}, field{"budget_id", r.BudgetID != nil && *r.BudgetID > 0}, field{"unit", r.Unit != ""})
}

func (r SeoGoalRequest) row() models.SeoGoal {
	return models.SeoGoal{
		Name:        r.Name,
		Description: optional(r.Description),
		BudgetID:    r.BudgetID,
		Unit:        r.Unit,
		Duration:    optional(r.Duration),
		IsPopular:   bool(r.IsPopular),
		Link:        optional(r.Link),
	}
}

func (r SeoGoalRequest) values() map[string]interface{} {
	return map[string]interface{}{
		"name":        r.Name,
		"description": optional(r.Description),
		"budget_id":   r.BudgetID,
		"unit":        r.Unit,
		"duration":    optional(r.Duration),
		"is_popular":  bool(r.IsPopular),
		"link":        optional(r.Link),
	}
}

func (r SeoGoalRequest) featureIDs() []uint { return r.Features }

type SiteTypeRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Unit        string   `json:"unit"`
	IsPopular   Flag     `json:"is_popular"`
	Link        *string  `json:"link"`
	Features    []uint   `json:"features"`
}

func (r SiteTypeRequest) missing(bool) []string {
	return missingFields(field{"name", r.Name != ""}, field{"price", positive(r.Price)}, field{"unit", r.Unit != ""})
}

func (r SiteTypeRequest) row() models.SiteType {
	return models.SiteType{
		Name:        r.Name,
		Description: optional(r.Description),
		Price:       *r.Price,
		Unit:        r.Unit,
		IsPopular:   bool(r.IsPopular),
		Link:        optional(r.Link),
	}
}

func (r SiteTypeRequest) values() map[string]interface{} {
	return map[string]interface{}{
		"name":        r.Name,
		"description": optional(r.Description),
		"price":       *r.Price,
		"unit":        r.Unit,
		"is_popular":  bool(r.IsPopular),
		"link":        optional(r.Link),
	}
}

func (r SiteTypeRequest) featureIDs() []uint { return r.Features }

type DeveloperRequest struct {
	SiteTypeRequest
	Duration *string `json:"duration"`
}

func (r DeveloperRequest) row() models.WebDeveloper {
	return models.WebDeveloper{
		Name:        r.Name,
		Description: optional(r.Description),
		Price:       *r.Price,
		Unit:        r.Unit,
		Duration:    optional(r.Duration),
		IsPopular:   bool(r.IsPopular),
		Link:        optional(r.Link),
	}
}

func (r DeveloperRequest) values() map[string]interface{} {
	v := r.SiteTypeRequest.values()
	v["duration"] = optional(r.Duration)
	return v
}

type BudgetRequest struct {
	Label    string   `json:"label"`
	Value    *string  `json:"value"`
	Section  *string  `json:"section"`
	MinPrice *float64 `json:"min_price"`
	MaxPrice *float64 `json:"max_price"`
}

func (r BudgetRequest) model() models.Budget {
	return models.Budget{
		Label:    r.Label,
		Value:    optional(r.Value),
		Section:  optional(r.Section),
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
	}
}

type NameRequest struct {
	Name string `json:"name"`
}

type FeaturesRequest struct {
	Features []uint `json:"features"`
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

func positive(v *float64) bool {
	return v != nil && *v > 0
}

func optional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// SiteTypeOption is one row of the flat /site-types lookup.
type SiteTypeOption struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	IsPopular   bool    `json:"is_popular"`
	Link        *string `json:"link"`
}
