package models

import "encoding/json"

// Plan is a generic service plan linked to rows of `features`.
type Plan struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	Price    float64   `gorm:"not null" json:"price"`
	Unit     string    `gorm:"size:50;not null" json:"unit"`
	IsBest   bool      `gorm:"not null;default:false" json:"is_best"`
	Link     *string   `gorm:"size:255" json:"link"`
	Features []Feature `gorm:"-" json:"features"`
}

// MobilePlan is an app-development plan for one store (android or ios).
type MobilePlan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Title       string    `gorm:"size:255" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Budget      *string   `gorm:"size:100" json:"budget"`
	Audience    *string   `gorm:"type:text" json:"audience"`
	Price       float64   `gorm:"not null" json:"price"`
	Unit        string    `gorm:"size:50;not null" json:"unit"`
	Details     *string   `gorm:"type:text" json:"details"`
	IsBest      bool      `gorm:"not null;default:false" json:"is_best"`
	Link        *string   `gorm:"size:255" json:"link"`
	Type        string    `gorm:"size:20;not null;index" json:"type"`
	BudgetID    *uint     `gorm:"index" json:"budget_id"`
	Features    []Feature `gorm:"-" json:"features"`
}

// SeoGoal is an SEO package priced through its budget.
type SeoGoal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	BudgetID    *uint     `gorm:"index" json:"budget_id"`
	Unit        string    `gorm:"size:50;not null" json:"unit"`
	Duration    *string   `gorm:"size:100" json:"duration"`
	IsPopular   bool      `gorm:"not null;default:false" json:"is_popular"`
	Link        *string   `gorm:"size:255" json:"link"`
	Budget      *Budget   `gorm:"foreignKey:BudgetID;constraint:OnDelete:SET NULL" json:"budget"`
	Features    []Feature `gorm:"-" json:"features"`
}

// MarshalJSON flattens the joined budget next to the goal and always emits
// a budget object, with null members when no budget is linked.
func (g SeoGoal) MarshalJSON() ([]byte, error) {
	type goal SeoGoal
	ref := budgetRef{ID: g.BudgetID}
	if g.Budget != nil {
		ref.Label = &g.Budget.Label
		ref.MinPrice = g.Budget.MinPrice
		ref.MaxPrice = g.Budget.MaxPrice
	}
	return json.Marshal(struct {
		goal
		BudgetLabel *string   `json:"budget_label"`
		MinPrice    *float64  `json:"min_price"`
		MaxPrice    *float64  `json:"max_price"`
		Budget      budgetRef `json:"budget"`
	}{goal(g), ref.Label, ref.MinPrice, ref.MaxPrice, ref})
}

type budgetRef struct {
	ID       *uint    `json:"id"`
	Label    *string  `json:"label"`
	MinPrice *float64 `json:"min_price"`
	MaxPrice *float64 `json:"max_price"`
}

// SiteType is a website category offered by the web vertical.
type SiteType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Unit        string    `gorm:"size:50;not null" json:"unit"`
	IsPopular   bool      `gorm:"not null;default:false" json:"is_popular"`
	Link        *string   `gorm:"size:255" json:"link"`
	Features    []Feature `gorm:"-" json:"features"`
}

// WebDeveloper is a developer-services plan.
type WebDeveloper struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Unit        string    `gorm:"size:50;not null" json:"unit"`
	Duration    *string   `gorm:"size:100" json:"duration"`
	IsPopular   bool      `gorm:"not null;default:false" json:"is_popular"`
	Link        *string   `gorm:"size:255" json:"link"`
	Features    []Feature `gorm:"-" json:"features"`
}

// SystemType is a system-development service.
type SystemType struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
}

func (WebDeveloper) TableName() string { return "web_developer" }

// The methods below let the link helpers attach features to any plan-like row.

func (p *Plan) LinkID() uint {
	return p.ID
}

func (p *Plan) SetFeatures(fs []Feature) {
	p.Features = fs
}

func (p *MobilePlan) LinkID() uint {
	return p.ID
}

func (p *MobilePlan) SetFeatures(fs []Feature) {
	p.Features = fs
}

func (g *SeoGoal) LinkID() uint {
	return g.ID
}

func (g *SeoGoal) SetFeatures(fs []Feature) {
	g.Features = fs
}

func (s *SiteType) LinkID() uint {
	return s.ID
}

func (s *SiteType) SetFeatures(fs []Feature) {
	s.Features = fs
}

func (d *WebDeveloper) LinkID() uint {
	return d.ID
}

func (d *WebDeveloper) SetFeatures(fs []Feature) {
	d.Features = fs
}
