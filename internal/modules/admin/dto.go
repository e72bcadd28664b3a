package admin

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/order"
)

// OrderListItem is one row of the admin order table.
type OrderListItem struct {
	ID           uint             `json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	SiteTypeID   *uint            `json:"site_type_id"`
	SiteTypeName *string          `json:"site_type_name"`
	SEOGoalID    *uint            `json:"seo_goal_id"`
	AppTypeID    *uint            `json:"app_type_id"`
	AppName      *string          `json:"app_name"`
	Idea         *string          `json:"idea"`
	Details      *string          `json:"details"`
	Status       *string          `json:"status"`
	Customer     *string          `json:"customer"`
	Avatar       *string          `json:"avatar"`
	Product      *string          `json:"product"`
	Budget       *string          `json:"budget"`
	BudgetID     *uint            `json:"budget_id"`
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	Audience     *string          `json:"audience"`
	Notes        *string          `json:"notes"`
	Type         *string          `json:"type"`
	Section      *string          `json:"section"`
	BudgetLabel  *string          `json:"budget_label"`
	MinPrice     *float64         `json:"min_price"`
	MaxPrice     *float64         `json:"max_price"`
	Revenue      float64          `json:"revenue"`
	Features     []string         `json:"features"`
	BudgetObj    order.BudgetView `json:"budget_obj"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

// OrderPatch lists the order fields an admin may edit. Nil means unchanged.
type OrderPatch struct {
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
	Description *string `json:"description"`
}

func (p OrderPatch) empty() bool {
	return p.Status == nil && p.Notes == nil && p.Description == nil
}

type BulkDeleteRequest struct {
	IDs []uint `json:"ids"`
}

type OrderStats map[string]int64

// DailyStats counts one day of orders by Arabic workflow status.
type DailyStats struct {
	OrderDate   string `json:"order_date"`
	TotalOrders int64  `json:"total_orders"`
	Processing  int64  `json:"processing"`
	Accepted    int64  `json:"accepted"`
	Paid        int64  `json:"paid"`
	Rejected    int64  `json:"rejected"`
}

type UserStats struct {
	TotalUsers       int64 `json:"total_users"`
	NewRegistrations int64 `json:"new_registrations"`
	ActiveUsers      int64 `json:"active_users"`
	InactiveUsers    int64 `json:"inactive_users"`
}

type UserListItem struct {
	ID        uint      `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

type TeamMember struct {
	ID         uint       `json:"id"`
	FullName   string     `json:"full_name"`
	Avatar     string     `json:"avatar"`
	Email      string     `json:"email"`
	LastOnline *time.Time `json:"last_online"`
	Status     string     `json:"status"`
}

type InvoiceItem struct {
	ID           uint    `json:"id"`
	CustomerName string  `json:"customer_name"`
	Total        float64 `json:"total"`
	Paid         bool    `json:"paid"`
}

type InvoiceStats struct {
	Paid   int64 `json:"paid"`
	Unpaid int64 `json:"unpaid"`
}

// Profile is an admin's own account as shown on the settings page.
type Profile struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
}

type PasswordRequest struct {
	NewPassword string `json:"new_password"`
}
