package models

import "time"

// Order is the single wide table shared by every vertical. Section and
// Platform decide which of the per-vertical status columns is authoritative.
type Order struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          *uint     `gorm:"index" json:"user_id"`
	Title           *string   `gorm:"size:255" json:"title"`
	AppName         *string   `gorm:"size:255" json:"app_name"`
	Description     *string   `gorm:"type:text" json:"description"`
	Idea            *string   `gorm:"type:text" json:"idea"`
	Notes           *string   `gorm:"type:text" json:"notes"`
	Audience        *string   `gorm:"type:text" json:"audience"`
	Details         *string   `gorm:"type:text" json:"details"`
	Site            *string   `gorm:"size:255" json:"site"`
	Budget          *string   `gorm:"size:100" json:"budget"`
	BudgetID        *uint     `gorm:"index" json:"budget_id"`
	Type            *string   `gorm:"size:100" json:"type"`
	Section         *string   `gorm:"size:100;index" json:"section"`
	Platform        *string   `gorm:"size:100" json:"platform"`
	Status          *string   `gorm:"column:status;size:50" json:"status"`
	WebStatus       *string   `gorm:"column:web_status;size:50" json:"web_status"`
	IOSStatus       *string   `gorm:"column:ios_status;size:50" json:"ios_status"`
	AndroidStatus   *string   `gorm:"column:android_status;size:50" json:"android_status"`
	SEOStatus       *string   `gorm:"column:seo_status;size:50" json:"seo_status"`
	SystemStatus    *string   `gorm:"column:system_status;size:50" json:"system_status"`
	DeveloperStatus *string   `gorm:"column:developer_status;size:50" json:"developer_status"`
	SiteTypeID      *uint     `gorm:"column:site_type_id;index" json:"site_type_id"`
	AppTypeID       *uint     `gorm:"column:app_type_id;index" json:"app_type_id"`
	SEOGoalID       *uint     `gorm:"column:seo_goal_id;index" json:"seo_goal_id"`
	SystemTypeID    *uint     `gorm:"column:system_type_id;index" json:"system_type_id"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
