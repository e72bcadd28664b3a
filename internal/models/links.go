package models

// Link rows have no identity of their own: the (parent, feature) pair is the key.

type PlanFeature struct {
	PlanID    uint `gorm:"primaryKey;autoIncrement:false"`
	FeatureID uint `gorm:"primaryKey;autoIncrement:false"`
}

type MobilePlanFeature struct {
	MobilePlanID uint `gorm:"primaryKey;autoIncrement:false"`
	FeatureID    uint `gorm:"primaryKey;autoIncrement:false"`
}

type SeoGoalFeature struct {
	SeoGoalID uint `gorm:"column:seo_goal_id;primaryKey;autoIncrement:false"`
	FeatureID uint `gorm:"primaryKey;autoIncrement:false"`
}

type WebTypeFeature struct {
	WebTypeID uint `gorm:"primaryKey;autoIncrement:false"`
	FeatureID uint `gorm:"primaryKey;autoIncrement:false"`
}

type WebDeveloperFeature struct {
	DeveloperID uint `gorm:"primaryKey;autoIncrement:false"`
	FeatureID   uint `gorm:"primaryKey;autoIncrement:false"`
}

type SystemTypeFeature struct {
	SystemTypeID uint `gorm:"primaryKey;autoIncrement:false"`
	FeatureID    uint `gorm:"primaryKey;autoIncrement:false"`
}

type OrderFeature struct {
	OrderID   uint `gorm:"primaryKey;autoIncrement:false"`
	FeatureID uint `gorm:"primaryKey;autoIncrement:false"`
}

type OrderMobileFeature struct {
	OrderID   uint `gorm:"primaryKey;autoIncrement:false"`
	FeatureID uint `gorm:"primaryKey;autoIncrement:false"`
}

type OrderSystemFeature struct {
	OrderID   uint `gorm:"primaryKey;autoIncrement:false"`
	FeatureID uint `gorm:"primaryKey;autoIncrement:false"`
}

type OrderPlatform struct {
	OrderID    uint `gorm:"primaryKey;autoIncrement:false"`
	PlatformID uint `gorm:"primaryKey;autoIncrement:false"`
}
