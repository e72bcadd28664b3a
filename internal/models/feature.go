package models

// Feature is a name-only lookup row. The same shape backs every feature
// table; the named types below exist so each table can be migrated.
type Feature struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

type WebFeature struct{ Feature }

type MobileFeature struct{ Feature }

type SeoFeature struct{ Feature }

type DeveloperFeature struct{ Feature }

// AppPlatform is a delivery platform an order can target (web, iOS, ...).
type AppPlatform struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

const (
	TableFeatures          = "features"
	TableWebFeatures       = "web_features"
	TableMobileFeatures    = "mobile_features"
	TableSeoFeatures       = "seo_features"
	TableDeveloperFeatures = "developer_features"
	TableAppPlatforms      = "app_platforms"
)

func (Feature) TableName() string          { return TableFeatures }
func (WebFeature) TableName() string       { return TableWebFeatures }
func (MobileFeature) TableName() string    { return TableMobileFeatures }
func (SeoFeature) TableName() string       { return TableSeoFeatures }
func (DeveloperFeature) TableName() string { return TableDeveloperFeatures }
func (AppPlatform) TableName() string      { return TableAppPlatforms }
