package models

// Budget is a price-range bucket, optionally scoped to one section.
type Budget struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Label    string   `gorm:"size:100;not null" json:"label"`
	Value    *string  `gorm:"size:100" json:"value"`
	Section  *string  `gorm:"size:100;index" json:"section"`
	MinPrice *float64 `json:"min_price"`
	MaxPrice *float64 `json:"max_price"`
}
