package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OfferModel mirrors the 'offers' table. ProductIDs is stored as a JSON array.
type OfferModel struct {
	ID         string                      `gorm:"type:varchar(64);primaryKey"`
	ShopID     string                      `gorm:"type:varchar(64);not null;index"`
	Title      string                      `gorm:"type:varchar(255);not null"`
	Discount   decimal.Decimal             `gorm:"type:numeric(12,2);not null;default:0"`
	StartDate  *time.Time                  `gorm:"type:date"`
	EndDate    *time.Time                  `gorm:"type:date"`
	ProductIDs datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
