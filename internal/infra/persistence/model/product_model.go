package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. ShopID references shops.id.
type ProductModel struct {
	ID          string          `gorm:"type:varchar(64);primaryKey"`
	ShopID      string          `gorm:"type:varchar(64);not null;index"`
	Name        string          `gorm:"type:varchar(255)"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Description string          `gorm:"type:text"`
	ImageURL    string          `gorm:"type:text"`
	ImagePath   string          `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
