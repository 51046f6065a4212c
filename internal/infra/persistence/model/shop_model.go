// Package model holds the GORM persistence models of the relational storage driver.
package model

import (
	"time"
)

// ShopModel mirrors the 'shops' table.
type ShopModel struct {
	ID        string    `gorm:"type:varchar(64);primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Category  string    `gorm:"type:varchar(100)"`
	Floor     string    `gorm:"type:varchar(50)"`
	Contact   string    `gorm:"type:varchar(255)"`
	OwnerID   string    `gorm:"type:varchar(128);not null;index"`
	CreatedOn time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
