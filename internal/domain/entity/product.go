package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an item sold by a shop, optionally with an uploaded image.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ShopID      string          `json:"shopId"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	ImagePath   string          `json:"imagePath,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ProductUpdate is a partial update; nil fields are left unchanged.
type ProductUpdate struct {
	Name        *string          `json:"name,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Description *string          `json:"description,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Price == nil && u.Description == nil
}

// Apply copies the set fields onto product.
func (u ProductUpdate) Apply(product *Product) {
	if u.Name != nil {
		product.Name = *u.Name
	}
	if u.Price != nil {
		product.Price = *u.Price
	}
	if u.Description != nil {
		product.Description = *u.Description
	}
}
