package entity

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Offer is a discount campaign on a shop referencing some of its products.
type Offer struct {
	ID         string          `json:"id"`
	ShopID     string          `json:"shopId"`
	Title      string          `json:"title"`
	Discount   decimal.Decimal `json:"discount"`
	StartDate  *time.Time      `json:"startDate"`
	EndDate    *time.Time      `json:"endDate"`
	ProductIDs []string        `json:"productIds"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// References reports whether the offer lists productID.
func (o *Offer) References(productID string) bool {
	return slices.Contains(o.ProductIDs, productID)
}
