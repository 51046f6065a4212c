// Package firestore contains the Firestore implementation of the persistence layer.
package firestore

import (
	"fmt"
	"strconv"
	"time"

	"supermall/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// dateLayout is how offer start and end dates are stored.
const dateLayout = "2006-01-02"

// shopDocument is the stored shape of a shop.
type shopDocument struct {
	Name     string `firestore:"name"`
	Category string `firestore:"category"`
	Floor    string `firestore:"floor"`
	Contact  string `firestore:"contact"`
	OwnerID  string `firestore:"ownerId"`
	// CreatedOn is an ISO-8601 string, not a Firestore timestamp
	CreatedOn string `firestore:"createdOn"`
}

// productDocument is the stored shape of a product.
type productDocument struct {
	Name        string    `firestore:"name"`
	Price       any       `firestore:"price"`
	Description string    `firestore:"description"`
	ShopID      string    `firestore:"shopId"`
	ImageURL    string    `firestore:"imageUrl,omitempty"`
	ImagePath   string    `firestore:"imagePath,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt"`
}

// offerDocument is the stored shape of an offer.
type offerDocument struct {
	ShopID     string    `firestore:"shopId"`
	Title      string    `firestore:"title"`
	Discount   any       `firestore:"discount"`
	StartDate  *string   `firestore:"startDate"`
	EndDate    *string   `firestore:"endDate"`
	ProductIDs []string  `firestore:"productIds"`
	CreatedAt  time.Time `firestore:"createdAt"`
}

// auditDocument is the stored shape of an audit record.
type auditDocument struct {
	Timestamp string         `firestore:"timestamp"`
	UserID    string         `firestore:"userId"`
	Action    string         `firestore:"action"`
	Details   map[string]any `firestore:"details"`
}

func fromShopDomain(shop *entity.Shop) *shopDocument {
	return &shopDocument{
		Name:      shop.Name,
		Category:  shop.Category,
		Floor:     shop.Floor,
		Contact:   shop.Contact,
		OwnerID:   shop.OwnerID,
		CreatedOn: shop.CreatedOn.UTC().Format(entity.AuditTimestampLayout),
	}
}

func toShopDomain(id string, doc *shopDocument) *entity.Shop {
	return &entity.Shop{
		ID:        id,
		Name:      doc.Name,
		Category:  doc.Category,
		Floor:     doc.Floor,
		Contact:   doc.Contact,
		OwnerID:   doc.OwnerID,
		CreatedOn: parseTimestamp(doc.CreatedOn),
	}
}

func fromProductDomain(product *entity.Product) *productDocument {
	return &productDocument{
		Name:        product.Name,
		Price:       product.Price.InexactFloat64(),
		Description: product.Description,
		ShopID:      product.ShopID,
		ImageURL:    product.ImageURL,
		ImagePath:   product.ImagePath,
		CreatedAt:   product.CreatedAt,
	}
}

func toProductDomain(id string, doc *productDocument) *entity.Product {
	return &entity.Product{
		ID:          id,
		Name:        doc.Name,
		Price:       toDecimal(doc.Price),
		Description: doc.Description,
		ShopID:      doc.ShopID,
		ImageURL:    doc.ImageURL,
		ImagePath:   doc.ImagePath,
		CreatedAt:   doc.CreatedAt,
	}
}

func fromOfferDomain(offer *entity.Offer) *offerDocument {
	productIDs := offer.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}

	return &offerDocument{
		ShopID:     offer.ShopID,
		Title:      offer.Title,
		Discount:   offer.Discount.InexactFloat64(),
		StartDate:  formatDate(offer.StartDate),
		EndDate:    formatDate(offer.EndDate),
		ProductIDs: productIDs,
		CreatedAt:  offer.CreatedAt,
	}
}

func toOfferDomain(id string, doc *offerDocument) *entity.Offer {
	productIDs := doc.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}

	return &entity.Offer{
		ID:         id,
		ShopID:     doc.ShopID,
		Title:      doc.Title,
		Discount:   toDecimal(doc.Discount),
		StartDate:  parseDate(doc.StartDate),
		EndDate:    parseDate(doc.EndDate),
		ProductIDs: productIDs,
		CreatedAt:  doc.CreatedAt,
	}
}

func fromAuditDomain(record *entity.AuditRecord) *auditDocument {
	details := record.Details
	if details == nil {
		details = map[string]any{}
	}

	return &auditDocument{
		Timestamp: record.Timestamp.UTC().Format(entity.AuditTimestampLayout),
		UserID:    record.UserID,
		Action:    record.Action,
		Details:   details,
	}
}

// toDecimal accepts the numeric and string encodings found in stored documents.
func toDecimal(value any) decimal.Decimal {
	switch v := value.(type) {
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		return decimal.NewFromFloat(v)
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero
		}

		return d
	case nil:
		return decimal.Zero
	default:
		d, err := decimal.NewFromString(fmt.Sprint(v))
		if err != nil {
			return decimal.Zero
		}

		return d
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(dateLayout)

	return &s
}

// parseDate reads a stored date, accepting both plain dates and full timestamps.
func parseDate(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}

	for _, layout := range []string{dateLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, *value); err == nil {
			return &t
		}
	}

	// Unix millis written by older clients
	if ms, err := strconv.ParseInt(*value, 10, 64); err == nil {
		t := time.UnixMilli(ms).UTC()

		return &t
	}

	return nil
}

func parseTimestamp(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}

	return t
}
