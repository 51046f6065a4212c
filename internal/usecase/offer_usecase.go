package usecase

import (
	"context"
	"time"

	"supermall/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// OfferInput carries the fields of a new offer
type OfferInput struct {
	Title      string
	Discount   decimal.Decimal
	StartDate  *time.Time
	EndDate    *time.Time
	ProductIDs []string
}

// OfferUsecase defines the interface for offer management use cases
type OfferUsecase interface {
	CreateOffer(ctx context.Context, session *entity.Session, shopID string, input OfferInput) (*entity.Offer, error)

	// ListActiveOffers returns every offer of the shop; no date filtering is applied
	ListActiveOffers(ctx context.Context, shopID string) ([]*entity.Offer, error)

	// GetProductsForOffer resolves the offer's products, skipping missing ones
	GetProductsForOffer(ctx context.Context, offerID string) ([]*entity.Product, error)

	LinkProductsToOffer(ctx context.Context, session *entity.Session, offerID string, productIDs []string) (*entity.Offer, error)
	DeleteOffer(ctx context.Context, session *entity.Session, id string) error
}
