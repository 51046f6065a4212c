// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"supermall/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrShopNotFound is returned when a shop document does not exist.
	ErrShopNotFound = errors.New("shop not found")
	// ErrProductNotFound is returned when a product document does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrOfferNotFound is returned when an offer document does not exist.
	ErrOfferNotFound = errors.New("offer not found")
	// ErrPermissionDenied is returned when the backend's access rules reject a request.
	ErrPermissionDenied = errors.New("permission denied by backend")
)

// ShopRepository defines the interface for shop persistence.
type ShopRepository interface {
	// Create persists a new shop and sets its generated ID.
	Create(ctx context.Context, shop *entity.Shop) error

	// FindByID retrieves a shop by its ID.
	FindByID(ctx context.Context, id string) (*entity.Shop, error)

	// List returns every shop, or only those owned by ownerID when it is not empty.
	List(ctx context.Context, ownerID string) ([]*entity.Shop, error)

	// Update applies a partial update to a shop.
	Update(ctx context.Context, id string, update entity.ShopUpdate) error

	// Delete removes a shop.
	Delete(ctx context.Context, id string) error
}

// ProductRepository defines the interface for product persistence.
type ProductRepository interface {
	// Create persists a new product and sets its generated ID.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its ID.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// FindByIDs resolves ids in a single round trip, preserving order and skipping missing ones.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)

	// ListByShop returns all products of a shop.
	ListByShop(ctx context.Context, shopID string) ([]*entity.Product, error)

	// Update applies a partial update to a product.
	Update(ctx context.Context, id string, update entity.ProductUpdate) error

	// Delete removes a product.
	Delete(ctx context.Context, id string) error
}

// OfferRepository defines the interface for offer persistence.
type OfferRepository interface {
	// Create persists a new offer and sets its generated ID.
	Create(ctx context.Context, offer *entity.Offer) error

	// FindByID retrieves an offer by its ID.
	FindByID(ctx context.Context, id string) (*entity.Offer, error)

	// ListByShop returns all offers of a shop.
	ListByShop(ctx context.Context, shopID string) ([]*entity.Offer, error)

	// UpdateProductIDs replaces the product list of an offer.
	UpdateProductIDs(ctx context.Context, id string, productIDs []string) error

	// Delete removes an offer.
	Delete(ctx context.Context, id string) error
}
