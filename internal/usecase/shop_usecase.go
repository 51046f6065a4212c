package usecase

import (
	"context"

	"supermall/internal/domain/entity"
)

// ShopInput carries the fields of a new shop
type ShopInput struct {
	// OwnerID is used only when no session is present
	OwnerID  string
	Name     string
	Category string
	Floor    string
	Contact  string
}

// ShopFilter narrows ListShops. Empty fields match everything.
type ShopFilter struct {
	OwnerID  string
	Category string
	Floor    string
	// Search is a case-insensitive substring of the shop name
	Search string
}

// ShopUsecase defines the interface for shop management use cases
type ShopUsecase interface {
	CreateShop(ctx context.Context, session *entity.Session, input ShopInput) (*entity.Shop, error)
	GetShop(ctx context.Context, id string) (*entity.Shop, error)
	ListShops(ctx context.Context, filter ShopFilter) ([]*entity.Shop, error)
	UpdateShop(ctx context.Context, session *entity.Session, id string, update entity.ShopUpdate) (*entity.Shop, error)
	DeleteShop(ctx context.Context, session *entity.Session, id string) error

	// ListUniqueShopFields returns the distinct non-empty values of field in first-seen order
	ListUniqueShopFields(ctx context.Context, field, ownerID string) ([]string, error)

	// ShopQRCode renders a PNG QR code of the shop's public listing URL
	ShopQRCode(ctx context.Context, id string) ([]byte, error)
}
