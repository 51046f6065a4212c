package usecase

import (
	"context"

	"supermall/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ImageFile is an uploaded product image
type ImageFile struct {
	Filename string
	Data     []byte
}

// ProductInput carries the fields of a new product
type ProductInput struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Image       *ImageFile
}

// ProductUsecase defines the interface for product management use cases
type ProductUsecase interface {
	CreateProduct(ctx context.Context, session *entity.Session, shopID string, input ProductInput) (*entity.Product, error)
	ListProducts(ctx context.Context, shopID string) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, session *entity.Session, id string, update entity.ProductUpdate) (*entity.Product, error)

	// DeleteProduct removes the image at imagePath (or the stored one when empty) before the document
	DeleteProduct(ctx context.Context, session *entity.Session, id, imagePath string) error
}
