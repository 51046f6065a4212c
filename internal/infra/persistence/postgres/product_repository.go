package postgres

import (
	"context"

	"supermall/internal/domain/entity"
	"supermall/internal/domain/repository"
	"supermall/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a product with a generated ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	productM.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

// FindByID retrieves a product by its ID.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs loads all ids with one IN query and returns them in the order requested.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productMs []*model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	byID := make(map[string]*model.ProductModel, len(productMs))
	for _, productM := range productMs {
		byID[productM.ID] = productM
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, id := range ids {
		if productM, ok := byID[id]; ok {
			products = append(products, toProductDomain(productM))
		}
	}

	return products, nil
}

// ListByShop returns the products of a shop, oldest first.
func (repo *productRepository) ListByShop(ctx context.Context, shopID string) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	if err := repo.db.WithContext(ctx).Where("shop_id = ?", shopID).Order("created_at").Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Update writes only the fields set in update.
func (repo *productRepository) Update(ctx context.Context, id string, update entity.ProductUpdate) error {
	updates := map[string]any{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Price != nil {
		updates["price"] = *update.Price
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          product.ID,
		ShopID:      product.ShopID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		ImagePath:   product.ImagePath,
		CreatedAt:   product.CreatedAt.UTC(),
	}
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          productM.ID,
		ShopID:      productM.ShopID,
		Name:        productM.Name,
		Price:       productM.Price,
		Description: productM.Description,
		ImageURL:    productM.ImageURL,
		ImagePath:   productM.ImagePath,
		CreatedAt:   productM.CreatedAt,
	}
}
