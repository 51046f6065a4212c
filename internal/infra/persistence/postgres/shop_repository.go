// Package postgres contains the relational implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/repository"
	"supermall/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shopRepository implements the repository.ShopRepository interface using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// Create inserts a shop with a generated ID.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)
	shopM.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		return errors.Wrap(err, "failed to create shop")
	}

	shop.ID = shopM.ID

	return nil
}

// FindByID retrieves a shop by its ID.
func (repo *shopRepository) FindByID(ctx context.Context, id string) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	return toShopDomain(&shopM), nil
}

// List returns all shops, or the owner's shops when ownerID is set.
func (repo *shopRepository) List(ctx context.Context, ownerID string) ([]*entity.Shop, error) {
	query := repo.db.WithContext(ctx).Order("created_on")
	if ownerID != "" {
		query = query.Where("owner_id = ?", ownerID)
	}

	var shopMs []*model.ShopModel
	if err := query.Find(&shopMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(shopMs))
	for _, shopM := range shopMs {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

// Update writes only the fields set in update.
func (repo *shopRepository) Update(ctx context.Context, id string, update entity.ShopUpdate) error {
	updates := map[string]any{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Category != nil {
		updates["category"] = *update.Category
	}
	if update.Floor != nil {
		updates["floor"] = *update.Floor
	}
	if update.Contact != nil {
		updates["contact"] = *update.Contact
	}
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).Model(&model.ShopModel{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// Delete removes a shop. Products and offers reference shops with ON DELETE RESTRICT.
func (repo *shopRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShopModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrShopHasDependents
		}

		return errors.Wrap(result.Error, "failed to delete shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

func fromShopDomain(shop *entity.Shop) *model.ShopModel {
	return &model.ShopModel{
		ID:        shop.ID,
		Name:      shop.Name,
		Category:  shop.Category,
		Floor:     shop.Floor,
		Contact:   shop.Contact,
		OwnerID:   shop.OwnerID,
		CreatedOn: shop.CreatedOn.UTC(),
	}
}

func toShopDomain(shopM *model.ShopModel) *entity.Shop {
	return &entity.Shop{
		ID:        shopM.ID,
		Name:      shopM.Name,
		Category:  shopM.Category,
		Floor:     shopM.Floor,
		Contact:   shopM.Contact,
		OwnerID:   shopM.OwnerID,
		CreatedOn: shopM.CreatedOn,
	}
}
