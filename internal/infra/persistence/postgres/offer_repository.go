package postgres

import (
	"context"

	"supermall/internal/domain/entity"
	"supermall/internal/domain/repository"
	"supermall/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// offerRepository implements the repository.OfferRepository interface using GORM.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

// Create inserts an offer with a generated ID.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)
	offerM.ID = uuid.NewString()

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		return errors.Wrap(err, "failed to create offer")
	}

	offer.ID = offerM.ID

	return nil
}

// FindByID retrieves an offer by its ID.
func (repo *offerRepository) FindByID(ctx context.Context, id string) (*entity.Offer, error) {
	var offerM model.OfferModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by id")
	}

	return toOfferDomain(&offerM), nil
}

// ListByShop returns the offers of a shop, oldest first.
func (repo *offerRepository) ListByShop(ctx context.Context, shopID string) ([]*entity.Offer, error) {
	var offerMs []*model.OfferModel
	if err := repo.db.WithContext(ctx).Where("shop_id = ?", shopID).Order("created_at").Find(&offerMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offerMs))
	for _, offerM := range offerMs {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, nil
}

// UpdateProductIDs overwrites the product_ids column.
func (repo *offerRepository) UpdateProductIDs(ctx context.Context, id string, productIDs []string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", id).
		Update("product_ids", datatypes.NewJSONSlice(nonNil(productIDs)))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update offer products")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// Delete removes an offer.
func (repo *offerRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.OfferModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete offer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return ids
}

func fromOfferDomain(offer *entity.Offer) *model.OfferModel {
	return &model.OfferModel{
		ID:         offer.ID,
		ShopID:     offer.ShopID,
		Title:      offer.Title,
		Discount:   offer.Discount,
		StartDate:  offer.StartDate,
		EndDate:    offer.EndDate,
		ProductIDs: datatypes.NewJSONSlice(nonNil(offer.ProductIDs)),
		CreatedAt:  offer.CreatedAt.UTC(),
	}
}

func toOfferDomain(offerM *model.OfferModel) *entity.Offer {
	return &entity.Offer{
		ID:         offerM.ID,
		ShopID:     offerM.ShopID,
		Title:      offerM.Title,
		Discount:   offerM.Discount,
		StartDate:  offerM.StartDate,
		EndDate:    offerM.EndDate,
		ProductIDs: nonNil([]string(offerM.ProductIDs)),
		CreatedAt:  offerM.CreatedAt,
	}
}
