package firestore

import (
	"context"

	"supermall/internal/domain/constants"
	"supermall/internal/domain/entity"
	"supermall/internal/domain/repository"

	gfs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	client *gfs.Client
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(client *gfs.Client) repository.ShopRepository {
	return &shopRepository{client: client}
}

func (repo *shopRepository) collection() *gfs.CollectionRef {
	return repo.client.Collection(constants.CollectionShops)
}

// Create adds a shop document with a generated ID.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	ref, _, err := repo.collection().Add(ctx, fromShopDomain(shop))
	if err != nil {
		return mapError(err, nil, "failed to add shop")
	}

	shop.ID = ref.ID

	return nil
}

// FindByID retrieves a shop by its document ID.
func (repo *shopRepository) FindByID(ctx context.Context, id string) (*entity.Shop, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err, repository.ErrShopNotFound, "failed to get shop")
	}

	var doc shopDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode shop %s", id)
	}

	return toShopDomain(snap.Ref.ID, &doc), nil
}

// List returns all shops, or the owner's shops when ownerID is set.
func (repo *shopRepository) List(ctx context.Context, ownerID string) ([]*entity.Shop, error) {
	query := repo.collection().Query
	if ownerID != "" {
		query = query.Where("ownerId", "==", ownerID)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, mapError(err, nil, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(snaps))
	for _, snap := range snaps {
		var doc shopDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode shop %s", snap.Ref.ID)
		}
		shops = append(shops, toShopDomain(snap.Ref.ID, &doc))
	}

	return shops, nil
}

// Update writes only the fields set in update.
func (repo *shopRepository) Update(ctx context.Context, id string, update entity.ShopUpdate) error {
	var updates []gfs.Update
	if update.Name != nil {
		updates = append(updates, gfs.Update{Path: "name", Value: *update.Name})
	}
	if update.Category != nil {
		updates = append(updates, gfs.Update{Path: "category", Value: *update.Category})
	}
	if update.Floor != nil {
		updates = append(updates, gfs.Update{Path: "floor", Value: *update.Floor})
	}
	if update.Contact != nil {
		updates = append(updates, gfs.Update{Path: "contact", Value: *update.Contact})
	}
	if len(updates) == 0 {
		return nil
	}

	if _, err := repo.collection().Doc(id).Update(ctx, updates); err != nil {
		return mapError(err, repository.ErrShopNotFound, "failed to update shop")
	}

	return nil
}

// Delete removes a shop document. A missing document is reported as not found.
func (repo *shopRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx, gfs.Exists); err != nil {
		return mapError(err, repository.ErrShopNotFound, "failed to delete shop")
	}

	return nil
}
