package firestore

import (
	"context"

	"supermall/internal/domain/constants"
	"supermall/internal/domain/entity"
	"supermall/internal/domain/repository"

	gfs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	client *gfs.Client
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(client *gfs.Client) repository.OfferRepository {
	return &offerRepository{client: client}
}

func (repo *offerRepository) collection() *gfs.CollectionRef {
	return repo.client.Collection(constants.CollectionOffers)
}

// Create adds an offer document with a generated ID.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	ref, _, err := repo.collection().Add(ctx, fromOfferDomain(offer))
	if err != nil {
		return mapError(err, nil, "failed to add offer")
	}

	offer.ID = ref.ID

	return nil
}

// FindByID retrieves an offer by its document ID.
func (repo *offerRepository) FindByID(ctx context.Context, id string) (*entity.Offer, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err, repository.ErrOfferNotFound, "failed to get offer")
	}

	return decodeOffer(snap)
}

// ListByShop returns every offer whose shopId matches.
func (repo *offerRepository) ListByShop(ctx context.Context, shopID string) ([]*entity.Offer, error) {
	snaps, err := repo.collection().Where("shopId", "==", shopID).Documents(ctx).GetAll()
	if err != nil {
		return nil, mapError(err, nil, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(snaps))
	for _, snap := range snaps {
		offer, err := decodeOffer(snap)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}

	return offers, nil
}

// UpdateProductIDs overwrites the productIds array.
func (repo *offerRepository) UpdateProductIDs(ctx context.Context, id string, productIDs []string) error {
	_, err := repo.collection().Doc(id).Update(ctx, []gfs.Update{
		{Path: "productIds", Value: productIDs},
	})
	if err != nil {
		return mapError(err, repository.ErrOfferNotFound, "failed to update offer products")
	}

	return nil
}

// Delete removes an offer document.
func (repo *offerRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx, gfs.Exists); err != nil {
		return mapError(err, repository.ErrOfferNotFound, "failed to delete offer")
	}

	return nil
}

func decodeOffer(snap *gfs.DocumentSnapshot) (*entity.Offer, error) {
	var doc offerDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode offer %s", snap.Ref.ID)
	}

	return toOfferDomain(snap.Ref.ID, &doc), nil
}
