package firestore

import (
	"context"

	"supermall/internal/domain/constants"
	"supermall/internal/domain/entity"
	"supermall/internal/domain/repository"

	gfs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	client *gfs.Client
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(client *gfs.Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (repo *productRepository) collection() *gfs.CollectionRef {
	return repo.client.Collection(constants.CollectionProducts)
}

// Create adds a product document with a generated ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	ref, _, err := repo.collection().Add(ctx, fromProductDomain(product))
	if err != nil {
		return mapError(err, nil, "failed to add product")
	}

	product.ID = ref.ID

	return nil
}

// FindByID retrieves a product by its document ID.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := repo.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapError(err, repository.ErrProductNotFound, "failed to get product")
	}

	return decodeProduct(snap)
}

// FindByIDs fetches all ids with one batched GetAll call.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	refs := make([]*gfs.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, repo.collection().Doc(id))
	}

	snaps, err := repo.client.GetAll(ctx, refs)
	if err != nil {
		return nil, mapError(err, nil, "failed to get products")
	}

	products := make([]*entity.Product, 0, len(snaps))
	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		product, err := decodeProduct(snap)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// ListByShop returns every product whose shopId matches.
func (repo *productRepository) ListByShop(ctx context.Context, shopID string) ([]*entity.Product, error) {
	snaps, err := repo.collection().Where("shopId", "==", shopID).Documents(ctx).GetAll()
	if err != nil {
		return nil, mapError(err, nil, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(snaps))
	for _, snap := range snaps {
		product, err := decodeProduct(snap)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, nil
}

// Update writes only the fields set in update.
func (repo *productRepository) Update(ctx context.Context, id string, update entity.ProductUpdate) error {
	var updates []gfs.Update
	if update.Name != nil {
		updates = append(updates, gfs.Update{Path: "name", Value: *update.Name})
	}
	if update.Price != nil {
		updates = append(updates, gfs.Update{Path: "price", Value: update.Price.InexactFloat64()})
	}
	if update.Description != nil {
		updates = append(updates, gfs.Update{Path: "description", Value: *update.Description})
	}
	if len(updates) == 0 {
		return nil
	}

	if _, err := repo.collection().Doc(id).Update(ctx, updates); err != nil {
		return mapError(err, repository.ErrProductNotFound, "failed to update product")
	}

	return nil
}

// Delete removes a product document.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.collection().Doc(id).Delete(ctx, gfs.Exists); err != nil {
		return mapError(err, repository.ErrProductNotFound, "failed to delete product")
	}

	return nil
}

func decodeProduct(snap *gfs.DocumentSnapshot) (*entity.Product, error) {
	var doc productDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode product %s", snap.Ref.ID)
	}

	return toProductDomain(snap.Ref.ID, &doc), nil
}
