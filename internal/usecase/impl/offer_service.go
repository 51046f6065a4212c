package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "supermall/internal/delivery/context"
	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/repository"
	"supermall/internal/domain/service"
	"supermall/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const msgOfferRequired = "Title and at least one product are required"

// offerService implements the OfferUsecase interface.
type offerService struct {
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
	offerRepo   repository.OfferRepository
	audit       service.AuditLogger
	logger      *slog.Logger
	now         func() time.Time
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	ShopRepo    repository.ShopRepository
	ProductRepo repository.ProductRepository
	OfferRepo   repository.OfferRepository
	Audit       service.AuditLogger
	Logger      *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		shopRepo:    params.ShopRepo,
		productRepo: params.ProductRepo,
		offerRepo:   params.OfferRepo,
		audit:       params.Audit,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOffer validates the input before any read or write, then stores the offer.
func (srv *offerService) CreateOffer(ctx context.Context, session *entity.Session, shopID string, input usecase.OfferInput) (*entity.Offer, error) {
	details := map[string]any{"shopId": shopID, "title": input.Title}

	offer, err := srv.createOffer(ctx, session, shopID, input)
	if err != nil {
		auditFailure(ctx, srv.audit, session, entity.ActionCreateOfferError, err, details)

		return nil, err
	}

	details["offerId"] = offer.ID
	srv.audit.LogAction(ctx, session, entity.ActionCreateOffer, details)

	return offer, nil
}

func (srv *offerService) createOffer(ctx context.Context, session *entity.Session, shopID string, input usecase.OfferInput) (*entity.Offer, error) {
	productIDs := dedupe(input.ProductIDs)
	if strings.TrimSpace(input.Title) == "" || len(productIDs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithMessage(msgOfferRequired)
	}
	if input.Discount.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("discount must not be negative")
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("end date is before start date")
	}

	if _, err := loadOwnedShop(ctx, srv.shopRepo, session, shopID, domainerrors.MsgCatalogDenied); err != nil {
		return nil, err
	}

	if err := srv.checkShopProducts(ctx, shopID, productIDs); err != nil {
		return nil, err
	}

	offer := &entity.Offer{
		ShopID:     shopID,
		Title:      input.Title,
		Discount:   input.Discount,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		ProductIDs: productIDs,
		CreatedAt:  srv.now().UTC(),
	}

	if err := srv.offerRepo.Create(ctx, offer); err != nil {
		srv.log(ctx).Error("Failed to create offer", slog.Any("error", err), slog.String("shop_id", shopID))

		return nil, mapRepoError(err, "failed to create offer")
	}

	return offer, nil
}

// ListActiveOffers returns every offer of the shop. No date filtering is applied.
func (srv *offerService) ListActiveOffers(ctx context.Context, shopID string) ([]*entity.Offer, error) {
	offers, err := srv.offerRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, mapRepoError(err, "failed to list offers")
	}

	return offers, nil
}

// GetProductsForOffer resolves the offer's product ids in one batched lookup.
// A missing offer yields an empty list.
func (srv *offerService) GetProductsForOffer(ctx context.Context, offerID string) ([]*entity.Product, error) {
	offer, err := srv.offerRepo.FindByID(ctx, offerID)
	if errors.Is(err, repository.ErrOfferNotFound) {
		return []*entity.Product{}, nil
	}
	if err != nil {
		return nil, mapRepoError(err, "failed to find offer")
	}

	if len(offer.ProductIDs) == 0 {
		return []*entity.Product{}, nil
	}

	products, err := srv.productRepo.FindByIDs(ctx, offer.ProductIDs)
	if err != nil {
		return nil, mapRepoError(err, "failed to resolve offer products")
	}

	return products, nil
}

// LinkProductsToOffer replaces the product list of an offer.
func (srv *offerService) LinkProductsToOffer(ctx context.Context, session *entity.Session, offerID string, productIDs []string) (*entity.Offer, error) {
	details := map[string]any{"offerId": offerID, "productIds": productIDs}

	offer, err := srv.linkProducts(ctx, session, offerID, productIDs)
	if err != nil {
		auditFailure(ctx, srv.audit, session, entity.ActionLinkProductsToOfferError, err, details)

		return nil, err
	}

	srv.audit.LogAction(ctx, session, entity.ActionLinkProductsToOffer, details)

	return offer, nil
}

func (srv *offerService) linkProducts(ctx context.Context, session *entity.Session, offerID string, productIDs []string) (*entity.Offer, error) {
	ids := dedupe(productIDs)
	if len(ids) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one product is required")
	}

	offer, err := srv.loadOwnedOffer(ctx, session, offerID)
	if err != nil {
		return nil, err
	}

	if err := srv.checkShopProducts(ctx, offer.ShopID, ids); err != nil {
		return nil, err
	}

	if err := srv.offerRepo.UpdateProductIDs(ctx, offerID, ids); err != nil {
		return nil, mapRepoError(err, "failed to link products to offer")
	}

	offer.ProductIDs = ids

	return offer, nil
}

// DeleteOffer removes the offer document only.
func (srv *offerService) DeleteOffer(ctx context.Context, session *entity.Session, id string) error {
	details := map[string]any{"offerId": id}

	if err := srv.deleteOffer(ctx, session, id); err != nil {
		auditFailure(ctx, srv.audit, session, entity.ActionDeleteOfferError, err, details)

		return err
	}

	srv.audit.LogAction(ctx, session, entity.ActionDeleteOffer, details)

	return nil
}

func (srv *offerService) deleteOffer(ctx context.Context, session *entity.Session, id string) error {
	if _, err := srv.loadOwnedOffer(ctx, session, id); err != nil {
		return err
	}

	if err := srv.offerRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "failed to delete offer")
	}

	return nil
}

// loadOwnedOffer fetches an offer and checks that the session user owns its shop.
func (srv *offerService) loadOwnedOffer(ctx context.Context, session *entity.Session, id string) (*entity.Offer, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	offer, err := srv.offerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to find offer")
	}

	if _, err := loadOwnedShop(ctx, srv.shopRepo, session, offer.ShopID, domainerrors.MsgCatalogDenied); err != nil {
		return nil, err
	}

	return offer, nil
}

// checkShopProducts verifies that every id names an existing product of the shop.
func (srv *offerService) checkShopProducts(ctx context.Context, shopID string, productIDs []string) error {
	products, err := srv.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return mapRepoError(err, "failed to resolve products")
	}

	found := make(map[string]struct{}, len(products))
	for _, product := range products {
		if product.ShopID == shopID {
			found[product.ID] = struct{}{}
		}
	}

	var unknown []string
	for _, id := range productIDs {
		if _, ok := found[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown products for this shop: %s", strings.Join(unknown, ", ")),
		)
	}

	return nil
}

// dedupe drops repeated and empty ids while keeping order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}
