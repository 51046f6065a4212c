package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"supermall/config"
	deliverycontext "supermall/internal/delivery/context"
	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/repository"
	"supermall/internal/domain/service"
	"supermall/internal/usecase"

	"go.uber.org/fx"
)

const defaultListingBaseURL = "http://localhost:8080"

// shopService implements the ShopUsecase interface.
type shopService struct {
	shopRepo       repository.ShopRepository
	productRepo    repository.ProductRepository
	offerRepo      repository.OfferRepository
	audit          service.AuditLogger
	qrcode         service.QRCodeService
	listingBaseURL string
	logger         *slog.Logger
	now            func() time.Time
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	ShopRepo    repository.ShopRepository
	ProductRepo repository.ProductRepository
	OfferRepo   repository.OfferRepository
	Audit       service.AuditLogger
	QRCode      service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	baseURL := defaultListingBaseURL
	if params.Config != nil && params.Config.QRCode != nil && params.Config.QRCode.BaseURL != "" {
		baseURL = params.Config.QRCode.BaseURL
	}

	return &shopService{
		shopRepo:       params.ShopRepo,
		productRepo:    params.ProductRepo,
		offerRepo:      params.OfferRepo,
		audit:          params.Audit,
		qrcode:         params.QRCode,
		listingBaseURL: strings.TrimRight(baseURL, "/"),
		logger:         params.Logger,
		now:            time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateShop persists a shop owned by the session user, or by input.OwnerID when nobody is signed in.
func (srv *shopService) CreateShop(ctx context.Context, session *entity.Session, input usecase.ShopInput) (*entity.Shop, error) {
	ownerID := session.UID()
	if ownerID == "" {
		ownerID = input.OwnerID
	}

	details := map[string]any{"name": input.Name}

	if ownerID == "" {
		err := domainerrors.ErrAuthenticationRequired.WithMessage("Authentication required to create a shop")
		auditFailure(ctx, srv.audit, session, entity.ActionCreateShopError, err, details)

		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		err := domainerrors.ErrValidationFailed.WithDetails("shop name is required")
		auditFailure(ctx, srv.audit, session, entity.ActionCreateShopError, err, details)

		return nil, err
	}

	shop := &entity.Shop{
		Name:      input.Name,
		Category:  input.Category,
		Floor:     input.Floor,
		Contact:   input.Contact,
		OwnerID:   ownerID,
		CreatedOn: srv.now().UTC(),
	}

	if err := srv.shopRepo.Create(ctx, shop); err != nil {
		mapped := mapRepoError(err, "failed to create shop")
		srv.log(ctx).Error("Failed to create shop", slog.Any("error", err), slog.String("owner_id", ownerID))
		auditFailure(ctx, srv.audit, session, entity.ActionCreateShopError, mapped, details)

		return nil, mapped
	}

	srv.log(ctx).Info("Shop created", slog.String("shop_id", shop.ID), slog.String("owner_id", ownerID))
	srv.audit.LogAction(ctx, session, entity.ActionCreateShop, map[string]any{
		"shopId": shop.ID,
		"name":   shop.Name,
	})

	return shop, nil
}

// GetShop retrieves a single shop.
func (srv *shopService) GetShop(ctx context.Context, id string) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to find shop")
	}

	return shop, nil
}

// ListShops returns all shops or the owner's shops, narrowed in-process by category, floor and name search.
func (srv *shopService) ListShops(ctx context.Context, filter usecase.ShopFilter) ([]*entity.Shop, error) {
	shops, err := srv.shopRepo.List(ctx, filter.OwnerID)
	if err != nil {
		return nil, mapRepoError(err, "failed to list shops")
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	result := make([]*entity.Shop, 0, len(shops))
	for _, shop := range shops {
		if filter.Category != "" && shop.Category != filter.Category {
			continue
		}
		if filter.Floor != "" && shop.Floor != filter.Floor {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(shop.Name), search) {
			continue
		}
		result = append(result, shop)
	}

	return result, nil
}

// UpdateShop applies a partial update. Only the owner may update.
func (srv *shopService) UpdateShop(ctx context.Context, session *entity.Session, id string, update entity.ShopUpdate) (*entity.Shop, error) {
	details := map[string]any{"shopId": id}

	shop, err := srv.updateShop(ctx, session, id, update)
	if err != nil {
		auditFailure(ctx, srv.audit, session, entity.ActionUpdateShopError, err, details)

		return nil, err
	}

	details["fields"] = shopUpdateFields(update)
	srv.audit.LogAction(ctx, session, entity.ActionUpdateShop, details)

	return shop, nil
}

func (srv *shopService) updateShop(ctx context.Context, session *entity.Session, id string, update entity.ShopUpdate) (*entity.Shop, error) {
	if update.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no fields to update")
	}

	shop, err := loadOwnedShop(ctx, srv.shopRepo, session, id, domainerrors.MsgShopUpdateDenied)
	if err != nil {
		return nil, err
	}

	if err := srv.shopRepo.Update(ctx, id, update); err != nil {
		return nil, denyFriendly(mapRepoError(err, "failed to update shop"), domainerrors.MsgShopUpdateDenied)
	}

	update.Apply(shop)

	return shop, nil
}

// DeleteShop removes a shop that no longer has products or offers. Only the owner may delete.
func (srv *shopService) DeleteShop(ctx context.Context, session *entity.Session, id string) error {
	details := map[string]any{"shopId": id}

	if err := srv.deleteShop(ctx, session, id); err != nil {
		auditFailure(ctx, srv.audit, session, entity.ActionDeleteShopError, err, details)

		return err
	}

	srv.log(ctx).Info("Shop deleted", slog.String("shop_id", id))
	srv.audit.LogAction(ctx, session, entity.ActionDeleteShop, details)

	return nil
}

func (srv *shopService) deleteShop(ctx context.Context, session *entity.Session, id string) error {
	if _, err := loadOwnedShop(ctx, srv.shopRepo, session, id, domainerrors.MsgShopDeleteDenied); err != nil {
		return err
	}

	products, err := srv.productRepo.ListByShop(ctx, id)
	if err != nil {
		return mapRepoError(err, "failed to list shop products")
	}

	offers, err := srv.offerRepo.ListByShop(ctx, id)
	if err != nil {
		return mapRepoError(err, "failed to list shop offers")
	}

	if len(products) > 0 || len(offers) > 0 {
		return domainerrors.ErrShopHasDependents.WithDetails(
			fmt.Sprintf("%d products and %d offers still reference this shop", len(products), len(offers)),
		)
	}

	if err := srv.shopRepo.Delete(ctx, id); err != nil {
		return denyFriendly(mapRepoError(err, "failed to delete shop"), domainerrors.MsgShopDeleteDenied)
	}

	return nil
}

// ListUniqueShopFields scans the (optionally owner-filtered) shops on every call.
func (srv *shopService) ListUniqueShopFields(ctx context.Context, field, ownerID string) ([]string, error) {
	if _, ok := (&entity.Shop{}).FieldValue(field); !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown shop field %q", field))
	}

	shops, err := srv.shopRepo.List(ctx, ownerID)
	if err != nil {
		return nil, mapRepoError(err, "failed to list shops")
	}

	seen := make(map[string]struct{}, len(shops))
	values := make([]string, 0, len(shops))
	for _, shop := range shops {
		value, _ := shop.FieldValue(field)
		if value == "" {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}

	return values, nil
}

// ShopQRCode encodes the shop's public listing URL.
func (srv *shopService) ShopQRCode(ctx context.Context, id string) ([]byte, error) {
	shop, err := srv.GetShop(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateURLQR(srv.listingBaseURL + "/shops/" + url.PathEscape(shop.ID))
	if err != nil {
		srv.log(ctx).Error("Failed to generate shop QR code", slog.Any("error", err), slog.String("shop_id", id))

		return nil, domainerrors.ErrQRCodeFailed
	}

	return png, nil
}

func shopUpdateFields(update entity.ShopUpdate) []string {
	fields := make([]string, 0, 4)
	if update.Name != nil {
		fields = append(fields, entity.ShopFieldName)
	}
	if update.Category != nil {
		fields = append(fields, entity.ShopFieldCategory)
	}
	if update.Floor != nil {
		fields = append(fields, entity.ShopFieldFloor)
	}
	if update.Contact != nil {
		fields = append(fields, entity.ShopFieldContact)
	}

	return fields
}
