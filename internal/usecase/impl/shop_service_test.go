package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"supermall/config"
	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/repository"
	mockRepo "supermall/internal/mocks/repository"
	mockService "supermall/internal/mocks/service"
	"supermall/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

// shopServiceFixtures holds all test dependencies for shop service tests.
type shopServiceFixtures struct {
	service     usecase.ShopUsecase
	shopRepo    *mockRepo.MockShopRepository
	productRepo *mockRepo.MockProductRepository
	offerRepo   *mockRepo.MockOfferRepository
	audit       *mockService.MockAuditLogger
	qrcode      *mockService.MockQRCodeService
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	shopRepo := mockRepo.NewMockShopRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	offerRepo := mockRepo.NewMockOfferRepository(t)
	audit := mockService.NewMockAuditLogger(t)
	qr := mockService.NewMockQRCodeService(t)

	cfg := &config.Config{QRCode: &config.QRCodeConfig{BaseURL: "https://mall.example/"}}

	svc := NewShopService(ShopServiceParams{
		ShopRepo:    shopRepo,
		ProductRepo: productRepo,
		OfferRepo:   offerRepo,
		Audit:       audit,
		QRCode:      qr,
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	svc.(*shopService).now = func() time.Time { return fixedNow }

	return shopServiceFixtures{
		service:     svc,
		shopRepo:    shopRepo,
		productRepo: productRepo,
		offerRepo:   offerRepo,
		audit:       audit,
		qrcode:      qr,
	}
}

func ownerSession(uid string) *entity.Session {
	return &entity.Session{UserID: uid, Email: uid + "@example.com"}
}

func TestShopService_CreateShop_UsesSessionOwner(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	session := ownerSession("u1")
	input := usecase.ShopInput{OwnerID: "someone-else", Name: "A", Category: "Food", Floor: "1", Contact: "x"}

	fx.shopRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(s *entity.Shop) bool {
			return s.OwnerID == "u1" && s.Name == "A" && s.Category == "Food"
		})).
		Run(func(_ context.Context, s *entity.Shop) { s.ID = "shop-1" }).
		Return(nil)

	fx.audit.EXPECT().
		LogAction(ctx, session, entity.ActionCreateShop, map[string]any{"shopId": "shop-1", "name": "A"}).
		Return()

	shop, err := fx.service.CreateShop(ctx, session, input)
	require.NoError(t, err)
	assert.Equal(t, "shop-1", shop.ID)
	assert.Equal(t, "u1", shop.OwnerID)
	assert.Equal(t, fixedNow, shop.CreatedOn)
}

func TestShopService_CreateShop_FallsBackToInputOwner(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	input := usecase.ShopInput{OwnerID: "u2", Name: "B"}

	fx.shopRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(s *entity.Shop) bool { return s.OwnerID == "u2" })).
		Return(nil)

	fx.audit.EXPECT().
		LogAction(ctx, (*entity.Session)(nil), entity.ActionCreateShop, mock.Anything).
		Return()

	shop, err := fx.service.CreateShop(ctx, nil, input)
	require.NoError(t, err)
	assert.Equal(t, "u2", shop.OwnerID)
}

func TestShopService_CreateShop_NoOwner(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()

	fx.audit.EXPECT().
		LogAction(ctx, (*entity.Session)(nil), entity.ActionCreateShopError, mock.MatchedBy(func(d map[string]any) bool {
			return d["error"] == "Authentication required to create a shop"
		})).
		Return()

	shop, err := fx.service.CreateShop(ctx, nil, usecase.ShopInput{Name: "A"})
	require.Error(t, err)
	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationRequired))
	fx.shopRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestShopService_CreateShop_RepositoryError(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	session := ownerSession("u1")

	fx.shopRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(errors.New("connection reset"))

	fx.audit.EXPECT().
		LogAction(ctx, session, entity.ActionCreateShopError, mock.Anything).
		Return()

	_, err := fx.service.CreateShop(ctx, session, usecase.ShopInput{Name: "A"})
	require.Error(t, err)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", domainerrors.CodeOf(err))
}

func TestShopService_ListShops_FiltersInProcess(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	shops := []*entity.Shop{
		{ID: "1", Name: "Fresh Bakery", Category: "Food", Floor: "1", OwnerID: "u1"},
		{ID: "2", Name: "Book Nook", Category: "Books", Floor: "2", OwnerID: "u1"},
		{ID: "3", Name: "Noodle Bar", Category: "Food", Floor: "2", OwnerID: "u1"},
	}

	fx.shopRepo.EXPECT().List(ctx, "u1").Return(shops, nil).Times(3)

	result, err := fx.service.ListShops(ctx, usecase.ShopFilter{OwnerID: "u1", Category: "Food"})
	require.NoError(t, err)
	assert.Len(t, result, 2)

	result, err = fx.service.ListShops(ctx, usecase.ShopFilter{OwnerID: "u1", Floor: "2", Category: "Food"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "3", result[0].ID)

	result, err = fx.service.ListShops(ctx, usecase.ShopFilter{OwnerID: "u1", Search: "NOO"})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "2", result[0].ID)
	assert.Equal(t, "3", result[1].ID)
}

func TestShopService_ListShops_AllOwners(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	fx.shopRepo.EXPECT().List(ctx, "").Return([]*entity.Shop{{ID: "1", OwnerID: "u1"}, {ID: "2", OwnerID: "u2"}}, nil)

	result, err := fx.service.ListShops(ctx, usecase.ShopFilter{})
	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestShopService_GetShop_NotFound(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	fx.shopRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrShopNotFound)

	_, err := fx.service.GetShop(ctx, "missing")
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}

func TestShopService_UpdateShop_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	session := ownerSession("u1")
	floor := "2"
	update := entity.ShopUpdate{Floor: &floor}

	fx.shopRepo.EXPECT().
		FindByID(ctx, "shop-1").
		Return(&entity.Shop{ID: "shop-1", Name: "A", Floor: "1", OwnerID: "u1"}, nil)
	fx.shopRepo.EXPECT().Update(ctx, "shop-1", update).Return(nil)
	fx.audit.EXPECT().
		LogAction(ctx, session, entity.ActionUpdateShop, map[string]any{"shopId": "shop-1", "fields": []string{"floor"}}).
		Return()

	shop, err := fx.service.UpdateShop(ctx, session, "shop-1", update)
	require.NoError(t, err)
	assert.Equal(t, "2", shop.Floor)
	assert.Equal(t, "A", shop.Name)
}

func TestShopService_UpdateShop_NotOwner(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	session := ownerSession("intruder")
	name := "Hijacked"

	fx.shopRepo.EXPECT().
		FindByID(ctx, "shop-1").
		Return(&entity.Shop{ID: "shop-1", OwnerID: "u1"}, nil)
	fx.audit.EXPECT().
		LogAction(ctx, session, entity.ActionUpdateShopError, mock.Anything).
		Return()

	_, err := fx.service.UpdateShop(ctx, session, "shop-1", entity.ShopUpdate{Name: &name})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PERMISSION_DENIED", appErr.ErrorCode())
	assert.Equal(t, domainerrors.MsgShopUpdateDenied, appErr.Message())
	fx.shopRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestShopService_UpdateShop_BackendDenied(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	session := ownerSession("u1")
	name := "New"

	fx.shopRepo.EXPECT().
		FindByID(ctx, "shop-1").
		Return(&entity.Shop{ID: "shop-1", OwnerID: "u1"}, nil)
	fx.shopRepo.EXPECT().
		Update(ctx, "shop-1", mock.Anything).
		Return(repository.ErrPermissionDenied)
	fx.audit.EXPECT().
		LogAction(ctx, session, entity.ActionUpdateShopError, mock.Anything).
		Return()

	_, err := fx.service.UpdateShop(ctx, session, "shop-1", entity.ShopUpdate{Name: &name})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.MsgShopUpdateDenied, appErr.Message())
}

func TestShopService_UpdateShop_RequiresSession(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	name := "New"

	fx.audit.EXPECT().
		LogAction(ctx, (*entity.Session)(nil), entity.ActionUpdateShopError, mock.Anything).
		Return()

	_, err := fx.service.UpdateShop(ctx, nil, "shop-1", entity.ShopUpdate{Name: &name})
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationRequired))
}

func TestShopService_DeleteShop_Success(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	session := ownerSession("u1")

	fx.shopRepo.EXPECT().FindByID(ctx, "shop-1").Return(&entity.Shop{ID: "shop-1", OwnerID: "u1"}, nil)
	fx.productRepo.EXPECT().ListByShop(ctx, "shop-1").Return([]*entity.Product{}, nil)
	fx.offerRepo.EXPECT().ListByShop(ctx, "shop-1").Return([]*entity.Offer{}, nil)
	fx.shopRepo.EXPECT().Delete(ctx, "shop-1").Return(nil)
	fx.audit.EXPECT().
		LogAction(ctx, session, entity.ActionDeleteShop, map[string]any{"shopId": "shop-1"}).
		Return()

	err := fx.service.DeleteShop(ctx, session, "shop-1")
	require.NoError(t, err)
}

func TestShopService_DeleteShop_BlockedByDependents(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	session := ownerSession("u1")

	fx.shopRepo.EXPECT().FindByID(ctx, "shop-1").Return(&entity.Shop{ID: "shop-1", OwnerID: "u1"}, nil)
	fx.productRepo.EXPECT().ListByShop(ctx, "shop-1").Return([]*entity.Product{{ID: "p1"}}, nil)
	fx.offerRepo.EXPECT().ListByShop(ctx, "shop-1").Return([]*entity.Offer{}, nil)
	fx.audit.EXPECT().
		LogAction(ctx, session, entity.ActionDeleteShopError, mock.Anything).
		Return()

	err := fx.service.DeleteShop(ctx, session, "shop-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrShopHasDependents))
	fx.shopRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestShopService_DeleteShop_NotOwner(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	session := ownerSession("u2")

	fx.shopRepo.EXPECT().FindByID(ctx, "shop-1").Return(&entity.Shop{ID: "shop-1", OwnerID: "u1"}, nil)
	fx.audit.EXPECT().
		LogAction(ctx, session, entity.ActionDeleteShopError, mock.MatchedBy(func(d map[string]any) bool {
			return d["error"] == domainerrors.MsgShopDeleteDenied
		})).
		Return()

	err := fx.service.DeleteShop(ctx, session, "shop-1")
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}

func TestShopService_ListUniqueShopFields(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	fx.shopRepo.EXPECT().List(ctx, "u1").Return([]*entity.Shop{
		{Category: "Food"},
		{Category: ""},
		{Category: "Books"},
		{Category: "Food"},
	}, nil)

	values, err := fx.service.ListUniqueShopFields(ctx, entity.ShopFieldCategory, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Food", "Books"}, values)
}

func TestShopService_ListUniqueShopFields_UnknownField(t *testing.T) {
	fx := createTestShopService(t)

	_, err := fx.service.ListUniqueShopFields(context.Background(), "ownerId", "")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestShopService_ShopQRCode(t *testing.T) {
	fx := createTestShopService(t)

	ctx := context.Background()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.shopRepo.EXPECT().FindByID(ctx, "shop-1").Return(&entity.Shop{ID: "shop-1"}, nil)
	fx.qrcode.EXPECT().GenerateURLQR("https://mall.example/shops/shop-1").Return(png, nil)

	result, err := fx.service.ShopQRCode(ctx, "shop-1")
	require.NoError(t, err)
	assert.Equal(t, png, result)
}
