package handler

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	mockUsecase "supermall/internal/mocks/usecase"
	"supermall/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newShopTestServer(t *testing.T, session *entity.Session) (*echo.Echo, *mockUsecase.MockShopUsecase) {
	shopUC := mockUsecase.NewMockShopUsecase(t)
	h := NewShopHandler(ShopHandlerParams{ShopUC: shopUC, Logger: testLogger()})

	e := newTestEcho()
	g := e.Group("/api/v1/shops", withSession(session))
	g.GET("", h.ListShops)
	g.GET("/fields/:field", h.ListUniqueShopFields)
	g.GET("/:id", h.GetShop)
	g.GET("/:id/qr", h.ShopQRCode)
	g.POST("", h.CreateShop)
	g.PATCH("/:id", h.UpdateShop)
	g.DELETE("/:id", h.DeleteShop)

	return e, shopUC
}

func TestShopHandler_ListShops_Filters(t *testing.T) {
	e, shopUC := newShopTestServer(t, nil)

	shops := []*entity.Shop{{ID: "s1", Name: "Tea House", OwnerID: "o1", CreatedOn: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}}
	shopUC.EXPECT().
		ListShops(mock.Anything, usecase.ShopFilter{OwnerID: "o1", Category: "food", Floor: "2", Search: "tea"}).
		Return(shops, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/shops?ownerId=o1&category=food&floor=2&q=tea", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []*entity.Shop
	decodeData(t, rec, &got)
	assert.Equal(t, shops, got)
}

func TestShopHandler_ListShops_Mine(t *testing.T) {
	t.Run("uses the session owner", func(t *testing.T) {
		e, shopUC := newShopTestServer(t, testSession)

		shopUC.EXPECT().
			ListShops(mock.Anything, usecase.ShopFilter{OwnerID: testSession.UserID}).
			Return([]*entity.Shop{}, nil)

		rec := doRequest(e, http.MethodGet, "/api/v1/shops?mine=true&ownerId=someone-else", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("requires a session", func(t *testing.T) {
		e, _ := newShopTestServer(t, nil)

		rec := doRequest(e, http.MethodGet, "/api/v1/shops?mine=true", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "AUTHENTICATION_REQUIRED", decodeEnvelope(t, rec).Error.Code)
	})
}

func TestShopHandler_ListUniqueShopFields(t *testing.T) {
	e, shopUC := newShopTestServer(t, nil)

	shopUC.EXPECT().ListUniqueShopFields(mock.Anything, "category", "o1").Return([]string{"food", "books"}, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/shops/fields/category?ownerId=o1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []string
	decodeData(t, rec, &got)
	assert.Equal(t, []string{"food", "books"}, got)
}

func TestShopHandler_GetShop_NotFound(t *testing.T) {
	e, shopUC := newShopTestServer(t, nil)

	shopUC.EXPECT().GetShop(mock.Anything, "missing").Return(nil, domainerrors.ErrShopNotFound)

	rec := doRequest(e, http.MethodGet, "/api/v1/shops/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SHOP_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestShopHandler_ShopQRCode(t *testing.T) {
	e, shopUC := newShopTestServer(t, nil)

	png := []byte("\x89PNG\r\n\x1a\n")
	shopUC.EXPECT().ShopQRCode(mock.Anything, "s1").Return(png, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/shops/s1/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestShopHandler_CreateShop(t *testing.T) {
	e, shopUC := newShopTestServer(t, testSession)

	input := usecase.ShopInput{Name: "Tea House", Category: "food", Floor: "2", Contact: "555-0100"}
	shopUC.EXPECT().
		CreateShop(mock.Anything, testSession, input).
		Return(&entity.Shop{ID: "s1", Name: "Tea House", OwnerID: testSession.UserID}, nil)

	rec := doRequest(e, http.MethodPost, "/api/v1/shops", `{"name":"Tea House","category":"food","floor":"2","contact":"555-0100"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got entity.Shop
	decodeData(t, rec, &got)
	assert.Equal(t, "s1", got.ID)
}

func TestShopHandler_UpdateShop(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		e, shopUC := newShopTestServer(t, testSession)

		shopUC.EXPECT().
			UpdateShop(mock.Anything, testSession, "s1", mock.MatchedBy(func(u entity.ShopUpdate) bool {
				return u.Floor != nil && *u.Floor == "3" && u.Name == nil && u.Category == nil && u.Contact == nil
			})).
			Return(&entity.Shop{ID: "s1", Floor: "3"}, nil)

		rec := doRequest(e, http.MethodPatch, "/api/v1/shops/s1", `{"floor":"3"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("permission denied", func(t *testing.T) {
		e, shopUC := newShopTestServer(t, testSession)

		shopUC.EXPECT().
			UpdateShop(mock.Anything, testSession, "s1", mock.Anything).
			Return(nil, domainerrors.ErrPermissionDenied.WithMessage("Permission denied: you are not allowed to update this shop."))

		rec := doRequest(e, http.MethodPatch, "/api/v1/shops/s1", `{"name":"x"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "PERMISSION_DENIED", env.Error.Code)
		assert.Equal(t, "Permission denied: you are not allowed to update this shop.", env.Error.Message)
	})

	t.Run("field too long", func(t *testing.T) {
		e, _ := newShopTestServer(t, testSession)

		rec := doRequest(e, http.MethodPatch, "/api/v1/shops/s1", `{"floor":"`+strings.Repeat("9", 51)+`"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "floor")
	})
}

func TestShopHandler_DeleteShop_HasDependents(t *testing.T) {
	e, shopUC := newShopTestServer(t, testSession)

	shopUC.EXPECT().DeleteShop(mock.Anything, testSession, "s1").Return(domainerrors.ErrShopHasDependents)

	rec := doRequest(e, http.MethodDelete, "/api/v1/shops/s1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "SHOP_HAS_DEPENDENTS", decodeEnvelope(t, rec).Error.Code)
}
