package handler

import (
	"net/http"
	"testing"
	"time"

	"supermall/internal/domain/entity"
	mockUsecase "supermall/internal/mocks/usecase"
	"supermall/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOfferTestServer(t *testing.T, session *entity.Session) (*echo.Echo, *mockUsecase.MockOfferUsecase) {
	offerUC := mockUsecase.NewMockOfferUsecase(t)
	h := NewOfferHandler(OfferHandlerParams{OfferUC: offerUC, Logger: testLogger()})

	e := newTestEcho()
	api := e.Group("/api/v1", withSession(session))
	api.GET("/shops/:id/offers", h.ListOffers)
	api.POST("/shops/:id/offers", h.CreateOffer)
	api.GET("/offers/:id/products", h.GetOfferProducts)
	api.PUT("/offers/:id/products", h.LinkProducts)
	api.DELETE("/offers/:id", h.DeleteOffer)

	return e, offerUC
}

func TestOfferHandler_CreateOffer(t *testing.T) {
	e, offerUC := newOfferTestServer(t, testSession)

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC)
	offerUC.EXPECT().
		CreateOffer(mock.Anything, testSession, "s1", mock.MatchedBy(func(in usecase.OfferInput) bool {
			return in.Title == "Spring sale" &&
				in.Discount.Equal(decimal.NewFromInt(15)) &&
				in.StartDate != nil && in.StartDate.Equal(start) &&
				in.EndDate != nil && in.EndDate.Equal(end) &&
				assert.ObjectsAreEqual([]string{"p1", "p2"}, in.ProductIDs)
		})).
		Return(&entity.Offer{ID: "o1", ShopID: "s1"}, nil)

	rec := doRequest(e, http.MethodPost, "/api/v1/shops/s1/offers",
		`{"title":"Spring sale","discount":15,"startDate":"2024-05-01","endDate":"2024-05-31T20:00:00+08:00","productIds":["p1","p2"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var got entity.Offer
	decodeData(t, rec, &got)
	assert.Equal(t, "o1", got.ID)
}

func TestOfferHandler_CreateOffer_BadDate(t *testing.T) {
	e, _ := newOfferTestServer(t, testSession)

	rec := doRequest(e, http.MethodPost, "/api/v1/shops/s1/offers", `{"title":"Sale","startDate":"May 1st","productIds":["p1"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "startDate")
}

func TestOfferHandler_CreateOffer_EmptyProductID(t *testing.T) {
	e, _ := newOfferTestServer(t, testSession)

	rec := doRequest(e, http.MethodPost, "/api/v1/shops/s1/offers", `{"title":"Sale","productIds":["p1",""]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOfferHandler_ListOffers(t *testing.T) {
	e, offerUC := newOfferTestServer(t, nil)

	offerUC.EXPECT().ListActiveOffers(mock.Anything, "s1").Return([]*entity.Offer{{ID: "o1"}, {ID: "o2"}}, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/shops/s1/offers", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []*entity.Offer
	decodeData(t, rec, &got)
	assert.Len(t, got, 2)
}

func TestOfferHandler_GetOfferProducts(t *testing.T) {
	e, offerUC := newOfferTestServer(t, nil)

	offerUC.EXPECT().GetProductsForOffer(mock.Anything, "o1").Return([]*entity.Product{{ID: "p2"}, {ID: "p1"}}, nil)

	rec := doRequest(e, http.MethodGet, "/api/v1/offers/o1/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []*entity.Product
	decodeData(t, rec, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "p2", got[0].ID)
}

func TestOfferHandler_LinkProducts(t *testing.T) {
	e, offerUC := newOfferTestServer(t, testSession)

	offerUC.EXPECT().
		LinkProductsToOffer(mock.Anything, testSession, "o1", []string{"p3"}).
		Return(&entity.Offer{ID: "o1", ProductIDs: []string{"p3"}}, nil)

	rec := doRequest(e, http.MethodPut, "/api/v1/offers/o1/products", `{"productIds":["p3"]}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOfferHandler_DeleteOffer(t *testing.T) {
	e, offerUC := newOfferTestServer(t, testSession)

	offerUC.EXPECT().DeleteOffer(mock.Anything, testSession, "o1").Return(nil)

	rec := doRequest(e, http.MethodDelete, "/api/v1/offers/o1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
