package handler

import (
	"log/slog"
	"net/http"

	"supermall/internal/delivery/api/response"
	deliverycontext "supermall/internal/delivery/context"
	"supermall/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler holds dependencies for offer-related handlers
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// CreateOfferRequest represents the request body for creating an offer
type CreateOfferRequest struct {
	Title      string          `json:"title" validate:"max=200"`
	Discount   decimal.Decimal `json:"discount"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	ProductIDs []string        `json:"productIds" validate:"max=100,dive,required"`
}

// LinkProductsRequest replaces the product list of an offer
type LinkProductsRequest struct {
	ProductIDs []string `json:"productIds" validate:"max=100,dive,required"`
}

// ListOffers lists every offer of a shop
func (h *OfferHandler) ListOffers(c echo.Context) error {
	offers, err := h.offerUC.ListActiveOffers(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offers)
}

// CreateOffer creates an offer on a shop
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	var req CreateOfferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	startDate, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return err
	}
	endDate, err := parseDate("endDate", req.EndDate)
	if err != nil {
		return err
	}

	offer, err := h.offerUC.CreateOffer(c.Request().Context(), deliverycontext.GetSession(c), c.Param("id"), usecase.OfferInput{
		Title:      req.Title,
		Discount:   req.Discount,
		StartDate:  startDate,
		EndDate:    endDate,
		ProductIDs: req.ProductIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, offer)
}

// GetOfferProducts resolves the products referenced by an offer
func (h *OfferHandler) GetOfferProducts(c echo.Context) error {
	products, err := h.offerUC.GetProductsForOffer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// LinkProducts replaces the products referenced by an offer
func (h *OfferHandler) LinkProducts(c echo.Context) error {
	var req LinkProductsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	offer, err := h.offerUC.LinkProductsToOffer(c.Request().Context(), deliverycontext.GetSession(c), c.Param("id"), req.ProductIDs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer)
}

// DeleteOffer deletes an offer
func (h *OfferHandler) DeleteOffer(c echo.Context) error {
	if err := h.offerUC.DeleteOffer(c.Request().Context(), deliverycontext.GetSession(c), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
