package handler

import (
	"log/slog"
	"net/http"

	"supermall/internal/delivery/api/response"
	deliverycontext "supermall/internal/delivery/context"
	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler holds dependencies for shop-related handlers
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// CreateShopRequest represents the request body for creating a shop
type CreateShopRequest struct {
	Name     string `json:"name" validate:"max=200"`
	Category string `json:"category" validate:"max=100"`
	Floor    string `json:"floor" validate:"max=50"`
	Contact  string `json:"contact" validate:"max=200"`
}

// UpdateShopRequest represents the request body for a partial shop update
type UpdateShopRequest struct {
	Name     *string `json:"name" validate:"omitnil,max=200"`
	Category *string `json:"category" validate:"omitnil,max=100"`
	Floor    *string `json:"floor" validate:"omitnil,max=50"`
	Contact  *string `json:"contact" validate:"omitnil,max=200"`
}

// ownerFilter resolves the ownerId and mine query parameters.
func ownerFilter(c echo.Context) (string, error) {
	if c.QueryParam("mine") != "true" {
		return c.QueryParam("ownerId"), nil
	}

	session := deliverycontext.GetSession(c)
	if session == nil {
		return "", domainerrors.ErrAuthenticationRequired
	}

	return session.UserID, nil
}

// ListShops lists shops, optionally filtered by owner, category, floor and name search
func (h *ShopHandler) ListShops(c echo.Context) error {
	ownerID, err := ownerFilter(c)
	if err != nil {
		return err
	}

	shops, err := h.shopUC.ListShops(c.Request().Context(), usecase.ShopFilter{
		OwnerID:  ownerID,
		Category: c.QueryParam("category"),
		Floor:    c.QueryParam("floor"),
		Search:   c.QueryParam("q"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops)
}

// ListUniqueShopFields lists the distinct values of one shop field
func (h *ShopHandler) ListUniqueShopFields(c echo.Context) error {
	ownerID, err := ownerFilter(c)
	if err != nil {
		return err
	}

	values, err := h.shopUC.ListUniqueShopFields(c.Request().Context(), c.Param("field"), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, values)
}

// GetShop returns one shop
func (h *ShopHandler) GetShop(c echo.Context) error {
	shop, err := h.shopUC.GetShop(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// ShopQRCode renders the shop listing QR code as PNG
func (h *ShopHandler) ShopQRCode(c echo.Context) error {
	png, err := h.shopUC.ShopQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateShop creates a shop owned by the caller
func (h *ShopHandler) CreateShop(c echo.Context) error {
	var req CreateShopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), deliverycontext.GetSession(c), usecase.ShopInput{
		Name:     req.Name,
		Category: req.Category,
		Floor:    req.Floor,
		Contact:  req.Contact,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, shop)
}

// UpdateShop applies a partial update to a shop
func (h *ShopHandler) UpdateShop(c echo.Context) error {
	var req UpdateShopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	shop, err := h.shopUC.UpdateShop(c.Request().Context(), deliverycontext.GetSession(c), c.Param("id"), entity.ShopUpdate{
		Name:     req.Name,
		Category: req.Category,
		Floor:    req.Floor,
		Contact:  req.Contact,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// DeleteShop deletes a shop
func (h *ShopHandler) DeleteShop(c echo.Context) error {
	if err := h.shopUC.DeleteShop(c.Request().Context(), deliverycontext.GetSession(c), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
