package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"supermall/config"
	"supermall/internal/delivery/api/response"
	deliverycontext "supermall/internal/delivery/context"
	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	imageFormField = "image"
	// room for the text fields and part headers of a product form
	multipartOverhead = 64 << 10
	multipartMemory   = 8 << 20
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product-related handlers
type ProductHandler struct {
	productUC     usecase.ProductUsecase
	maxUploadSize int64
	logger        *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	var maxUploadSize int64
	if params.Config != nil && params.Config.Blob != nil {
		maxUploadSize = params.Config.Blob.MaxUploadSize
	}

	return &ProductHandler{
		productUC:     params.ProductUC,
		maxUploadSize: maxUploadSize,
		logger:        params.Logger,
	}
}

// CreateProductRequest represents the JSON body for creating a product
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"max=200"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description" validate:"max=2000"`
}

// UpdateProductRequest represents the request body for a partial product update
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitnil,max=200"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description" validate:"omitnil,max=2000"`
}

// ListProducts lists the products of a shop
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.ListProducts(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// CreateProduct creates a product from a JSON body or a multipart form carrying an image
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var (
		input usecase.ProductInput
		err   error
	)
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		input, err = h.multipartInput(c)
	} else {
		input, err = jsonProductInput(c)
	}
	if err != nil {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), deliverycontext.GetSession(c), c.Param("id"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

func jsonProductInput(c echo.Context) (usecase.ProductInput, error) {
	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return usecase.ProductInput{}, err
	}

	return usecase.ProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	}, nil
}

func (h *ProductHandler) multipartInput(c echo.Context) (usecase.ProductInput, error) {
	req := c.Request()
	if h.maxUploadSize > 0 {
		req.Body = http.MaxBytesReader(c.Response(), req.Body, h.maxUploadSize+multipartOverhead)
	}
	if err := req.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return usecase.ProductInput{}, domainerrors.ErrInvalidImage.WithDetails("upload is too large")
		}

		return usecase.ProductInput{}, domainerrors.ErrValidationFailed.WithDetails("malformed multipart form")
	}

	input := usecase.ProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
	}

	if raw := strings.TrimSpace(c.FormValue("price")); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return usecase.ProductInput{}, domainerrors.ErrValidationFailed.WithDetails("price must be a decimal number")
		}
		input.Price = price
	}

	header, err := c.FormFile(imageFormField)
	if errors.Is(err, http.ErrMissingFile) {
		return input, nil
	}
	if err != nil {
		return usecase.ProductInput{}, domainerrors.ErrInvalidImage.WithDetails(err.Error())
	}

	file, err := header.Open()
	if err != nil {
		return usecase.ProductInput{}, errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	// One byte past the limit is enough for the use case to reject the upload.
	var reader io.Reader = file
	if h.maxUploadSize > 0 {
		reader = io.LimitReader(file, h.maxUploadSize+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return usecase.ProductInput{}, errors.Wrap(err, "failed to read uploaded image")
	}

	input.Image = &usecase.ImageFile{
		Filename: header.Filename,
		Data:     data,
	}

	return input, nil
}

// UpdateProduct applies a partial update to a product
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), deliverycontext.GetSession(c), c.Param("id"), entity.ProductUpdate{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct deletes a product and its image
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	err := h.productUC.DeleteProduct(c.Request().Context(), deliverycontext.GetSession(c), c.Param("id"), c.QueryParam("imagePath"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
