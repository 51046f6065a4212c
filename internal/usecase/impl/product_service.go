package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"supermall/config"
	deliverycontext "supermall/internal/delivery/context"
	"supermall/internal/domain/constants"
	"supermall/internal/domain/entity"
	domainerrors "supermall/internal/domain/errors"
	"supermall/internal/domain/repository"
	"supermall/internal/domain/service"
	"supermall/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/fx"
)

const defaultMaxImageSize = 5 << 20

// allowedImageTypes are the content types accepted for product images.
var allowedImageTypes = []string{"image/png", "image/jpeg", "image/webp", "image/gif"}

// productService implements the ProductUsecase interface.
type productService struct {
	shopRepo     repository.ShopRepository
	productRepo  repository.ProductRepository
	offerRepo    repository.OfferRepository
	blob         service.BlobStorage
	audit        service.AuditLogger
	maxImageSize int64
	logger       *slog.Logger
	now          func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ShopRepo    repository.ShopRepository
	ProductRepo repository.ProductRepository
	OfferRepo   repository.OfferRepository
	Blob        service.BlobStorage
	Audit       service.AuditLogger
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	maxImageSize := int64(defaultMaxImageSize)
	if params.Config != nil && params.Config.Blob != nil && params.Config.Blob.MaxUploadSize > 0 {
		maxImageSize = params.Config.Blob.MaxUploadSize
	}

	return &productService{
		shopRepo:     params.ShopRepo,
		productRepo:  params.ProductRepo,
		offerRepo:    params.OfferRepo,
		blob:         params.Blob,
		audit:        params.Audit,
		maxImageSize: maxImageSize,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct uploads the optional image first and writes the product only when the upload succeeded.
// If the write then fails, the uploaded image is removed again.
func (srv *productService) CreateProduct(ctx context.Context, session *entity.Session, shopID string, input usecase.ProductInput) (*entity.Product, error) {
	details := map[string]any{"shopId": shopID, "name": input.Name}

	product, err := srv.createProduct(ctx, session, shopID, input)
	if err != nil {
		auditFailure(ctx, srv.audit, session, entity.ActionCreateProductError, err, details)

		return nil, err
	}

	details["productId"] = product.ID
	srv.audit.LogAction(ctx, session, entity.ActionCreateProduct, details)

	return product, nil
}

func (srv *productService) createProduct(ctx context.Context, session *entity.Session, shopID string, input usecase.ProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product name is required")
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	if _, err := loadOwnedShop(ctx, srv.shopRepo, session, shopID, domainerrors.MsgCatalogDenied); err != nil {
		return nil, err
	}

	now := srv.now()
	product := &entity.Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		ShopID:      shopID,
		CreatedAt:   now.UTC(),
	}

	if input.Image != nil && len(input.Image.Data) > 0 {
		contentType, err := srv.checkImage(input.Image)
		if err != nil {
			return nil, err
		}

		imagePath := productImagePath(shopID, now, input.Image.Filename)
		imageURL, err := srv.blob.Upload(ctx, imagePath, input.Image.Data, contentType)
		if err != nil {
			srv.log(ctx).Error("Failed to upload product image", slog.Any("error", err), slog.String("path", imagePath))

			return nil, domainerrors.ErrImageUploadFailed.WithDetails(err.Error())
		}

		product.ImageURL = imageURL
		product.ImagePath = imagePath
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("error", err), slog.String("shop_id", shopID))
		srv.removeOrphanImage(ctx, product.ImagePath)

		return nil, mapRepoError(err, "failed to create product")
	}

	return product, nil
}

// removeOrphanImage deletes an image whose product document was never written. Failures are only logged.
func (srv *productService) removeOrphanImage(ctx context.Context, imagePath string) {
	if imagePath == "" {
		return
	}

	if err := srv.blob.Delete(context.WithoutCancel(ctx), imagePath); err != nil {
		srv.log(ctx).Warn("Failed to remove orphaned product image",
			slog.Any("error", err),
			slog.String("path", imagePath),
		)

		return
	}

	srv.log(ctx).Info("Removed orphaned product image", slog.String("path", imagePath))
}

// checkImage enforces the size cap and sniffs the content type from the bytes.
func (srv *productService) checkImage(image *usecase.ImageFile) (string, error) {
	if int64(len(image.Data)) > srv.maxImageSize {
		return "", domainerrors.ErrInvalidImage.WithDetails(
			fmt.Sprintf("image is %s, the limit is %s", formatSize(int64(len(image.Data))), formatSize(srv.maxImageSize)),
		)
	}

	detected := mimetype.Detect(image.Data)
	for _, allowed := range allowedImageTypes {
		if detected.Is(allowed) {
			return allowed, nil
		}
	}

	return "", domainerrors.ErrInvalidImage.WithDetails(fmt.Sprintf("unsupported content type %s", detected.String()))
}

// productImagePath builds products/<shopId>/<unixMillis>_<basename>.
func productImagePath(shopID string, at time.Time, filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "image"
	}

	return fmt.Sprintf("%s/%s/%d_%s", constants.BlobPrefixProducts, shopID, at.UnixMilli(), base)
}

// ListProducts returns the shop's products, skipping documents without a name.
func (srv *productService) ListProducts(ctx context.Context, shopID string) ([]*entity.Product, error) {
	products, err := srv.productRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, mapRepoError(err, "failed to list products")
	}

	result := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if product.Name == "" {
			srv.log(ctx).Warn("Skipping product without name",
				slog.String("product_id", product.ID),
				slog.String("shop_id", shopID),
			)

			continue
		}
		result = append(result, product)
	}

	return result, nil
}

// UpdateProduct applies a partial update without validating field values.
func (srv *productService) UpdateProduct(ctx context.Context, session *entity.Session, id string, update entity.ProductUpdate) (*entity.Product, error) {
	details := map[string]any{"productId": id}

	product, err := srv.updateProduct(ctx, session, id, update)
	if err != nil {
		auditFailure(ctx, srv.audit, session, entity.ActionUpdateProductError, err, details)

		return nil, err
	}

	srv.audit.LogAction(ctx, session, entity.ActionUpdateProduct, details)

	return product, nil
}

func (srv *productService) updateProduct(ctx context.Context, session *entity.Session, id string, update entity.ProductUpdate) (*entity.Product, error) {
	if update.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no fields to update")
	}

	product, err := srv.loadOwnedProduct(ctx, session, id)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.Update(ctx, id, update); err != nil {
		return nil, mapRepoError(err, "failed to update product")
	}

	update.Apply(product)

	return product, nil
}

// DeleteProduct deletes the image strictly before the document. If the image
// delete fails the document is kept. An explicit imagePath must equal the stored
// one when the product has one, and otherwise sit under the shop's prefix.
func (srv *productService) DeleteProduct(ctx context.Context, session *entity.Session, id, imagePath string) error {
	details := map[string]any{"productId": id}
	if imagePath != "" {
		details["imagePath"] = imagePath
	}

	if err := srv.deleteProduct(ctx, session, id, imagePath); err != nil {
		auditFailure(ctx, srv.audit, session, entity.ActionDeleteProductError, err, details)

		return err
	}

	srv.audit.LogAction(ctx, session, entity.ActionDeleteProduct, details)

	return nil
}

func (srv *productService) deleteProduct(ctx context.Context, session *entity.Session, id, imagePath string) error {
	product, err := srv.loadOwnedProduct(ctx, session, id)
	if err != nil {
		return err
	}

	switch {
	case imagePath == "":
		imagePath = product.ImagePath
	case product.ImagePath != "" && imagePath != product.ImagePath:
		return domainerrors.ErrValidationFailed.WithDetails("image path does not match the product's stored image")
	case !strings.HasPrefix(imagePath, fmt.Sprintf("%s/%s/", constants.BlobPrefixProducts, product.ShopID)):
		return domainerrors.ErrValidationFailed.WithDetails("image path does not belong to this product's shop")
	}

	offers, err := srv.offerRepo.ListByShop(ctx, product.ShopID)
	if err != nil {
		return mapRepoError(err, "failed to list shop offers")
	}
	for _, offer := range offers {
		if offer.References(id) {
			return domainerrors.ErrProductInUse.WithDetails(fmt.Sprintf("referenced by offer %s", offer.ID))
		}
	}

	if imagePath != "" {
		if err := srv.blob.Delete(ctx, imagePath); err != nil {
			srv.log(ctx).Error("Failed to delete product image", slog.Any("error", err), slog.String("path", imagePath))

			return domainerrors.ErrImageDeleteFailed.WithDetails(err.Error())
		}
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "failed to delete product")
	}

	return nil
}

// loadOwnedProduct fetches a product and checks that the session user owns its shop.
func (srv *productService) loadOwnedProduct(ctx context.Context, session *entity.Session, id string) (*entity.Product, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to find product")
	}

	if _, err := loadOwnedShop(ctx, srv.shopRepo, session, product.ShopID, domainerrors.MsgCatalogDenied); err != nil {
		return nil, err
	}

	return product, nil
}

// formatSize renders a byte count in binary units, e.g. "1.5 MiB".
func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	value, suffix := float64(n)/unit, 0
	for value >= unit && suffix < len(sizeSuffixes)-1 {
		value /= unit
		suffix++
	}

	return fmt.Sprintf("%.1f %s", value, sizeSuffixes[suffix])
}

var sizeSuffixes = []string{"KiB", "MiB", "GiB", "TiB"}
