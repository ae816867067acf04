package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MaxProductImages is how many images a product may carry.
const MaxProductImages = 4

type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	images      service.ImageStorage
	sizes       *entity.SizeCatalog
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Images      service.ImageStorage
	Sizes       *entity.SizeCatalog
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		images:      params.Images,
		sizes:       params.Sizes,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Sizes lists the accepted size labels.
func (srv *productService) Sizes() []entity.Size {
	return srv.sizes.Labels()
}

// ListProducts returns catalog entries matching the filter, newest first.
func (srv *productService) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct loads one product.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.NewProductNotFoundError(id.String()))
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// AddProduct validates and stores a new product with its images.
func (srv *productService) AddProduct(ctx context.Context, input *usecase.AddProductInput) (*entity.Product, error) {
	if missing := missingFields(field{"name", input.Name}, field{"category", input.Category}); len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing fields: " + strings.Join(missing, ", "))
	}
	if input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if len(input.Images) > MaxProductImages {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at most " + strconv.Itoa(MaxProductImages) + " images are allowed")
	}

	sizes, err := srv.normalizeSizes(input.Sizes)
	if err != nil {
		return nil, err
	}
	stock, err := srv.buildStock(sizes, input.Stock, nil)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Brand:       strings.TrimSpace(input.Brand),
		Price:       input.Price,
		Category:    strings.TrimSpace(input.Category),
		SubCategory: strings.TrimSpace(input.SubCategory),
		Color:       strings.TrimSpace(input.Color),
		Sizes:       sizes,
		Bestseller:  input.Bestseller,
		NewSeason:   input.NewSeason,
		Stock:       stock,
	}

	urls, err := srv.uploadImages(ctx, product.ID, input.Images)
	if err != nil {
		return nil, err
	}
	product.Images = urls

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.deleteImages(ctx, urls)

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product added", slog.Any("productID", product.ID), slog.Int("images", len(urls)))

	return product, nil
}

// UpdateProduct applies a partial update. Uploaded images replace the gallery.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if input.Price != nil && input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}
	if len(input.Images) > MaxProductImages {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at most " + strconv.Itoa(MaxProductImages) + " images are allowed")
	}

	newURLs, err := srv.uploadImages(ctx, id, input.Images)
	if err != nil {
		return nil, err
	}

	var (
		updated        *entity.Product
		previousImages []string
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.WithStack(domainerrors.NewProductNotFoundError(id.String()))
			}

			return errors.Wrap(err, "failed to find product")
		}
		previousImages = product.Images

		stockChanged, err := srv.applyProductUpdate(product, input)
		if err != nil {
			return err
		}
		if len(newURLs) > 0 {
			product.Images = newURLs
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}
		if stockChanged {
			if err := productRepo.ReplaceStock(ctx, product.ID, product.Stock); err != nil {
				return errors.Wrap(err, "failed to replace stock")
			}
		}
		updated = product

		return nil
	})
	if err != nil {
		srv.deleteImages(ctx, unreferenced(newURLs, previousImages))

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.deleteImages(ctx, unreferenced(previousImages, updated.Images))
	srv.log(ctx).Info("Product updated", slog.Any("productID", id))

	return updated, nil
}

func (srv *productService) applyProductUpdate(product *entity.Product, input *usecase.UpdateProductInput) (bool, error) {
	setString(&product.Name, input.Name)
	setString(&product.Description, input.Description)
	setString(&product.Brand, input.Brand)
	setString(&product.Category, input.Category)
	setString(&product.SubCategory, input.SubCategory)
	setString(&product.Color, input.Color)
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Bestseller != nil {
		product.Bestseller = *input.Bestseller
	}
	if input.NewSeason != nil {
		product.NewSeason = *input.NewSeason
	}

	if input.Sizes == nil && input.Stock == nil {
		return false, nil
	}

	sizes := product.Sizes
	if input.Sizes != nil {
		normalized, err := srv.normalizeSizes(input.Sizes)
		if err != nil {
			return false, err
		}
		sizes = normalized
	}

	stock, err := srv.buildStock(sizes, input.Stock, product.Stock)
	if err != nil {
		return false, err
	}
	product.Sizes = sizes
	product.Stock = stock

	return true, nil
}

// RemoveProduct deletes the product and then its images.
func (srv *productService) RemoveProduct(ctx context.Context, id uuid.UUID) error {
	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.WithStack(domainerrors.NewProductNotFoundError(id.String()))
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.deleteImages(ctx, product.Images)
	srv.log(ctx).Info("Product removed", slog.Any("productID", id))

	return nil
}

// normalizeSizes maps labels onto the catalog, dropping duplicates and
// sorting them in catalog order.
func (srv *productService) normalizeSizes(raw []string) ([]entity.Size, error) {
	sizes := make([]entity.Size, 0, len(raw))
	for _, label := range raw {
		size, ok := srv.sizes.Normalize(label)
		if !ok {
			return nil, domainerrors.ErrInvalidSize.WithDetails(strconv.Quote(label))
		}
		if !slices.Contains(sizes, size) {
			sizes = append(sizes, size)
		}
	}
	srv.sizes.Sort(sizes)

	return sizes, nil
}

// buildStock validates requested quantities against sizes. Sizes without a
// requested quantity keep their previous quantity, or start at zero.
func (srv *productService) buildStock(sizes []entity.Size, requested map[string]int, previous entity.Stock) (entity.Stock, error) {
	stock := make(entity.Stock, len(sizes))
	for _, size := range sizes {
		stock[size] = previous[size]
	}

	for label, qty := range requested {
		size, ok := srv.sizes.Normalize(label)
		if !ok || !slices.Contains(sizes, size) {
			return nil, domainerrors.ErrInvalidStock.WithDetails("size " + strconv.Quote(label) + " is not offered")
		}
		if qty < 0 {
			return nil, domainerrors.ErrInvalidStock.WithDetails("size " + strconv.Quote(label) + " has negative stock")
		}
		stock[size] = qty
	}

	return stock, nil
}

func (srv *productService) uploadImages(ctx context.Context, productID uuid.UUID, uploads []usecase.ImageUpload) ([]string, error) {
	urls := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		url, err := srv.images.Upload(ctx, productID.String(), upload.Filename, upload.ContentType, upload.Data)
		if err != nil {
			srv.log(ctx).Error("Image upload failed", slog.Any("productID", productID), slog.String("filename", upload.Filename), slog.Any("error", err))
			srv.deleteImages(ctx, urls)

			return nil, errors.Wrap(domainerrors.ErrImageUploadFailed, err.Error())
		}
		if !slices.Contains(urls, url) {
			urls = append(urls, url)
		}
	}

	return urls, nil
}

// deleteImages removes images best-effort; failures only leave orphaned objects.
func (srv *productService) deleteImages(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := srv.images.Delete(ctx, url); err != nil {
			srv.log(ctx).Warn("Failed to delete product image", slog.String("url", url), slog.Any("error", err))
		}
	}
}

// unreferenced returns the urls not present in keep.
func unreferenced(urls, keep []string) []string {
	var out []string
	for _, url := range urls {
		if !slices.Contains(keep, url) {
			out = append(out, url)
		}
	}

	return out
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
