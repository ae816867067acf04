package postgres

import (
	"context"
	"slices"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const defaultProductListLimit = 200

// productRepository implements the domain.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create inserts the product together with its stock rows.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidStock.WrapMessage("stock rejected by database")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID loads a product with its stock from the primary, so edits are read back immediately.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).
		Preload("Stocks").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// List returns products matching the filter, newest first. Listings may be served by a replica.
func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Model(&model.ProductModel{}).Preload("Stocks")

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.SubCategory != "" {
		query = query.Where("sub_category = ?", filter.SubCategory)
	}
	if filter.Bestseller != nil {
		query = query.Where("bestseller = ?", *filter.Bestseller)
	}
	if filter.NewSeason != nil {
		query = query.Where("new_season = ?", *filter.NewSeason)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where("(name ILIKE ? OR brand ILIKE ? OR description ILIKE ?)", pattern, pattern, pattern)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultProductListLimit
	}

	var productModels []*model.ProductModel
	if err := query.Order("created_at DESC, id ASC").Limit(limit).Offset(filter.Offset).Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Update writes the descriptive fields of the product. Stock is left untouched.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	productM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).Model(&model.ProductModel{ID: product.ID}).
		Select("name", "description", "brand", "price", "category", "sub_category", "color",
			"sizes", "images", "bestseller", "new_season", "updated_at").
		Updates(productM)
	if err := result.Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// ReplaceStock swaps the whole stock mapping of a product. Surviving sizes are
// updated in place so a concurrent guarded decrement waits on the row lock and
// then sees the new quantity; only sizes missing from stock are deleted.
func (repo *productRepository) ReplaceStock(ctx context.Context, productID uuid.UUID, stock entity.Stock) error {
	db := repo.db.WithContext(ctx)

	rows := fromStockDomain(productID, stock)
	kept := make([]string, 0, len(rows))
	for _, row := range rows {
		kept = append(kept, row.Size)
	}

	if len(rows) > 0 {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "size"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
		}).Create(&rows).Error
		if err != nil {
			if isCheckConstraintViolation(err) {
				return domainerrors.ErrInvalidStock.WrapMessage("stock rejected by database")
			}
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrProductNotFound
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to write product stock")
		}
	}

	dropped := db.Where("product_id = ?", productID)
	if len(kept) > 0 {
		dropped = dropped.Where("size NOT IN ?", kept)
	}
	if err := dropped.Delete(&model.ProductStockModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to drop product stock sizes")
	}

	return nil
}

// DecrementStock removes qty units of size only if at least qty remain.
// The guard and the write are one statement, so concurrent orders cannot both take the last units.
func (repo *productRepository) DecrementStock(ctx context.Context, productID uuid.UUID, size entity.Size, qty int) (bool, error) {
	if qty <= 0 {
		return false, errors.Errorf("decrement quantity must be positive, got %d", qty)
	}

	result := repo.db.WithContext(ctx).Model(&model.ProductStockModel{}).
		Where("product_id = ? AND size = ? AND quantity >= ?", productID, size.String(), qty).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", qty))
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}

	return result.RowsAffected == 1, nil
}

// Delete removes the product and its stock rows.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("product_id = ?", id).Delete(&model.ProductStockModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product stock")
	}

	result := db.Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// escapeLike neutralizes LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	sizes := make([]entity.Size, 0, len(data.Sizes))
	for _, s := range data.Sizes {
		sizes = append(sizes, entity.Size(s))
	}

	stock := make(entity.Stock, len(data.Stocks))
	for _, row := range data.Stocks {
		stock[entity.Size(row.Size)] = row.Quantity
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Brand:       data.Brand,
		Price:       data.Price,
		Category:    data.Category,
		SubCategory: data.SubCategory,
		Color:       data.Color,
		Sizes:       sizes,
		Images:      append([]string(nil), data.Images...),
		Bestseller:  data.Bestseller,
		NewSeason:   data.NewSeason,
		Stock:       stock,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	sizes := make([]string, 0, len(data.Sizes))
	for _, s := range data.Sizes {
		sizes = append(sizes, s.String())
	}

	images := data.Images
	if images == nil {
		images = []string{}
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Brand:       data.Brand,
		Price:       data.Price,
		Category:    data.Category,
		SubCategory: data.SubCategory,
		Color:       data.Color,
		Sizes:       sizes,
		Images:      images,
		Bestseller:  data.Bestseller,
		NewSeason:   data.NewSeason,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Stocks:      fromStockDomain(data.ID, data.Stock),
	}
}

// fromStockDomain returns rows ordered by size so writers lock them in a stable order.
func fromStockDomain(productID uuid.UUID, stock entity.Stock) []model.ProductStockModel {
	rows := make([]model.ProductStockModel, 0, len(stock))
	for size, qty := range stock {
		rows = append(rows, model.ProductStockModel{
			ProductID: productID,
			Size:      size.String(),
			Quantity:  qty,
		})
	}
	slices.SortFunc(rows, func(a, b model.ProductStockModel) int {
		return strings.Compare(a.Size, b.Size)
	})

	return rows
}
