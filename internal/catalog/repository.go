package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/weavemart/weavemart-backend/pkg/db/models"
)

// Repository wires together the catalog persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindProductByNameAndSeller resolves the soft natural key used by uploads.
func (r *Repository) FindProductByNameAndSeller(ctx context.Context, name string, sellerID uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		First(&product, "name = ? AND seller_id = ?", name, sellerID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindProductByID loads the product without associations.
func (r *Repository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductDetail loads one product with its full variation tree.
func (r *Repository) GetProductDetail(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Type").
		Preload("Variations.Sizes").
		Preload("Variations.Images.Images.ImageType").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts loads every product with its full variation tree.
func (r *Repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Type").
		Preload("Variations.Sizes").
		Preload("Variations.Images.Images.ImageType").
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListProductSummaries loads (id, name, type) rows for the upload form,
// sorted by name descending.
func (r *Repository) ListProductSummaries(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Type").
		Order("name DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// FindProductTypeByName resolves a seeded product type, case-insensitively.
func (r *Repository) FindProductTypeByName(ctx context.Context, name string) (*models.ProductType, error) {
	var productType models.ProductType
	err := r.db.WithContext(ctx).
		First(&productType, "UPPER(name) = UPPER(?)", name).Error
	if err != nil {
		return nil, err
	}
	return &productType, nil
}

// FindImageTypeByName resolves a seeded image type, case-insensitively.
func (r *Repository) FindImageTypeByName(ctx context.Context, name string) (*models.ImageType, error) {
	var imageType models.ImageType
	err := r.db.WithContext(ctx).
		First(&imageType, "UPPER(name) = UPPER(?)", name).Error
	if err != nil {
		return nil, err
	}
	return &imageType, nil
}

// FindSizeByID loads one seeded size row.
func (r *Repository) FindSizeByID(ctx context.Context, id uuid.UUID) (*models.Size, error) {
	var size models.Size
	if err := r.db.WithContext(ctx).First(&size, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &size, nil
}

// ListProductTypes returns the seeded product type catalog.
func (r *Repository) ListProductTypes(ctx context.Context) ([]models.ProductType, error) {
	var types []models.ProductType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// ListSizes returns the seeded size catalog.
func (r *Repository) ListSizes(ctx context.Context) ([]models.Size, error) {
	var sizes []models.Size
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

// CreateProduct inserts a new product row.
func (r *Repository) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// CreateVariation inserts a new variation row.
func (r *Repository) CreateVariation(ctx context.Context, variation *models.ProductVariation) error {
	return r.db.WithContext(ctx).Create(variation).Error
}

// CreateVariationSize inserts one size-quantity row for a variation.
func (r *Repository) CreateVariationSize(ctx context.Context, row *models.VariationSize) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// CreateProductImage inserts the image group row for a variation.
func (r *Repository) CreateProductImage(ctx context.Context, group *models.ProductImage) error {
	return r.db.WithContext(ctx).Create(group).Error
}

// CreateImage inserts one hosted image record.
func (r *Repository) CreateImage(ctx context.Context, image *models.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}
