package repositories

import (
	"context"
	"errors"
	"strings"

	"apiproducts/internal/apperrors"
	"apiproducts/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Save creates or updates product in the database.
func (r *GORMProductRepository) Save(ctx context.Context, product *models.Product) error {
	db := r.db.WithContext(ctx)

	if product.ID == "" {
		product.ID = uuid.New().String()
		if err := db.Create(product).Error; err != nil {
			product.ID = ""
			return apperrors.NewStorageError("failed to create product", err)
		}
		return nil
	}

	if err := db.Save(product).Error; err != nil {
		return apperrors.NewStorageError("failed to update product "+product.ID, err)
	}
	return nil
}

// FindByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) FindByID(ctx context.Context, id string) (*models.Product, bool, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, apperrors.NewStorageError("failed to get product by ID "+id, err)
	}
	return &product, true, nil
}

// FindAll retrieves all products from the database.
func (r *GORMProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&products).Error; err != nil {
		return nil, apperrors.NewStorageError("failed to get all products", err)
	}
	return products, nil
}

// Delete removes the row matching product's ID.
func (r *GORMProductRepository) Delete(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Delete(product).Error; err != nil {
		return apperrors.NewStorageError("failed to delete product "+product.ID, err)
	}
	return nil
}

// SearchByName matches fragment literally anywhere in the product name.
// Case sensitivity follows the store: SQLite LIKE ignores ASCII case, PostgreSQL LIKE does not.
func (r *GORMProductRepository) SearchByName(ctx context.Context, fragment string) ([]models.Product, error) {
	pattern := "%" + likeEscaper.Replace(fragment) + "%"

	products := make([]models.Product, 0)
	err := r.db.WithContext(ctx).
		Where(`name LIKE ? ESCAPE '\'`, pattern).
		Order("created_at, id").
		Find(&products).Error
	if err != nil {
		return nil, apperrors.NewStorageError("failed to search products by name", err)
	}
	return products, nil
}
