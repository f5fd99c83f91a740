package repositories

import (
	"context"

	"apiproducts/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// Save inserts product when it has no ID (assigning one) and updates the matching row otherwise.
	Save(ctx context.Context, product *models.Product) error
	// FindByID reports false, with a nil error, when no row matches.
	FindByID(ctx context.Context, id string) (*models.Product, bool, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Delete(ctx context.Context, product *models.Product) error
	// SearchByName returns products whose name contains fragment. An empty fragment matches every row.
	SearchByName(ctx context.Context, fragment string) ([]models.Product, error)
}
