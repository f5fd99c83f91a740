package repositories

import (
	"context"
	"strings"
	"sync"
	"time"

	"apiproducts/internal/models"

	"github.com/google/uuid"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
// Rows are returned in insertion order.
type MemoryProductRepository struct {
	products map[string]models.Product
	order    []string
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[string]models.Product),
	}
}

// Save adds product, or replaces the stored copy when its ID is known.
func (r *MemoryProductRepository) Save(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if existing, ok := r.products[product.ID]; ok {
		product.CreatedAt = existing.CreatedAt
	} else {
		if product.CreatedAt.IsZero() {
			product.CreatedAt = now
		}
		r.order = append(r.order, product.ID)
	}
	product.UpdatedAt = now
	r.products[product.ID] = *product
	return nil
}

// FindByID returns a copy of the product stored under id.
func (r *MemoryProductRepository) FindByID(_ context.Context, id string) (*models.Product, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, false, nil
	}
	return &product, true, nil
}

// FindAll returns all products.
func (r *MemoryProductRepository) FindAll(_ context.Context) ([]models.Product, error) {
	return r.filter(func(models.Product) bool { return true }), nil
}

// Delete removes the product with product.ID. Unknown IDs are ignored.
func (r *MemoryProductRepository) Delete(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return nil
	}
	delete(r.products, product.ID)
	for i, id := range r.order {
		if id == product.ID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// SearchByName returns products whose name contains fragment (case-sensitive).
func (r *MemoryProductRepository) SearchByName(_ context.Context, fragment string) ([]models.Product, error) {
	return r.filter(func(p models.Product) bool { return strings.Contains(p.Name, fragment) }), nil
}

func (r *MemoryProductRepository) filter(keep func(models.Product) bool) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		if p := r.products[id]; keep(p) {
			productList = append(productList, p)
		}
	}
	return productList
}
