package services

import (
	"context"

	"apiproducts/internal/apperrors"
	"apiproducts/internal/models"
	"apiproducts/internal/repositories"

	"go.uber.org/zap"
)

// ProductNotFoundMessage is reported whenever an id has no matching row.
const ProductNotFoundMessage = "Product not found"

// EventPublisher delivers product lifecycle events to interested consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event models.ProductEvent) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewProductService creates a new ProductService. publisher may be nil, in which case no events are sent.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher, logger *zap.Logger) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// ListProducts retrieves all products.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx)
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, ok, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewNotFoundError(ProductNotFoundMessage)
	}
	return product, nil
}

// CreateProduct persists a new product built from an already validated input.
func (s *ProductService) CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	product := &models.Product{}
	input.ApplyTo(product)

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publish(ctx, models.ProductCreated, product)
	return product, nil
}

// UpdateProduct overwrites every input field on the stored product; the ID never changes.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input models.ProductInput) (*models.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	input.ApplyTo(product)
	if err := s.repo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publish(ctx, models.ProductUpdated, product)
	return product, nil
}

// DeleteProduct deletes a product by its ID.
// The lookup and the delete are separate calls, so a concurrent delete of the same id may both succeed.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, product); err != nil {
		return err
	}

	s.publish(ctx, models.ProductDeleted, product)
	return nil
}

// SearchProductsByName returns products whose name contains fragment.
func (s *ProductService) SearchProductsByName(ctx context.Context, fragment string) ([]models.Product, error) {
	return s.repo.SearchByName(ctx, fragment)
}

// publish is best effort: the change is already committed, so failures are only logged.
func (s *ProductService) publish(ctx context.Context, eventType string, product *models.Product) {
	if s.publisher == nil {
		return
	}
	event := models.NewProductEvent(eventType, *product)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish product event",
			zap.String("event_type", eventType),
			zap.String("product_id", product.ID),
			zap.Error(err),
		)
	}
}
