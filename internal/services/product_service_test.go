package services_test

import (
	"context"
	"errors"
	"testing"

	"apiproducts/internal/apperrors"
	"apiproducts/internal/models"
	"apiproducts/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Save(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (*models.Product, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Product), args.Bool(1), args.Error(2)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) SearchByName(ctx context.Context, fragment string) ([]models.Product, error) {
	args := m.Called(ctx, fragment)
	return args.Get(0).([]models.Product), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event models.ProductEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func floatPtr(f float64) *float64 { return &f }

func eventOfType(eventType, productID string) interface{} {
	return mock.MatchedBy(func(e models.ProductEvent) bool {
		return e.Type == eventType && e.ProductID == productID
	})
}

func TestProductService_ListProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil, nil)
	ctx := context.Background()

	expectedProducts := []models.Product{
		{ID: "1", Name: "Product A", Value: 10.0},
		{ID: "2", Name: "Product B", Value: 20.0},
	}
	mockRepo.On("FindAll", ctx).Return(expectedProducts, nil).Once()

	products, err := service.ListProducts(ctx)

	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil, nil)
	ctx := context.Background()

	expectedProduct := &models.Product{ID: "1", Name: "Product A", Value: 10.0}

	// Test successful retrieval
	mockRepo.On("FindByID", ctx, "1").Return(expectedProduct, true, nil).Once()
	product, err := service.GetProduct(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	// Test product not found
	mockRepo.On("FindByID", ctx, "99").Return(nil, false, nil).Once()
	product, err = service.GetProduct(ctx, "99")
	assert.Nil(t, product)
	assert.True(t, apperrors.IsOfKind(err, apperrors.KindNotFound))
	assert.Equal(t, "Product not found", err.Error())

	// Test storage failure
	storageErr := apperrors.NewStorageError("failed to get product", errors.New("connection reset"))
	mockRepo.On("FindByID", ctx, "42").Return(nil, false, storageErr).Once()
	_, err = service.GetProduct(ctx, "42")
	assert.True(t, apperrors.IsOfKind(err, apperrors.KindStorage))

	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockPublisher)
	service := services.NewProductService(mockRepo, mockPublisher, nil)
	ctx := context.Background()

	mockRepo.On("Save", ctx, mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "" && p.Name == "Widget" && p.Value == 9.99
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Product).ID = "new-id"
	}).Return(nil).Once()
	mockPublisher.On("Publish", ctx, eventOfType(models.ProductCreated, "new-id")).Return(nil).Once()

	product, err := service.CreateProduct(ctx, models.ProductInput{Name: "Widget", Value: floatPtr(9.99)})

	require.NoError(t, err)
	assert.Equal(t, "new-id", product.ID)
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, 9.99, product.Value)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_CreateProductStorageFailure(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockPublisher)
	service := services.NewProductService(mockRepo, mockPublisher, nil)
	ctx := context.Background()

	mockRepo.On("Save", ctx, mock.Anything).Return(apperrors.NewStorageError("failed to create product", errors.New("database error"))).Once()

	product, err := service.CreateProduct(ctx, models.ProductInput{Name: "Widget", Value: floatPtr(1)})

	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "database error")
	mockPublisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestProductService_PublishFailureDoesNotFailOperation(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockPublisher)
	service := services.NewProductService(mockRepo, mockPublisher, nil)
	ctx := context.Background()

	mockRepo.On("Save", ctx, mock.Anything).Return(nil).Once()
	mockPublisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	_, err := service.CreateProduct(ctx, models.ProductInput{Name: "Widget", Value: floatPtr(1)})

	assert.NoError(t, err)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockPublisher)
	service := services.NewProductService(mockRepo, mockPublisher, nil)
	ctx := context.Background()

	existing := &models.Product{ID: "1", Name: "Product A", Value: 10.0}
	mockRepo.On("FindByID", ctx, "1").Return(existing, true, nil).Once()
	mockRepo.On("Save", ctx, mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "1" && p.Name == "Product A Updated" && p.Value == 12.0
	})).Return(nil).Once()
	mockPublisher.On("Publish", ctx, eventOfType(models.ProductUpdated, "1")).Return(nil).Once()

	product, err := service.UpdateProduct(ctx, "1", models.ProductInput{Name: "Product A Updated", Value: floatPtr(12.0)})

	require.NoError(t, err)
	assert.Equal(t, "1", product.ID)
	assert.Equal(t, "Product A Updated", product.Name)
	assert.Equal(t, 12.0, product.Value)
	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_UpdateProductNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil, nil)
	ctx := context.Background()

	mockRepo.On("FindByID", ctx, "99").Return(nil, false, nil).Once()

	_, err := service.UpdateProduct(ctx, "99", models.ProductInput{Name: "NonExistent", Value: floatPtr(1)})

	assert.True(t, apperrors.IsOfKind(err, apperrors.KindNotFound))
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockPublisher := new(MockPublisher)
	service := services.NewProductService(mockRepo, mockPublisher, nil)
	ctx := context.Background()

	existing := &models.Product{ID: "1", Name: "Product A", Value: 10.0}

	// Test successful deletion
	mockRepo.On("FindByID", ctx, "1").Return(existing, true, nil).Once()
	mockRepo.On("Delete", ctx, existing).Return(nil).Once()
	mockPublisher.On("Publish", ctx, eventOfType(models.ProductDeleted, "1")).Return(nil).Once()
	assert.NoError(t, service.DeleteProduct(ctx, "1"))

	// Test deletion of a missing product
	mockRepo.On("FindByID", ctx, "99").Return(nil, false, nil).Once()
	err := service.DeleteProduct(ctx, "99")
	assert.True(t, apperrors.IsOfKind(err, apperrors.KindNotFound))

	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestProductService_SearchProductsByName(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil, nil)
	ctx := context.Background()

	matches := []models.Product{{ID: "1", Name: "Widget", Value: 9.99}}
	mockRepo.On("SearchByName", ctx, "idg").Return(matches, nil).Once()

	products, err := service.SearchProductsByName(ctx, "idg")

	assert.NoError(t, err)
	assert.Equal(t, matches, products)
	mockRepo.AssertExpectations(t)
}
