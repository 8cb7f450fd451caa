package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tapanbhakhar27/inventory-service/internal/domain"
	"github.com/tapanbhakhar27/inventory-service/internal/dto"
	"github.com/tapanbhakhar27/inventory-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockProductRepository) GetProductByName(ctx context.Context, name string) (domain.Product, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductRepository) GetProducts(ctx context.Context, filter dto.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) CountProducts(ctx context.Context, filter dto.ProductFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

// MockCategoryRepository is a mock implementation of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetCategoriesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Category, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) AddCategories(ctx context.Context, data []domain.Category) (int, error) {
	args := m.Called(ctx, data)
	return args.Int(0), args.Error(1)
}

func (m *MockCategoryRepository) DeleteAllCategories(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestProductServiceAddProduct(t *testing.T) {
	ctx := context.Background()
	categoryID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	request := dto.ProductRequest{
		Name:        "Widget",
		Description: "A simple widget for testing",
		Quantity:    int64Ptr(5),
		Categories:  []string{categoryID.Hex()},
	}

	t.Run("creates product and expands categories", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := CreateProductService(productRepo, categoryRepo)

		productRepo.On("GetProductByName", ctx, "Widget").Return(domain.Product{}, nil)
		categoryRepo.On("GetCategoriesByIDs", ctx, []primitive.ObjectID{categoryID}).
			Return([]domain.Category{{ID: categoryID, Name: "Electronics"}}, nil)
		productRepo.On("AddProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
			return p.Name == "Widget" && p.Quantity == 5 && len(p.Categories) == 1 && !p.CreatedAt.IsZero()
		})).Return(productID, nil)

		resp, err := svc.AddProduct(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, productID.Hex(), resp.ID)
		assert.Equal(t, int64(5), resp.Quantity)
		require.Len(t, resp.Categories, 1)
		assert.Equal(t, categoryID.Hex(), resp.Categories[0].ID)
		assert.Equal(t, "Electronics", resp.Categories[0].Name)
		productRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate name before touching storage", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := CreateProductService(productRepo, categoryRepo)

		productRepo.On("GetProductByName", ctx, "Widget").
			Return(domain.Product{ID: primitive.NewObjectID(), Name: "widget"}, nil)

		_, err := svc.AddProduct(ctx, request)

		var appErr *errs.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusConflict, appErr.StatusCode)
		assert.Equal(t, "A product with this name already exists", appErr.Message)
		productRepo.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
	})

	t.Run("rejects nonexistent category ids", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := CreateProductService(productRepo, categoryRepo)

		productRepo.On("GetProductByName", ctx, "Widget").Return(domain.Product{}, nil)
		categoryRepo.On("GetCategoriesByIDs", ctx, []primitive.ObjectID{categoryID}).
			Return([]domain.Category{}, nil)

		_, err := svc.AddProduct(ctx, request)

		var appErr *errs.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		assert.Equal(t, "One or more categories do not exist", appErr.Message)
		productRepo.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
	})

	t.Run("rejects duplicated category ids in one request", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := CreateProductService(productRepo, categoryRepo)

		duplicated := request
		duplicated.Categories = []string{categoryID.Hex(), categoryID.Hex()}

		productRepo.On("GetProductByName", ctx, "Widget").Return(domain.Product{}, nil)
		categoryRepo.On("GetCategoriesByIDs", ctx, []primitive.ObjectID{categoryID, categoryID}).
			Return([]domain.Category{{ID: categoryID, Name: "Electronics"}}, nil)

		_, err := svc.AddProduct(ctx, duplicated)

		var appErr *errs.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
	})

	t.Run("stores trimmed name and description", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := CreateProductService(productRepo, categoryRepo)

		padded := request
		padded.Name = "  Widget  "
		padded.Description = "  A simple widget for testing  "

		productRepo.On("GetProductByName", ctx, "Widget").Return(domain.Product{}, nil)
		categoryRepo.On("GetCategoriesByIDs", ctx, []primitive.ObjectID{categoryID}).
			Return([]domain.Category{{ID: categoryID, Name: "Electronics"}}, nil)
		productRepo.On("AddProduct", ctx, mock.MatchedBy(func(p domain.Product) bool {
			return p.Name == "Widget" && p.Description == "A simple widget for testing"
		})).Return(productID, nil)

		_, err := svc.AddProduct(ctx, padded)

		require.NoError(t, err)
		productRepo.AssertExpectations(t)
	})

	t.Run("propagates storage failure on insert", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := CreateProductService(productRepo, categoryRepo)

		storageErr := errors.New("insert failed")
		productRepo.On("GetProductByName", ctx, "Widget").Return(domain.Product{}, nil)
		categoryRepo.On("GetCategoriesByIDs", ctx, []primitive.ObjectID{categoryID}).
			Return([]domain.Category{{ID: categoryID, Name: "Electronics"}}, nil)
		productRepo.On("AddProduct", ctx, mock.Anything).Return(primitive.NilObjectID, storageErr)

		_, err := svc.AddProduct(ctx, request)

		assert.ErrorIs(t, err, storageErr)
	})
}

func TestProductServiceGetProducts(t *testing.T) {
	ctx := context.Background()
	categoryID := primitive.NewObjectID()

	products := []domain.Product{
		{
			ID:         primitive.NewObjectID(),
			Name:       "Widget",
			Quantity:   5,
			Categories: []primitive.ObjectID{categoryID},
			CreatedAt:  time.Now().UTC(),
		},
	}

	t.Run("returns page with expanded categories and metadata", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := CreateProductService(productRepo, categoryRepo)

		expectedFilter := dto.ProductFilter{Page: 1, Limit: 10, Search: "wid"}
		productRepo.On("CountProducts", ctx, expectedFilter).Return(int64(1), nil)
		productRepo.On("GetProducts", ctx, expectedFilter).Return(products, nil)
		categoryRepo.On("GetCategoriesByIDs", ctx, []primitive.ObjectID{categoryID}).
			Return([]domain.Category{{ID: categoryID, Name: "Electronics"}}, nil)

		resp, err := svc.GetProducts(ctx, dto.ProductFilter{Page: 1, Search: "wid"})

		require.NoError(t, err)
		require.Len(t, resp.Products, 1)
		assert.Equal(t, "Electronics", resp.Products[0].Categories[0].Name)
		assert.Equal(t, dto.Pagination{CurrentPage: 1, TotalPages: 1, TotalProducts: 1, Limit: 10}, resp.Pagination)
	})

	t.Run("floors page at one", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := CreateProductService(productRepo, categoryRepo)

		expectedFilter := dto.ProductFilter{Page: 1, Limit: 10}
		productRepo.On("CountProducts", ctx, expectedFilter).Return(int64(0), nil)
		productRepo.On("GetProducts", ctx, expectedFilter).Return([]domain.Product{}, nil)

		resp, err := svc.GetProducts(ctx, dto.ProductFilter{Page: -3})

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.Pagination.CurrentPage)
	})

	t.Run("rejects page beyond total pages", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := CreateProductService(productRepo, categoryRepo)

		expectedFilter := dto.ProductFilter{Page: 3, Limit: 10}
		productRepo.On("CountProducts", ctx, expectedFilter).Return(int64(5), nil)

		_, err := svc.GetProducts(ctx, dto.ProductFilter{Page: 3})

		var appErr *errs.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		assert.Equal(t, "Page 3 does not exist. Total pages: 1", appErr.Message)
		productRepo.AssertNotCalled(t, "GetProducts", mock.Anything, mock.Anything)
	})

	t.Run("empty collection returns empty first page", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := CreateProductService(productRepo, categoryRepo)

		expectedFilter := dto.ProductFilter{Page: 1, Limit: 10}
		productRepo.On("CountProducts", ctx, expectedFilter).Return(int64(0), nil)
		productRepo.On("GetProducts", ctx, expectedFilter).Return([]domain.Product{}, nil)

		resp, err := svc.GetProducts(ctx, dto.ProductFilter{Page: 1})

		require.NoError(t, err)
		assert.Empty(t, resp.Products)
		assert.Equal(t, int64(0), resp.Pagination.TotalPages)
	})
}

func TestProductServiceDeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects malformed id without touching storage", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := CreateProductService(productRepo, categoryRepo)

		_, err := svc.DeleteProduct(ctx, "not-a-valid-id")

		var appErr *errs.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		assert.Equal(t, "Invalid product ID format", appErr.Message)
		productRepo.AssertNotCalled(t, "DeleteProduct", mock.Anything, mock.Anything)
	})

	t.Run("maps missing document to not found", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := CreateProductService(productRepo, categoryRepo)

		id := primitive.NewObjectID()
		productRepo.On("DeleteProduct", ctx, id).Return(domain.Product{}, mongo.ErrNoDocuments)

		_, err := svc.DeleteProduct(ctx, id.Hex())

		var appErr *errs.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
		assert.Equal(t, "Product not found", appErr.Message)
	})

	t.Run("returns the deleted document with raw category ids", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		categoryRepo := new(MockCategoryRepository)
		svc := CreateProductService(productRepo, categoryRepo)

		id := primitive.NewObjectID()
		categoryID := primitive.NewObjectID()
		productRepo.On("DeleteProduct", ctx, id).Return(domain.Product{
			ID:         id,
			Name:       "Widget",
			Quantity:   5,
			Categories: []primitive.ObjectID{categoryID},
		}, nil)

		resp, err := svc.DeleteProduct(ctx, id.Hex())

		require.NoError(t, err)
		assert.Equal(t, id.Hex(), resp.ID)
		assert.Equal(t, []string{categoryID.Hex()}, resp.Categories)
	})
}

func TestCategoryServiceGetCategories(t *testing.T) {
	ctx := context.Background()

	categoryRepo := new(MockCategoryRepository)
	svc := CreateCategoryService(categoryRepo)

	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	categoryRepo.On("GetCategories", ctx).Return([]domain.Category{
		{ID: first, Name: "Books"},
		{ID: second, Name: "Electronics"},
	}, nil)

	resp, err := svc.GetCategories(ctx)

	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "Books", resp[0].Name)
	assert.Equal(t, first.Hex(), resp[0].ID)
}
