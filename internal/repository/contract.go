package repository

import (
	"context"

	"github.com/tapanbhakhar27/inventory-service/internal/domain"
	"github.com/tapanbhakhar27/inventory-service/internal/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error)
	GetProductByName(ctx context.Context, name string) (domain.Product, error)
	GetProducts(ctx context.Context, filter dto.ProductFilter) ([]domain.Product, error)
	CountProducts(ctx context.Context, filter dto.ProductFilter) (int64, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) (domain.Product, error)
}

type CategoryRepository interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoriesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Category, error)
	AddCategories(ctx context.Context, data []domain.Category) (int, error)
	DeleteAllCategories(ctx context.Context) error
}
