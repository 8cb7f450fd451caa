package service

import (
	"context"

	"github.com/tapanbhakhar27/inventory-service/internal/dto"
)

type ProductService interface {
	AddProduct(ctx context.Context, data dto.ProductRequest) (dto.ProductResponse, error)
	GetProducts(ctx context.Context, filter dto.ProductFilter) (dto.ProductListResponse, error)
	DeleteProduct(ctx context.Context, id string) (dto.DeletedProductResponse, error)
}

type CategoryService interface {
	GetCategories(ctx context.Context) ([]dto.CategoryResponse, error)
}
