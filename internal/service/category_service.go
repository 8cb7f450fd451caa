package service

import (
	"context"

	"github.com/tapanbhakhar27/inventory-service/internal/dto"
	"github.com/tapanbhakhar27/inventory-service/internal/repository"
)

type CategoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
}

func CreateCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context) (respPayload []dto.CategoryResponse, err error) {
	categories, err := s.categoryRepo.GetCategories(ctx)
	if err != nil {
		return
	}

	respPayload = make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		respPayload = append(respPayload, dto.CategoryResponse{
			ID:        category.ID.Hex(),
			Name:      category.Name,
			CreatedAt: category.CreatedAt,
		})
	}

	return respPayload, nil
}
