package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/tapanbhakhar27/inventory-service/internal/domain"
	"github.com/tapanbhakhar27/inventory-service/internal/dto"
	"github.com/tapanbhakhar27/inventory-service/internal/repository"
	"github.com/tapanbhakhar27/inventory-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const productPageSize = 10

var productIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

type ProductServiceImpl struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func CreateProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &ProductServiceImpl{productRepo: productRepo, categoryRepo: categoryRepo}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (respPayload dto.ProductResponse, err error) {
	data.Trim()

	// Best-effort uniqueness check for a friendly message; the unique index
	// on name is what actually prevents a duplicate under concurrent writes.
	existing, err := s.productRepo.GetProductByName(ctx, data.Name)
	if err != nil {
		return
	}

	if !existing.ID.IsZero() {
		return respPayload, errs.Conflict("A product with this name already exists")
	}

	categoryIDs, err := parseCategoryIDs(data.Categories)
	if err != nil {
		return
	}

	categories, err := s.categoryRepo.GetCategoriesByIDs(ctx, categoryIDs)
	if err != nil {
		return
	}

	// Duplicated ids in the request resolve to fewer documents than were
	// supplied, so they are rejected here as well.
	if len(categories) != len(data.Categories) {
		return respPayload, errs.BadRequest("One or more categories do not exist")
	}

	product := domain.Product{
		Name:        data.Name,
		Description: data.Description,
		Quantity:    *data.Quantity,
		Categories:  categoryIDs,
		CreatedAt:   time.Now().UTC(),
	}

	id, err := s.productRepo.AddProduct(ctx, product)
	if err != nil {
		return
	}

	product.ID = id
	return toProductResponse(product, categoryNames(categories)), nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter dto.ProductFilter) (respPayload dto.ProductListResponse, err error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	filter.Limit = productPageSize

	total, err := s.productRepo.CountProducts(ctx, filter)
	if err != nil {
		return
	}

	totalPages := (total + filter.Limit - 1) / filter.Limit
	if filter.Page > totalPages && totalPages > 0 {
		return respPayload, errs.BadRequest(fmt.Sprintf("Page %d does not exist. Total pages: %d", filter.Page, totalPages))
	}

	products, err := s.productRepo.GetProducts(ctx, filter)
	if err != nil {
		return
	}

	names, err := s.resolveCategoryNames(ctx, products)
	if err != nil {
		return
	}

	respPayload.Products = make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		respPayload.Products = append(respPayload.Products, toProductResponse(product, names))
	}

	respPayload.Pagination = dto.Pagination{
		CurrentPage:   filter.Page,
		TotalPages:    totalPages,
		TotalProducts: total,
		Limit:         filter.Limit,
	}

	return respPayload, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (respPayload dto.DeletedProductResponse, err error) {
	if !productIDPattern.MatchString(id) {
		return respPayload, errs.BadRequest("Invalid product ID format")
	}

	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return respPayload, &errs.InvalidID{Field: "_id", Kind: "ObjectID", Value: id}
	}

	product, err := s.productRepo.DeleteProduct(ctx, productID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return respPayload, errs.NotFound("Product not found")
		}
		return
	}

	respPayload = dto.DeletedProductResponse{
		ID:          product.ID.Hex(),
		Name:        product.Name,
		Description: product.Description,
		Quantity:    product.Quantity,
		Categories:  make([]string, 0, len(product.Categories)),
		CreatedAt:   product.CreatedAt,
	}
	for _, categoryID := range product.Categories {
		respPayload.Categories = append(respPayload.Categories, categoryID.Hex())
	}

	return respPayload, nil
}

// resolveCategoryNames fetches the referenced categories for a result page in
// one query. References to categories deleted after product creation are
// simply absent from the result.
func (s *ProductServiceImpl) resolveCategoryNames(ctx context.Context, products []domain.Product) (map[primitive.ObjectID]string, error) {
	seen := map[primitive.ObjectID]bool{}
	ids := []primitive.ObjectID{}
	for _, product := range products {
		for _, id := range product.Categories {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	if len(ids) == 0 {
		return map[primitive.ObjectID]string{}, nil
	}

	categories, err := s.categoryRepo.GetCategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return categoryNames(categories), nil
}

func parseCategoryIDs(raw []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, value := range raw {
		id, err := primitive.ObjectIDFromHex(value)
		if err != nil {
			return nil, &errs.InvalidID{Field: "categories", Kind: "ObjectID", Value: value}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func categoryNames(categories []domain.Category) map[primitive.ObjectID]string {
	names := make(map[primitive.ObjectID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}
	return names
}

func toProductResponse(product domain.Product, names map[primitive.ObjectID]string) dto.ProductResponse {
	refs := make([]dto.CategoryRef, 0, len(product.Categories))
	for _, id := range product.Categories {
		name, ok := names[id]
		if !ok {
			continue
		}
		refs = append(refs, dto.CategoryRef{ID: id.Hex(), Name: name})
	}

	return dto.ProductResponse{
		ID:          product.ID.Hex(),
		Name:        product.Name,
		Description: product.Description,
		Quantity:    product.Quantity,
		Categories:  refs,
		CreatedAt:   product.CreatedAt,
	}
}
