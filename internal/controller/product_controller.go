package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/tapanbhakhar27/inventory-service/internal/dto"
	"github.com/tapanbhakhar27/inventory-service/internal/service"
	"github.com/tapanbhakhar27/inventory-service/pkg/response"
	"github.com/tapanbhakhar27/inventory-service/pkg/validation"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(g *echo.Group, service service.ProductService) {
	c := ProductController{service: service}
	g.POST("/products", c.AddProduct)
	g.GET("/products", c.GetProducts)
	g.DELETE("/products/:id", c.DeleteProduct)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		return response.WriteErrorResponse(e, err, "ProductController.AddProduct")
	}

	payload.Trim()
	if err := e.Validate(&payload); err != nil {
		return response.WriteValidationErrorResponse(e, validation.Violations(err, dto.ProductRequestMessages))
	}

	respPayload, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, "ProductController.AddProduct")
	}

	return response.WriteSuccessResponse(e, http.StatusCreated, "Product added successfully", respPayload)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := dto.ProductFilter{
		Page:   1,
		Search: strings.TrimSpace(e.QueryParam("search")),
	}

	if page, err := strconv.ParseInt(e.QueryParam("page"), 10, 64); err == nil {
		filter.Page = page
	}

	if categories := e.QueryParam("categories"); categories != "" {
		filter.Categories = strings.Split(categories, ",")
	}

	respPayload, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, "ProductController.GetProducts")
	}

	return response.WritePaginatedResponse(e, http.StatusOK, respPayload.Products, respPayload.Pagination)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	id := e.Param("id")

	respPayload, err := c.service.DeleteProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, "ProductController.DeleteProduct")
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "Product deleted successfully", respPayload)
}
