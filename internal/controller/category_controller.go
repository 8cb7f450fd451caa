package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tapanbhakhar27/inventory-service/internal/service"
	"github.com/tapanbhakhar27/inventory-service/pkg/response"
)

type CategoryController struct {
	service service.CategoryService
}

func CreateCategoryController(g *echo.Group, service service.CategoryService) {
	c := CategoryController{service: service}
	g.GET("/categories", c.GetCategories)
}

func (c *CategoryController) GetCategories(e echo.Context) error {
	respPayload, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, "CategoryController.GetCategories")
	}

	return response.WriteSuccessResponse(e, http.StatusOK, "", respPayload)
}
