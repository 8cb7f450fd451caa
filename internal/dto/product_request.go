package dto

import "strings"

type ProductRequest struct {
	Name        string   `json:"name" validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"required,min=10,max=500"`
	Quantity    *int64   `json:"quantity" validate:"required,gte=0"`
	Categories  []string `json:"categories" validate:"required,min=1,dive,objectid"`
}

// Trim normalizes whitespace before the rule set runs, so length rules apply
// to the value that will be stored.
func (r *ProductRequest) Trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

// ProductRequestMessages maps violated rules to the messages reported to the
// client, keyed "field.tag".
var ProductRequestMessages = map[string]string{
	"name.required":        "Product name is required",
	"name.min":             "Name must be 3-100 characters",
	"name.max":             "Name must be 3-100 characters",
	"description.required": "Description is required",
	"description.min":      "Description must be 10-500 characters",
	"description.max":      "Description must be 10-500 characters",
	"quantity.required":    "Quantity is required",
	"quantity.gte":         "Quantity must be a non-negative integer",
	"categories.required":  "At least one category is required",
	"categories.min":       "At least one category is required",
	"categories.objectid":  "Invalid category ID format",
}

// ProductFilter carries the list-products query parameters.
type ProductFilter struct {
	Page       int64
	Limit      int64
	Search     string
	Categories []string
}
