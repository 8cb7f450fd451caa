package dto

import "time"

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Quantity    int64         `json:"quantity"`
	Categories  []CategoryRef `json:"categories"`
	CreatedAt   time.Time     `json:"createdAt"`
}

type Pagination struct {
	CurrentPage   int64 `json:"currentPage"`
	TotalPages    int64 `json:"totalPages"`
	TotalProducts int64 `json:"totalProducts"`
	Limit         int64 `json:"limit"`
}

type ProductListResponse struct {
	Products   []ProductResponse
	Pagination Pagination
}

// DeletedProductResponse echoes the removed document. Category references
// are returned as raw ids, matching the stored document.
type DeletedProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int64     `json:"quantity"`
	Categories  []string  `json:"categories"`
	CreatedAt   time.Time `json:"createdAt"`
}
