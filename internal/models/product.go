package models

import "time"

type StockStatus string

const (
	StockStatusInStock    StockStatus = "In Stock"
	StockStatusLimited    StockStatus = "Limited Stock"
	StockStatusOutOfStock StockStatus = "Out of Stock"
	StockStatusComingSoon StockStatus = "Coming Soon"
)

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	StockStatus StockStatus `json:"stock_status"`
	ImageURL    string      `json:"image_url,omitempty"`
	Category    *Category   `json:"category,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

type UpdateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
}
