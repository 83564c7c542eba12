package model

import "time"

// Product represents a row in the products table. JSON keys follow the
// catalog's existing wire format (the Angular client binds to these names).
type Product struct {
	ProductID     int64      `json:"Product_ID"`
	ProductName   string     `json:"Product_Name"`
	Category      string     `json:"Category"`
	Description   string     `json:"Description"`
	AuthorBrand   string     `json:"Author_Brand"`
	Price         float64    `json:"Price"`
	StockQuantity int        `json:"Stock_Quantity"`
	ImageURI      string     `json:"image_uri"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// ProductFilters is returned by GET /products/filters.
type ProductFilters struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
}
