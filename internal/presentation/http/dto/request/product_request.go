package request

import "github.com/shopspring/decimal"

// ProductFilterRequest represents product list query parameters
type ProductFilterRequest struct {
	Page      int    `form:"page,default=1"`
	PerPage   int    `form:"per_page,default=15"`
	Search    string `form:"search"`
	Category  string `form:"category"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name              string           `json:"name" binding:"required,min=2,max=255"`
	Description       *string          `json:"description"`
	Category          *string          `json:"category"`
	Brand             *string          `json:"brand"`
	SKU               *string          `json:"sku" binding:"omitempty,max=64"`
	HSNCode           *string          `json:"hsn_code"`
	Unit              string           `json:"unit"`
	Price             decimal.Decimal  `json:"price" binding:"required"`
	CostPrice         *decimal.Decimal `json:"cost_price"`
	TaxRate           *decimal.Decimal `json:"tax_rate"`
	StockQuantity     int              `json:"stock_quantity" binding:"min=0"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name              *string          `json:"name" binding:"omitempty,min=2,max=255"`
	Description       *string          `json:"description"`
	Category          *string          `json:"category"`
	Brand             *string          `json:"brand"`
	SKU               *string          `json:"sku" binding:"omitempty,max=64"`
	HSNCode           *string          `json:"hsn_code"`
	Unit              *string          `json:"unit"`
	Price             *decimal.Decimal `json:"price"`
	CostPrice         *decimal.Decimal `json:"cost_price"`
	TaxRate           *decimal.Decimal `json:"tax_rate"`
	StockQuantity     *int             `json:"stock_quantity" binding:"omitempty,min=0"`
	LowStockThreshold *int             `json:"low_stock_threshold"`
}
