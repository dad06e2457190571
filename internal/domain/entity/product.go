package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a sellable good or service
type Product struct {
	ID                uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Name              string           `gorm:"size:255;not null" json:"name"`
	Description       *string          `gorm:"type:text" json:"description,omitempty"`
	Category          *string          `gorm:"size:100" json:"category,omitempty"`
	Brand             *string          `gorm:"size:100" json:"brand,omitempty"`
	SKU               *string          `gorm:"size:64;column:sku" json:"sku,omitempty"`
	HSNCode           *string          `gorm:"size:10;column:hsn_code" json:"hsn_code,omitempty"`
	Unit              string           `gorm:"size:20;default:'pcs'" json:"unit"`
	Price             decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"price"`
	CostPrice         *decimal.Decimal `gorm:"type:decimal(15,2)" json:"cost_price,omitempty"`
	TaxRate           decimal.Decimal  `gorm:"type:decimal(5,2);default:18" json:"tax_rate"`
	StockQuantity     int              `gorm:"default:0" json:"stock_quantity"`
	LowStockThreshold int              `gorm:"default:10" json:"low_stock_threshold"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	DeletedAt         gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the stock level is at or below the alert threshold
func (p *Product) IsLowStock() bool {
	return p.StockQuantity <= p.LowStockThreshold
}
