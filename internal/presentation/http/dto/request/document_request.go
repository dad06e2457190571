package request

import (
	"time"

	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentItemRequest represents a line item in a document request
type DocumentItemRequest struct {
	ProductID   *uuid.UUID      `json:"product_id"`
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description"`
	HSNCode     *string         `json:"hsn_code"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	Rate        decimal.Decimal `json:"rate" binding:"required"`
	Discount    decimal.Decimal `json:"discount"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

// CreateDocumentRequest represents a document creation request
type CreateDocumentRequest struct {
	CustomerID    uuid.UUID             `json:"customer_id" binding:"required"`
	Type          enum.DocumentType     `json:"type"`
	IssueDate     *time.Time            `json:"issue_date"`
	DueDate       *time.Time            `json:"due_date"`
	Items         []DocumentItemRequest `json:"items" binding:"required,min=1,dive"`
	DiscountValue decimal.Decimal       `json:"discount_value"`
	DiscountKind  enum.DiscountKind     `json:"discount_kind"`
	Template      *enum.Template        `json:"template"`
	PaymentMode   *string               `json:"payment_mode"`
	Notes         *string               `json:"notes"`
}

// UpdateDocumentRequest represents a document update request. Items, when
// present, replace the existing lines.
type UpdateDocumentRequest struct {
	IssueDate     *time.Time            `json:"issue_date"`
	DueDate       *time.Time            `json:"due_date"`
	Items         []DocumentItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	DiscountValue *decimal.Decimal      `json:"discount_value"`
	DiscountKind  *enum.DiscountKind    `json:"discount_kind"`
	Template      *enum.Template        `json:"template"`
	PaymentMode   *string               `json:"payment_mode"`
	Notes         *string               `json:"notes"`
}

// EmailDocumentRequest represents a request to mail a document. The address
// falls back to the customer's when omitted.
type EmailDocumentRequest struct {
	To string `json:"to" binding:"omitempty,email"`
}
