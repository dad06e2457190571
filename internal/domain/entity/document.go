package entity

import (
	"time"

	"github.com/bizmanager/backend/internal/domain/billing"
	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/bizmanager/backend/pkg/gst"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Document represents a business document: invoice, quotation, purchase
// order, receipt and the rest. Computed money fields are stored as persisted
// snapshots so a document never changes when tax rules or product prices do.
type Document struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID uuid.UUID         `gorm:"type:uuid;not null;index" json:"customer_id"`
	Type       enum.DocumentType `gorm:"not null;index" json:"type"`
	Number     string            `gorm:"size:50;unique;not null" json:"number"`
	IssueDate  time.Time         `gorm:"type:date;not null" json:"issue_date"`
	DueDate    time.Time         `gorm:"type:date" json:"due_date"`

	DiscountValue decimal.Decimal   `gorm:"type:decimal(15,2);default:0" json:"discount_value"`
	DiscountKind  enum.DiscountKind `gorm:"default:0" json:"discount_kind"`

	Subtotal       decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	TaxableAmount  decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"taxable_amount"`
	CGST           decimal.Decimal `gorm:"type:decimal(15,2);default:0;column:cgst" json:"cgst"`
	SGST           decimal.Decimal `gorm:"type:decimal(15,2);default:0;column:sgst" json:"sgst"`
	IGST           decimal.Decimal `gorm:"type:decimal(15,2);default:0;column:igst" json:"igst"`
	TotalTax       decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total_tax"`
	GrandTotal     decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"grand_total"`

	Template    enum.Template `gorm:"default:0" json:"template"`
	PaymentMode *string       `gorm:"size:50" json:"payment_mode,omitempty"`
	Notes       *string       `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User           `gorm:"foreignKey:UserID" json:"-"`
	Customer Customer       `gorm:"foreignKey:CustomerID" json:"customer"`
	Items    []DocumentItem `gorm:"foreignKey:DocumentID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new document
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Document model
func (Document) TableName() string {
	return "documents"
}

// Discount returns the document-level discount in calculation form.
func (d *Document) Discount() billing.DocumentDiscount {
	return billing.DocumentDiscount{Value: d.DiscountValue, Kind: d.DiscountKind}
}

// LineItems converts stored rows into calculation line items, recomputed
// from the stored inputs.
func (d *Document) LineItems() []billing.LineItem {
	items := make([]billing.LineItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, it.LineItem())
	}
	return items
}

// ApplyTotals copies an aggregation result onto the persisted snapshot fields.
func (d *Document) ApplyTotals(t billing.Totals) {
	d.Subtotal = t.Subtotal
	d.DiscountAmount = t.TotalDiscount
	d.TaxableAmount = t.TaxableAmount
	d.CGST = t.GST.CGST
	d.SGST = t.GST.SGST
	d.IGST = t.GST.IGST
	d.TotalTax = t.GST.TotalGST
	d.GrandTotal = t.GrandTotal
}

// Totals reassembles the stored snapshot into aggregation form.
func (d *Document) Totals() billing.Totals {
	return billing.Totals{
		Subtotal:      d.Subtotal,
		TotalDiscount: d.DiscountAmount,
		TaxableAmount: d.TaxableAmount,
		GST: gst.Breakdown{
			CGST:     d.CGST,
			SGST:     d.SGST,
			IGST:     d.IGST,
			TotalGST: d.TotalTax,
		},
		GrandTotal: d.GrandTotal,
	}
}

// DocumentItem represents a line item on a document
type DocumentItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	DocumentID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"document_id"`
	ProductID   *uuid.UUID      `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description *string         `gorm:"type:text" json:"description,omitempty"`
	HSNCode     *string         `gorm:"size:10;column:hsn_code" json:"hsn_code,omitempty"`
	Unit        string          `gorm:"size:20;default:'pcs'" json:"unit"`
	Quantity    decimal.Decimal `gorm:"type:decimal(15,3);not null" json:"quantity"`
	Rate        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"rate"`
	Discount    decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"discount"`
	TaxRate     decimal.Decimal `gorm:"type:decimal(5,2);default:18" json:"tax_rate"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"amount"`
	TaxAmount   decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"tax_amount"`
	FinalAmount decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"final_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Document Document `gorm:"foreignKey:DocumentID" json:"-"`
	Product  *Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new document item
func (di *DocumentItem) BeforeCreate(tx *gorm.DB) error {
	if di.ID == uuid.Nil {
		di.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DocumentItem model
func (DocumentItem) TableName() string {
	return "document_items"
}

// LineItem converts the stored row into a calculation line item. The derived
// amounts are recomputed from the stored inputs rather than trusted as-is.
func (di *DocumentItem) LineItem() billing.LineItem {
	item := billing.NewLineItem(di.ID.String(), di.Name, di.Quantity, di.Rate, di.Discount, di.TaxRate)
	item.Description = deref(di.Description)
	item.HSN = deref(di.HSNCode)
	item.Unit = di.Unit
	return item
}

// ApplyLineItem copies computed amounts back onto the stored row.
func (di *DocumentItem) ApplyLineItem(item billing.LineItem) {
	di.Amount = item.Amount
	di.TaxAmount = item.TaxAmount
	di.FinalAmount = item.FinalAmount
}
