package entity

import (
	"time"

	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentRecord tracks how much of a billable document has been collected.
// One record is seeded per invoice or receipt when the document is created.
type PaymentRecord struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	DocumentID      uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"document_id"`
	CustomerID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	TotalAmount     decimal.Decimal    `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	PaidAmount      decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"paid_amount"`
	RemainingAmount decimal.Decimal    `gorm:"type:decimal(15,2);default:0" json:"remaining_amount"`
	Status          enum.PaymentStatus `gorm:"default:0;index" json:"status"`
	DueDate         time.Time          `gorm:"type:date" json:"due_date"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	DeletedAt       gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Document Document  `gorm:"foreignKey:DocumentID" json:"document,omitempty"`
	Customer Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Payments []Payment `gorm:"foreignKey:RecordID" json:"payments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new payment record
func (pr *PaymentRecord) BeforeCreate(tx *gorm.DB) error {
	if pr.ID == uuid.Nil {
		pr.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PaymentRecord model
func (PaymentRecord) TableName() string {
	return "payment_records"
}

// Apply posts an amount against the record and recomputes the remaining
// balance and status. The due date decides pending versus overdue.
func (pr *PaymentRecord) Apply(amount decimal.Decimal, now time.Time) {
	pr.PaidAmount = pr.PaidAmount.Add(amount)
	pr.RemainingAmount = pr.TotalAmount.Sub(pr.PaidAmount)
	pr.Status = pr.computeStatus(now)
}

// RefreshStatus re-derives the status without changing the amounts. Used by
// the overdue sweep.
func (pr *PaymentRecord) RefreshStatus(now time.Time) {
	pr.Status = pr.computeStatus(now)
}

func (pr *PaymentRecord) computeStatus(now time.Time) enum.PaymentStatus {
	switch {
	case pr.RemainingAmount.LessThanOrEqual(decimal.Zero):
		return enum.PaymentStatusPaid
	case !pr.DueDate.IsZero() && now.After(pr.DueDate):
		return enum.PaymentStatusOverdue
	case pr.PaidAmount.IsPositive():
		return enum.PaymentStatusPartial
	default:
		return enum.PaymentStatusPending
	}
}

// Payment is a single posting against a payment record
type Payment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	RecordID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"record_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Mode      string          `gorm:"size:50;not null" json:"mode"`
	Reference *string         `gorm:"size:100" json:"reference,omitempty"`
	Notes     *string         `gorm:"type:text" json:"notes,omitempty"`
	PaidAt    time.Time       `gorm:"not null" json:"paid_at"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Record PaymentRecord `gorm:"foreignKey:RecordID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
