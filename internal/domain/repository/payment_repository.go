package repository

import (
	"context"

	"github.com/bizmanager/backend/internal/domain/entity"
	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/bizmanager/backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentFilterParams contains filtering parameters for payment record queries
type PaymentFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.PaymentStatus
	CustomerID *uuid.UUID
	Search     string
}

// PaymentSummary aggregates the collection position across a user's records
type PaymentSummary struct {
	TotalBilled    decimal.Decimal `json:"total_billed"`
	TotalCollected decimal.Decimal `json:"total_collected"`
	TotalPending   decimal.Decimal `json:"total_pending"`
	OverdueCount   int64           `json:"overdue_count"`
}

// PaymentRepository defines the interface for payment ledger data operations
type PaymentRepository interface {
	CreateRecord(ctx context.Context, record *entity.PaymentRecord) error
	GetRecordByID(ctx context.Context, id uuid.UUID) (*entity.PaymentRecord, error)
	GetRecordByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.PaymentRecord, error)
	UpdateRecord(ctx context.Context, record *entity.PaymentRecord) error
	ListRecords(ctx context.Context, userID uuid.UUID, params *PaymentFilterParams) ([]entity.PaymentRecord, int64, error)
	// AddPayment persists a posting and the updated record in one transaction.
	AddPayment(ctx context.Context, record *entity.PaymentRecord, payment *entity.Payment) error
	Summary(ctx context.Context, userID uuid.UUID) (*PaymentSummary, error)
	// ListDueBefore returns unpaid records whose due date has passed, for the
	// overdue status sweep.
	ListDueBefore(ctx context.Context, userID uuid.UUID) ([]entity.PaymentRecord, error)
}
