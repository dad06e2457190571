package service

import (
	"context"
	"time"

	"github.com/bizmanager/backend/internal/domain/entity"
	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/bizmanager/backend/internal/domain/repository"
	"github.com/bizmanager/backend/pkg/apperror"
	"github.com/bizmanager/backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentService handles the collection ledger
type PaymentService struct {
	paymentRepo repository.PaymentRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repository.PaymentRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo}
}

// RecordPaymentInput represents a payment posting
type RecordPaymentInput struct {
	UserID    uuid.UUID
	RecordID  uuid.UUID
	Amount    decimal.Decimal
	Mode      string
	Reference *string
	Notes     *string
	PaidAt    *time.Time
}

// RecordPayment posts an amount against a payment record and recomputes the
// remaining balance and status.
func (s *PaymentService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.PaymentRecord, error) {
	if !input.Amount.IsPositive() {
		return nil, apperror.NewBadRequestError("Payment amount must be greater than zero")
	}

	record, err := s.paymentRepo.GetRecordByID(ctx, input.RecordID)
	if err != nil {
		return nil, err
	}
	if record == nil || record.UserID != input.UserID {
		return nil, apperror.NewNotFoundError("Payment record")
	}
	if record.Status == enum.PaymentStatusPaid {
		return nil, apperror.NewConflictError("This document is already fully paid")
	}
	if input.Amount.GreaterThan(record.RemainingAmount) {
		return nil, apperror.NewUnprocessableError("Payment exceeds the remaining balance")
	}

	paidAt := time.Now()
	if input.PaidAt != nil {
		paidAt = *input.PaidAt
	}

	payment := &entity.Payment{
		RecordID:  record.ID,
		Amount:    input.Amount,
		Mode:      input.Mode,
		Reference: input.Reference,
		Notes:     input.Notes,
		PaidAt:    paidAt,
	}

	record.Apply(input.Amount, time.Now())

	if err := s.paymentRepo.AddPayment(ctx, record, payment); err != nil {
		return nil, err
	}

	record.Payments = append(record.Payments, *payment)
	return record, nil
}

// GetPaymentRecord retrieves a payment record with its postings
func (s *PaymentService) GetPaymentRecord(ctx context.Context, userID, id uuid.UUID) (*entity.PaymentRecord, error) {
	record, err := s.paymentRepo.GetRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil || record.UserID != userID {
		return nil, apperror.NewNotFoundError("Payment record")
	}
	return record, nil
}

// GetRecordForDocument retrieves the ledger entry backing a document
func (s *PaymentService) GetRecordForDocument(ctx context.Context, userID, documentID uuid.UUID) (*entity.PaymentRecord, error) {
	record, err := s.paymentRepo.GetRecordByDocumentID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if record == nil || record.UserID != userID {
		return nil, apperror.NewNotFoundError("Payment record")
	}
	return record, nil
}

// ListPaymentsInput represents the list payments input
type ListPaymentsInput struct {
	UserID     uuid.UUID
	Pagination *pagination.PaginationParams
	Status     *enum.PaymentStatus
	CustomerID *uuid.UUID
	Search     string
}

// ListPayments lists the user's payment records
func (s *PaymentService) ListPayments(ctx context.Context, input *ListPaymentsInput) (*pagination.PaginatedResult[entity.PaymentRecord], error) {
	params := &repository.PaymentFilterParams{
		Pagination: input.Pagination,
		Status:     input.Status,
		CustomerID: input.CustomerID,
		Search:     input.Search,
	}

	records, total, err := s.paymentRepo.ListRecords(ctx, input.UserID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(records, pag), nil
}

// GetSummary returns the user's collection position
func (s *PaymentService) GetSummary(ctx context.Context, userID uuid.UUID) (*repository.PaymentSummary, error) {
	return s.paymentRepo.Summary(ctx, userID)
}

// SweepOverdue flips unpaid records past their due date to overdue and
// returns how many were updated.
func (s *PaymentService) SweepOverdue(ctx context.Context, userID uuid.UUID) (int, error) {
	records, err := s.paymentRepo.ListDueBefore(ctx, userID)
	if err != nil {
		return 0, err
	}

	updated := 0
	now := time.Now()
	for i := range records {
		before := records[i].Status
		records[i].RefreshStatus(now)
		if records[i].Status == before {
			continue
		}
		if err := s.paymentRepo.UpdateRecord(ctx, &records[i]); err != nil {
			return updated, err
		}
		updated++
	}

	return updated, nil
}
