package repository

import (
	"context"
	"errors"

	"github.com/bizmanager/backend/internal/domain/entity"
	"github.com/bizmanager/backend/internal/domain/enum"
	domainRepo "github.com/bizmanager/backend/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) CreateRecord(ctx context.Context, record *entity.PaymentRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *paymentRepository) GetRecordByID(ctx context.Context, id uuid.UUID) (*entity.PaymentRecord, error) {
	var record entity.PaymentRecord
	err := r.db.WithContext(ctx).
		Preload("Payments").Preload("Document").Preload("Customer").
		First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *paymentRepository) GetRecordByDocumentID(ctx context.Context, documentID uuid.UUID) (*entity.PaymentRecord, error) {
	var record entity.PaymentRecord
	err := r.db.WithContext(ctx).
		Preload("Payments").
		First(&record, "document_id = ?", documentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *paymentRepository) UpdateRecord(ctx context.Context, record *entity.PaymentRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *paymentRepository) ListRecords(ctx context.Context, userID uuid.UUID, params *domainRepo.PaymentFilterParams) ([]entity.PaymentRecord, int64, error) {
	var records []entity.PaymentRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PaymentRecord{}).Where("payment_records.user_id = ?", userID)

	if params.Status != nil {
		query = query.Where("payment_records.status = ?", *params.Status)
	}
	if params.CustomerID != nil {
		query = query.Where("payment_records.customer_id = ?", *params.CustomerID)
	}
	if params.Search != "" {
		query = query.
			Joins("JOIN documents ON documents.id = payment_records.document_id").
			Where("documents.number ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Preload("Document").Preload("Customer").
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("payment_records.due_date ASC").
		Find(&records).Error

	return records, total, err
}

// AddPayment persists a posting and the updated record in one transaction
func (r *paymentRepository) AddPayment(ctx context.Context, record *entity.PaymentRecord, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return tx.Save(record).Error
	})
}

func (r *paymentRepository) Summary(ctx context.Context, userID uuid.UUID) (*domainRepo.PaymentSummary, error) {
	var summary domainRepo.PaymentSummary

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_amount), 0) as total_billed,
			COALESCE(SUM(paid_amount), 0) as total_collected,
			COALESCE(SUM(remaining_amount), 0) as total_pending
		FROM payment_records
		WHERE user_id = ? AND deleted_at IS NULL
	`, userID).Scan(&summary).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&entity.PaymentRecord{}).
		Where("user_id = ? AND status = ?", userID, enum.PaymentStatusOverdue).
		Count(&summary.OverdueCount).Error

	return &summary, err
}

// ListDueBefore returns unpaid records whose due date has passed
func (r *paymentRepository) ListDueBefore(ctx context.Context, userID uuid.UUID) ([]entity.PaymentRecord, error) {
	var records []entity.PaymentRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status IN ? AND due_date < CURRENT_DATE",
			userID, []enum.PaymentStatus{enum.PaymentStatusPending, enum.PaymentStatusPartial}).
		Find(&records).Error
	return records, err
}
