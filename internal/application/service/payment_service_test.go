package service

import (
	"context"
	"testing"
	"time"

	"github.com/bizmanager/backend/internal/domain/entity"
	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/bizmanager/backend/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPendingRecord(t *testing.T, repo *fakePaymentRepo, userID uuid.UUID, total int64, due time.Time) *entity.PaymentRecord {
	t.Helper()

	record := &entity.PaymentRecord{
		UserID:          userID,
		DocumentID:      uuid.New(),
		CustomerID:      uuid.New(),
		TotalAmount:     decimal.NewFromInt(total),
		PaidAmount:      decimal.Zero,
		RemainingAmount: decimal.NewFromInt(total),
		Status:          enum.PaymentStatusPending,
		DueDate:         due,
	}
	require.NoError(t, repo.CreateRecord(context.Background(), record))
	return record
}

func TestRecordPaymentPartialThenPaid(t *testing.T) {
	repo := newFakePaymentRepo()
	userID := uuid.New()
	record := seedPendingRecord(t, repo, userID, 10000, time.Now().AddDate(0, 0, 30))
	svc := NewPaymentService(repo)

	partial, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:   userID,
		RecordID: record.ID,
		Amount:   decimal.NewFromInt(4000),
		Mode:     "UPI",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStatusPartial, partial.Status)
	assert.True(t, partial.RemainingAmount.Equal(decimal.NewFromInt(6000)))
	require.Len(t, partial.Payments, 1)

	paid, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:   userID,
		RecordID: record.ID,
		Amount:   decimal.NewFromInt(6000),
		Mode:     "Bank Transfer",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStatusPaid, paid.Status)
	assert.True(t, paid.RemainingAmount.IsZero())
	assert.Len(t, repo.payments, 2)
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	repo := newFakePaymentRepo()
	userID := uuid.New()
	record := seedPendingRecord(t, repo, userID, 5000, time.Now().AddDate(0, 0, 30))
	svc := NewPaymentService(repo)

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:   userID,
		RecordID: record.ID,
		Amount:   decimal.NewFromInt(5001),
		Mode:     "Cash",
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc := NewPaymentService(newFakePaymentRepo())

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:   uuid.New(),
		RecordID: uuid.New(),
		Amount:   decimal.Zero,
		Mode:     "Cash",
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 400, appErr.Code)
}

func TestRecordPaymentAlreadySettled(t *testing.T) {
	repo := newFakePaymentRepo()
	userID := uuid.New()
	record := seedPendingRecord(t, repo, userID, 1000, time.Now().AddDate(0, 0, 30))
	record.PaidAmount = record.TotalAmount
	record.RemainingAmount = decimal.Zero
	record.Status = enum.PaymentStatusPaid
	svc := NewPaymentService(repo)

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:   userID,
		RecordID: record.ID,
		Amount:   decimal.NewFromInt(100),
		Mode:     "Cash",
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 409, appErr.Code)
}

func TestRecordPaymentHidesOtherUsersRecords(t *testing.T) {
	repo := newFakePaymentRepo()
	record := seedPendingRecord(t, repo, uuid.New(), 1000, time.Now().AddDate(0, 0, 30))
	svc := NewPaymentService(repo)

	_, err := svc.RecordPayment(context.Background(), &RecordPaymentInput{
		UserID:   uuid.New(),
		RecordID: record.ID,
		Amount:   decimal.NewFromInt(100),
		Mode:     "Cash",
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}

func TestSweepOverdue(t *testing.T) {
	repo := newFakePaymentRepo()
	userID := uuid.New()
	late := seedPendingRecord(t, repo, userID, 2000, time.Now().AddDate(0, 0, -5))
	onTime := seedPendingRecord(t, repo, userID, 3000, time.Now().AddDate(0, 0, 10))
	svc := NewPaymentService(repo)

	updated, err := svc.SweepOverdue(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	refreshed, err := repo.GetRecordByID(context.Background(), late.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStatusOverdue, refreshed.Status)

	untouched, err := repo.GetRecordByID(context.Background(), onTime.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentStatusPending, untouched.Status)
}

func TestGetSummary(t *testing.T) {
	repo := newFakePaymentRepo()
	userID := uuid.New()
	record := seedPendingRecord(t, repo, userID, 10000, time.Now().AddDate(0, 0, 30))
	record.PaidAmount = decimal.NewFromInt(4000)
	record.RemainingAmount = decimal.NewFromInt(6000)
	seedPendingRecord(t, repo, uuid.New(), 99999, time.Now())
	svc := NewPaymentService(repo)

	summary, err := svc.GetSummary(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, summary.TotalBilled.Equal(decimal.NewFromInt(10000)))
	assert.True(t, summary.TotalCollected.Equal(decimal.NewFromInt(4000)))
	assert.True(t, summary.TotalPending.Equal(decimal.NewFromInt(6000)))
	assert.Equal(t, int64(0), summary.OverdueCount)
}
