package repository

import (
	"context"
	"time"

	"github.com/bizmanager/backend/internal/domain/enum"
	domainRepo "github.com/bizmanager/backend/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// billableTypes are the document types counted as revenue
var billableTypes = []enum.DocumentType{
	enum.DocumentTypeInvoice,
	enum.DocumentTypeReceipt,
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(grand_total), 0)
		FROM documents
		WHERE user_id = ? AND type IN ? AND deleted_at IS NULL
	`, userID, billableTypes).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetMonthlyRevenue(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var revenue decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(grand_total), 0)
		FROM documents
		WHERE user_id = ? AND type IN ? AND issue_date >= ? AND deleted_at IS NULL
	`, userID, billableTypes, startOfMonth).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetTaxCollected(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var tax decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_tax), 0)
		FROM documents
		WHERE user_id = ? AND type IN ? AND issue_date >= ? AND deleted_at IS NULL
	`, userID, billableTypes, financialYearStart(time.Now())).Scan(&tax).Error

	return tax, err
}

// financialYearStart returns April 1 of the current Indian financial year
func financialYearStart(now time.Time) time.Time {
	year := now.Year()
	if now.Month() < time.April {
		year--
	}
	return time.Date(year, time.April, 1, 0, 0, 0, 0, now.Location())
}

func (r *analyticsRepository) GetTopCustomers(ctx context.Context, userID uuid.UUID, limit int) ([]domainRepo.TopCustomerResult, error) {
	var results []domainRepo.TopCustomerResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id as customer_id,
			c.name as customer_name,
			COALESCE(SUM(d.grand_total), 0) as total_billed,
			COUNT(d.id) as documents
		FROM documents d
		JOIN customers c ON c.id = d.customer_id
		WHERE d.user_id = ? AND d.type IN ? AND d.deleted_at IS NULL
		GROUP BY c.id, c.name
		ORDER BY total_billed DESC
		LIMIT ?
	`, userID, billableTypes, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetDailyRevenue(ctx context.Context, userID uuid.UUID, days int) ([]domainRepo.DailyRevenueResult, error) {
	results := make([]domainRepo.DailyRevenueResult, 0, days)
	now := time.Now()

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var row struct {
			Revenue decimal.Decimal
			Tax     decimal.Decimal
		}
		err := r.db.WithContext(ctx).Raw(`
			SELECT
				COALESCE(SUM(grand_total), 0) as revenue,
				COALESCE(SUM(total_tax), 0) as tax
			FROM documents
			WHERE user_id = ? AND type IN ?
			AND issue_date >= ? AND issue_date < ?
			AND deleted_at IS NULL
		`, userID, billableTypes, startOfDay, endOfDay).Scan(&row).Error

		if err != nil {
			return nil, err
		}

		results = append(results, domainRepo.DailyRevenueResult{
			Date:    startOfDay,
			Revenue: row.Revenue,
			Tax:     row.Tax,
		})
	}

	return results, nil
}
