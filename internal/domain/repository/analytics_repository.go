package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopCustomerResult represents a customer's billing volume
type TopCustomerResult struct {
	CustomerID   uuid.UUID       `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	TotalBilled  decimal.Decimal `json:"total_billed"`
	Documents    int64           `json:"documents"`
}

// DailyRevenueResult represents invoiced revenue for a single day
type DailyRevenueResult struct {
	Date    time.Time       `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Tax     decimal.Decimal `json:"tax"`
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// GetTotalRevenue returns the grand total of all billable documents.
	GetTotalRevenue(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	// GetMonthlyRevenue returns billable revenue for the current month.
	GetMonthlyRevenue(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	// GetTaxCollected returns GST charged on billable documents for the
	// current financial year starting April 1.
	GetTaxCollected(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	// GetTopCustomers returns customers ranked by billed amount.
	GetTopCustomers(ctx context.Context, userID uuid.UUID, limit int) ([]TopCustomerResult, error)
	// GetDailyRevenue returns per-day billed revenue for the last N days.
	GetDailyRevenue(ctx context.Context, userID uuid.UUID, days int) ([]DailyRevenueResult, error)
}
