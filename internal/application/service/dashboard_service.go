package service

import (
	"context"

	"github.com/bizmanager/backend/internal/domain/enum"
	"github.com/bizmanager/backend/internal/domain/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardService provides dashboard statistics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	documentRepo  repository.DocumentRepository
	customerRepo  repository.CustomerRepository
	productRepo   repository.ProductRepository
	paymentRepo   repository.PaymentRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	documentRepo repository.DocumentRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	paymentRepo repository.PaymentRepository,
) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		documentRepo:  documentRepo,
		customerRepo:  customerRepo,
		productRepo:   productRepo,
		paymentRepo:   paymentRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalCustomers  int64                          `json:"total_customers"`
	TotalRevenue    decimal.Decimal                `json:"total_revenue"`
	MonthlyRevenue  decimal.Decimal                `json:"monthly_revenue"`
	TaxCollected    decimal.Decimal                `json:"tax_collected"`
	TotalOutstanding decimal.Decimal               `json:"total_outstanding"`
	OverdueCount    int64                          `json:"overdue_count"`
	DocumentCounts  map[string]int64               `json:"document_counts"`
	LowStockCount   int                            `json:"low_stock_count"`
	TopCustomers    []repository.TopCustomerResult `json:"top_customers"`
	DailyRevenue    []DailyRevenuePoint            `json:"daily_revenue"`
}

// DailyRevenuePoint represents a daily revenue data point
type DailyRevenuePoint struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Tax     decimal.Decimal `json:"tax"`
}

// GetDashboardStats returns dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error) {
	stats := &DashboardStats{}

	customerCount, err := s.customerRepo.Count(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.TotalCustomers = customerCount

	if stats.TotalRevenue, err = s.analyticsRepo.GetTotalRevenue(ctx, userID); err != nil {
		return nil, err
	}
	if stats.MonthlyRevenue, err = s.analyticsRepo.GetMonthlyRevenue(ctx, userID); err != nil {
		return nil, err
	}
	if stats.TaxCollected, err = s.analyticsRepo.GetTaxCollected(ctx, userID); err != nil {
		return nil, err
	}

	summary, err := s.paymentRepo.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.TotalOutstanding = summary.TotalPending
	stats.OverdueCount = summary.OverdueCount

	counts, err := s.documentRepo.CountByType(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.DocumentCounts = make(map[string]int64, len(counts))
	for docType, count := range counts {
		stats.DocumentCounts[docType.String()] = count
	}

	lowStock, err := s.productRepo.GetLowStock(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = len(lowStock)

	if stats.TopCustomers, err = s.analyticsRepo.GetTopCustomers(ctx, userID, 5); err != nil {
		return nil, err
	}

	daily, err := s.analyticsRepo.GetDailyRevenue(ctx, userID, 30)
	if err != nil {
		return nil, err
	}
	stats.DailyRevenue = make([]DailyRevenuePoint, 0, len(daily))
	for _, point := range daily {
		stats.DailyRevenue = append(stats.DailyRevenue, DailyRevenuePoint{
			Date:    point.Date.Format("2006-01-02"),
			Revenue: point.Revenue,
			Tax:     point.Tax,
		})
	}

	return stats, nil
}

// GetDocumentCounts returns per-type document counts keyed by type name
func (s *DashboardService) GetDocumentCounts(ctx context.Context, userID uuid.UUID) (map[string]int64, error) {
	counts, err := s.documentRepo.CountByType(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(counts))
	for docType := enum.DocumentTypeInvoice; docType <= enum.DocumentTypeDebitNote; docType++ {
		result[docType.String()] = counts[docType]
	}
	return result, nil
}
