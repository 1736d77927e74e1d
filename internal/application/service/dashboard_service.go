package service

import (
	"context"

	"github.com/suplefit/backoffice-api/internal/domain/entity"
	"github.com/suplefit/backoffice-api/internal/domain/repository"
)

// DashboardService provides the back-office home screen figures
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	analyticsRepo repository.AnalyticsRepository,
	productRepo repository.ProductRepository,
) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		productRepo:   productRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalCustomers       int64                          `json:"total_customers"`
	TotalProducts        int64                          `json:"total_products"`
	TotalOrders          int64                          `json:"total_orders"`
	TotalQuotations      int64                          `json:"total_quotations"`
	TotalFiscalDocuments int64                          `json:"total_fiscal_documents"`
	LowStockCount        int64                          `json:"low_stock_count"`
	TotalRevenue         float64                        `json:"total_revenue"`
	MonthlyRevenue       float64                        `json:"monthly_revenue"`
	DailySalesData       []DailySalesPoint              `json:"daily_sales_data"`
	TopProducts          []repository.TopProductResult  `json:"top_products"`
	TopCustomers         []repository.TopCustomerResult `json:"top_customers"`
}

// DailySalesPoint represents a daily sales data point
type DailySalesPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// GetDashboardStats returns the aggregated dashboard figures
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	counts, err := s.analyticsRepo.GetCounts(ctx)
	if err != nil {
		return nil, err
	}

	totalRevenue, err := s.analyticsRepo.GetTotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	monthlyRevenue, err := s.analyticsRepo.GetMonthlyRevenue(ctx)
	if err != nil {
		return nil, err
	}

	dailySales, err := s.analyticsRepo.GetDailySales(ctx, 7)
	if err != nil {
		return nil, err
	}

	topProducts, err := s.analyticsRepo.GetTopProducts(ctx, 5)
	if err != nil {
		return nil, err
	}

	topCustomers, err := s.analyticsRepo.GetTopCustomers(ctx, 5)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalCustomers:       counts.Customers,
		TotalProducts:        counts.Products,
		TotalOrders:          counts.Orders,
		TotalQuotations:      counts.Quotations,
		TotalFiscalDocuments: counts.FiscalDocuments,
		LowStockCount:        counts.LowStock,
		TotalRevenue:         totalRevenue,
		MonthlyRevenue:       monthlyRevenue,
		TopProducts:          topProducts,
		TopCustomers:         topCustomers,
	}

	stats.DailySalesData = make([]DailySalesPoint, 0, len(dailySales))
	for _, day := range dailySales {
		stats.DailySalesData = append(stats.DailySalesData, DailySalesPoint{
			Date:    day.Date.Format("2006-01-02"),
			Revenue: day.Revenue,
		})
	}

	return stats, nil
}

// GetLowStockAlerts returns the products at or below their alert threshold
func (s *DashboardService) GetLowStockAlerts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}
