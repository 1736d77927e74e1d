package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TopProductResult represents a product's sales performance
type TopProductResult struct {
	ProductID    uuid.UUID
	ProductName  string
	ProductCode  string
	QuantitySold int
	Revenue      float64
}

// TopCustomerResult represents a customer's spending data
type TopCustomerResult struct {
	CustomerID   uuid.UUID
	CustomerName string
	TotalSpent   float64
	OrderCount   int
}

// DailySalesResult represents sales data for a single day
type DailySalesResult struct {
	Date    time.Time
	Revenue float64
}

// DashboardCounts are the headline figures on the back-office home screen
type DashboardCounts struct {
	Customers       int64
	Products        int64
	Orders          int64
	Quotations      int64
	FiscalDocuments int64
	LowStock        int64
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// GetCounts returns the entity counts shown on the dashboard
	GetCounts(ctx context.Context) (*DashboardCounts, error)

	// GetTopProducts returns top selling products by revenue
	GetTopProducts(ctx context.Context, limit int) ([]TopProductResult, error)

	// GetTopCustomers returns top customers by total spending
	GetTopCustomers(ctx context.Context, limit int) ([]TopCustomerResult, error)

	// GetDailySales returns daily sales data for the last N days
	GetDailySales(ctx context.Context, days int) ([]DailySalesResult, error)

	// GetTotalRevenue returns total revenue from non-canceled orders
	GetTotalRevenue(ctx context.Context) (float64, error)

	// GetMonthlyRevenue returns revenue for the current month
	GetMonthlyRevenue(ctx context.Context) (float64, error)
}
