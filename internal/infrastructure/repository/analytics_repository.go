package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/suplefit/backoffice-api/internal/domain/entity"
	"github.com/suplefit/backoffice-api/internal/domain/enum"
	domainRepo "github.com/suplefit/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetCounts(ctx context.Context) (*domainRepo.DashboardCounts, error) {
	counts := &domainRepo.DashboardCounts{}

	if err := r.db.WithContext(ctx).Model(&entity.Customer{}).Count(&counts.Customers).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Product{}).Count(&counts.Products).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Order{}).Count(&counts.Orders).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Quotation{}).Count(&counts.Quotations).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.FiscalInvoice{}).Count(&counts.FiscalDocuments).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Product{}).
		Where("quantity <= quantity_alert").Count(&counts.LowStock).Error; err != nil {
		return nil, err
	}

	return counts, nil
}

func (r *analyticsRepository) GetTopProducts(ctx context.Context, limit int) ([]domainRepo.TopProductResult, error) {
	var results []domainRepo.TopProductResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id as product_id,
			p.name as product_name,
			p.code as product_code,
			COALESCE(SUM(od.quantity), 0) as quantity_sold,
			COALESCE(SUM(od.total), 0) / 100.0 as revenue
		FROM order_details od
		JOIN products p ON p.id = od.product_id
		JOIN orders o ON o.id = od.order_id
		WHERE o.order_status <> ?
		GROUP BY p.id, p.name, p.code
		ORDER BY revenue DESC
		LIMIT ?
	`, enum.OrderStatusCanceled, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetTopCustomers(ctx context.Context, limit int) ([]domainRepo.TopCustomerResult, error) {
	var results []domainRepo.TopCustomerResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id as customer_id,
			c.name as customer_name,
			COALESCE(SUM(o.total), 0) / 100.0 as total_spent,
			COUNT(o.id) as order_count
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.order_status <> ? AND o.customer_id IS NOT NULL
		GROUP BY c.id, c.name
		ORDER BY total_spent DESC
		LIMIT ?
	`, enum.OrderStatusCanceled, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetDailySales(ctx context.Context, days int) ([]domainRepo.DailySalesResult, error) {
	results := make([]domainRepo.DailySalesResult, 0, days)
	now := time.Now()

	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		startOfDay := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		endOfDay := startOfDay.Add(24 * time.Hour)

		var revenue sql.NullFloat64
		err := r.db.WithContext(ctx).Raw(`
			SELECT COALESCE(SUM(total), 0) / 100.0
			FROM orders
			WHERE order_status <> ?
			AND order_date >= ? AND order_date < ?
		`, enum.OrderStatusCanceled, startOfDay, endOfDay).Scan(&revenue).Error

		if err != nil {
			return nil, err
		}

		rev := 0.0
		if revenue.Valid {
			rev = revenue.Float64
		}

		results = append(results, domainRepo.DailySalesResult{
			Date:    startOfDay,
			Revenue: rev,
		})
	}

	return results, nil
}

func (r *analyticsRepository) GetTotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) / 100.0
		FROM orders
		WHERE order_status <> ?
	`, enum.OrderStatusCanceled).Scan(&revenue).Error

	return revenue, err
}

func (r *analyticsRepository) GetMonthlyRevenue(ctx context.Context) (float64, error) {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var revenue float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) / 100.0
		FROM orders
		WHERE order_status <> ? AND order_date >= ?
	`, enum.OrderStatusCanceled, startOfMonth).Scan(&revenue).Error

	return revenue, err
}
