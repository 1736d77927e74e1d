package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/domain/entity"
	domainRepo "github.com/suplefit/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type fiscalInvoiceRepository struct {
	db *gorm.DB
}

// NewFiscalInvoiceRepository creates a new fiscal invoice repository
func NewFiscalInvoiceRepository(db *gorm.DB) domainRepo.FiscalInvoiceRepository {
	return &fiscalInvoiceRepository{db: db}
}

// CreateWithItems writes the header and all line items in one transaction,
// so a failure on any line leaves no orphaned header behind.
func (r *fiscalInvoiceRepository) CreateWithItems(ctx context.Context, invoice *entity.FiscalInvoice, items []entity.FiscalInvoiceItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].InvoiceID = invoice.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *fiscalInvoiceRepository) ExistsByAccessKey(ctx context.Context, accessKey string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.FiscalInvoice{}).
		Where("access_key = ?", accessKey).
		Count(&count).Error
	return count > 0, err
}

func (r *fiscalInvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FiscalInvoice, error) {
	var invoice entity.FiscalInvoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *fiscalInvoiceRepository) GetByAccessKey(ctx context.Context, accessKey string) (*entity.FiscalInvoice, error) {
	var invoice entity.FiscalInvoice
	err := r.db.WithContext(ctx).First(&invoice, "access_key = ?", accessKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *fiscalInvoiceRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.FiscalInvoice, error) {
	var invoice entity.FiscalInvoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("fiscal_invoice_items.number ASC")
		}).
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *fiscalInvoiceRepository) List(ctx context.Context, params *domainRepo.FiscalInvoiceFilterParams) ([]entity.FiscalInvoice, int64, error) {
	var invoices []entity.FiscalInvoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.FiscalInvoice{})

	if params.Search != "" {
		query = query.Where("access_key = ? OR number ILIKE ? OR issuer_name ILIKE ? OR recipient_name ILIKE ?",
			params.Search, "%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Direction != nil {
		query = query.Where("direction = ?", *params.Direction)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "issue_date"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&invoices).Error

	return invoices, total, err
}

func (r *fiscalInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&entity.FiscalInvoiceItem{}, "invoice_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.FiscalInvoice{}, "id = ?", id).Error
	})
}
