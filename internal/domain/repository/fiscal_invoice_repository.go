package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/domain/entity"
	"github.com/suplefit/backoffice-api/pkg/nfe"
	"github.com/suplefit/backoffice-api/pkg/pagination"
)

// FiscalInvoiceRepository defines the interface for fiscal document storage
type FiscalInvoiceRepository interface {
	// CreateWithItems inserts the invoice header and all its line items in a
	// single transaction. Either everything is written or nothing is.
	CreateWithItems(ctx context.Context, invoice *entity.FiscalInvoice, items []entity.FiscalInvoiceItem) error
	// ExistsByAccessKey reports whether an invoice with the 44-digit access
	// key is already stored.
	ExistsByAccessKey(ctx context.Context, accessKey string) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FiscalInvoice, error)
	GetByAccessKey(ctx context.Context, accessKey string) (*entity.FiscalInvoice, error)
	// GetWithItems preloads line items ordered by their document position.
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.FiscalInvoice, error)
	List(ctx context.Context, params *FiscalInvoiceFilterParams) ([]entity.FiscalInvoice, int64, error)
	// Delete removes the invoice; items go with it via the FK cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}

// FiscalInvoiceFilterParams contains filtering parameters for invoice queries
type FiscalInvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Direction  *nfe.Direction
	Status     *nfe.Status
	SortBy     string
	SortOrder  string
}
