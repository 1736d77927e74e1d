package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/domain/entity"
	"github.com/suplefit/backoffice-api/internal/domain/enum"
	"github.com/suplefit/backoffice-api/pkg/pagination"
)

// QuotationRepository defines the interface for quotation data operations
type QuotationRepository interface {
	// CreateWithDetails inserts the quotation and its lines in one transaction.
	CreateWithDetails(ctx context.Context, quotation *entity.Quotation, details []entity.QuotationDetail) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	GetByReference(ctx context.Context, reference string) (*entity.Quotation, error)
	Update(ctx context.Context, quotation *entity.Quotation) error
	// ReplaceDetails swaps the quotation lines inside a transaction.
	ReplaceDetails(ctx context.Context, quotationID uuid.UUID, details []entity.QuotationDetail) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *QuotationFilterParams) ([]entity.Quotation, int64, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error
}

// QuotationFilterParams contains filtering parameters for quotation queries
type QuotationFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuotationStatus
	CustomerID *uuid.UUID
	SortBy     string
	SortOrder  string
}
