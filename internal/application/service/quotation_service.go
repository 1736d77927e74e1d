package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/domain/entity"
	"github.com/suplefit/backoffice-api/internal/domain/enum"
	"github.com/suplefit/backoffice-api/internal/domain/repository"
	"github.com/suplefit/backoffice-api/pkg/apperror"
	"github.com/suplefit/backoffice-api/pkg/pagination"
	"github.com/suplefit/backoffice-api/pkg/utils"
)

// QuotationService handles quotation-related operations
type QuotationService struct {
	quotationRepo repository.QuotationRepository
	productRepo   repository.ProductRepository
	customerRepo  repository.CustomerRepository
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		productRepo:   productRepo,
		customerRepo:  customerRepo,
	}
}

// CreateQuotationInput represents the input for creating a quotation
type CreateQuotationInput struct {
	UserID     uuid.UUID
	CustomerID *uuid.UUID
	Date       time.Time
	Discount   float64
	ValidUntil *time.Time
	Note       *string
	Items      []QuotationItemInput
}

// QuotationItemInput represents a line item input
type QuotationItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice float64
}

// buildDetails validates the items and prices the quotation lines, returning
// the lines and the subtotal in cents. A zero unit price falls back to the
// product's selling price.
func (s *QuotationService) buildDetails(ctx context.Context, items []QuotationItemInput) ([]entity.QuotationDetail, int64, error) {
	if len(items) == 0 {
		return nil, 0, apperror.NewBadRequestError("Quotation must have at least one item")
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var subtotal int64
	details := make([]entity.QuotationDetail, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, 0, apperror.NewBadRequestError("Item quantity must be greater than zero")
		}
		product, ok := productMap[item.ProductID]
		if !ok {
			return nil, 0, apperror.NewNotFoundError("Product")
		}

		unitPriceCents := int64(item.UnitPrice * 100)
		if unitPriceCents == 0 {
			unitPriceCents = product.SellingPrice
		}
		lineTotal := unitPriceCents * int64(item.Quantity)
		subtotal += lineTotal

		details = append(details, entity.QuotationDetail{
			ProductID:   item.ProductID,
			ProductName: product.Name,
			ProductCode: product.Code,
			Quantity:    item.Quantity,
			UnitPrice:   unitPriceCents,
			SubTotal:    lineTotal,
		})
	}

	return details, subtotal, nil
}

// CreateQuotation creates a new quotation in draft status
func (s *QuotationService) CreateQuotation(ctx context.Context, input *CreateQuotationInput) (*entity.Quotation, error) {
	// Get customer name if customer ID is provided
	var customerName string
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		customerName = customer.Name
	}

	details, subtotal, err := s.buildDetails(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	discountCents := int64(input.Discount * 100)
	if discountCents < 0 {
		return nil, apperror.NewBadRequestError("Discount cannot be negative")
	}
	if discountCents > subtotal {
		return nil, apperror.NewBadRequestError("Discount cannot exceed subtotal")
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	quotation := &entity.Quotation{
		UserID:       input.UserID,
		CustomerID:   input.CustomerID,
		Date:         date,
		Reference:    utils.GenerateQuotationNumber(),
		CustomerName: customerName,
		SubTotal:     subtotal,
		Discount:     discountCents,
		Total:        subtotal - discountCents,
		ValidUntil:   input.ValidUntil,
		Status:       enum.QuotationStatusDraft,
		Note:         input.Note,
	}

	if err := s.quotationRepo.CreateWithDetails(ctx, quotation, details); err != nil {
		return nil, err
	}

	return s.quotationRepo.GetWithDetails(ctx, quotation.ID)
}

// GetQuotation retrieves a quotation by ID
func (s *QuotationService) GetQuotation(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

// ListQuotations lists quotations with filtering
func (s *QuotationService) ListQuotations(ctx context.Context, params *repository.QuotationFilterParams) (*pagination.PaginatedResult[entity.Quotation], error) {
	quotations, total, err := s.quotationRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotations, pag), nil
}

// UpdateQuotationInput represents the input for updating a quotation
type UpdateQuotationInput struct {
	ID         uuid.UUID
	CustomerID *uuid.UUID
	Date       time.Time
	Discount   float64
	ValidUntil *time.Time
	Note       *string
	Items      []QuotationItemInput
}

// UpdateQuotation replaces the contents of a draft quotation
func (s *QuotationService) UpdateQuotation(ctx context.Context, input *UpdateQuotationInput) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	// Only drafts can be reworked; sent or accepted quotations are frozen
	if quotation.Status != enum.QuotationStatusDraft {
		return nil, apperror.NewBadRequestError("Only draft quotations can be edited")
	}

	var customerName string
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		customerName = customer.Name
	}

	details, subtotal, err := s.buildDetails(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	discountCents := int64(input.Discount * 100)
	if discountCents < 0 {
		return nil, apperror.NewBadRequestError("Discount cannot be negative")
	}
	if discountCents > subtotal {
		return nil, apperror.NewBadRequestError("Discount cannot exceed subtotal")
	}

	quotation.CustomerID = input.CustomerID
	if !input.Date.IsZero() {
		quotation.Date = input.Date
	}
	quotation.CustomerName = customerName
	quotation.SubTotal = subtotal
	quotation.Discount = discountCents
	quotation.Total = subtotal - discountCents
	quotation.ValidUntil = input.ValidUntil
	quotation.Note = input.Note

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}

	if err := s.quotationRepo.ReplaceDetails(ctx, quotation.ID, details); err != nil {
		return nil, err
	}

	return s.quotationRepo.GetWithDetails(ctx, quotation.ID)
}

// UpdateQuotationStatus moves a quotation along its lifecycle
func (s *QuotationService) UpdateQuotationStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}

	if !validQuotationTransition(quotation.Status, status) {
		return apperror.NewBadRequestError("Invalid status transition")
	}

	return s.quotationRepo.UpdateStatus(ctx, id, status)
}

func validQuotationTransition(from, to enum.QuotationStatus) bool {
	if from == to {
		return false
	}
	switch from {
	case enum.QuotationStatusDraft:
		return to == enum.QuotationStatusSent || to == enum.QuotationStatusCanceled
	case enum.QuotationStatusSent:
		return to == enum.QuotationStatusAccepted || to == enum.QuotationStatusCanceled
	default:
		// Accepted and canceled quotations are terminal
		return false
	}
}

// DeleteQuotation deletes a quotation and its lines
func (s *QuotationService) DeleteQuotation(ctx context.Context, id uuid.UUID) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}
	return s.quotationRepo.Delete(ctx, id)
}

// ConvertQuotationInput carries the payment details for turning an accepted
// quotation into an order.
type ConvertQuotationInput struct {
	UserID        uuid.UUID
	QuotationID   uuid.UUID
	PaymentMethod string
}

// ConvertToOrder creates an order from an accepted quotation, reusing the
// quoted prices and discount.
func (s *QuotationService) ConvertToOrder(ctx context.Context, orderService *OrderService, input *ConvertQuotationInput) (*entity.Order, error) {
	quotation, err := s.quotationRepo.GetWithDetails(ctx, input.QuotationID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	if quotation.Status != enum.QuotationStatusAccepted {
		return nil, apperror.NewBadRequestError("Only accepted quotations can be converted to orders")
	}

	items := make([]OrderItemInput, 0, len(quotation.Details))
	for _, d := range quotation.Details {
		items = append(items, OrderItemInput{
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: float64(d.UnitPrice) / 100,
		})
	}

	return orderService.CreateOrder(ctx, &CreateOrderInput{
		UserID:        input.UserID,
		CustomerID:    quotation.CustomerID,
		PaymentMethod: input.PaymentMethod,
		Discount:      float64(quotation.Discount) / 100,
		Notes:         quotation.Note,
		Items:         items,
	})
}
