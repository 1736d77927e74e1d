package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/domain/entity"
	"github.com/suplefit/backoffice-api/internal/domain/repository"
	"github.com/suplefit/backoffice-api/pkg/apperror"
	"github.com/suplefit/backoffice-api/pkg/nfe"
	"github.com/suplefit/backoffice-api/pkg/pagination"
)

// FiscalService handles NFe XML import and fiscal document queries
type FiscalService struct {
	invoiceRepo repository.FiscalInvoiceRepository
	productRepo repository.ProductRepository
}

// NewFiscalService creates a new fiscal service
func NewFiscalService(
	invoiceRepo repository.FiscalInvoiceRepository,
	productRepo repository.ProductRepository,
) *FiscalService {
	return &FiscalService{
		invoiceRepo: invoiceRepo,
		productRepo: productRepo,
	}
}

// ImportSummary reports what an XML import did
type ImportSummary struct {
	Invoice        *entity.FiscalInvoice `json:"invoice"`
	ItemCount      int                   `json:"item_count"`
	RestockedItems int                   `json:"restocked_items"`
	SkippedItems   int                   `json:"skipped_items"`
}

// ImportXML parses an uploaded NFe XML and persists it. The document is
// rejected before any write when the XML is structurally invalid or the
// access key is already stored. Inbound documents restock products matched
// by barcode; unmatched lines are skipped and counted in the summary.
func (s *FiscalService) ImportXML(ctx context.Context, userID uuid.UUID, raw []byte) (*ImportSummary, error) {
	invoice, err := nfe.Parse(raw)
	if err != nil {
		return nil, apperror.NewUnprocessableError("Invalid fiscal XML: " + err.Error())
	}

	if len(invoice.AccessKey) != 44 {
		return nil, apperror.NewUnprocessableError("Fiscal document has no valid 44-digit access key")
	}

	exists, err := s.invoiceRepo.ExistsByAccessKey(ctx, invoice.AccessKey)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflictError("This fiscal document was already imported")
	}

	header := &entity.FiscalInvoice{
		UserID:          userID,
		AccessKey:       invoice.AccessKey,
		Number:          invoice.Number,
		Series:          invoice.Series,
		OperationNature: invoice.OperationNature,
		Direction:       invoice.Direction,
		Status:          invoice.Status,
		IssueDate:       invoice.IssueDate,
		ExitDate:        invoice.ExitDate,
		IssuerTaxID:     invoice.Issuer.TaxID,
		IssuerName:      invoice.Issuer.LegalName,
		RecipientTaxID:  invoice.Recipient.TaxID,
		RecipientName:   invoice.Recipient.LegalName,
		GoodsTotal:      invoice.Totals.Goods,
		FreightTotal:    invoice.Totals.Freight,
		DiscountTotal:   invoice.Totals.Discount,
		ICMSTotal:       invoice.Totals.ICMS,
		STTotal:         invoice.Totals.ST,
		IPITotal:        invoice.Totals.IPI,
		NetTotal:        invoice.Totals.Net,
		Protocol:        invoice.Protocol,
	}

	items := make([]entity.FiscalInvoiceItem, 0, len(invoice.Items))
	for _, it := range invoice.Items {
		items = append(items, entity.FiscalInvoiceItem{
			Number:      it.Number,
			Code:        it.Code,
			Barcode:     it.Barcode,
			Description: it.Description,
			NCM:         it.NCM,
			CFOP:        it.CFOP,
			Unit:        it.Unit,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
			ICMSAmount:  it.ICMS,
			IPIAmount:   it.IPI,
		})
	}

	if err := s.invoiceRepo.CreateWithItems(ctx, header, items); err != nil {
		return nil, err
	}

	summary := &ImportSummary{
		Invoice:   header,
		ItemCount: len(items),
	}

	if invoice.Direction == nfe.DirectionInbound {
		s.restock(ctx, invoice.Items, summary)
	}

	return summary, nil
}

// restock adds inbound quantities to products matched by EAN barcode.
// Lines without a match are skipped; restock failures do not fail the
// import since the fiscal record is already safely stored.
func (s *FiscalService) restock(ctx context.Context, items []nfe.Item, summary *ImportSummary) {
	for _, it := range items {
		if it.Barcode == "" {
			summary.SkippedItems++
			continue
		}

		product, err := s.productRepo.GetByBarcode(ctx, it.Barcode)
		if err != nil {
			log.Printf("restock lookup failed for barcode %s: %v", it.Barcode, err)
			summary.SkippedItems++
			continue
		}
		if product == nil {
			summary.SkippedItems++
			continue
		}

		qty := int(it.Quantity.IntPart())
		if qty <= 0 {
			summary.SkippedItems++
			continue
		}

		if err := s.productRepo.AtomicIncrementQuantity(ctx, product.ID, qty); err != nil {
			log.Printf("restock failed for product %s: %v", product.ID, err)
			summary.SkippedItems++
			continue
		}
		summary.RestockedItems++
	}
}

// GetInvoice retrieves a fiscal document with its items
func (s *FiscalService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.FiscalInvoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Fiscal document")
	}
	return invoice, nil
}

// ListInvoices lists fiscal documents with filtering
func (s *FiscalService) ListInvoices(ctx context.Context, params *repository.FiscalInvoiceFilterParams) (*pagination.PaginatedResult[entity.FiscalInvoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// DeleteInvoice removes a fiscal document and its items
func (s *FiscalService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Fiscal document")
	}
	return s.invoiceRepo.Delete(ctx, id)
}
