package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/suplefit/backoffice-api/internal/domain/repository"
	"github.com/suplefit/backoffice-api/pkg/apperror"
	"github.com/suplefit/backoffice-api/pkg/brdoc"
	"github.com/suplefit/backoffice-api/pkg/printer"
	"github.com/suplefit/backoffice-api/pkg/receipt"
)

// PrinterService assembles receipt data from orders and quotations and
// renders it as ESC/POS bytes, printable HTML, or a PDF data URI.
type PrinterService struct {
	printer       printer.Printer
	orderRepo     repository.OrderRepository
	quotationRepo repository.QuotationRepository
	settingsRepo  repository.SettingsRepository
	printerType   string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	orderRepo repository.OrderRepository,
	quotationRepo repository.QuotationRepository,
	settingsRepo repository.SettingsRepository,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:       p,
		orderRepo:     orderRepo,
		quotationRepo: quotationRepo,
		settingsRepo:  settingsRepo,
		printerType:   printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// storeHeader loads the store profile for the receipt header. A missing
// profile degrades to an empty header rather than failing the print.
func (s *PrinterService) storeHeader(ctx context.Context) receipt.Store {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil || settings == nil {
		if err != nil {
			log.Printf("store settings lookup failed: %v", err)
		}
		return receipt.Store{}
	}
	return receipt.Store{
		Name:    settings.Name,
		CNPJ:    brdoc.FormatCNPJ(settings.CNPJ),
		Address: settings.Address,
		Phone:   brdoc.FormatPhone(settings.Phone),
	}
}

// OrderReceiptData builds the shared render input for an order.
func (s *PrinterService) OrderReceiptData(ctx context.Context, orderID uuid.UUID) (*receipt.Data, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	saleDate := order.OrderDate
	data := &receipt.Data{
		Type:          receipt.TypeSale,
		Number:        order.OrderNo,
		SaleDate:      &saleDate,
		Store:         s.storeHeader(ctx),
		Subtotal:      decimal.New(order.SubTotal, -2),
		Discount:      decimal.New(order.Discount, -2),
		Total:         decimal.New(order.Total, -2),
		PaymentMethod: order.PaymentMethod,
	}
	if order.Notes != nil {
		data.Notes = *order.Notes
	}

	if order.Customer != nil {
		data.Customer.Name = order.Customer.Name
		if order.Customer.CPF != nil {
			data.Customer.TaxID = brdoc.FormatCPF(*order.Customer.CPF)
		}
		if order.Customer.Phone != nil {
			data.Customer.Phone = brdoc.FormatPhone(*order.Customer.Phone)
		}
	}

	for _, d := range order.Details {
		name := d.Product.Name
		if name == "" {
			name = "Produto"
		}
		data.Items = append(data.Items, receipt.Item{
			Name:      name,
			Quantity:  d.Quantity,
			UnitPrice: decimal.New(d.UnitPrice, -2),
			Total:     decimal.New(d.Total, -2),
		})
	}

	return data, nil
}

// QuotationReceiptData builds the shared render input for a quotation.
func (s *PrinterService) QuotationReceiptData(ctx context.Context, quotationID uuid.UUID) (*receipt.Data, error) {
	quotation, err := s.quotationRepo.GetWithDetails(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}

	date := quotation.Date
	data := &receipt.Data{
		Type:       receipt.TypeQuote,
		Number:     quotation.Reference,
		SaleDate:   &date,
		Store:      s.storeHeader(ctx),
		Subtotal:   decimal.New(quotation.SubTotal, -2),
		Discount:   decimal.New(quotation.Discount, -2),
		Total:      decimal.New(quotation.Total, -2),
		ValidUntil: quotation.ValidUntil,
	}
	if quotation.Note != nil {
		data.Notes = *quotation.Note
	}

	if quotation.Customer != nil {
		data.Customer.Name = quotation.Customer.Name
		if quotation.Customer.CPF != nil {
			data.Customer.TaxID = brdoc.FormatCPF(*quotation.Customer.CPF)
		}
		if quotation.Customer.Phone != nil {
			data.Customer.Phone = brdoc.FormatPhone(*quotation.Customer.Phone)
		}
	} else if quotation.CustomerName != "" {
		data.Customer.Name = quotation.CustomerName
	}

	for _, d := range quotation.Details {
		name := d.ProductName
		if name == "" {
			name = d.Product.Name
		}
		if name == "" {
			name = "Produto"
		}
		data.Items = append(data.Items, receipt.Item{
			Name:      name,
			Quantity:  d.Quantity,
			UnitPrice: decimal.New(d.UnitPrice, -2),
			Total:     decimal.New(d.SubTotal, -2),
		})
	}

	return data, nil
}

// TestPrint sends a test page to the printer. The render input is
// returned so the handler can show it even when printing fails.
func (s *PrinterService) TestPrint(ctx context.Context) (*receipt.Data, error) {
	data := &receipt.Data{
		Type:   receipt.TypeSale,
		Number: "TESTE-001",
		Store:  s.storeHeader(ctx),
		Items: []receipt.Item{
			{Name: "Item de teste", Quantity: 1, UnitPrice: decimal.New(1000, -2), Total: decimal.New(1000, -2)},
		},
		Subtotal:      decimal.New(1000, -2),
		Total:         decimal.New(1000, -2),
		PaymentMethod: "Teste",
	}
	if data.Store.Name == "" {
		data.Store.Name = "TESTE DE IMPRESSORA"
	}

	if err := s.printer.Print(receipt.RenderESCPOS(data, time.Now())); err != nil {
		return data, apperror.NewUnavailableError("Test print failed: " + err.Error())
	}
	return data, nil
}

// PrintOrderReceipt renders an order receipt and sends it to the printer.
func (s *PrinterService) PrintOrderReceipt(ctx context.Context, orderID uuid.UUID) (*receipt.Data, error) {
	data, err := s.OrderReceiptData(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.printer.Print(receipt.RenderESCPOS(data, time.Now())); err != nil {
		log.Printf("Printer error (order %s): %v", orderID, err)
		return data, apperror.NewUnavailableError("Failed to print receipt: " + err.Error())
	}
	return data, nil
}

// PrintQuotationReceipt renders a quotation receipt and sends it to the printer.
func (s *PrinterService) PrintQuotationReceipt(ctx context.Context, quotationID uuid.UUID) (*receipt.Data, error) {
	data, err := s.QuotationReceiptData(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	if err := s.printer.Print(receipt.RenderESCPOS(data, time.Now())); err != nil {
		log.Printf("Printer error (quotation %s): %v", quotationID, err)
		return data, apperror.NewUnavailableError("Failed to print receipt: " + err.Error())
	}
	return data, nil
}

// OrderReceiptHTML renders an order receipt as a printable HTML page.
func (s *PrinterService) OrderReceiptHTML(ctx context.Context, orderID uuid.UUID) (string, error) {
	data, err := s.OrderReceiptData(ctx, orderID)
	if err != nil {
		return "", err
	}
	return receipt.RenderHTML(data, time.Now())
}

// OrderReceiptPDF renders an order receipt as a PDF data URI.
func (s *PrinterService) OrderReceiptPDF(ctx context.Context, orderID uuid.UUID) (string, error) {
	data, err := s.OrderReceiptData(ctx, orderID)
	if err != nil {
		return "", err
	}
	return receipt.RenderPDF(data, time.Now())
}

// QuotationReceiptHTML renders a quotation as a printable HTML page.
func (s *PrinterService) QuotationReceiptHTML(ctx context.Context, quotationID uuid.UUID) (string, error) {
	data, err := s.QuotationReceiptData(ctx, quotationID)
	if err != nil {
		return "", err
	}
	return receipt.RenderHTML(data, time.Now())
}

// QuotationReceiptPDF renders a quotation as a PDF data URI.
func (s *PrinterService) QuotationReceiptPDF(ctx context.Context, quotationID uuid.UUID) (string, error) {
	data, err := s.QuotationReceiptData(ctx, quotationID)
	if err != nil {
		return "", err
	}
	return receipt.RenderPDF(data, time.Now())
}
