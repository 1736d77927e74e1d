// Package receipt renders quote and sale documents into the three
// supported outputs: an ESC/POS byte stream for thermal printers, a
// printable 80mm HTML page, and a PDF returned as a data URI.
//
// All renderers are pure functions of Data and emit the same logical
// sections in the same order: store header, document info, customer,
// items, totals, payment/validity/notes, footer timestamp.
package receipt

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType distinguishes a finalized sale from a quotation.
type DocumentType string

const (
	TypeSale  DocumentType = "sale"
	TypeQuote DocumentType = "quote"
)

// Title is the heading printed for the document type.
func (t DocumentType) Title() string {
	if t == TypeQuote {
		return "ORCAMENTO"
	}
	return "CUPOM DE VENDA"
}

// Store is the business header snapshot printed at the top.
type Store struct {
	Name    string
	CNPJ    string
	Address string
	Phone   string
}

// Customer is the customer snapshot printed on the document.
type Customer struct {
	Name  string
	TaxID string
	Phone string
}

// Item is a single line of the document with its computed total.
type Item struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Data is the render input, assembled by the caller from order or
// quotation state. Renderers never mutate it.
type Data struct {
	Type          DocumentType
	Number        string
	SaleDate      *time.Time // render-time clock when nil
	Store         Store
	Customer      Customer
	Items         []Item
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	ValidUntil    *time.Time
	Notes         string
}

// Timestamp returns the document timestamp: the sale date when present,
// otherwise the supplied render clock.
func (d *Data) Timestamp(now time.Time) time.Time {
	if d.SaleDate != nil {
		return *d.SaleDate
	}
	return now
}
