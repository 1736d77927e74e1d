// Package nfe parses NF-e (Nota Fiscal eletrônica) XML documents into a
// normalized invoice structure.
//
// The parser extracts data only. It does not validate against the XSD,
// verify digital signatures, or consult SEFAZ.
package nfe

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction indicates whether the document records goods entering or
// leaving the store (tpNF 0/1 in the source XML).
type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// Status is the authorization state derived from the protocol block.
type Status string

const (
	// StatusAuthorized means the protocol carries cStat 100.
	StatusAuthorized Status = "authorized"
	// StatusPending covers every other cStat, and documents without a
	// protocol block.
	StatusPending Status = "pending"
)

// Address is the issuer/recipient street address.
type Address struct {
	Street   string
	Number   string
	District string
	City     string
	State    string
	CEP      string
}

// Party is an issuer or recipient of the document.
type Party struct {
	TaxID             string // CNPJ or CPF, digits only
	LegalName         string
	TradeName         string
	StateRegistration string
	Address           Address
}

// Item is a single product line of the document.
type Item struct {
	Number      int // 1-based, sequential
	Code        string
	Barcode     string // EAN, empty when "SEM GTIN"
	Description string
	NCM         string
	CFOP        string
	Unit        string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	ICMS        decimal.Decimal
	IPI         decimal.Decimal
}

// Totals aggregates the document's monetary totals.
type Totals struct {
	Goods    decimal.Decimal // vProd
	Freight  decimal.Decimal // vFrete
	Discount decimal.Decimal // vDesc
	ICMS     decimal.Decimal // vICMS
	ST       decimal.Decimal // vST
	IPI      decimal.Decimal // vIPI
	Net      decimal.Decimal // vNF
}

// Invoice is the normalized result of parsing one NF-e document.
type Invoice struct {
	AccessKey       string // 44 digits
	Number          string
	Series          string
	OperationNature string
	IssueDate       time.Time
	ExitDate        *time.Time
	Direction       Direction
	Issuer          Party
	Recipient       Party
	Totals          Totals
	Items           []Item
	Protocol        string
	Status          Status
}
