package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/suplefit/backoffice-api/pkg/nfe"
	"gorm.io/gorm"
)

// FiscalInvoice is the persisted header of an imported NFe document.
// The 44-digit access key is the fiscal identity of the document and is
// unique across the table.
type FiscalInvoice struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccessKey       string          `gorm:"size:44;uniqueIndex;not null" json:"access_key"`
	Number          string          `gorm:"size:20;not null" json:"number"`
	Series          string          `gorm:"size:5" json:"series"`
	OperationNature string          `gorm:"size:255" json:"operation_nature"`
	Direction       nfe.Direction   `gorm:"size:10;not null;index" json:"direction"`
	Status          nfe.Status      `gorm:"size:20;not null;index" json:"status"`
	IssueDate       time.Time       `gorm:"not null" json:"issue_date"`
	ExitDate        *time.Time      `json:"exit_date,omitempty"`
	IssuerTaxID     string          `gorm:"size:14" json:"issuer_tax_id"`
	IssuerName      string          `gorm:"size:255" json:"issuer_name"`
	RecipientTaxID  string          `gorm:"size:14" json:"recipient_tax_id"`
	RecipientName   string          `gorm:"size:255" json:"recipient_name"`
	GoodsTotal      decimal.Decimal `gorm:"type:decimal(15,2)" json:"goods_total"`
	FreightTotal    decimal.Decimal `gorm:"type:decimal(15,2)" json:"freight_total"`
	DiscountTotal   decimal.Decimal `gorm:"type:decimal(15,2)" json:"discount_total"`
	ICMSTotal       decimal.Decimal `gorm:"type:decimal(15,2);column:icms_total" json:"icms_total"`
	STTotal         decimal.Decimal `gorm:"type:decimal(15,2);column:st_total" json:"st_total"`
	IPITotal        decimal.Decimal `gorm:"type:decimal(15,2);column:ipi_total" json:"ipi_total"`
	NetTotal        decimal.Decimal `gorm:"type:decimal(15,2)" json:"net_total"`
	Protocol        string          `gorm:"size:20" json:"protocol"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	User  User                `gorm:"foreignKey:UserID" json:"-"`
	Items []FiscalInvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new fiscal invoice
func (f *FiscalInvoice) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FiscalInvoice model
func (FiscalInvoice) TableName() string {
	return "fiscal_invoices"
}

// FiscalInvoiceItem is one det line of an imported NFe.
type FiscalInvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Number      int             `gorm:"not null" json:"number"` // 1-based position on the document
	Code        string          `gorm:"size:60" json:"code"`
	Barcode     string          `gorm:"size:14" json:"barcode"`
	Description string          `gorm:"size:255" json:"description"`
	NCM         string          `gorm:"size:8;column:ncm" json:"ncm"`
	CFOP        string          `gorm:"size:4;column:cfop" json:"cfop"`
	Unit        string          `gorm:"size:6" json:"unit"`
	Quantity    decimal.Decimal `gorm:"type:decimal(15,4)" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(15,10)" json:"unit_price"`
	Total       decimal.Decimal `gorm:"type:decimal(15,2)" json:"total"`
	ICMSAmount  decimal.Decimal `gorm:"type:decimal(15,2);column:icms_amount" json:"icms_amount"`
	IPIAmount   decimal.Decimal `gorm:"type:decimal(15,2);column:ipi_amount" json:"ipi_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relationships
	Invoice FiscalInvoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (f *FiscalInvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FiscalInvoiceItem model
func (FiscalInvoiceItem) TableName() string {
	return "fiscal_invoice_items"
}
