package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreSettings holds the store profile printed on every receipt.
// A single row is kept; the service upserts it.
type StoreSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	CNPJ      string         `gorm:"size:14;column:cnpj" json:"cnpj"` // digits only
	Address   string         `gorm:"type:text" json:"address"`
	City      string         `gorm:"size:100" json:"city"`
	State     string         `gorm:"size:2" json:"state"`
	CEP       string         `gorm:"size:8;column:cep" json:"cep"`
	Phone     string         `gorm:"size:20" json:"phone"` // digits only
	Email     string         `gorm:"size:255" json:"email"`
	Instagram string         `gorm:"size:100" json:"instagram"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating store settings
func (s *StoreSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StoreSettings model
func (StoreSettings) TableName() string {
	return "store_settings"
}

// WhatsAppTemplate is a reusable message template for customer contact.
// The body is a text/template expanded against order and customer fields.
type WhatsAppTemplate struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a template
func (t *WhatsAppTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the WhatsAppTemplate model
func (WhatsAppTemplate) TableName() string {
	return "whatsapp_templates"
}
