package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a store customer
type Customer struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	CPF       *string        `gorm:"size:11;uniqueIndex;column:cpf" json:"cpf,omitempty"` // digits only
	Email     *string        `gorm:"size:255" json:"email,omitempty"`
	Phone     *string        `gorm:"size:20" json:"phone,omitempty"` // digits only
	CEP       *string        `gorm:"size:8;column:cep" json:"cep,omitempty"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	City      *string        `gorm:"size:100" json:"city,omitempty"`
	State     *string        `gorm:"size:2" json:"state,omitempty"`
	BirthDate *time.Time     `json:"birth_date,omitempty"`
	Notes     *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Orders     []Order     `gorm:"foreignKey:CustomerID" json:"-"`
	Quotations []Quotation `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
