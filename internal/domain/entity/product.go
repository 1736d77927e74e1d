package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a supplement in the catalog
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID    *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Slug          string         `gorm:"size:255;unique;not null" json:"slug"`
	Code          string         `gorm:"size:100;unique;not null" json:"code"`
	Barcode       string         `gorm:"size:14;index" json:"barcode"` // EAN, matches NFe cEAN
	Brand         string         `gorm:"size:100" json:"brand"`
	Quantity      int            `gorm:"default:0" json:"quantity"`
	QuantityAlert int            `gorm:"default:0" json:"quantity_alert"`
	CostPrice     int64          `gorm:"default:0" json:"cost_price"`    // Stored in cents
	SellingPrice  int64          `gorm:"default:0" json:"selling_price"` // Stored in cents
	Active        bool           `gorm:"default:true" json:"active"`
	Notes         *string        `gorm:"type:text" json:"notes,omitempty"`
	ProductImage  *string        `gorm:"size:255" json:"product_image,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// GetCostPriceDecimal returns the cost price as a decimal (for display)
func (p *Product) GetCostPriceDecimal() float64 {
	return float64(p.CostPrice) / 100
}

// GetSellingPriceDecimal returns the selling price as a decimal (for display)
func (p *Product) GetSellingPriceDecimal() float64 {
	return float64(p.SellingPrice) / 100
}

// SetCostPriceFromDecimal sets the cost price from a decimal value
func (p *Product) SetCostPriceFromDecimal(price float64) {
	p.CostPrice = int64(price * 100)
}

// SetSellingPriceFromDecimal sets the selling price from a decimal value
func (p *Product) SetSellingPriceFromDecimal(price float64) {
	p.SellingPrice = int64(price * 100)
}

// ProductJSON is a helper struct for JSON marshaling with decimal prices
type ProductJSON struct {
	ID            uuid.UUID  `json:"id"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	Code          string     `json:"code"`
	Barcode       string     `json:"barcode"`
	Brand         string     `json:"brand"`
	Quantity      int        `json:"quantity"`
	QuantityAlert int        `json:"quantity_alert"`
	CostPrice     float64    `json:"cost_price"`    // Decimal value for JSON
	SellingPrice  float64    `json:"selling_price"` // Decimal value for JSON
	Active        bool       `json:"active"`
	Notes         *string    `json:"notes,omitempty"`
	ProductImage  *string    `json:"product_image,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Category      *Category  `json:"category,omitempty"`
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(ProductJSON{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		Slug:          p.Slug,
		Code:          p.Code,
		Barcode:       p.Barcode,
		Brand:         p.Brand,
		Quantity:      p.Quantity,
		QuantityAlert: p.QuantityAlert,
		CostPrice:     p.GetCostPriceDecimal(),
		SellingPrice:  p.GetSellingPriceDecimal(),
		Active:        p.Active,
		Notes:         p.Notes,
		ProductImage:  p.ProductImage,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Category:      p.Category,
	})
}

// Category represents a product category
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
