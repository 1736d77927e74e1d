package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a sale
type Order struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID    *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	OrderDate     time.Time        `gorm:"not null" json:"order_date"`
	OrderStatus   enum.OrderStatus `gorm:"default:0" json:"order_status"`
	TotalProducts int              `gorm:"default:0" json:"total_products"`
	SubTotal      int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Discount      int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Total         int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	OrderNo       string           `gorm:"size:100;unique;not null" json:"order_no"`
	PaymentMethod string           `gorm:"size:50" json:"payment_method"`
	Notes         *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	User     User          `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Details  []OrderDetail `gorm:"foreignKey:OrderID" json:"details,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		SubTotal float64 `json:"sub_total"`
		Discount float64 `json:"discount"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(o),
		SubTotal: float64(o.SubTotal) / 100,
		Discount: float64(o.Discount) / 100,
		Total:    float64(o.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// GetTotalDecimal returns the total as a decimal
func (o *Order) GetTotalDecimal() float64 {
	return float64(o.Total) / 100
}

// GetSubTotalDecimal returns the subtotal as a decimal
func (o *Order) GetSubTotalDecimal() float64 {
	return float64(o.SubTotal) / 100
}

// OrderDetail represents a line item in an order
type OrderDetail struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	UnitPrice int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Total     int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (od OrderDetail) MarshalJSON() ([]byte, error) {
	type Alias OrderDetail
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(od),
		UnitPrice: float64(od.UnitPrice) / 100,
		Total:     float64(od.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order detail
func (od *OrderDetail) BeforeCreate(tx *gorm.DB) error {
	if od.ID == uuid.Nil {
		od.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderDetail model
func (OrderDetail) TableName() string {
	return "order_details"
}
