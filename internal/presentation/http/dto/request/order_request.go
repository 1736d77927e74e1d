package request

import "github.com/google/uuid"

// OrderItemRequest represents a single line in an order or quotation.
// A zero unit price means "use the product's selling price".
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	UnitPrice float64   `json:"unit_price" binding:"omitempty,min=0"`
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	CustomerID    *uuid.UUID         `json:"customer_id"`
	PaymentMethod string             `json:"payment_method" binding:"required,oneof=cash credit_card debit_card pix"`
	Discount      float64            `json:"discount" binding:"omitempty,min=0"`
	Notes         *string            `json:"notes"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents an order status change request
type UpdateOrderStatusRequest struct {
	Status int `json:"status" binding:"min=0,max=3"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Search     string `form:"search"`
	Status     *int   `form:"status"`
	CustomerID string `form:"customer_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
