package request

import "github.com/google/uuid"

// CreateQuotationRequest represents a quotation creation request
type CreateQuotationRequest struct {
	CustomerID *uuid.UUID         `json:"customer_id"`
	Date       *string            `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Discount   float64            `json:"discount" binding:"omitempty,min=0"`
	ValidUntil *string            `json:"valid_until" binding:"omitempty,datetime=2006-01-02"`
	Note       *string            `json:"note"`
	Items      []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateQuotationRequest represents a quotation update request
type UpdateQuotationRequest struct {
	CustomerID *uuid.UUID         `json:"customer_id"`
	Date       *string            `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Discount   float64            `json:"discount" binding:"omitempty,min=0"`
	ValidUntil *string            `json:"valid_until" binding:"omitempty,datetime=2006-01-02"`
	Note       *string            `json:"note"`
	Items      []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateQuotationStatusRequest represents a quotation status change request
type UpdateQuotationStatusRequest struct {
	Status int `json:"status" binding:"min=0,max=3"`
}

// ConvertQuotationRequest carries the payment method for converting an
// accepted quotation into an order.
type ConvertQuotationRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required,oneof=cash credit_card debit_card pix"`
}

// QuotationFilterRequest represents quotation filter parameters
type QuotationFilterRequest struct {
	Search     string `form:"search"`
	Status     *int   `form:"status"`
	CustomerID string `form:"customer_id"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
