package request

import "github.com/google/uuid"

// UpdateSettingsRequest represents the store profile update request
type UpdateSettingsRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=255"`
	CNPJ      string `json:"cnpj" binding:"omitempty,max=18"`
	Address   string `json:"address" binding:"omitempty,max=500"`
	City      string `json:"city" binding:"omitempty,max=100"`
	State     string `json:"state" binding:"omitempty,len=2"`
	CEP       string `json:"cep" binding:"omitempty,max=9"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
	Email     string `json:"email" binding:"omitempty,email"`
	Instagram string `json:"instagram" binding:"omitempty,max=100"`
}

// CreateTemplateRequest represents a WhatsApp template creation request
type CreateTemplateRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
	Body string `json:"body" binding:"required"`
}

// UpdateTemplateRequest represents a WhatsApp template update request
type UpdateTemplateRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=2,max=255"`
	Body   *string `json:"body"`
	Active *bool   `json:"active"`
}

// RenderTemplateRequest selects the customer and optional order a template
// is expanded against.
type RenderTemplateRequest struct {
	CustomerID uuid.UUID  `json:"customer_id" binding:"required"`
	OrderID    *uuid.UUID `json:"order_id"`
}
