package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"text/template"

	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/domain/entity"
	"github.com/suplefit/backoffice-api/internal/domain/repository"
	"github.com/suplefit/backoffice-api/pkg/apperror"
	"github.com/suplefit/backoffice-api/pkg/brdoc"
	"github.com/suplefit/backoffice-api/pkg/utils"
)

// TemplateService manages WhatsApp message templates and renders them into
// wa.me deep links for customer contact.
type TemplateService struct {
	templateRepo repository.TemplateRepository
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
}

// NewTemplateService creates a new template service
func NewTemplateService(
	templateRepo repository.TemplateRepository,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

// CreateTemplateInput represents the create template input
type CreateTemplateInput struct {
	Name string
	Body string
}

// CreateTemplate creates a new message template, validating the body parses
func (s *TemplateService) CreateTemplate(ctx context.Context, input *CreateTemplateInput) (*entity.WhatsAppTemplate, error) {
	if _, err := template.New("body").Parse(input.Body); err != nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "body", Message: "Invalid template syntax: " + err.Error()},
		})
	}

	slug := utils.Slugify(input.Name)
	existing, err := s.templateRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Template with this name already exists")
	}

	tmpl := &entity.WhatsAppTemplate{
		Name:   input.Name,
		Slug:   slug,
		Body:   input.Body,
		Active: true,
	}

	if err := s.templateRepo.Create(ctx, tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}

// GetTemplate retrieves a template by ID
func (s *TemplateService) GetTemplate(ctx context.Context, id uuid.UUID) (*entity.WhatsAppTemplate, error) {
	tmpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, apperror.NewNotFoundError("Template")
	}
	return tmpl, nil
}

// ListTemplates lists templates, optionally only active ones
func (s *TemplateService) ListTemplates(ctx context.Context, activeOnly bool) ([]entity.WhatsAppTemplate, error) {
	return s.templateRepo.List(ctx, activeOnly)
}

// UpdateTemplateInput represents the update template input
type UpdateTemplateInput struct {
	ID     uuid.UUID
	Name   *string
	Body   *string
	Active *bool
}

// UpdateTemplate updates a message template
func (s *TemplateService) UpdateTemplate(ctx context.Context, input *UpdateTemplateInput) (*entity.WhatsAppTemplate, error) {
	tmpl, err := s.templateRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, apperror.NewNotFoundError("Template")
	}

	if input.Body != nil {
		if _, err := template.New("body").Parse(*input.Body); err != nil {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "body", Message: "Invalid template syntax: " + err.Error()},
			})
		}
		tmpl.Body = *input.Body
	}

	if input.Name != nil {
		newSlug := utils.Slugify(*input.Name)
		if newSlug != tmpl.Slug {
			existing, err := s.templateRepo.GetBySlug(ctx, newSlug)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != tmpl.ID {
				return nil, apperror.NewConflictError("Template with this name already exists")
			}
			tmpl.Slug = newSlug
		}
		tmpl.Name = *input.Name
	}

	if input.Active != nil {
		tmpl.Active = *input.Active
	}

	if err := s.templateRepo.Update(ctx, tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}

// DeleteTemplate deletes a message template
func (s *TemplateService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	tmpl, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tmpl == nil {
		return apperror.NewNotFoundError("Template")
	}
	return s.templateRepo.Delete(ctx, id)
}

// TemplateContext is the data a template body is expanded against.
type TemplateContext struct {
	CustomerName string
	FirstName    string
	OrderNo      string
	OrderTotal   string
	StoreName    string
}

// RenderedMessage is a template expanded for one customer.
type RenderedMessage struct {
	Message      string `json:"message"`
	WhatsAppLink string `json:"whatsapp_link"`
}

// RenderInput selects the template, the customer and an optional order.
type RenderInput struct {
	TemplateID uuid.UUID
	CustomerID uuid.UUID
	OrderID    *uuid.UUID
	StoreName  string
}

// RenderForCustomer expands a template for a customer and builds the wa.me
// link. The customer must have a phone number on file.
func (s *TemplateService) RenderForCustomer(ctx context.Context, input *RenderInput) (*RenderedMessage, error) {
	tmpl, err := s.templateRepo.GetByID(ctx, input.TemplateID)
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		return nil, apperror.NewNotFoundError("Template")
	}
	if !tmpl.Active {
		return nil, apperror.NewBadRequestError("Template is inactive")
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if customer.Phone == nil || *customer.Phone == "" {
		return nil, apperror.NewBadRequestError("Customer has no phone number on file")
	}

	tctx := TemplateContext{
		CustomerName: customer.Name,
		FirstName:    firstWord(customer.Name),
		StoreName:    input.StoreName,
	}

	if input.OrderID != nil {
		order, err := s.orderRepo.GetByID(ctx, *input.OrderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, apperror.NewNotFoundError("Order")
		}
		tctx.OrderNo = order.OrderNo
		tctx.OrderTotal = fmt.Sprintf("R$ %.2f", float64(order.Total)/100)
	}

	parsed, err := template.New(tmpl.Slug).Parse(tmpl.Body)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid template syntax: " + err.Error())
	}

	var sb strings.Builder
	if err := parsed.Execute(&sb, tctx); err != nil {
		return nil, apperror.NewBadRequestError("Failed to render template: " + err.Error())
	}

	message := sb.String()
	return &RenderedMessage{
		Message:      message,
		WhatsAppLink: WhatsAppLink(*customer.Phone, message),
	}, nil
}

// WhatsAppLink builds a wa.me deep link from a stored phone number. Numbers
// without a country code get the Brazilian prefix 55.
func WhatsAppLink(phone, message string) string {
	digits := brdoc.OnlyDigits(phone)
	if !strings.HasPrefix(digits, "55") || len(digits) <= 11 {
		digits = "55" + digits
	}
	link := "https://wa.me/" + digits
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}

func firstWord(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i > 0 {
		return s[:i]
	}
	return s
}
