package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suplefit/backoffice-api/internal/domain/entity"
	"github.com/suplefit/backoffice-api/pkg/apperror"
)

type mockTemplateRepo struct {
	CreateFn    func(ctx context.Context, template *entity.WhatsAppTemplate) error
	GetByIDFn   func(ctx context.Context, id uuid.UUID) (*entity.WhatsAppTemplate, error)
	GetBySlugFn func(ctx context.Context, slug string) (*entity.WhatsAppTemplate, error)
	UpdateFn    func(ctx context.Context, template *entity.WhatsAppTemplate) error
	DeleteFn    func(ctx context.Context, id uuid.UUID) error
	ListFn      func(ctx context.Context, activeOnly bool) ([]entity.WhatsAppTemplate, error)
}

func (m *mockTemplateRepo) Create(ctx context.Context, template *entity.WhatsAppTemplate) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, template)
	}
	return nil
}

func (m *mockTemplateRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.WhatsAppTemplate, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTemplateRepo) GetBySlug(ctx context.Context, slug string) (*entity.WhatsAppTemplate, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, nil
}

func (m *mockTemplateRepo) Update(ctx context.Context, template *entity.WhatsAppTemplate) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, template)
	}
	return nil
}

func (m *mockTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockTemplateRepo) List(ctx context.Context, activeOnly bool) ([]entity.WhatsAppTemplate, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, activeOnly)
	}
	return nil, nil
}

func TestWhatsAppLink(t *testing.T) {
	cases := []struct {
		name    string
		phone   string
		message string
		want    string
	}{
		{
			"adds country code",
			"11987654321",
			"",
			"https://wa.me/5511987654321",
		},
		{
			"keeps existing country code",
			"5511987654321",
			"",
			"https://wa.me/5511987654321",
		},
		{
			"strips formatting",
			"(11) 98765-4321",
			"",
			"https://wa.me/5511987654321",
		},
		{
			"escapes the message",
			"11987654321",
			"Olá Maria! Seu pedido chegou.",
			"https://wa.me/5511987654321?text=Ol%C3%A1+Maria%21+Seu+pedido+chegou.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WhatsAppLink(tc.phone, tc.message))
		})
	}
}

func TestCreateTemplateRejectsBadSyntax(t *testing.T) {
	svc := NewTemplateService(&mockTemplateRepo{}, &mockCustomerRepo{}, &mockOrderRepo{})

	_, err := svc.CreateTemplate(context.Background(), &CreateTemplateInput{
		Name: "Broken",
		Body: "Hello {{.CustomerName", // unclosed action
	})

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "body", appErr.Errors[0].Field)
}

func TestRenderForCustomerExpandsContext(t *testing.T) {
	templateID := uuid.New()
	customerID := uuid.New()
	phone := "11987654321"

	templateRepo := &mockTemplateRepo{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.WhatsAppTemplate, error) {
			return &entity.WhatsAppTemplate{
				ID:     templateID,
				Slug:   "order-ready",
				Body:   "Oi {{.FirstName}}, aqui é da {{.StoreName}}. Seu pedido {{.OrderNo}} ({{.OrderTotal}}) está pronto!",
				Active: true,
			}, nil
		},
	}
	customerRepo := &mockCustomerRepo{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
			return &entity.Customer{ID: customerID, Name: "Maria Souza", Phone: &phone}, nil
		},
	}
	orderID := uuid.New()
	orderRepo := &mockOrderRepo{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
			return &entity.Order{ID: orderID, OrderNo: "ORD-2025-0042", Total: 16980}, nil
		},
	}

	svc := NewTemplateService(templateRepo, customerRepo, orderRepo)
	rendered, err := svc.RenderForCustomer(context.Background(), &RenderInput{
		TemplateID: templateID,
		CustomerID: customerID,
		OrderID:    &orderID,
		StoreName:  "SupleFit",
	})

	require.NoError(t, err)
	assert.Equal(t, "Oi Maria, aqui é da SupleFit. Seu pedido ORD-2025-0042 (R$ 169.80) está pronto!", rendered.Message)
	assert.Contains(t, rendered.WhatsAppLink, "https://wa.me/5511987654321?text=")
}

func TestRenderForCustomerRequiresPhone(t *testing.T) {
	templateID := uuid.New()
	templateRepo := &mockTemplateRepo{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.WhatsAppTemplate, error) {
			return &entity.WhatsAppTemplate{ID: templateID, Slug: "hello", Body: "Oi!", Active: true}, nil
		},
	}
	customerRepo := &mockCustomerRepo{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
			return &entity.Customer{ID: id, Name: "Sem Telefone"}, nil
		},
	}

	svc := NewTemplateService(templateRepo, customerRepo, &mockOrderRepo{})
	_, err := svc.RenderForCustomer(context.Background(), &RenderInput{
		TemplateID: templateID,
		CustomerID: uuid.New(),
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestRenderForCustomerRejectsInactiveTemplate(t *testing.T) {
	templateID := uuid.New()
	templateRepo := &mockTemplateRepo{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.WhatsAppTemplate, error) {
			return &entity.WhatsAppTemplate{ID: templateID, Slug: "old", Body: "Oi!", Active: false}, nil
		},
	}

	svc := NewTemplateService(templateRepo, &mockCustomerRepo{}, &mockOrderRepo{})
	_, err := svc.RenderForCustomer(context.Background(), &RenderInput{
		TemplateID: templateID,
		CustomerID: uuid.New(),
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}
