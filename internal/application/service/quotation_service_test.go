package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suplefit/backoffice-api/internal/domain/entity"
	"github.com/suplefit/backoffice-api/internal/domain/enum"
	"github.com/suplefit/backoffice-api/pkg/apperror"
)

func TestQuotationStatusTransitions(t *testing.T) {
	cases := []struct {
		name string
		from enum.QuotationStatus
		to   enum.QuotationStatus
		ok   bool
	}{
		{"draft to sent", enum.QuotationStatusDraft, enum.QuotationStatusSent, true},
		{"draft to canceled", enum.QuotationStatusDraft, enum.QuotationStatusCanceled, true},
		{"draft to accepted skips sent", enum.QuotationStatusDraft, enum.QuotationStatusAccepted, false},
		{"sent to accepted", enum.QuotationStatusSent, enum.QuotationStatusAccepted, true},
		{"sent to canceled", enum.QuotationStatusSent, enum.QuotationStatusCanceled, true},
		{"sent back to draft", enum.QuotationStatusSent, enum.QuotationStatusDraft, false},
		{"accepted is terminal", enum.QuotationStatusAccepted, enum.QuotationStatusCanceled, false},
		{"canceled is terminal", enum.QuotationStatusCanceled, enum.QuotationStatusSent, false},
		{"same status", enum.QuotationStatusSent, enum.QuotationStatusSent, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, validQuotationTransition(tc.from, tc.to))
		})
	}
}

func TestUpdateQuotationRejectsNonDraft(t *testing.T) {
	quotationRepo := &mockQuotationRepo{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
			return &entity.Quotation{ID: id, Status: enum.QuotationStatusSent}, nil
		},
	}
	svc := NewQuotationService(quotationRepo, &mockProductRepo{}, &mockCustomerRepo{})

	_, err := svc.UpdateQuotation(context.Background(), &UpdateQuotationInput{
		ID: uuid.New(),
		Items: []QuotationItemInput{
			{ProductID: uuid.New(), Quantity: 1},
		},
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCreateQuotationSnapshotsProductData(t *testing.T) {
	product := entity.Product{
		ID:           uuid.New(),
		Name:         "Whey 900g",
		Code:         "PROD-WHEY900",
		SellingPrice: 15990,
	}
	productRepo := &mockProductRepo{
		GetByIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
			return []entity.Product{product}, nil
		},
	}

	var captured *entity.Quotation
	var capturedDetails []entity.QuotationDetail
	quotationRepo := &mockQuotationRepo{
		CreateWithDetailsFn: func(ctx context.Context, quotation *entity.Quotation, details []entity.QuotationDetail) error {
			captured = quotation
			capturedDetails = details
			return nil
		},
		GetWithDetailsFn: func(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
			return &entity.Quotation{ID: id}, nil
		},
	}
	svc := NewQuotationService(quotationRepo, productRepo, &mockCustomerRepo{})

	_, err := svc.CreateQuotation(context.Background(), &CreateQuotationInput{
		UserID: uuid.New(),
		Items: []QuotationItemInput{
			{ProductID: product.ID, Quantity: 3}, // no price, falls back to selling price
		},
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, enum.QuotationStatusDraft, captured.Status)
	assert.Equal(t, int64(47970), captured.SubTotal)
	assert.NotEmpty(t, captured.Reference)

	require.Len(t, capturedDetails, 1)
	assert.Equal(t, "Whey 900g", capturedDetails[0].ProductName)
	assert.Equal(t, "PROD-WHEY900", capturedDetails[0].ProductCode)
	assert.Equal(t, int64(15990), capturedDetails[0].UnitPrice)
}

func TestConvertToOrderRequiresAccepted(t *testing.T) {
	quotationRepo := &mockQuotationRepo{
		GetWithDetailsFn: func(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
			return &entity.Quotation{ID: id, Status: enum.QuotationStatusSent}, nil
		},
	}
	svc := NewQuotationService(quotationRepo, &mockProductRepo{}, &mockCustomerRepo{})
	orderSvc := NewOrderService(&mockOrderRepo{}, &mockProductRepo{}, &mockCustomerRepo{})

	_, err := svc.ConvertToOrder(context.Background(), orderSvc, &ConvertQuotationInput{
		UserID:        uuid.New(),
		QuotationID:   uuid.New(),
		PaymentMethod: "pix",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestConvertToOrderReusesQuotedPrices(t *testing.T) {
	productID := uuid.New()
	customerID := uuid.New()
	quotation := &entity.Quotation{
		ID:         uuid.New(),
		CustomerID: &customerID,
		Status:     enum.QuotationStatusAccepted,
		Discount:   1000,
		Details: []entity.QuotationDetail{
			{ProductID: productID, Quantity: 2, UnitPrice: 14990},
		},
	}
	quotationRepo := &mockQuotationRepo{
		GetWithDetailsFn: func(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
			return quotation, nil
		},
	}

	customerRepo := &mockCustomerRepo{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
			return &entity.Customer{ID: customerID, Name: "Maria Souza"}, nil
		},
	}
	productRepo := &mockProductRepo{
		GetByIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
			return []entity.Product{{ID: productID, Name: "Whey 900g", SellingPrice: 15990}}, nil
		},
	}

	var captured *entity.Order
	var capturedDetails []entity.OrderDetail
	orderRepo := &mockOrderRepo{
		CreateWithDetailsFn: func(ctx context.Context, order *entity.Order, details []entity.OrderDetail) error {
			captured = order
			capturedDetails = details
			return nil
		},
		GetWithDetailsFn: func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
			return &entity.Order{ID: id}, nil
		},
	}

	svc := NewQuotationService(quotationRepo, productRepo, customerRepo)
	orderSvc := NewOrderService(orderRepo, productRepo, customerRepo)

	_, err := svc.ConvertToOrder(context.Background(), orderSvc, &ConvertQuotationInput{
		UserID:        uuid.New(),
		QuotationID:   quotation.ID,
		PaymentMethod: "credit_card",
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	// The quoted price wins over the current selling price.
	require.Len(t, capturedDetails, 1)
	assert.Equal(t, int64(14990), capturedDetails[0].UnitPrice)
	assert.Equal(t, int64(29980), captured.SubTotal)
	assert.Equal(t, int64(1000), captured.Discount)
	assert.Equal(t, int64(28980), captured.Total)
	require.NotNil(t, captured.CustomerID)
	assert.Equal(t, customerID, *captured.CustomerID)
}
