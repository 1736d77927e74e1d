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

func orderFixtures() (*mockOrderRepo, *mockProductRepo, *entity.Product) {
	product := &entity.Product{
		ID:           uuid.New(),
		Name:         "Creatina 300g",
		Code:         "PROD-CREA300",
		SellingPrice: 8990, // R$ 89,90
		Quantity:     10,
	}
	productRepo := &mockProductRepo{
		GetByIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
			return []entity.Product{*product}, nil
		},
	}
	orderRepo := &mockOrderRepo{
		GetWithDetailsFn: func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
			return &entity.Order{ID: id}, nil
		},
	}
	return orderRepo, productRepo, product
}

func TestCreateOrderComputesTotalsInCents(t *testing.T) {
	orderRepo, productRepo, product := orderFixtures()

	var captured *entity.Order
	var capturedDetails []entity.OrderDetail
	orderRepo.CreateWithDetailsFn = func(ctx context.Context, order *entity.Order, details []entity.OrderDetail) error {
		captured = order
		capturedDetails = details
		return nil
	}

	svc := NewOrderService(orderRepo, productRepo, &mockCustomerRepo{})
	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:        uuid.New(),
		PaymentMethod: "pix",
		Discount:      10.00,
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 2, UnitPrice: 89.90},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, int64(17980), captured.SubTotal)
	assert.Equal(t, int64(1000), captured.Discount)
	assert.Equal(t, int64(16980), captured.Total)
	assert.Equal(t, 2, captured.TotalProducts)
	assert.Equal(t, enum.OrderStatusPaid, captured.OrderStatus)
	assert.NotEmpty(t, captured.OrderNo)

	require.Len(t, capturedDetails, 1)
	assert.Equal(t, int64(8990), capturedDetails[0].UnitPrice)
	assert.Equal(t, int64(17980), capturedDetails[0].Total)
}

func TestCreateOrderDefaultsToSellingPrice(t *testing.T) {
	orderRepo, productRepo, product := orderFixtures()

	var capturedDetails []entity.OrderDetail
	orderRepo.CreateWithDetailsFn = func(ctx context.Context, order *entity.Order, details []entity.OrderDetail) error {
		capturedDetails = details
		return nil
	}

	svc := NewOrderService(orderRepo, productRepo, &mockCustomerRepo{})
	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:        uuid.New(),
		PaymentMethod: "cash",
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 1}, // no price given
		},
	})

	require.NoError(t, err)
	require.Len(t, capturedDetails, 1)
	assert.Equal(t, product.SellingPrice, capturedDetails[0].UnitPrice)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	orderRepo, productRepo, _ := orderFixtures()
	svc := NewOrderService(orderRepo, productRepo, &mockCustomerRepo{})

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:        uuid.New(),
		PaymentMethod: "cash",
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCreateOrderRejectsExcessiveDiscount(t *testing.T) {
	orderRepo, productRepo, product := orderFixtures()
	svc := NewOrderService(orderRepo, productRepo, &mockCustomerRepo{})

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:        uuid.New(),
		PaymentMethod: "cash",
		Discount:      500.00, // subtotal is only R$ 89,90
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 1, UnitPrice: 89.90},
		},
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCreateOrderRejectsUnknownProduct(t *testing.T) {
	orderRepo, productRepo, _ := orderFixtures()
	svc := NewOrderService(orderRepo, productRepo, &mockCustomerRepo{})

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:        uuid.New(),
		PaymentMethod: "cash",
		Items: []OrderItemInput{
			{ProductID: uuid.New(), Quantity: 1},
		},
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestCreateOrderRejectsUnknownCustomer(t *testing.T) {
	orderRepo, productRepo, product := orderFixtures()
	svc := NewOrderService(orderRepo, productRepo, &mockCustomerRepo{})

	customerID := uuid.New()
	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		UserID:        uuid.New(),
		CustomerID:    &customerID,
		PaymentMethod: "cash",
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 1},
		},
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestUpdateOrderStatusGuardsCancel(t *testing.T) {
	orderID := uuid.New()
	orderRepo := &mockOrderRepo{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
			return &entity.Order{ID: orderID, OrderStatus: enum.OrderStatusPaid}, nil
		},
	}
	svc := NewOrderService(orderRepo, &mockProductRepo{}, &mockCustomerRepo{})

	err := svc.UpdateOrderStatus(context.Background(), orderID, enum.OrderStatusCanceled)

	require.Error(t, err, "cancel must go through the cancel operation so stock is restored")
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCancelOrderIsIdempotentOnCanceled(t *testing.T) {
	orderID := uuid.New()
	restocked := 0
	orderRepo := &mockOrderRepo{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
			return &entity.Order{ID: orderID, OrderStatus: enum.OrderStatusCanceled}, nil
		},
		CancelWithRestockFn: func(ctx context.Context, id uuid.UUID) error {
			restocked++
			return nil
		},
	}
	svc := NewOrderService(orderRepo, &mockProductRepo{}, &mockCustomerRepo{})

	err := svc.CancelOrder(context.Background(), orderID)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	assert.Zero(t, restocked, "a canceled order must not restock twice")
}
