package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/domain/entity"
	"github.com/suplefit/backoffice-api/internal/domain/enum"
	"github.com/suplefit/backoffice-api/internal/domain/repository"
	"github.com/suplefit/backoffice-api/pkg/apperror"
	"github.com/suplefit/backoffice-api/pkg/pagination"
	"github.com/suplefit/backoffice-api/pkg/utils"
)

// OrderService handles sales operations
type OrderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

// OrderItemInput represents an item in an order
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice float64
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	UserID        uuid.UUID
	CustomerID    *uuid.UUID
	PaymentMethod string
	Discount      float64
	Notes         *string
	Items         []OrderItemInput
}

// CreateOrder creates a new sale. The order, its lines and the stock
// decrements are written in one repository transaction, so a retried
// request can never half-apply.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must have at least one item")
	}

	// Validate customer if provided
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	var subTotal int64
	var totalProducts int
	orderDetails := make([]entity.OrderDetail, 0, len(input.Items))

	for _, item := range input.Items {
		product, exists := productMap[item.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", item.ProductID))
		}

		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Invalid quantity for %s", product.Name))
		}

		unitPriceCents := int64(item.UnitPrice * 100)
		if unitPriceCents == 0 {
			unitPriceCents = product.SellingPrice
		}
		itemTotal := unitPriceCents * int64(item.Quantity)
		subTotal += itemTotal
		totalProducts += item.Quantity

		orderDetails = append(orderDetails, entity.OrderDetail{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: unitPriceCents,
			Total:     itemTotal,
		})
	}

	discountCents := int64(input.Discount * 100)
	if discountCents < 0 || discountCents > subTotal {
		return nil, apperror.NewBadRequestError("Discount exceeds order subtotal")
	}

	order := &entity.Order{
		UserID:        input.UserID,
		CustomerID:    input.CustomerID,
		OrderDate:     time.Now(),
		OrderStatus:   enum.OrderStatusPaid,
		TotalProducts: totalProducts,
		SubTotal:      subTotal,
		Discount:      discountCents,
		Total:         subTotal - discountCents,
		OrderNo:       utils.GenerateOrderNumber(),
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}

	if err := s.orderRepo.CreateWithDetails(ctx, order, orderDetails); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithDetails(ctx, order.ID)
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders lists orders with filtering
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// UpdateOrderStatus updates the status of an order
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status enum.OrderStatus) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if order.OrderStatus == enum.OrderStatusCanceled {
		return apperror.NewBadRequestError("Canceled orders cannot change status")
	}
	if status == enum.OrderStatusCanceled {
		return apperror.NewBadRequestError("Use the cancel operation to cancel an order")
	}

	return s.orderRepo.UpdateStatus(ctx, orderID, status)
}

// CancelOrder cancels an order and restores stock
func (s *OrderService) CancelOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}

	if order.OrderStatus == enum.OrderStatusCanceled {
		return apperror.NewBadRequestError("Order is already canceled")
	}

	return s.orderRepo.CancelWithRestock(ctx, orderID)
}
