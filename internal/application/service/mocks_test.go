package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/domain/entity"
	"github.com/suplefit/backoffice-api/internal/domain/enum"
	"github.com/suplefit/backoffice-api/internal/domain/repository"
	"github.com/suplefit/backoffice-api/pkg/pagination"
)

// Function-field fakes. Unset fields return zero values so each test only
// wires the calls it cares about.

type mockProductRepo struct {
	CreateFn                  func(ctx context.Context, product *entity.Product) error
	GetByIDFn                 func(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByIDsFn                func(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	GetBySlugFn               func(ctx context.Context, slug string) (*entity.Product, error)
	GetByCodeFn               func(ctx context.Context, code string) (*entity.Product, error)
	GetByBarcodeFn            func(ctx context.Context, barcode string) (*entity.Product, error)
	UpdateFn                  func(ctx context.Context, product *entity.Product) error
	DeleteFn                  func(ctx context.Context, id uuid.UUID) error
	ListFn                    func(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error)
	GetLowStockFn             func(ctx context.Context) ([]entity.Product, error)
	UpdateQuantityFn          func(ctx context.Context, id uuid.UUID, quantity int) error
	AtomicIncrementQuantityFn func(ctx context.Context, id uuid.UUID, amount int) error
}

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, product)
	}
	return nil
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if m.GetByIDsFn != nil {
		return m.GetByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (m *mockProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, nil
}

func (m *mockProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	return nil, nil
}

func (m *mockProductRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	if m.GetByBarcodeFn != nil {
		return m.GetByBarcodeFn(ctx, barcode)
	}
	return nil, nil
}

func (m *mockProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, product)
	}
	return nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return nil, 0, nil
}

func (m *mockProductRepo) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	if m.GetLowStockFn != nil {
		return m.GetLowStockFn(ctx)
	}
	return nil, nil
}

func (m *mockProductRepo) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	if m.UpdateQuantityFn != nil {
		return m.UpdateQuantityFn(ctx, id, quantity)
	}
	return nil
}

func (m *mockProductRepo) AtomicIncrementQuantity(ctx context.Context, id uuid.UUID, amount int) error {
	if m.AtomicIncrementQuantityFn != nil {
		return m.AtomicIncrementQuantityFn(ctx, id, amount)
	}
	return nil
}

type mockCustomerRepo struct {
	CreateFn     func(ctx context.Context, customer *entity.Customer) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByCPFFn   func(ctx context.Context, cpf string) (*entity.Customer, error)
	GetByEmailFn func(ctx context.Context, email string) (*entity.Customer, error)
	UpdateFn     func(ctx context.Context, customer *entity.Customer) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
	ListFn       func(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, customer)
	}
	return nil
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCustomerRepo) GetByCPF(ctx context.Context, cpf string) (*entity.Customer, error) {
	if m.GetByCPFFn != nil {
		return m.GetByCPFFn(ctx, cpf)
	}
	return nil, nil
}

func (m *mockCustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, customer)
	}
	return nil
}

func (m *mockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params, search)
	}
	return nil, 0, nil
}

type mockOrderRepo struct {
	CreateWithDetailsFn func(ctx context.Context, order *entity.Order, details []entity.OrderDetail) error
	GetByIDFn           func(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetByOrderNoFn      func(ctx context.Context, orderNo string) (*entity.Order, error)
	UpdateFn            func(ctx context.Context, order *entity.Order) error
	DeleteFn            func(ctx context.Context, id uuid.UUID) error
	ListFn              func(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error)
	GetWithDetailsFn    func(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	UpdateStatusFn      func(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	CancelWithRestockFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockOrderRepo) CreateWithDetails(ctx context.Context, order *entity.Order, details []entity.OrderDetail) error {
	if m.CreateWithDetailsFn != nil {
		return m.CreateWithDetailsFn(ctx, order, details)
	}
	return nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockOrderRepo) GetByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error) {
	if m.GetByOrderNoFn != nil {
		return m.GetByOrderNoFn(ctx, orderNo)
	}
	return nil, nil
}

func (m *mockOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, order)
	}
	return nil
}

func (m *mockOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return nil, 0, nil
}

func (m *mockOrderRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if m.GetWithDetailsFn != nil {
		return m.GetWithDetailsFn(ctx, id)
	}
	return nil, nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status)
	}
	return nil
}

func (m *mockOrderRepo) CancelWithRestock(ctx context.Context, id uuid.UUID) error {
	if m.CancelWithRestockFn != nil {
		return m.CancelWithRestockFn(ctx, id)
	}
	return nil
}

type mockQuotationRepo struct {
	CreateWithDetailsFn func(ctx context.Context, quotation *entity.Quotation, details []entity.QuotationDetail) error
	GetByIDFn           func(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	GetByReferenceFn    func(ctx context.Context, reference string) (*entity.Quotation, error)
	UpdateFn            func(ctx context.Context, quotation *entity.Quotation) error
	ReplaceDetailsFn    func(ctx context.Context, quotationID uuid.UUID, details []entity.QuotationDetail) error
	DeleteFn            func(ctx context.Context, id uuid.UUID) error
	ListFn              func(ctx context.Context, params *repository.QuotationFilterParams) ([]entity.Quotation, int64, error)
	GetWithDetailsFn    func(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	UpdateStatusFn      func(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error
}

func (m *mockQuotationRepo) CreateWithDetails(ctx context.Context, quotation *entity.Quotation, details []entity.QuotationDetail) error {
	if m.CreateWithDetailsFn != nil {
		return m.CreateWithDetailsFn(ctx, quotation, details)
	}
	return nil
}

func (m *mockQuotationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockQuotationRepo) GetByReference(ctx context.Context, reference string) (*entity.Quotation, error) {
	if m.GetByReferenceFn != nil {
		return m.GetByReferenceFn(ctx, reference)
	}
	return nil, nil
}

func (m *mockQuotationRepo) Update(ctx context.Context, quotation *entity.Quotation) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, quotation)
	}
	return nil
}

func (m *mockQuotationRepo) ReplaceDetails(ctx context.Context, quotationID uuid.UUID, details []entity.QuotationDetail) error {
	if m.ReplaceDetailsFn != nil {
		return m.ReplaceDetailsFn(ctx, quotationID, details)
	}
	return nil
}

func (m *mockQuotationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockQuotationRepo) List(ctx context.Context, params *repository.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return nil, 0, nil
}

func (m *mockQuotationRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	if m.GetWithDetailsFn != nil {
		return m.GetWithDetailsFn(ctx, id)
	}
	return nil, nil
}

func (m *mockQuotationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status)
	}
	return nil
}

type mockFiscalInvoiceRepo struct {
	CreateWithItemsFn   func(ctx context.Context, invoice *entity.FiscalInvoice, items []entity.FiscalInvoiceItem) error
	ExistsByAccessKeyFn func(ctx context.Context, accessKey string) (bool, error)
	GetByIDFn           func(ctx context.Context, id uuid.UUID) (*entity.FiscalInvoice, error)
	GetByAccessKeyFn    func(ctx context.Context, accessKey string) (*entity.FiscalInvoice, error)
	GetWithItemsFn      func(ctx context.Context, id uuid.UUID) (*entity.FiscalInvoice, error)
	ListFn              func(ctx context.Context, params *repository.FiscalInvoiceFilterParams) ([]entity.FiscalInvoice, int64, error)
	DeleteFn            func(ctx context.Context, id uuid.UUID) error
}

func (m *mockFiscalInvoiceRepo) CreateWithItems(ctx context.Context, invoice *entity.FiscalInvoice, items []entity.FiscalInvoiceItem) error {
	if m.CreateWithItemsFn != nil {
		return m.CreateWithItemsFn(ctx, invoice, items)
	}
	return nil
}

func (m *mockFiscalInvoiceRepo) ExistsByAccessKey(ctx context.Context, accessKey string) (bool, error) {
	if m.ExistsByAccessKeyFn != nil {
		return m.ExistsByAccessKeyFn(ctx, accessKey)
	}
	return false, nil
}

func (m *mockFiscalInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.FiscalInvoice, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockFiscalInvoiceRepo) GetByAccessKey(ctx context.Context, accessKey string) (*entity.FiscalInvoice, error) {
	if m.GetByAccessKeyFn != nil {
		return m.GetByAccessKeyFn(ctx, accessKey)
	}
	return nil, nil
}

func (m *mockFiscalInvoiceRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.FiscalInvoice, error) {
	if m.GetWithItemsFn != nil {
		return m.GetWithItemsFn(ctx, id)
	}
	return nil, nil
}

func (m *mockFiscalInvoiceRepo) List(ctx context.Context, params *repository.FiscalInvoiceFilterParams) ([]entity.FiscalInvoice, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return nil, 0, nil
}

func (m *mockFiscalInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
