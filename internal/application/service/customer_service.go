package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/domain/entity"
	"github.com/suplefit/backoffice-api/internal/domain/repository"
	"github.com/suplefit/backoffice-api/pkg/apperror"
	"github.com/suplefit/backoffice-api/pkg/brdoc"
	"github.com/suplefit/backoffice-api/pkg/pagination"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name      string
	CPF       *string
	Email     *string
	Phone     *string
	CEP       *string
	Address   *string
	City      *string
	State     *string
	BirthDate *time.Time
	Notes     *string
}

// normalizeCPF validates and strips a CPF to digits. A nil or empty input
// passes through as nil; an invalid CPF is a field error.
func (s *CustomerService) normalizeCPF(ctx context.Context, cpf *string, selfID *uuid.UUID) (*string, error) {
	if cpf == nil || *cpf == "" {
		return nil, nil
	}
	if !brdoc.IsValidCPF(*cpf) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "cpf", Message: "Invalid CPF"},
		})
	}
	digits := brdoc.OnlyDigits(*cpf)

	existing, err := s.customerRepo.GetByCPF(ctx, digits)
	if err != nil {
		return nil, err
	}
	if existing != nil && (selfID == nil || existing.ID != *selfID) {
		return nil, apperror.NewConflictError("A customer with this CPF already exists")
	}
	return &digits, nil
}

// CreateCustomer creates a new customer. CPF, CEP and phone are stored as
// digits only; formatting is applied on output.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	cpf, err := s.normalizeCPF(ctx, input.CPF, nil)
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		Name:      input.Name,
		CPF:       cpf,
		Email:     input.Email,
		Phone:     normalizeDigits(input.Phone),
		CEP:       normalizeDigits(input.CEP),
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		BirthDate: input.BirthDate,
		Notes:     input.Notes,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func normalizeDigits(s *string) *string {
	if s == nil {
		return nil
	}
	digits := brdoc.OnlyDigits(*s)
	return &digits
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with search and pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, brdocSearch(search))
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// brdocSearch strips formatting from searches that look like a CPF so
// "529.982.247-25" still matches the stored digits.
func brdocSearch(search string) string {
	digits := brdoc.OnlyDigits(search)
	if len(digits) == 11 && len(digits) != len(search) {
		return digits
	}
	return search
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID        uuid.UUID
	Name      *string
	CPF       *string
	Email     *string
	Phone     *string
	CEP       *string
	Address   *string
	City      *string
	State     *string
	BirthDate *time.Time
	Notes     *string
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.CPF != nil {
		cpf, err := s.normalizeCPF(ctx, input.CPF, &customer.ID)
		if err != nil {
			return nil, err
		}
		customer.CPF = cpf
	}
	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Phone != nil {
		customer.Phone = normalizeDigits(input.Phone)
	}
	if input.CEP != nil {
		customer.CEP = normalizeDigits(input.CEP)
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.City != nil {
		customer.City = input.City
	}
	if input.State != nil {
		customer.State = input.State
	}
	if input.BirthDate != nil {
		customer.BirthDate = input.BirthDate
	}
	if input.Notes != nil {
		customer.Notes = input.Notes
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.Delete(ctx, id)
}
