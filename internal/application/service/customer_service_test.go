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

func strPtr(s string) *string { return &s }

func TestCreateCustomerNormalizesDocuments(t *testing.T) {
	var captured *entity.Customer
	customerRepo := &mockCustomerRepo{
		CreateFn: func(ctx context.Context, customer *entity.Customer) error {
			captured = customer
			return nil
		},
	}
	svc := NewCustomerService(customerRepo)

	_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:  "Maria Souza",
		CPF:   strPtr("529.982.247-25"),
		Phone: strPtr("(11) 98765-4321"),
		CEP:   strPtr("01310-100"),
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "52998224725", *captured.CPF)
	assert.Equal(t, "11987654321", *captured.Phone)
	assert.Equal(t, "01310100", *captured.CEP)
}

func TestCreateCustomerRejectsInvalidCPF(t *testing.T) {
	created := 0
	customerRepo := &mockCustomerRepo{
		CreateFn: func(ctx context.Context, customer *entity.Customer) error {
			created++
			return nil
		},
	}
	svc := NewCustomerService(customerRepo)

	_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name: "Maria Souza",
		CPF:  strPtr("111.111.111-11"),
	})

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "cpf", appErr.Errors[0].Field)
	assert.Zero(t, created)
}

func TestCreateCustomerAllowsMissingCPF(t *testing.T) {
	var captured *entity.Customer
	customerRepo := &mockCustomerRepo{
		CreateFn: func(ctx context.Context, customer *entity.Customer) error {
			captured = customer
			return nil
		},
	}
	svc := NewCustomerService(customerRepo)

	_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{Name: "Cliente Balcao"})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Nil(t, captured.CPF)
}

func TestCreateCustomerRejectsDuplicateCPF(t *testing.T) {
	existing := &entity.Customer{ID: uuid.New(), Name: "Joao Prado"}
	customerRepo := &mockCustomerRepo{
		GetByCPFFn: func(ctx context.Context, cpf string) (*entity.Customer, error) {
			assert.Equal(t, "52998224725", cpf)
			return existing, nil
		},
	}
	svc := NewCustomerService(customerRepo)

	_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name: "Maria Souza",
		CPF:  strPtr("529.982.247-25"),
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestUpdateCustomerKeepsOwnCPF(t *testing.T) {
	self := &entity.Customer{ID: uuid.New(), Name: "Maria Souza"}
	customerRepo := &mockCustomerRepo{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
			return self, nil
		},
		GetByCPFFn: func(ctx context.Context, cpf string) (*entity.Customer, error) {
			// Same customer already owns this CPF.
			return self, nil
		},
	}
	svc := NewCustomerService(customerRepo)

	updated, err := svc.UpdateCustomer(context.Background(), &UpdateCustomerInput{
		ID:  self.ID,
		CPF: strPtr("529.982.247-25"),
	})

	require.NoError(t, err)
	assert.Equal(t, "52998224725", *updated.CPF)
}

func TestCPFSearchStripsFormatting(t *testing.T) {
	assert.Equal(t, "52998224725", brdocSearch("529.982.247-25"))
	assert.Equal(t, "Maria", brdocSearch("Maria"))
	// Eleven plain digits are already normalized.
	assert.Equal(t, "52998224725", brdocSearch("52998224725"))
}
