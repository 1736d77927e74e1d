package service

import (
	"context"

	"github.com/suplefit/backoffice-api/internal/domain/entity"
	"github.com/suplefit/backoffice-api/internal/domain/repository"
	"github.com/suplefit/backoffice-api/pkg/apperror"
	"github.com/suplefit/backoffice-api/pkg/brdoc"
)

// SettingsService manages the single store profile row printed on receipts
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves the store profile, returning an empty profile when
// none has been saved yet.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &entity.StoreSettings{}, nil
	}
	return settings, nil
}

// UpdateSettingsInput represents the store profile fields
type UpdateSettingsInput struct {
	Name      string
	CNPJ      string
	Address   string
	City      string
	State     string
	CEP       string
	Phone     string
	Email     string
	Instagram string
}

// UpdateSettings upserts the store profile. CNPJ, CEP and phone are stored
// as digits only; formatting is applied when rendering receipts.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.StoreSettings, error) {
	cnpj := brdoc.OnlyDigits(input.CNPJ)
	if cnpj != "" && !brdoc.IsValidCNPJ(cnpj) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "cnpj", Message: "Invalid CNPJ"},
		})
	}

	cep := brdoc.OnlyDigits(input.CEP)
	if cep != "" && len(cep) != 8 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "cep", Message: "CEP must have 8 digits"},
		})
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	isNew := settings == nil
	if isNew {
		settings = &entity.StoreSettings{}
	}

	settings.Name = input.Name
	settings.CNPJ = cnpj
	settings.Address = input.Address
	settings.City = input.City
	settings.State = input.State
	settings.CEP = cep
	settings.Phone = brdoc.OnlyDigits(input.Phone)
	settings.Email = input.Email
	settings.Instagram = input.Instagram

	if isNew {
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	} else {
		if err := s.settingsRepo.Update(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}
