package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/domain/entity"
	domainRepo "github.com/suplefit/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new store settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves the store profile row
func (r *settingsRepository) Get(ctx context.Context) (*entity.StoreSettings, error) {
	var settings entity.StoreSettings
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Create creates the store profile
func (r *settingsRepository) Create(ctx context.Context, settings *entity.StoreSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

// Update updates the store profile
func (r *settingsRepository) Update(ctx context.Context, settings *entity.StoreSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}

type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new WhatsApp template repository
func NewTemplateRepository(db *gorm.DB) domainRepo.TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Create(ctx context.Context, template *entity.WhatsAppTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *templateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.WhatsAppTemplate, error) {
	var template entity.WhatsAppTemplate
	err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &template, err
}

func (r *templateRepository) GetBySlug(ctx context.Context, slug string) (*entity.WhatsAppTemplate, error) {
	var template entity.WhatsAppTemplate
	err := r.db.WithContext(ctx).First(&template, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &template, err
}

func (r *templateRepository) Update(ctx context.Context, template *entity.WhatsAppTemplate) error {
	return r.db.WithContext(ctx).Save(template).Error
}

func (r *templateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.WhatsAppTemplate{}, "id = ?", id).Error
}

func (r *templateRepository) List(ctx context.Context, activeOnly bool) ([]entity.WhatsAppTemplate, error) {
	var templates []entity.WhatsAppTemplate
	query := r.db.WithContext(ctx).Model(&entity.WhatsAppTemplate{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Order("name ASC").Find(&templates).Error
	return templates, err
}
