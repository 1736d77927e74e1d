package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/suplefit/backoffice-api/internal/domain/entity"
)

// SettingsRepository defines the interface for store settings data access
type SettingsRepository interface {
	// Get returns the store profile row, or nil when none has been saved yet.
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Create(ctx context.Context, settings *entity.StoreSettings) error
	Update(ctx context.Context, settings *entity.StoreSettings) error
}

// TemplateRepository defines the interface for WhatsApp template data access
type TemplateRepository interface {
	Create(ctx context.Context, template *entity.WhatsAppTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.WhatsAppTemplate, error)
	GetBySlug(ctx context.Context, slug string) (*entity.WhatsAppTemplate, error)
	Update(ctx context.Context, template *entity.WhatsAppTemplate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, activeOnly bool) ([]entity.WhatsAppTemplate, error)
}
