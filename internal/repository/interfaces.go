package repository

import (
	"context"

	"github.com/alexanderramin/swapplan/internal/domain"
)

type TemplateRepo interface {
	Create(ctx context.Context, t *domain.Template) error
	GetByKey(ctx context.Context, key string) (*domain.Template, error)
	GetBaseline(ctx context.Context) (*domain.Template, error)
	List(ctx context.Context) ([]*domain.Template, error)
	DeleteAll(ctx context.Context) error
}

// ChassisRepo stores chassis together with their alias names. GetByName
// resolves aliases to the canonical chassis.
type ChassisRepo interface {
	Create(ctx context.Context, c *domain.Chassis) error
	GetByName(ctx context.Context, name string) (*domain.Chassis, error)
	List(ctx context.Context) ([]*domain.Chassis, error)
	DeleteAll(ctx context.Context) error
}

type EngineRepo interface {
	Create(ctx context.Context, e *domain.Engine) error
	GetByName(ctx context.Context, name string) (*domain.Engine, error)
	List(ctx context.Context) ([]*domain.Engine, error)
	DeleteAll(ctx context.Context) error
}

type TransmissionRepo interface {
	Create(ctx context.Context, t *domain.Transmission) error
	GetByName(ctx context.Context, name string) (*domain.Transmission, error)
	List(ctx context.Context) ([]*domain.Transmission, error)
	DeleteAll(ctx context.Context) error
}

type PresetRepo interface {
	Create(ctx context.Context, p *domain.Preset) error
	GetBySeq(ctx context.Context, seq int) (*domain.Preset, error)
	GetByTitle(ctx context.Context, title string) (*domain.Preset, error)
	Search(ctx context.Context, filter string) ([]*domain.Preset, error)
	DeleteAll(ctx context.Context) error
}
