package service

import (
	"context"

	"github.com/alexanderramin/swapplan/internal/contract"
	"github.com/alexanderramin/swapplan/internal/domain"
	"github.com/alexanderramin/swapplan/internal/template"
)

// TemplateRegistry is the read-only catalog view plan generation needs.
// *catalog.Registry implements it.
type TemplateRegistry interface {
	Baseline() template.Record
	Chassis(name string) (*domain.Chassis, bool)
	Override(c *domain.Chassis) template.Record
	Engine(name string) (*domain.Engine, bool)
	Transmission(name string) (*domain.Transmission, bool)
}

type PlanService interface {
	Generate(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}

type CatalogService interface {
	ListChassis(ctx context.Context) ([]contract.ChassisView, error)
	ListEngines(ctx context.Context) ([]contract.EngineView, error)
	ListTransmissions(ctx context.Context) ([]contract.TransmissionView, error)
	SearchPresets(ctx context.Context, filter string) ([]contract.PresetView, error)
	GetPreset(ctx context.Context, selector string) (*contract.PresetView, error)
}

type TemplateService interface {
	Baseline(ctx context.Context) (*contract.TemplateView, error)
	Effective(ctx context.Context, chassis string) (*contract.TemplateView, error)
}
