package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/swapplan/internal/app"
	"github.com/alexanderramin/swapplan/internal/domain"
	"github.com/alexanderramin/swapplan/internal/template"
)

type planService struct {
	registry TemplateRegistry
	observer UseCaseObserver
}

func NewPlanService(registry TemplateRegistry, observers ...UseCaseObserver) PlanService {
	return &planService{
		registry: registry,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Generate resolves the selection against the registry and builds the
// effective plan. The baseline is never modified.
func (s *planService) Generate(ctx context.Context, req app.PlanRequest) (resp *app.PlanResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"chassis":      req.Chassis,
		"engine":       req.Engine,
		"transmission": req.Transmission,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	sel := app.Selection{
		Chassis:      strings.TrimSpace(req.Chassis),
		Engine:       strings.TrimSpace(req.Engine),
		Transmission: strings.TrimSpace(req.Transmission),
	}

	var missing []string
	if sel.Chassis == "" {
		missing = append(missing, domain.KindChassis)
	}
	if sel.Engine == "" {
		missing = append(missing, domain.KindEngine)
	}
	if sel.Transmission == "" {
		missing = append(missing, domain.KindTransmission)
	}
	if len(missing) > 0 {
		return nil, app.NewMissingSelectionError(missing)
	}

	sel.Use = domain.UseStreet
	if strings.TrimSpace(req.Use) != "" {
		use, ok := domain.ParseUseCase(req.Use)
		if !ok {
			return nil, app.NewUnknownKeyError(domain.KindUseCase, req.Use)
		}
		sel.Use = use
	}
	fields["use"] = string(sel.Use)

	chassis, ok := s.registry.Chassis(sel.Chassis)
	if !ok {
		return nil, app.NewUnknownKeyError(domain.KindChassis, sel.Chassis)
	}
	engine, ok := s.registry.Engine(sel.Engine)
	if !ok {
		return nil, app.NewUnknownKeyError(domain.KindEngine, sel.Engine)
	}
	trans, ok := s.registry.Transmission(sel.Transmission)
	if !ok {
		return nil, app.NewUnknownKeyError(domain.KindTransmission, sel.Transmission)
	}

	override := s.registry.Override(chassis)
	cfg, err := template.ResolveTemplate(s.registry.Baseline(), override)
	if err != nil {
		var mismatch *template.ShapeMismatchError
		if errors.As(err, &mismatch) {
			return nil, app.NewShapeMismatchError(chassis.Name, mismatch)
		}
		return nil, fmt.Errorf("resolving template for %q: %w", chassis.Name, err)
	}

	now := startedAt
	if req.Now != nil {
		now = *req.Now
	}

	total := cfg.TotalHours()
	fields["hours_total"] = total
	fields["overridden"] = override != nil

	return &app.PlanResponse{
		Selection:    sel,
		Chassis:      chassis,
		Engine:       engine,
		Transmission: trans,
		Config:       cfg,
		HoursTotal:   total,
		Overridden:   override != nil,
		GeneratedAt:  now,
	}, nil
}
