package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/swapplan/internal/app"
	"github.com/alexanderramin/swapplan/internal/domain"
	"github.com/alexanderramin/swapplan/internal/repository"
)

type catalogService struct {
	chassis       repository.ChassisRepo
	engines       repository.EngineRepo
	transmissions repository.TransmissionRepo
	presets       repository.PresetRepo
	observer      UseCaseObserver
}

func NewCatalogService(
	chassis repository.ChassisRepo,
	engines repository.EngineRepo,
	transmissions repository.TransmissionRepo,
	presets repository.PresetRepo,
	observers ...UseCaseObserver,
) CatalogService {
	return &catalogService{
		chassis:       chassis,
		engines:       engines,
		transmissions: transmissions,
		presets:       presets,
		observer:      useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) ListChassis(ctx context.Context) ([]app.ChassisView, error) {
	list, err := s.chassis.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing chassis: %w", err)
	}
	views := make([]app.ChassisView, 0, len(list))
	for _, c := range list {
		views = append(views, app.ChassisView{
			Name:        c.Name,
			Aliases:     c.Aliases,
			HasOverride: c.HasOverride(),
			Defaults:    c.Defaults,
			Notes:       c.Notes,
		})
	}
	return views, nil
}

func (s *catalogService) ListEngines(ctx context.Context) ([]app.EngineView, error) {
	list, err := s.engines.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing engines: %w", err)
	}
	views := make([]app.EngineView, 0, len(list))
	for _, e := range list {
		views = append(views, app.EngineView{
			Name:        e.Name,
			Family:      e.Family,
			ECU:         e.ECU,
			Accessories: e.Accessories,
			Notes:       e.Notes,
		})
	}
	return views, nil
}

func (s *catalogService) ListTransmissions(ctx context.Context) ([]app.TransmissionView, error) {
	list, err := s.transmissions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing transmissions: %w", err)
	}
	views := make([]app.TransmissionView, 0, len(list))
	for _, t := range list {
		views = append(views, app.TransmissionView{Name: t.Name, Notes: t.Notes})
	}
	return views, nil
}

// SearchPresets matches filter case-insensitively against each preset's
// title, chassis, engine, transmission and use case. An empty filter
// returns the whole library.
func (s *catalogService) SearchPresets(ctx context.Context, filter string) (views []app.PresetView, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"filter": filter}
	defer func() {
		fields["matches"] = len(views)
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "search-presets",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	presets, err := s.presets.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("searching presets: %w", err)
	}
	views = make([]app.PresetView, 0, len(presets))
	for _, p := range presets {
		views = append(views, presetView(p))
	}
	return views, nil
}

// GetPreset resolves a 1-based library index or a preset title.
func (s *catalogService) GetPreset(ctx context.Context, selector string) (*app.PresetView, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil, app.NewMissingSelectionError([]string{domain.KindPreset})
	}

	var (
		p   *domain.Preset
		err error
	)
	if n, convErr := strconv.Atoi(selector); convErr == nil {
		p, err = s.presets.GetBySeq(ctx, n)
	} else {
		p, err = s.presets.GetByTitle(ctx, selector)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, app.NewUnknownKeyError(domain.KindPreset, selector)
		}
		return nil, fmt.Errorf("loading preset: %w", err)
	}
	v := presetView(p)
	return &v, nil
}

func presetView(p *domain.Preset) app.PresetView {
	return app.PresetView{
		Index:        p.Seq,
		Title:        p.Title,
		Chassis:      p.Chassis,
		Engine:       p.Engine,
		Transmission: p.Transmission,
		Use:          p.Use,
	}
}
