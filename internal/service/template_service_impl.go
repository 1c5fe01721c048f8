package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/swapplan/internal/app"
	"github.com/alexanderramin/swapplan/internal/domain"
	"github.com/alexanderramin/swapplan/internal/repository"
	"github.com/alexanderramin/swapplan/internal/template"
)

type templateService struct {
	registry  TemplateRegistry
	templates repository.TemplateRepo
	observer  UseCaseObserver
}

func NewTemplateService(
	registry TemplateRegistry,
	templates repository.TemplateRepo,
	observers ...UseCaseObserver,
) TemplateService {
	return &templateService{
		registry:  registry,
		templates: templates,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *templateService) Baseline(ctx context.Context) (*app.TemplateView, error) {
	return s.Effective(ctx, "")
}

// Effective returns the baseline resolved with the chassis override as YAML.
// An empty chassis returns the baseline itself.
func (s *templateService) Effective(ctx context.Context, chassis string) (view *app.TemplateView, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"chassis": chassis}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "show-template",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	stored, err := s.templates.GetBaseline(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading baseline template: %w", err)
	}

	view = &app.TemplateView{Key: stored.Key, Name: stored.Name}
	var override template.Record

	if name := strings.TrimSpace(chassis); name != "" {
		c, ok := s.registry.Chassis(name)
		if !ok {
			return nil, app.NewUnknownKeyError(domain.KindChassis, name)
		}
		view.Chassis = c.Name
		override = s.registry.Override(c)
		view.Overridden = override != nil
	}

	rec, err := template.Resolve(s.registry.Baseline(), override)
	if err != nil {
		return nil, templateError(view.Chassis, err)
	}
	cfg, err := template.Decode(rec)
	if err != nil {
		return nil, templateError(view.Chassis, fmt.Errorf("decoding template: %w", err))
	}
	body, err := template.Encode(rec)
	if err != nil {
		return nil, err
	}

	view.Body = body
	view.HoursTotal = cfg.TotalHours()
	fields["overridden"] = view.Overridden
	return view, nil
}

// templateError reports shape problems in the effective template as
// SHAPE_MISMATCH, the same way plan generation does.
func templateError(chassis string, err error) error {
	var mismatch *template.ShapeMismatchError
	if errors.As(err, &mismatch) {
		return app.NewShapeMismatchError(chassis, mismatch)
	}
	return err
}
