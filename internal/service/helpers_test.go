package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/swapplan/internal/catalog"
	"github.com/alexanderramin/swapplan/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func setupServices(t *testing.T, observers ...UseCaseObserver) (PlanService, CatalogService, TemplateService) {
	t.Helper()
	tc := testutil.NewTestCatalog(t)
	return newServices(tc.Stores, tc.Registry, observers...)
}

func newServices(s catalog.Stores, reg *catalog.Registry, observers ...UseCaseObserver) (PlanService, CatalogService, TemplateService) {
	return NewPlanService(reg, observers...),
		NewCatalogService(s.Chassis, s.Engines, s.Transmissions, s.Presets, observers...),
		NewTemplateService(reg, s.Templates, observers...)
}
