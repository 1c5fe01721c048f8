package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/alexanderramin/swapplan/internal/domain"
	"github.com/alexanderramin/swapplan/internal/template"
)

// Registry is an immutable snapshot of the catalog used for plan
// generation. Lookups are case-insensitive and whitespace-tolerant; chassis
// aliases resolve to the canonical entry. Returned records are copies.
type Registry struct {
	baseline      template.Record
	chassis       map[string]*domain.Chassis
	overrides     map[string]template.Record // by chassis ID
	engines       map[string]*domain.Engine
	transmissions map[string]*domain.Transmission
}

// BuildRegistry reads the seeded store into a Registry.
func BuildRegistry(ctx context.Context, s Stores) (*Registry, error) {
	base, err := s.Templates.GetBaseline(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading baseline template: %w", err)
	}
	baseline, err := template.ParseRecord([]byte(base.BodyYAML))
	if err != nil {
		return nil, fmt.Errorf("baseline template %q: %w", base.Key, err)
	}

	chassis, err := s.Chassis.List(ctx)
	if err != nil {
		return nil, err
	}
	engines, err := s.Engines.List(ctx)
	if err != nil {
		return nil, err
	}
	transmissions, err := s.Transmissions.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewRegistry(baseline, chassis, engines, transmissions)
}

// NewRegistry builds a Registry from already-loaded catalog records.
func NewRegistry(baseline template.Record, chassis []*domain.Chassis, engines []*domain.Engine, transmissions []*domain.Transmission) (*Registry, error) {
	r := &Registry{
		baseline:      template.Clone(baseline),
		chassis:       make(map[string]*domain.Chassis),
		overrides:     make(map[string]template.Record),
		engines:       make(map[string]*domain.Engine, len(engines)),
		transmissions: make(map[string]*domain.Transmission, len(transmissions)),
	}

	for _, c := range chassis {
		r.chassis[domain.NormalizeKey(c.Name)] = c
		for _, alias := range c.Aliases {
			r.chassis[domain.NormalizeKey(alias)] = c
		}
		if !c.HasOverride() {
			continue
		}
		override, err := template.ParseRecord([]byte(c.OverrideYAML))
		if err != nil {
			return nil, fmt.Errorf("chassis %q override: %w", c.Name, err)
		}
		r.overrides[c.ID] = override
	}
	for _, e := range engines {
		r.engines[domain.NormalizeKey(e.Name)] = e
	}
	for _, t := range transmissions {
		r.transmissions[domain.NormalizeKey(t.Name)] = t
	}
	return r, nil
}

// Baseline returns a copy of the baseline template record.
func (r *Registry) Baseline() template.Record {
	return template.Clone(r.baseline)
}

// Chassis looks up a chassis by name or alias.
func (r *Registry) Chassis(name string) (*domain.Chassis, bool) {
	c, ok := r.chassis[domain.NormalizeKey(name)]
	if !ok {
		return nil, false
	}
	cp := *c
	cp.Aliases = slices.Clone(c.Aliases)
	cp.Notes = slices.Clone(c.Notes)
	return &cp, true
}

// Override returns a copy of the chassis override, or nil when the chassis
// uses the baseline unchanged.
func (r *Registry) Override(c *domain.Chassis) template.Record {
	if c == nil {
		return nil
	}
	o, ok := r.overrides[c.ID]
	if !ok {
		return nil
	}
	return template.Clone(o)
}

func (r *Registry) Engine(name string) (*domain.Engine, bool) {
	e, ok := r.engines[domain.NormalizeKey(name)]
	if !ok {
		return nil, false
	}
	cp := *e
	cp.Notes = slices.Clone(e.Notes)
	return &cp, true
}

func (r *Registry) Transmission(name string) (*domain.Transmission, bool) {
	t, ok := r.transmissions[domain.NormalizeKey(name)]
	if !ok {
		return nil, false
	}
	cp := *t
	cp.Notes = slices.Clone(t.Notes)
	return &cp, true
}
