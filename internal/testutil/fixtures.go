package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/swapplan/internal/domain"
	"github.com/google/uuid"
)

var testSeqCounter atomic.Int64

// Chassis options
type ChassisOption func(*domain.Chassis)

func WithAliases(aliases ...string) ChassisOption {
	return func(c *domain.Chassis) {
		c.Aliases = aliases
	}
}

func WithOverrideYAML(body string) ChassisOption {
	return func(c *domain.Chassis) {
		c.OverrideYAML = body
	}
}

func WithChassisNotes(notes ...string) ChassisOption {
	return func(c *domain.Chassis) {
		c.Notes = notes
	}
}

func WithChassisPosition(pos int) ChassisOption {
	return func(c *domain.Chassis) {
		c.Position = pos
	}
}

func NewTestChassis(name string, opts ...ChassisOption) *domain.Chassis {
	c := &domain.Chassis{
		ID:   uuid.New().String(),
		Name: name,
		Defaults: domain.CoreSystems{
			Mounts:    "Swap-specific adapter mounts",
			OilPan:    "Low-profile pan",
			Wiring:    "Standalone harness",
			Cooling:   "Aluminum radiator",
			Fuel:      "Returnless 58 psi",
			Exhaust:   "Shorty headers",
			Driveline: "Custom driveshaft",
		},
		Notes:     []string{"Measure twice."},
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Engine options
type EngineOption func(*domain.Engine)

func WithFamily(family string) EngineOption {
	return func(e *domain.Engine) {
		e.Family = family
	}
}

func WithEngineNotes(notes ...string) EngineOption {
	return func(e *domain.Engine) {
		e.Notes = notes
	}
}

func WithEnginePosition(pos int) EngineOption {
	return func(e *domain.Engine) {
		e.Position = pos
	}
}

func NewTestEngine(name string, opts ...EngineOption) *domain.Engine {
	e := &domain.Engine{
		ID:          uuid.New().String(),
		Name:        name,
		Family:      "LS / Gen III-IV",
		ECU:         "Standalone or reflashed factory ECU",
		Accessories: "Truck accessory drive",
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NewTestTransmission(name string, notes ...string) *domain.Transmission {
	return &domain.Transmission{
		ID:        uuid.New().String(),
		Name:      name,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}
}

// Preset options
type PresetOption func(*domain.Preset)

func WithPresetSeq(seq int) PresetOption {
	return func(p *domain.Preset) {
		p.Seq = seq
	}
}

func WithUse(u domain.UseCase) PresetOption {
	return func(p *domain.Preset) {
		p.Use = u
	}
}

func WithSelection(chassis, engine, transmission string) PresetOption {
	return func(p *domain.Preset) {
		p.Chassis = chassis
		p.Engine = engine
		p.Transmission = transmission
	}
}

func NewTestPreset(title string, opts ...PresetOption) *domain.Preset {
	n := int(testSeqCounter.Add(1))
	p := &domain.Preset{
		ID:           uuid.New().String(),
		Seq:          n,
		Title:        title,
		Chassis:      fmt.Sprintf("Test Chassis %d", n),
		Engine:       "5.3 LS (LM7/LM4/L59)",
		Transmission: "4L60E",
		Use:          domain.UseStreet,
		CreatedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Template options
type TemplateOption func(*domain.Template)

func AsBaseline() TemplateOption {
	return func(t *domain.Template) {
		t.IsBaseline = true
	}
}

func NewTestTemplate(key, body string, opts ...TemplateOption) *domain.Template {
	t := &domain.Template{
		ID:        uuid.New().String(),
		Key:       key,
		Name:      key,
		BodyYAML:  body,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
