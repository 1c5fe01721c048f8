// Package catalog loads the swap catalog (templates, chassis, engines,
// transmissions and presets), seeds it into the catalog store and exposes
// an immutable Registry for plan generation.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/swapplan/internal/domain"
	"github.com/alexanderramin/swapplan/internal/template"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// Document is one catalog file.
type Document struct {
	Baseline      string              `yaml:"baseline"`
	Templates     []TemplateEntry     `yaml:"templates"`
	Chassis       []ChassisEntry      `yaml:"chassis"`
	Engines       []EngineEntry       `yaml:"engines"`
	Transmissions []TransmissionEntry `yaml:"transmissions"`
	Presets       []PresetEntry       `yaml:"presets"`
}

type TemplateEntry struct {
	Key  string          `yaml:"key"`
	Body template.Record `yaml:"body"`
}

type ChassisEntry struct {
	Name     string          `yaml:"name"`
	Aliases  []string        `yaml:"aliases,omitempty"`
	Defaults CoreSystems     `yaml:"defaults"`
	Notes    []string        `yaml:"notes,omitempty"`
	Override template.Record `yaml:"override,omitempty"`
}

// CoreSystems mirrors domain.CoreSystems with catalog field names.
type CoreSystems struct {
	Mounts    string `yaml:"mounts"`
	OilPan    string `yaml:"oil_pan"`
	Wiring    string `yaml:"wiring"`
	Cooling   string `yaml:"cooling"`
	Fuel      string `yaml:"fuel"`
	Exhaust   string `yaml:"exhaust"`
	Driveline string `yaml:"driveline"`
}

type EngineEntry struct {
	Name        string   `yaml:"name"`
	Family      string   `yaml:"family,omitempty"`
	ECU         string   `yaml:"ecu"`
	Accessories string   `yaml:"accessories"`
	Notes       []string `yaml:"notes,omitempty"`
}

type TransmissionEntry struct {
	Name  string   `yaml:"name"`
	Notes []string `yaml:"notes,omitempty"`
}

type PresetEntry struct {
	Title        string `yaml:"title"`
	Chassis      string `yaml:"chassis"`
	Engine       string `yaml:"engine"`
	Transmission string `yaml:"transmission"`
	Use          string `yaml:"use"`
}

func (c CoreSystems) toDomain() domain.CoreSystems {
	return domain.CoreSystems{
		Mounts:    c.Mounts,
		OilPan:    c.OilPan,
		Wiring:    c.Wiring,
		Cooling:   c.Cooling,
		Fuel:      c.Fuel,
		Exhaust:   c.Exhaust,
		Driveline: c.Driveline,
	}
}

// Parse decodes a single catalog document. Unknown fields are rejected.
// An empty input yields an empty document.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	var extra any
	if err := dec.Decode(&extra); err == nil {
		return nil, fmt.Errorf("parsing catalog: multiple YAML documents are not supported")
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	doc.normalize()
	return &doc, nil
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadDefault returns the built-in catalog.
func LoadDefault() (*Document, error) {
	return Parse(bytes.NewReader(defaultCatalog))
}

// normalize converts decoded record values to the canonical []any /
// map[string]any form used by the template package.
func (d *Document) normalize() {
	for i := range d.Templates {
		if d.Templates[i].Body != nil {
			d.Templates[i].Body = template.Clone(d.Templates[i].Body)
		}
	}
	for i := range d.Chassis {
		if d.Chassis[i].Override != nil {
			d.Chassis[i].Override = template.Clone(d.Chassis[i].Override)
		}
	}
}
