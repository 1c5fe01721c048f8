package catalog

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/swapplan/internal/domain"
	"github.com/alexanderramin/swapplan/internal/template"
)

// Validate checks that the document can be seeded: the baseline exists and
// decodes into a valid template, every chassis override resolves against
// it, names are present, and preset use cases are known.
func (d *Document) Validate() error {
	var errs []error

	baseline, ok := d.baselineBody()
	switch {
	case d.Baseline == "":
		errs = append(errs, errors.New("baseline template key is required"))
	case !ok:
		errs = append(errs, fmt.Errorf("baseline template %q not found", d.Baseline))
	default:
		tmpl, err := template.Decode(baseline)
		if err != nil {
			errs = append(errs, fmt.Errorf("template %q: %w", d.Baseline, err))
		} else {
			for _, e := range template.ValidateTemplate(tmpl) {
				errs = append(errs, fmt.Errorf("template %q: %w", d.Baseline, e))
			}
		}
	}

	for i, t := range d.Templates {
		if t.Key == "" {
			errs = append(errs, fmt.Errorf("templates[%d]: key is required", i))
		}
	}

	for i, c := range d.Chassis {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("chassis[%d]: name is required", i))
			continue
		}
		if c.Override != nil && ok {
			if _, err := template.ResolveTemplate(baseline, c.Override); err != nil {
				errs = append(errs, fmt.Errorf("chassis %q override: %w", c.Name, err))
			}
		}
	}

	for i, e := range d.Engines {
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("engines[%d]: name is required", i))
		}
	}
	for i, t := range d.Transmissions {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("transmissions[%d]: name is required", i))
		}
	}
	for i, p := range d.Presets {
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("presets[%d]: title is required", i))
		}
		if p.Use != "" {
			if _, known := domain.ParseUseCase(p.Use); !known {
				errs = append(errs, fmt.Errorf("preset %q: unknown use case %q", p.Title, p.Use))
			}
		}
	}

	return errors.Join(errs...)
}

func (d *Document) baselineBody() (template.Record, bool) {
	key := domain.NormalizeKey(d.Baseline)
	for _, t := range d.Templates {
		if domain.NormalizeKey(t.Key) == key {
			return t.Body, true
		}
	}
	return nil, false
}

