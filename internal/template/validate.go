package template

import (
	"fmt"
	"sort"
)

// ValidateTemplate checks a decoded template for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateTemplate(t *PlanTemplate) []error {
	var errs []error

	if t.ID == "" {
		errs = append(errs, fmt.Errorf("template id is required"))
	}
	if t.Name == "" {
		errs = append(errs, fmt.Errorf("template name is required"))
	}
	if len(t.Phases) == 0 {
		errs = append(errs, fmt.Errorf("at least one phase is required"))
	}
	if len(t.Hours) == 0 {
		errs = append(errs, fmt.Errorf("at least one hour category is required"))
	}

	phaseNames := map[string]bool{}
	for i, p := range t.Phases {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("phase[%d]: name is required", i))
		}
		if phaseNames[p.Name] && p.Name != "" {
			errs = append(errs, fmt.Errorf("phase[%d]: duplicate name %q", i, p.Name))
		}
		phaseNames[p.Name] = true
	}

	for _, key := range sortedHourKeys(t.Hours) {
		if t.Hours[key] < 0 {
			errs = append(errs, fmt.Errorf("hours[%s]: must not be negative", key))
		}
	}

	return errs
}

func sortedHourKeys(hours map[string]float64) []string {
	keys := make([]string, 0, len(hours))
	for k := range hours {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
