package catalog

import "github.com/alexanderramin/swapplan/internal/domain"

// Merge layers documents in order. A later entry replaces an earlier one
// with the same key (template key, chassis/engine/transmission name,
// preset title) in place; new entries are appended. A non-empty Baseline
// in a later document wins.
func Merge(docs ...*Document) *Document {
	out := &Document{}
	for _, d := range docs {
		if d == nil {
			continue
		}
		if d.Baseline != "" {
			out.Baseline = d.Baseline
		}
		out.Templates = mergeEntries(out.Templates, d.Templates, func(e TemplateEntry) string { return e.Key })
		out.Chassis = mergeEntries(out.Chassis, d.Chassis, func(e ChassisEntry) string { return e.Name })
		out.Engines = mergeEntries(out.Engines, d.Engines, func(e EngineEntry) string { return e.Name })
		out.Transmissions = mergeEntries(out.Transmissions, d.Transmissions, func(e TransmissionEntry) string { return e.Name })
		out.Presets = mergeEntries(out.Presets, d.Presets, func(e PresetEntry) string { return e.Title })
	}
	return out
}

func mergeEntries[T any](base, add []T, key func(T) string) []T {
	index := make(map[string]int, len(base))
	for i, e := range base {
		index[domain.NormalizeKey(key(e))] = i
	}
	for _, e := range add {
		k := domain.NormalizeKey(key(e))
		if i, ok := index[k]; ok {
			base[i] = e
			continue
		}
		index[k] = len(base)
		base = append(base, e)
	}
	return base
}
