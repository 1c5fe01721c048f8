package template

// nestedFields are mapping fields whose entries are merged as records of
// their own, so a chassis can append items to a single checklist category.
var nestedFields = []string{"subsystem_checks"}

// Resolve applies a chassis override to the baseline template and returns
// the effective record. It follows MergeValues, except that nestedFields
// are merged one level deeper: their category sequences concatenate rather
// than being replaced. A nil override yields a deep copy of base.
func Resolve(base, override Record) (Record, error) {
	if override == nil {
		return cloneRecord(base), nil
	}

	rest := make(Record, len(override))
	for k, v := range override {
		rest[k] = v
	}

	nested := make(map[string]Record)
	for _, field := range nestedFields {
		v, ok := rest[field]
		if !ok {
			continue
		}
		delete(rest, field)
		if v == nil {
			continue
		}
		if got := shapeOf(v); got != shapeMapping {
			return nil, &ShapeMismatchError{Field: field, Base: shapeMapping.String(), Override: got.String()}
		}
		nested[field] = cloneValue(v).(map[string]any)
	}

	out, err := mergeRecord("", base, rest)
	if err != nil {
		return nil, err
	}

	for _, field := range nestedFields {
		ov, ok := nested[field]
		if !ok {
			continue
		}
		var baseEntries Record
		if existing := out[field]; existing != nil {
			if got := shapeOf(existing); got != shapeMapping {
				return nil, &ShapeMismatchError{Field: field, Base: got.String(), Override: shapeMapping.String()}
			}
			baseEntries = existing.(map[string]any)
		}
		merged, err := mergeRecord(field+".", baseEntries, ov)
		if err != nil {
			return nil, err
		}
		out[field] = merged
	}

	return out, nil
}

// ResolveTemplate resolves base with override and decodes the result.
func ResolveTemplate(base, override Record) (*PlanTemplate, error) {
	rec, err := Resolve(base, override)
	if err != nil {
		return nil, err
	}
	return Decode(rec)
}
