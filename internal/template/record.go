package template

import (
	"fmt"
	"reflect"
	"sort"
)

// Record is an untyped template body. Sequences are slices, mappings are
// string-keyed maps, everything else is a scalar. Records returned by this
// package are normalized to []any and map[string]any.
type Record = map[string]any

type shape int

const (
	shapeScalar shape = iota
	shapeSequence
	shapeMapping
)

func (s shape) String() string {
	switch s {
	case shapeSequence:
		return "sequence"
	case shapeMapping:
		return "mapping"
	default:
		return "scalar"
	}
}

func shapeOf(v any) shape {
	if v == nil {
		return shapeScalar
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return shapeSequence
	case reflect.Map:
		return shapeMapping
	default:
		return shapeScalar
	}
}

// MergeValues combines base with a partial override and returns a new record.
//
// Sequences in override are appended to the base sequence, mappings are
// shallow-merged (override keys win, nested values are replaced whole),
// scalars replace the base value. Fields absent from override are copied
// from base. A nil or empty override yields a deep copy of base. Neither
// argument is modified.
//
// A field whose base and override shapes disagree fails with a
// *ShapeMismatchError. Nil override values are treated as absent.
func MergeValues(base, override Record) (Record, error) {
	return mergeRecord("", base, override)
}

func mergeRecord(prefix string, base, override Record) (Record, error) {
	out := cloneRecord(base)
	for _, field := range sortedKeys(override) {
		ov := override[field]
		if ov == nil {
			continue
		}
		merged, err := mergeField(prefix+field, out[field], ov)
		if err != nil {
			return nil, err
		}
		out[field] = merged
	}
	return out, nil
}

// mergeField merges one override value into an already-cloned base value.
func mergeField(path string, base, override any) (any, error) {
	ovShape := shapeOf(override)
	if base != nil {
		if baseShape := shapeOf(base); baseShape != ovShape {
			return nil, &ShapeMismatchError{Field: path, Base: baseShape.String(), Override: ovShape.String()}
		}
	}

	switch ovShape {
	case shapeSequence:
		seq, _ := base.([]any)
		add := cloneValue(override).([]any)
		out := make([]any, 0, len(seq)+len(add))
		out = append(out, seq...)
		return append(out, add...), nil
	case shapeMapping:
		m, _ := base.(map[string]any)
		if m == nil {
			m = make(map[string]any)
		}
		for k, v := range cloneValue(override).(map[string]any) {
			m[k] = v
		}
		return m, nil
	default:
		return override, nil
	}
}

// Clone returns a deep copy of rec normalized to []any and map[string]any.
func Clone(rec Record) Record {
	return cloneRecord(rec)
}

func cloneRecord(rec Record) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = cloneValue(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = cloneValue(iter.Value().Interface())
		}
		return out
	default:
		return v
	}
}

func sortedKeys(rec Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
