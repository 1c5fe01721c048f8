package template

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// PlanTemplate is the typed form of a resolved template record.
type PlanTemplate struct {
	ID              string              `yaml:"id"`
	Name            string              `yaml:"name"`
	Decisions       []string            `yaml:"decisions"`
	Phases          []Phase             `yaml:"phases"`
	SubsystemChecks map[string][]string `yaml:"subsystem_checks"`
	Hours           map[string]float64  `yaml:"hours"`
	Warnings        []string            `yaml:"warnings,omitempty"`
}

// Phase is a named, ordered group of plan bullets.
type Phase struct {
	Name    string   `yaml:"name"`
	Bullets []string `yaml:"bullets"`
}

// TotalHours returns the sum of every hour-category estimate.
func (t *PlanTemplate) TotalHours() float64 {
	var total float64
	for _, key := range sortedHourKeys(t.Hours) {
		total += t.Hours[key]
	}
	return total
}

// fieldShapes lists the shape each known template field must have.
var fieldShapes = map[string]shape{
	"id":               shapeScalar,
	"name":             shapeScalar,
	"decisions":        shapeSequence,
	"phases":           shapeSequence,
	"subsystem_checks": shapeMapping,
	"hours":            shapeMapping,
	"warnings":         shapeSequence,
}

// entryShapes lists the shape of the values inside known mapping fields.
var entryShapes = map[string]shape{
	"subsystem_checks": shapeSequence,
	"hours":            shapeScalar,
}

// numericFields are mappings whose entries must be numbers.
var numericFields = map[string]bool{"hours": true}

func isNumber(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func scalarKind(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	default:
		return shapeScalar.String()
	}
}

// ParseRecord decodes a YAML document into a Record.
func ParseRecord(data []byte) (Record, error) {
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	if rec == nil {
		rec = Record{}
	}
	return cloneRecord(rec), nil
}

// Encode renders a record as YAML. Keys are emitted in sorted order.
func Encode(rec Record) (string, error) {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("encoding template: %w", err)
	}
	return string(data), nil
}

// Decode converts a resolved record into a PlanTemplate. Known fields with
// the wrong shape are reported as *ShapeMismatchError.
func Decode(rec Record) (*PlanTemplate, error) {
	if err := checkShapes(rec); err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encoding template: %w", err)
	}
	var t PlanTemplate
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decoding template: %w", err)
	}
	if t.SubsystemChecks == nil {
		t.SubsystemChecks = map[string][]string{}
	}
	if t.Hours == nil {
		t.Hours = map[string]float64{}
	}
	return &t, nil
}

func checkShapes(rec Record) error {
	for _, field := range sortedKeys(rec) {
		v := rec[field]
		want, known := fieldShapes[field]
		if !known || v == nil {
			continue
		}
		if got := shapeOf(v); got != want {
			return &ShapeMismatchError{Field: field, Base: want.String(), Override: got.String()}
		}

		entryWant, nested := entryShapes[field]
		if !nested {
			continue
		}
		entries, _ := cloneValue(v).(map[string]any)
		for _, key := range sortedKeys(entries) {
			entry := entries[key]
			if got := shapeOf(entry); got != entryWant {
				return &ShapeMismatchError{Field: field + "." + key, Base: entryWant.String(), Override: got.String()}
			}
			if numericFields[field] && entry != nil && !isNumber(entry) {
				return &ShapeMismatchError{Field: field + "." + key, Base: "number", Override: scalarKind(entry)}
			}
		}
	}
	return nil
}
