package template

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_NilOverrideMatchesBaseline(t *testing.T) {
	base := baselineRecord()

	got, err := Resolve(base, nil)
	require.NoError(t, err)
	assert.Equal(t, base, got)

	got["hours"].(map[string]any)["fitment"] = 1
	assert.Equal(t, 14, base["hours"].(map[string]any)["fitment"])
}

func TestResolve_ChecklistCategoriesConcatenate(t *testing.T) {
	got, err := Resolve(baselineRecord(), chassisOverride())
	require.NoError(t, err)

	checks := got["subsystem_checks"].(map[string]any)
	assert.Equal(t, []any{"A", "B", "C"}, checks["Mounts & Fitment"])
	assert.Equal(t, []any{"Radiator mounted solid"}, checks["Cooling"])
}

func TestResolve_HoursReplacePerCategory(t *testing.T) {
	tmpl, err := ResolveTemplate(baselineRecord(), chassisOverride())
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{
		"planning":   6,
		"fitment":    18,
		"plumbing":   12,
		"wiring":     16,
		"firstStart": 4,
		"shakedown":  6,
	}, tmpl.Hours)
	assert.Equal(t, 62.0, tmpl.TotalHours())
	assert.Equal(t, []string{"Rack/crossmember clearance: plan pan + headers together."}, tmpl.Warnings)
}

func TestResolve_NewChecklistCategory(t *testing.T) {
	got, err := Resolve(baselineRecord(), Record{
		"subsystem_checks": map[string]any{"Electronics/CAN": []any{"Cluster talks to ECU"}},
	})
	require.NoError(t, err)

	checks := got["subsystem_checks"].(map[string]any)
	assert.Equal(t, []any{"Cluster talks to ECU"}, checks["Electronics/CAN"])
	assert.Len(t, checks, 3)
}

func TestResolve_DoesNotMutateInputs(t *testing.T) {
	base := baselineRecord()
	override := chassisOverride()

	_, err := Resolve(base, override)
	require.NoError(t, err)

	assert.Equal(t, baselineRecord(), base)
	assert.Equal(t, chassisOverride(), override)
}

func TestResolve_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name     string
		override Record
		field    string
	}{
		{"checks as sequence", Record{"subsystem_checks": []any{"C"}}, "subsystem_checks"},
		{"category as scalar", Record{"subsystem_checks": map[string]any{"Cooling": "Fans"}}, "subsystem_checks.Cooling"},
		{"hours as sequence", Record{"hours": []any{1}}, "hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(baselineRecord(), tt.override)
			var mismatch *ShapeMismatchError
			require.True(t, errors.As(err, &mismatch), "got %v", err)
			assert.Equal(t, tt.field, mismatch.Field)
		})
	}
}

func TestDecode_Baseline(t *testing.T) {
	tmpl, err := Decode(baselineRecord())
	require.NoError(t, err)

	assert.Equal(t, "general", tmpl.ID)
	assert.Equal(t, "General Swap", tmpl.Name)
	assert.Len(t, tmpl.Decisions, 2)
	require.Len(t, tmpl.Phases, 2)
	assert.Equal(t, "Phase 1 — Planning", tmpl.Phases[0].Name)
	assert.Equal(t, []string{"Confirm engine generation."}, tmpl.Phases[0].Bullets)
	assert.Equal(t, []string{"A", "B"}, tmpl.SubsystemChecks["Mounts & Fitment"])
	assert.Equal(t, 56.0, tmpl.TotalHours())
	assert.Empty(t, tmpl.Warnings)
}

func TestDecode_TotalHoursEqualsSumOfCategories(t *testing.T) {
	tmpl, err := Decode(Record{"hours": map[string]any{"a": 1.5, "b": 2, "c": 0}})
	require.NoError(t, err)

	var sum float64
	for _, h := range tmpl.Hours {
		sum += h
	}
	assert.Equal(t, sum, tmpl.TotalHours())
	assert.Equal(t, 3.5, tmpl.TotalHours())
}

func TestDecode_EmptyRecordHasEmptyMaps(t *testing.T) {
	tmpl, err := Decode(Record{})
	require.NoError(t, err)
	assert.NotNil(t, tmpl.Hours)
	assert.NotNil(t, tmpl.SubsystemChecks)
	assert.Zero(t, tmpl.TotalHours())
}

func TestDecode_ShapeMismatch(t *testing.T) {
	_, err := Decode(Record{"hours": map[string]any{"fitment": []any{18}}})
	var mismatch *ShapeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "hours.fitment", mismatch.Field)

	_, err = Decode(Record{"decisions": "one"})
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "decisions", mismatch.Field)
}

func TestDecode_HoursMustBeNumbers(t *testing.T) {
	_, err := Decode(Record{"hours": map[string]any{"planning": "six", "fitment": 14}})
	var mismatch *ShapeMismatchError
	require.True(t, errors.As(err, &mismatch), "got %v", err)
	assert.Equal(t, "hours.planning", mismatch.Field)
	assert.Equal(t, "number", mismatch.Base)
	assert.Equal(t, "string", mismatch.Override)

	tmpl, err := Decode(Record{"hours": map[string]any{"planning": 6, "fitment": 2.5, "wiring": nil}})
	require.NoError(t, err)
	assert.Equal(t, 8.5, tmpl.TotalHours())
}

func TestTotalHours_SameResultEveryCall(t *testing.T) {
	tmpl := &PlanTemplate{Hours: map[string]float64{}}
	for i, h := range []float64{0.1, 0.2, 0.3, 0.7, 1.1, 2.3, 0.9, 4.4} {
		tmpl.Hours[string(rune('a'+i))] = h
	}

	first := tmpl.TotalHours()
	for range 50 {
		assert.Equal(t, first, tmpl.TotalHours())
	}
}
