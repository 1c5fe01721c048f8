package catalog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/swapplan/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	doc, err := catalog.LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, "general", doc.Baseline)
	require.Len(t, doc.Templates, 1)
	assert.Len(t, doc.Chassis, 20)
	assert.Len(t, doc.Engines, 14)
	assert.Len(t, doc.Transmissions, 4)
	assert.Len(t, doc.Presets, 4)
	require.NoError(t, doc.Validate())

	n210 := doc.Chassis[0]
	assert.Equal(t, "2003–2009 4Runner (N210)", n210.Name)
	assert.Equal(t, []string{"2004–2009 Toyota 4Runner (N210)"}, n210.Aliases)
	require.NotNil(t, n210.Override)
	assert.Equal(t, map[string]any{"fitment": 18, "plumbing": 12}, n210.Override["hours"])
}

func TestDefaultPresetsReferenceCatalogEntries(t *testing.T) {
	doc, err := catalog.LoadDefault()
	require.NoError(t, err)

	names := func(list []string) map[string]bool {
		m := map[string]bool{}
		for _, n := range list {
			m[n] = true
		}
		return m
	}
	var chassis, engines, trans []string
	for _, c := range doc.Chassis {
		chassis = append(chassis, c.Name)
		chassis = append(chassis, c.Aliases...)
	}
	for _, e := range doc.Engines {
		engines = append(engines, e.Name)
	}
	for _, tr := range doc.Transmissions {
		trans = append(trans, tr.Name)
	}

	for _, p := range doc.Presets {
		assert.True(t, names(chassis)[p.Chassis], "preset %q chassis %q", p.Title, p.Chassis)
		assert.True(t, names(engines)[p.Engine], "preset %q engine %q", p.Title, p.Engine)
		assert.True(t, names(trans)[p.Transmission], "preset %q transmission %q", p.Title, p.Transmission)
	}
}

func TestParse_Empty(t *testing.T) {
	doc, err := catalog.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Chassis)
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	_, err := catalog.Parse(strings.NewReader("chassis:\n  - name: X\n    colour: red\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing catalog")
}

func TestParse_MultipleDocumentsRejected(t *testing.T) {
	_, err := catalog.Parse(strings.NewReader("baseline: a\n---\nbaseline: b\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple YAML documents")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`engines:
  - name: "Mazda 13B"
    family: "Rotary"
    ecu: "Standalone"
    accessories: "Compact"
`), 0o644))

	doc, err := catalog.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, doc.Engines, 1)
	assert.Equal(t, "Rotary", doc.Engines[0].Family)

	_, err = catalog.LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestMerge_ReplacesByNameAndAppends(t *testing.T) {
	base, err := catalog.LoadDefault()
	require.NoError(t, err)

	extra, err := catalog.Parse(strings.NewReader(`transmissions:
  - name: "4l60e"
    notes: ["Built unit with billet input."]
  - name: "TR6060"
    notes: ["Six-speed manual."]
presets:
  - title: "XJ • K24 • Keep Current"
    chassis: "1984–2001 Jeep Cherokee (XJ)"
    engine: "Honda K24"
    transmission: "Keep Current"
    use: offroad
`))
	require.NoError(t, err)

	merged := catalog.Merge(base, extra)
	require.Len(t, merged.Transmissions, 5)
	assert.Equal(t, "4l60e", merged.Transmissions[1].Name, "replaced in place")
	assert.Equal(t, []string{"Built unit with billet input."}, merged.Transmissions[1].Notes)
	assert.Equal(t, "TR6060", merged.Transmissions[4].Name)
	assert.Len(t, merged.Presets, 5)
	assert.Equal(t, "general", merged.Baseline)

	// Inputs are untouched.
	assert.Equal(t, "4L60E", base.Transmissions[1].Name)
	assert.Len(t, base.Transmissions, 4)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"missing baseline key", "templates: []\n", "baseline template key is required"},
		{"baseline not found", "baseline: general\n", `baseline template "general" not found`},
		{"invalid baseline", "baseline: general\ntemplates:\n  - key: general\n    body: {id: general}\n", "at least one phase is required"},
		{"override shape mismatch", `baseline: general
templates:
  - key: general
    body:
      id: general
      name: General
      phases: [{name: Plan, bullets: [a]}]
      hours: {planning: 1}
chassis:
  - name: X
    override:
      hours: [1, 2]
`, `chassis "X" override`},
		{"unknown preset use", `baseline: general
templates:
  - key: general
    body:
      id: general
      name: General
      phases: [{name: Plan}]
      hours: {planning: 1}
presets:
  - title: Drag
    use: drag
`, `unknown use case "drag"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := catalog.Parse(strings.NewReader(tt.doc))
			require.NoError(t, err)
			err = doc.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
