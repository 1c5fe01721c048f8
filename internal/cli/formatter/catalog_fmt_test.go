package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/swapplan/internal/contract"
	"github.com/alexanderramin/swapplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatChassisList(t *testing.T) {
	out := stripANSI(FormatChassisList([]contract.ChassisView{
		{Name: "2003–2009 4Runner (N210)", Aliases: []string{"2004–2009 Toyota 4Runner (N210)"}, HasOverride: true, Defaults: domain.CoreSystems{Mounts: "Swap-specific"}},
		{Name: "Jeep XJ", Defaults: domain.CoreSystems{Mounts: "Weld-in"}},
	}))

	assert.Contains(t, out, "CHASSIS")
	assert.Contains(t, out, "2004–2009 Toyota 4Runner (N210)")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "--")
	assert.Equal(t, 1, strings.Count(out, "✔"))
}

func TestFormatEngineList_GroupsByFamily(t *testing.T) {
	out := stripANSI(FormatEngineList([]contract.EngineView{
		{Name: "5.3 LS", Family: "LS / Gen III-IV", ECU: "Standalone"},
		{Name: "6.0 LS", Family: "LS / Gen III-IV"},
		{Name: "Honda K24", Family: "Honda K"},
		{Name: "Mystery", Family: ""},
	}))

	assert.Contains(t, out, "LS / Gen III-IV")
	assert.Contains(t, out, "├─ 5.3 LS")
	assert.Contains(t, out, "└─ 6.0 LS")
	assert.Contains(t, out, "[ Standalone ]")
	assert.Contains(t, out, "└─ Honda K24")
	assert.Contains(t, out, "Other")
	assert.Less(t, strings.Index(out, "LS / Gen III-IV"), strings.Index(out, "Honda K"))
}

func TestFormatTransmissionList(t *testing.T) {
	out := stripANSI(FormatTransmissionList([]contract.TransmissionView{
		{Name: "4L60E", Notes: []string{"Needs a TCM."}},
		{Name: "Keep Current"},
	}))
	assert.Contains(t, out, "TRANSMISSIONS")
	assert.Contains(t, out, "Needs a TCM.")
	assert.Contains(t, out, "Keep Current")
}

func TestFormatPresetList(t *testing.T) {
	out := stripANSI(FormatPresetList([]contract.PresetView{
		{Index: 4, Title: "GMT800 • 6.2 • 4L80E", Chassis: "GMT800", Engine: "6.2 LS", Transmission: "4L80E", Use: domain.UseTrack},
	}))
	assert.Contains(t, out, "PRESETS")
	assert.Contains(t, out, "GMT800 • 6.2 • 4L80E")
	assert.Contains(t, out, "● TRACK")
	assert.Contains(t, out, "4")
}

func TestFormatLists_Empty(t *testing.T) {
	assert.Equal(t, "No chassis in the catalog.", stripANSI(FormatChassisList(nil)))
	assert.Equal(t, "No engines in the catalog.", stripANSI(FormatEngineList(nil)))
	assert.Equal(t, "No transmissions in the catalog.", stripANSI(FormatTransmissionList(nil)))
	assert.Equal(t, "No presets match.", stripANSI(FormatPresetList(nil)))
}

func TestFormatTemplateShow(t *testing.T) {
	out := stripANSI(FormatTemplateShow(&contract.TemplateView{
		Key:        "general",
		Name:       "General Swap",
		Chassis:    "2003–2009 4Runner (N210)",
		Overridden: true,
		Body:       "hours:\n  fitment: 18\n",
		HoursTotal: 62,
	}))

	assert.Contains(t, out, "General Swap")
	assert.Contains(t, out, "ADJUSTED  yes")
	assert.Contains(t, out, "62 hrs")
	assert.Contains(t, out, "CONFIGURATION")
	assert.Contains(t, out, "fitment: 18")
}

func TestFormatTemplateShow_Baseline(t *testing.T) {
	out := stripANSI(FormatTemplateShow(&contract.TemplateView{Key: "general", Name: "General Swap", Body: "id: general\n", HoursTotal: 56}))
	assert.Contains(t, out, "(baseline)")
	assert.Contains(t, out, "ADJUSTED  no")
}
