package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/swapplan/internal/contract"
	"github.com/alexanderramin/swapplan/internal/domain"
	"github.com/alexanderramin/swapplan/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() *contract.PlanResponse {
	return &contract.PlanResponse{
		Selection: contract.Selection{
			Chassis:      "2004–2009 Toyota 4Runner (N210)",
			Engine:       "5.3 LS (LM7/LM4/L59)",
			Transmission: "4L60E",
			Use:          domain.UseStreet,
		},
		Chassis: &domain.Chassis{
			Name: "2003–2009 4Runner (N210)",
			Defaults: domain.CoreSystems{
				Mounts:    "Swap-specific mounts",
				OilPan:    "Front-sump truck pan",
				Wiring:    "Standalone harness",
				Cooling:   "Electric fans",
				Fuel:      "Returnless 58 psi",
				Exhaust:   "Shorty headers",
				Driveline: "Adapter + custom shaft",
			},
			Notes: []string{"IFS clearance is tight."},
		},
		Engine: &domain.Engine{
			Name:        "5.3 LS (LM7/LM4/L59)",
			Family:      "LS / Gen III-IV",
			ECU:         "Standalone harness",
			Accessories: "Truck brackets",
			Notes:       []string{"Cheapest path."},
		},
		Transmission: &domain.Transmission{
			Name:  "4L60E",
			Notes: []string{"Needs a TCM or integrated ECU."},
		},
		Config: &template.PlanTemplate{
			ID:        "general",
			Name:      "General Swap",
			Decisions: []string{"Throttle: Drive-by-wire (DBW) or cable?"},
			Phases: []template.Phase{
				{Name: "Phase 1 — Planning", Bullets: []string{"Confirm engine generation."}},
			},
			SubsystemChecks: map[string][]string{
				"Electronics/CAN":  {"Cluster talks to ECU"},
				"Cooling":          {"Radiator mounted solid"},
				"Mounts & Fitment": {"A", "B"},
			},
			Hours:    map[string]float64{"planning": 6, "fitment": 18, "paintPrep": 1.5},
			Warnings: []string{"Rack/crossmember clearance: plan pan + headers together."},
		},
		HoursTotal: 25.5,
		Overridden: true,
	}
}

func sectionTitles(doc PlanDocument) []string {
	titles := make([]string, len(doc.Sections))
	for i, s := range doc.Sections {
		titles[i] = s.Title
	}
	return titles
}

func TestBuildPlanDocument_Order(t *testing.T) {
	doc := BuildPlanDocument(samplePlan())

	assert.Equal(t, []string{
		"Warnings / Hotspots",
		"Required Decisions",
		"Time Estimate",
		"Core Systems",
		"Chassis Notes",
		"Engine & Transmission",
		"Phase 1 — Planning",
		"Mounts & Fitment Checklist",
		"Cooling Checklist",
		"Electronics/CAN Checklist",
	}, sectionTitles(doc))

	assert.Equal(t, []PlanPill{
		{"Chassis", "2003–2009 4Runner (N210)"},
		{"Engine", "5.3 LS (LM7/LM4/L59)"},
		{"Trans", "4L60E"},
		{"Use", "street"},
		{"Est. Hours", "25.5"},
	}, doc.Pills)
}

func TestBuildPlanDocument_NoWarningsSection(t *testing.T) {
	resp := samplePlan()
	resp.Config.Warnings = nil
	resp.Chassis.Notes = nil

	titles := sectionTitles(BuildPlanDocument(resp))
	assert.NotContains(t, titles, "Warnings / Hotspots")
	assert.NotContains(t, titles, "Chassis Notes")
	assert.Equal(t, "Required Decisions", titles[0])
}

func TestBuildPlanDocument_HourOrder(t *testing.T) {
	resp := samplePlan()
	resp.Config.Hours = map[string]float64{
		"shakedown": 6, "zeta": 1, "planning": 6, "alpha": 2, "firstStart": 4,
	}

	doc := BuildPlanDocument(resp)
	keys := make([]string, len(doc.Hours))
	for i, h := range doc.Hours {
		keys[i] = h.Key
	}
	assert.Equal(t, []string{"planning", "firstStart", "shakedown", "alpha", "zeta"}, keys)
}

func TestBuildPlanDocument_ChecklistOrder(t *testing.T) {
	resp := samplePlan()
	resp.Config.SubsystemChecks = map[string][]string{
		"Exhaust":                {"e"},
		"Transmission/Driveline": {"t"},
		"Wiring/ECU":             {"w"},
		"Fuel":                   {"f"},
		"Cooling":                {"c"},
		"Mounts & Fitment":       {"m"},
		"Brakes":                 {"b"},
	}

	var checklists []string
	for _, s := range BuildPlanDocument(resp).Sections {
		if s.Kind == SectionChecklist {
			checklists = append(checklists, s.Title)
		}
	}
	assert.Equal(t, []string{
		"Mounts & Fitment Checklist",
		"Cooling Checklist",
		"Fuel Checklist",
		"Wiring/ECU Checklist",
		"Transmission Checklist",
		"Exhaust Checklist",
		"Brakes Checklist",
	}, checklists)
}

func TestFormatPlan_Styled(t *testing.T) {
	out := stripANSI(FormatPlan(samplePlan()))

	assert.Contains(t, out, "SWAP PLAN")
	assert.Contains(t, out, "Chassis 2003–2009 4Runner (N210)")
	assert.Contains(t, out, "● STREET")
	assert.Contains(t, out, "[ PHASE ]")
	assert.Contains(t, out, "└─ ☐ B")
	assert.Contains(t, out, "chassis adjustments applied")

	warn := strings.Index(out, "Warnings / Hotspots")
	decisions := strings.Index(out, "Required Decisions")
	hours := strings.Index(out, "Time Estimate")
	mounts := strings.Index(out, "Mounts & Fitment Checklist")
	require.True(t, warn >= 0 && decisions > warn && hours > decisions && mounts > hours, out)
}

func TestFormatPlanText_CollapsesBlankLines(t *testing.T) {
	resp := samplePlan()
	resp.Config.Decisions = nil

	out := FormatPlanText(resp)
	assert.NotContains(t, out, "\n\n\n")
	assert.Equal(t, strings.TrimSpace(out), out)
	assert.Contains(t, out, "Required Decisions\n\nTime Estimate")
}

func TestCollapseBlankLines(t *testing.T) {
	assert.Equal(t, "a\n\nb", CollapseBlankLines("\n\na\n\n\n\n\nb\n\n\n"))
	assert.Equal(t, "a\n\nb", CollapseBlankLines("a\n\nb"))
}
