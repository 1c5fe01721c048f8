package formatter

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/swapplan/internal/contract"
)

// SectionKind selects how a plan section is drawn.
type SectionKind int

const (
	SectionList SectionKind = iota
	SectionHours
	SectionPhase
	SectionChecklist
)

// PlanSection is one titled block of a swap plan.
type PlanSection struct {
	Kind  SectionKind
	Title string
	Label string
	Tag   Tag
	Items []string
}

type PlanPill struct {
	Key   string
	Value string
}

type HourLine struct {
	Key   string
	Label string
	Hours float64
}

// PlanDocument is the ordered, format-independent layout of a swap plan.
// Every output format renders from it.
type PlanDocument struct {
	Title    string
	Pills    []PlanPill
	Hours    []HourLine
	Total    float64
	Sections []PlanSection
}

var hourOrder = []string{"planning", "fitment", "plumbing", "wiring", "firstStart", "shakedown"}

var checklistOrder = []struct {
	Category string
	Title    string
	Tag      Tag
}{
	{"Mounts & Fitment", "Mounts & Fitment Checklist", TagBlue},
	{"Cooling", "Cooling Checklist", TagGreen},
	{"Fuel", "Fuel Checklist", TagAmber},
	{"Wiring/ECU", "Wiring/ECU Checklist", TagPurple},
	{"Transmission/Driveline", "Transmission Checklist", TagPink},
	{"Exhaust", "Exhaust Checklist", TagAmber},
}

// BuildPlanDocument lays out a generated plan in presentation order.
func BuildPlanDocument(resp *contract.PlanResponse) PlanDocument {
	cfg := resp.Config
	chassis, engine, trans := resp.Selection.Chassis, resp.Selection.Engine, resp.Selection.Transmission
	if resp.Chassis != nil {
		chassis = resp.Chassis.Name
	}
	if resp.Engine != nil {
		engine = resp.Engine.Name
	}
	if resp.Transmission != nil {
		trans = resp.Transmission.Name
	}

	doc := PlanDocument{
		Title: "Swap Plan",
		Pills: []PlanPill{
			{"Chassis", chassis},
			{"Engine", engine},
			{"Trans", trans},
			{"Use", string(resp.Selection.Use)},
			{"Est. Hours", FormatHours(resp.HoursTotal)},
		},
		Hours: orderedHours(cfg.Hours),
		Total: resp.HoursTotal,
	}

	if len(cfg.Warnings) > 0 {
		doc.add(SectionList, "Warnings / Hotspots", TagPink, cfg.Warnings)
	}
	doc.add(SectionList, "Required Decisions", TagPurple, cfg.Decisions)

	hourItems := make([]string, 0, len(doc.Hours)+1)
	for _, h := range doc.Hours {
		hourItems = append(hourItems, fmt.Sprintf("%s: %s hrs", h.Label, FormatHours(h.Hours)))
	}
	hourItems = append(hourItems, fmt.Sprintf("TOTAL: %s hrs", FormatHours(doc.Total)))
	doc.add(SectionHours, "Time Estimate", TagAmber, hourItems)

	if resp.Chassis != nil {
		d := resp.Chassis.Defaults
		doc.add(SectionList, "Core Systems", TagGreen, []string{
			"Motor mounts: " + d.Mounts,
			"Oil pan: " + d.OilPan,
			"Wiring/ECU: " + d.Wiring,
			"Cooling: " + d.Cooling,
			"Fuel: " + d.Fuel,
			"Exhaust: " + d.Exhaust,
			"Driveline: " + d.Driveline,
		})
		if len(resp.Chassis.Notes) > 0 {
			doc.add(SectionList, "Chassis Notes", TagBlue, resp.Chassis.Notes)
		}
	}

	if items := drivetrainNotes(resp); len(items) > 0 {
		doc.add(SectionList, "Engine & Transmission", TagPurple, items)
	}

	for _, p := range cfg.Phases {
		doc.Sections = append(doc.Sections, PlanSection{
			Kind:  SectionPhase,
			Title: p.Name,
			Label: "Phase",
			Tag:   TagBlue,
			Items: p.Bullets,
		})
	}

	seen := make(map[string]bool, len(checklistOrder))
	for _, c := range checklistOrder {
		seen[c.Category] = true
		items, ok := cfg.SubsystemChecks[c.Category]
		if !ok {
			continue
		}
		doc.add(SectionChecklist, c.Title, c.Tag, items)
	}
	extra := make([]string, 0)
	for category := range cfg.SubsystemChecks {
		if !seen[category] {
			extra = append(extra, category)
		}
	}
	sort.Strings(extra)
	for _, category := range extra {
		doc.add(SectionChecklist, category+" Checklist", TagBlue, cfg.SubsystemChecks[category])
	}

	return doc
}

func (d *PlanDocument) add(kind SectionKind, title string, tag Tag, items []string) {
	d.Sections = append(d.Sections, PlanSection{
		Kind:  kind,
		Title: title,
		Label: title,
		Tag:   tag,
		Items: items,
	})
}

func drivetrainNotes(resp *contract.PlanResponse) []string {
	var items []string
	if e := resp.Engine; e != nil {
		if e.Family != "" {
			items = append(items, "Engine family: "+e.Family)
		}
		if e.ECU != "" {
			items = append(items, "ECU: "+e.ECU)
		}
		if e.Accessories != "" {
			items = append(items, "Accessories: "+e.Accessories)
		}
		items = append(items, e.Notes...)
	}
	if t := resp.Transmission; t != nil {
		for _, n := range t.Notes {
			items = append(items, t.Name+": "+n)
		}
	}
	return items
}

// orderedHours lists the well-known categories first, then the rest by key.
func orderedHours(hours map[string]float64) []HourLine {
	lines := make([]HourLine, 0, len(hours))
	known := make(map[string]bool, len(hourOrder))
	for _, key := range hourOrder {
		known[key] = true
		if h, ok := hours[key]; ok {
			lines = append(lines, HourLine{Key: key, Label: HourLabel(key), Hours: h})
		}
	}
	rest := make([]string, 0)
	for key := range hours {
		if !known[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		lines = append(lines, HourLine{Key: key, Label: HourLabel(key), Hours: hours[key]})
	}
	return lines
}
