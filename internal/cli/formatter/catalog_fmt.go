package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/swapplan/internal/contract"
)

// FormatChassisList renders the chassis catalog inside a bordered box.
func FormatChassisList(chassis []contract.ChassisView) string {
	if len(chassis) == 0 {
		return Dim("No chassis in the catalog.")
	}

	headers := []string{"CHASSIS", "ALSO KNOWN AS", "ADJUSTED", "MOUNTS"}
	rows := make([][]string, 0, len(chassis))
	for _, c := range chassis {
		rows = append(rows, []string{
			Bold(c.Name),
			dimOrDash(strings.Join(c.Aliases, "; ")),
			Check(c.HasOverride),
			c.Defaults.Mounts,
		})
	}

	return RenderBox("Chassis", RenderTable(headers, rows))
}

// FormatEngineList renders engines grouped by family as a tree.
func FormatEngineList(engines []contract.EngineView) string {
	if len(engines) == 0 {
		return Dim("No engines in the catalog.")
	}

	var families []string
	byFamily := make(map[string][]contract.EngineView)
	for _, e := range engines {
		family := e.Family
		if family == "" {
			family = "Other"
		}
		if _, ok := byFamily[family]; !ok {
			families = append(families, family)
		}
		byFamily[family] = append(byFamily[family], e)
	}

	var items []TreeItem
	for _, family := range families {
		items = append(items, TreeItem{Title: family, Bold: true})
		members := byFamily[family]
		for i, e := range members {
			items = append(items, TreeItem{
				Title:  e.Name,
				Level:  1,
				IsLast: i == len(members)-1,
				Detail: e.ECU,
			})
		}
	}

	return RenderBox("Engines", RenderTree(items))
}

func FormatTransmissionList(transmissions []contract.TransmissionView) string {
	if len(transmissions) == 0 {
		return Dim("No transmissions in the catalog.")
	}

	headers := []string{"TRANSMISSION", "NOTES"}
	rows := make([][]string, 0, len(transmissions))
	for _, t := range transmissions {
		rows = append(rows, []string{Bold(t.Name), dimOrDash(strings.Join(t.Notes, " "))})
	}

	return RenderBox("Transmissions", RenderTable(headers, rows))
}

// FormatPresetList renders the preset library. The # column is the index
// accepted by `plan --preset`.
func FormatPresetList(presets []contract.PresetView) string {
	if len(presets) == 0 {
		return Dim("No presets match.")
	}

	headers := []string{"#", "PRESET", "USE", "CHASSIS", "ENGINE", "TRANS"}
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", p.Index)),
			Bold(p.Title),
			UseBadge(p.Use),
			p.Chassis,
			p.Engine,
			p.Transmission,
		})
	}

	return RenderBox("Presets", RenderTable(headers, rows))
}

func dimOrDash(s string) string {
	if s == "" {
		return DashIfEmpty(s)
	}
	return Dim(s)
}
