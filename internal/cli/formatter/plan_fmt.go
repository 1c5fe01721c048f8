package formatter

import (
	"regexp"
	"strings"

	"github.com/alexanderramin/swapplan/internal/contract"
)

// FormatPlan renders a styled swap plan for the terminal.
func FormatPlan(resp *contract.PlanResponse) string {
	doc := BuildPlanDocument(resp)

	var b strings.Builder
	b.WriteString(Header(doc.Title))
	b.WriteString("\n")

	pills := make([]string, 0, len(doc.Pills))
	for _, p := range doc.Pills {
		if p.Key == "Use" {
			pills = append(pills, StyleDim.Render(p.Key)+" "+UseBadge(resp.Selection.Use))
			continue
		}
		pills = append(pills, Pill(p.Key, p.Value))
	}
	b.WriteString(strings.Join(pills, Dim("  │  ")))
	b.WriteString("\n")
	if resp.Overridden {
		b.WriteString(Dim("chassis adjustments applied") + "\n")
	}

	for _, s := range doc.Sections {
		b.WriteString("\n")
		b.WriteString(StyleBold.Render(s.Title) + "  " + TagBadge(s.Tag, s.Label) + "\n")
		switch s.Kind {
		case SectionHours:
			b.WriteString(formatHourTable(doc))
		case SectionPhase:
			b.WriteString(RenderTree(treeItems(s.Items, "")))
		case SectionChecklist:
			b.WriteString(RenderTree(treeItems(s.Items, "☐")))
		default:
			for _, item := range s.Items {
				b.WriteString("  " + TagColor(s.Tag).Render("•") + " " + item + "\n")
			}
		}
	}

	return b.String()
}

func treeItems(items []string, marker string) []TreeItem {
	out := make([]TreeItem, len(items))
	for i, item := range items {
		out[i] = TreeItem{
			Title:  item,
			Level:  1,
			IsLast: i == len(items)-1,
			Marker: marker,
		}
	}
	return out
}

func formatHourTable(doc PlanDocument) string {
	rows := make([][]string, 0, len(doc.Hours)+1)
	for _, h := range doc.Hours {
		rows = append(rows, []string{h.Label, FormatHours(h.Hours), RenderShare(h.Hours, doc.Total, 20)})
	}
	return Table{
		Columns: []Column{{Header: "CATEGORY"}, {Header: "HOURS", Align: AlignRight}, {Header: "SHARE"}},
		Rows:    rows,
		Footer:  [][]string{{Bold("TOTAL"), Bold(FormatHours(doc.Total)), ""}},
	}.Render()
}

var blankRuns = regexp.MustCompile(`\n{3,}`)

// FormatPlanText renders the plan as plain text for copying. Runs of
// three or more newlines collapse to a single blank line and the result
// is trimmed.
func FormatPlanText(resp *contract.PlanResponse) string {
	doc := BuildPlanDocument(resp)

	var b strings.Builder
	b.WriteString(doc.Title + "\n\n")
	for _, p := range doc.Pills {
		b.WriteString(p.Key + ": " + p.Value + "\n")
	}

	for _, s := range doc.Sections {
		b.WriteString("\n\n\n")
		b.WriteString(s.Title + "\n")
		for _, item := range s.Items {
			switch s.Kind {
			case SectionChecklist:
				b.WriteString("☐ " + item + "\n")
			default:
				b.WriteString("- " + item + "\n")
			}
		}
	}

	return CollapseBlankLines(b.String())
}

// CollapseBlankLines squeezes runs of blank lines and trims the result.
func CollapseBlankLines(s string) string {
	return strings.TrimSpace(blankRuns.ReplaceAllString(s, "\n\n"))
}
