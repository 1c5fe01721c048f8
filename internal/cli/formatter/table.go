package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes one table column.
type Column struct {
	Header string
	Align  Align
}

// Table is an aligned terminal table. Footer rows are set off from the body
// by a rule, for totals.
type Table struct {
	Columns []Column
	Rows    [][]string
	Footer  [][]string
}

const tableGap = 2

// RenderTable renders a left-aligned table with a header rule.
func RenderTable(headers []string, rows [][]string) string {
	cols := make([]Column, len(headers))
	for i, h := range headers {
		cols[i] = Column{Header: h}
	}
	return Table{Columns: cols, Rows: rows}.Render()
}

// Render lays the table out using the visible width of each cell, so styled
// cells line up with plain ones.
func (t Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}

	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = lipgloss.Width(c.Header)
	}
	for _, group := range [][][]string{t.Rows, t.Footer} {
		for _, row := range group {
			for i := 0; i < len(widths) && i < len(row); i++ {
				widths[i] = max(widths[i], lipgloss.Width(row[i]))
			}
		}
	}

	var b strings.Builder
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = StyleHeader.Render(c.Header)
	}
	t.writeRow(&b, widths, headers)
	t.writeRule(&b, widths)
	for _, row := range t.Rows {
		t.writeRow(&b, widths, row)
	}
	if len(t.Footer) > 0 {
		t.writeRule(&b, widths)
		for _, row := range t.Footer {
			t.writeRow(&b, widths, row)
		}
	}
	return b.String()
}

func (t Table) writeRow(b *strings.Builder, widths []int, row []string) {
	last := len(widths) - 1
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		pad := strings.Repeat(" ", max(w-lipgloss.Width(cell), 0))

		if t.Columns[i].Align == AlignRight {
			b.WriteString(pad + cell)
		} else {
			b.WriteString(cell)
			if i < last {
				b.WriteString(pad)
			}
		}
		if i < last {
			b.WriteString(strings.Repeat(" ", tableGap))
		}
	}
	b.WriteString("\n")
}

func (t Table) writeRule(b *strings.Builder, widths []int) {
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", tableGap))
		}
	}
	b.WriteString("\n")
}
