package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Marker string // rendered before the title, e.g. "☐"
	Bold   bool
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders items as an indented tree with box-drawing connectors.
// Detail badges line up in one column after the widest entry.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	lines := make([]string, len(items))
	width := 0
	for i, item := range items {
		lines[i] = item.render()
		width = max(width, lipgloss.Width(lines[i]))
	}

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(line)
		if d := items[i].Detail; d != "" {
			b.WriteString(strings.Repeat(" ", width-lipgloss.Width(line)+2))
			b.WriteString(StyleBlue.Render(fmt.Sprintf("[ %s ]", d)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (item TreeItem) render() string {
	var prefix string
	if item.Level > 0 {
		prefix = strings.Repeat(treePipe, item.Level-1) + treeCorner
		if !item.IsLast {
			prefix = strings.Repeat(treePipe, item.Level-1) + treeBranch
		}
	}

	title := item.Title
	if item.Bold {
		title = StyleYellowBold.Render(title)
	}
	if item.Marker != "" {
		title = StyleDim.Render(item.Marker+" ") + title
	}
	return StyleDim.Render(prefix) + title
}
