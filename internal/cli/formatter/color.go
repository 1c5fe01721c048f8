package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/swapplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Tag is the accent a plan section is drawn with.
type Tag string

const (
	TagPink   Tag = "pink"
	TagPurple Tag = "purple"
	TagAmber  Tag = "amber"
	TagGreen  Tag = "green"
	TagBlue   Tag = "blue"
)

// TagColor returns the lipgloss style for a section tag.
func TagColor(tag Tag) lipgloss.Style {
	switch tag {
	case TagPink:
		return StyleRed
	case TagPurple:
		return StylePurple
	case TagAmber:
		return StyleYellow
	case TagGreen:
		return StyleGreen
	case TagBlue:
		return StyleBlue
	default:
		return StyleDim
	}
}

// TagBadge renders a bracketed section label such as "[ PHASE ]".
func TagBadge(tag Tag, label string) string {
	return TagColor(tag).Render(fmt.Sprintf("[ %s ]", strings.ToUpper(label)))
}

// UseBadge returns a colored use-case indicator such as "● TRACK".
func UseBadge(use domain.UseCase) string {
	label := "● " + strings.ToUpper(string(use))
	switch use {
	case domain.UseStreet:
		return StyleGreen.Render(label)
	case domain.UseOffroad:
		return StyleYellow.Render(label)
	case domain.UseTrack:
		return StyleRed.Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
