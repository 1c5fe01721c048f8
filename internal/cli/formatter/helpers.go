package formatter

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatHours renders an hour estimate without trailing zeros: 62, 3.5.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

var hourLabels = map[string]string{
	"planning":   "Planning",
	"fitment":    "Fitment",
	"plumbing":   "Plumbing",
	"wiring":     "Wiring",
	"firstStart": "First Start",
	"shakedown":  "Shakedown",
}

// HourLabel turns an hour-category key into a display label. Unknown
// camelCase keys are split into words: "paintPrep" becomes "Paint Prep".
func HourLabel(key string) string {
	if label, ok := hourLabels[key]; ok {
		return label
	}
	var b strings.Builder
	for i, r := range key {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(r)
		case r == '_' || r == '-':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Pill renders a "Key value" chip for the plan summary row.
func Pill(key, value string) string {
	return StyleDim.Render(key) + " " + StyleBold.Render(value)
}

// Check returns a green ✔ when ok is true and an empty string otherwise.
func Check(ok bool) string {
	if ok {
		return StyleGreen.Render("✔")
	}
	return ""
}

// DashIfEmpty returns a dimmed "--" placeholder for empty values.
func DashIfEmpty(s string) string {
	if s == "" {
		return StyleDim.Render("--")
	}
	return s
}
