package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/swapplan/internal/contract"
)

// FormatTemplateShow renders a template detail card with its YAML body.
func FormatTemplateShow(t *contract.TemplateView) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(t.Name) + "  " + Dim(t.Key) + "\n\n")

	chassis := t.Chassis
	if chassis == "" {
		chassis = "(baseline)"
	}
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("CHASSIS "), chassis))
	adjusted := Dim("no")
	if t.Overridden {
		adjusted = StyleGreen.Render("yes")
	}
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("ADJUSTED"), adjusted))
	b.WriteString(fmt.Sprintf("  %s  %s hrs\n", StyleDim.Render("HOURS   "), FormatHours(t.HoursTotal)))

	b.WriteString("\n")
	b.WriteString(Header("Configuration"))
	b.WriteString("\n")
	for _, line := range strings.Split(strings.TrimRight(t.Body, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}

	return RenderBox("", b.String())
}
