package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/swapplan/internal/cli/formatter"
	"github.com/alexanderramin/swapplan/internal/contract"
	"github.com/alexanderramin/swapplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// swapplanHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func swapplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runForm is swapped out in tests.
var runForm = func(f *huh.Form) error { return f.Run() }

// wizardChoices is the catalog data the selection wizard offers.
type wizardChoices struct {
	Chassis       []huh.Option[string]
	Engines       []huh.Option[string]
	Transmissions []huh.Option[string]
	Uses          []huh.Option[string]
}

func buildWizardChoices(chassis []contract.ChassisView, engines []contract.EngineView, transmissions []contract.TransmissionView) wizardChoices {
	var c wizardChoices

	for _, ch := range chassis {
		label := ch.Name
		if ch.HasOverride {
			label += " ✔"
		}
		c.Chassis = append(c.Chassis, huh.NewOption(label, ch.Name))
	}
	for _, e := range engines {
		label := e.Name
		if e.Family != "" {
			label = fmt.Sprintf("%s · %s", e.Name, e.Family)
		}
		c.Engines = append(c.Engines, huh.NewOption(label, e.Name))
	}
	for _, t := range transmissions {
		c.Transmissions = append(c.Transmissions, huh.NewOption(t.Name, t.Name))
	}
	for _, u := range domain.UseCases {
		c.Uses = append(c.Uses, huh.NewOption(string(u), string(u)))
	}

	return c
}

// newPlanWizard creates a huh form that fills the missing parts of req.
// Fields already set act as the initial selection.
func newPlanWizard(ctx context.Context, app *App, req *contract.PlanRequest) (*huh.Form, error) {
	chassis, err := app.Catalog.ListChassis(ctx)
	if err != nil {
		return nil, err
	}
	engines, err := app.Catalog.ListEngines(ctx)
	if err != nil {
		return nil, err
	}
	transmissions, err := app.Catalog.ListTransmissions(ctx)
	if err != nil {
		return nil, err
	}

	choices := buildWizardChoices(chassis, engines, transmissions)
	if req.Transmission == "" {
		req.Transmission = app.DefaultTransmission
	}
	if req.Use == "" {
		req.Use = string(domain.UseStreet)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Chassis").
				Description("✔ marks chassis with specific adjustments").
				Options(choices.Chassis...).
				Value(&req.Chassis),
			huh.NewSelect[string]().
				Title("Engine").
				Options(choices.Engines...).
				Value(&req.Engine),
			huh.NewSelect[string]().
				Title("Transmission").
				Options(choices.Transmissions...).
				Value(&req.Transmission),
			huh.NewSelect[string]().
				Title("Use").
				Options(choices.Uses...).
				Value(&req.Use),
		),
	).WithTheme(swapplanHuhTheme()).WithShowHelp(false), nil
}
