package cli

import (
	"github.com/alexanderramin/swapplan/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans     service.PlanService
	Catalog   service.CatalogService
	Templates service.TemplateService

	// DefaultUse is applied when --use is not given.
	DefaultUse string
	// DefaultTransmission is preselected by the wizard.
	DefaultTransmission string

	// IsInteractive reports whether prompts may be shown. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "swapplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "swapplan",
		Short:         "Engine swap build planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newPresetsCmd(app),
		newCatalogCmd(app),
		newTemplateCmd(app),
	)
	root.SetGlobalNormalizationFunc(normalizeFlagName)

	return root
}

// flagAliases maps long spellings onto the registered flag names.
var flagAliases = map[string]string{
	"transmission": "trans",
	"out-file":     "out",
}

func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if alias, ok := flagAliases[name]; ok {
		name = alias
	}
	return pflag.NormalizedName(name)
}
