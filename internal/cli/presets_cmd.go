package cli

import (
	"fmt"

	"github.com/alexanderramin/swapplan/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// runBrowser is swapped out in tests.
var runBrowser = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

func newPresetsCmd(app *App) *cobra.Command {
	var filter string
	var browse bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List or browse saved swap combinations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !browse {
				presets, err := app.Catalog.SearchPresets(ctx, filter)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPresetList(presets))
				return nil
			}

			final, err := runBrowser(newPresetBrowser(ctx, app.Catalog, filter))
			if err != nil {
				return fmt.Errorf("preset browser: %w", err)
			}
			chosen := final.(*presetBrowser).Chosen()
			if chosen == nil {
				return nil
			}

			resp, err := app.Plans.Generate(ctx, chosen.Request())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "only presets whose title, parts or use contain this text")
	cmd.Flags().BoolVar(&browse, "browse", false, "open the interactive preset browser")

	return cmd
}
