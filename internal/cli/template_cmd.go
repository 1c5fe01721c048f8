package cli

import (
	"fmt"

	"github.com/alexanderramin/swapplan/internal/cli/formatter"
	"github.com/alexanderramin/swapplan/internal/contract"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Inspect the plan template",
	}

	cmd.AddCommand(newTemplateShowCmd(app))

	return cmd
}

func newTemplateShowCmd(app *App) *cobra.Command {
	var chassis string
	var raw bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the baseline template, or the effective one for a chassis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				view *contract.TemplateView
				err  error
			)
			if chassis == "" {
				view, err = app.Templates.Baseline(cmd.Context())
			} else {
				view, err = app.Templates.Effective(cmd.Context(), chassis)
			}
			if err != nil {
				return err
			}

			if raw {
				fmt.Fprint(cmd.OutOrStdout(), view.Body)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTemplateShow(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&chassis, "chassis", "", "chassis name or alias to apply")
	cmd.Flags().BoolVar(&raw, "raw", false, "print only the YAML body")

	return cmd
}
