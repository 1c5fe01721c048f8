package cli

import (
	"fmt"

	"github.com/alexanderramin/swapplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the chassis, engines and transmissions you can pick",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "chassis",
			Short: "List chassis platforms",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				views, err := app.Catalog.ListChassis(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatChassisList(views))
				return nil
			},
		},
		&cobra.Command{
			Use:   "engines",
			Short: "List engines by family",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				views, err := app.Catalog.ListEngines(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEngineList(views))
				return nil
			},
		},
		&cobra.Command{
			Use:     "transmissions",
			Aliases: []string{"trans"},
			Short:   "List transmissions",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				views, err := app.Catalog.ListTransmissions(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTransmissionList(views))
				return nil
			},
		},
	)

	return cmd
}
