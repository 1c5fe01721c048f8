package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/swapplan/internal/cli/formatter"
	"github.com/alexanderramin/swapplan/internal/contract"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// clipboardWriteAll is swapped out in tests.
var clipboardWriteAll = clipboard.WriteAll

type planOptions struct {
	chassis      string
	engine       string
	transmission string
	use          string
	preset       string
	format       string
	out          string
	copy         bool
}

func newPlanCmd(app *App) *cobra.Command {
	var opts planOptions

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a swap plan for a chassis, engine and transmission",
		Long: `Generate a swap plan.

Pick the combination with --chassis, --engine and --trans, or start from a
preset with --preset (its index or title). Explicit flags override the
preset. On a terminal, missing picks are asked for interactively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			format, err := formatter.ParseFormat(opts.format)
			if err != nil {
				return err
			}

			req, err := buildPlanRequest(ctx, app, opts)
			if err != nil {
				return err
			}

			if needsSelection(req) && app.interactive() {
				form, err := newPlanWizard(ctx, app, &req)
				if err != nil {
					return err
				}
				if err := runForm(form); err != nil {
					return fmt.Errorf("selection wizard: %w", err)
				}
			}

			resp, err := app.Plans.Generate(ctx, req)
			if err != nil {
				return err
			}

			return writePlan(cmd.OutOrStdout(), app, resp, format, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.chassis, "chassis", "", "chassis name or alias")
	f.StringVar(&opts.engine, "engine", "", "engine name")
	f.StringVar(&opts.transmission, "trans", "", "transmission name")
	f.StringVar(&opts.use, "use", "", "use case: street, offroad or track")
	f.StringVar(&opts.preset, "preset", "", "preset index or title")
	f.StringVar(&opts.format, "format", string(formatter.FormatStyled), "output format: styled, text, markdown or html")
	f.StringVar(&opts.out, "out", "", "write the plan to this file instead of stdout")
	f.BoolVar(&opts.copy, "copy", false, "copy the plain-text build sheet to the clipboard")

	return cmd
}

// buildPlanRequest merges preset and flag selections. Flags win.
func buildPlanRequest(ctx context.Context, app *App, opts planOptions) (contract.PlanRequest, error) {
	var req contract.PlanRequest
	if opts.preset != "" {
		p, err := app.Catalog.GetPreset(ctx, opts.preset)
		if err != nil {
			return req, err
		}
		req = p.Request()
	}

	if opts.chassis != "" {
		req.Chassis = opts.chassis
	}
	if opts.engine != "" {
		req.Engine = opts.engine
	}
	if opts.transmission != "" {
		req.Transmission = opts.transmission
	}
	if opts.use != "" {
		req.Use = opts.use
	}
	if req.Use == "" {
		req.Use = app.DefaultUse
	}
	return req, nil
}

func needsSelection(req contract.PlanRequest) bool {
	return req.Chassis == "" || req.Engine == "" || req.Transmission == ""
}

func writePlan(w io.Writer, app *App, resp *contract.PlanResponse, format formatter.Format, opts planOptions) error {
	body, err := formatter.RenderPlan(resp, format)
	if err != nil {
		return err
	}

	if opts.out != "" {
		if err := os.WriteFile(opts.out, []byte(body), 0o644); err != nil {
			return fmt.Errorf("writing plan: %w", err)
		}
		fmt.Fprintf(w, "Wrote %s plan to %s\n", format, opts.out)
	} else {
		if format == formatter.FormatMarkdown && app.interactive() {
			body, err = formatter.RenderMarkdown(body)
			if err != nil {
				return err
			}
		}
		fmt.Fprintln(w, body)
	}

	if opts.copy {
		if err := clipboardWriteAll(formatter.FormatPlanText(resp)); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintln(w, formatter.Dim("Copied build sheet to clipboard."))
	}
	return nil
}
