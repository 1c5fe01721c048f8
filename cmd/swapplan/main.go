package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/swapplan/internal/cli"
	"github.com/alexanderramin/swapplan/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// SWAPPLAN_CONFIG names an explicit file; otherwise swapplan.yaml is discovered.
	cfg, err := config.Load(os.Getenv("SWAPPLAN_CONFIG"))
	if err != nil {
		return err
	}

	app, closeFn, err := bootstrap(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeFn()

	// Detect interactive terminal for the selection wizard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
