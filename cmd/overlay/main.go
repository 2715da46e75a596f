package main

import (
	"os"

	"github.com/arthur-debert/overlay/internal/cli"
	"github.com/arthur-debert/overlay/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if renderer, rerr := ui.NewRenderer(os.Stderr, ui.Resolve(ui.FormatAuto, os.Stderr)); rerr == nil {
			_ = renderer.RenderError(err)
		}
		os.Exit(1)
	}
}
