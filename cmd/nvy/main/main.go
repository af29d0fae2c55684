package main

import (
	"os"

	"github.com/arthur-debert/nvy/cmd/nvy"
	"github.com/arthur-debert/nvy/pkg/ui"
)

func main() {
	rootCmd := nvy.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		ui.NewConsole(os.Stderr, ui.ColorAuto).Fail(err)
		os.Exit(1)
	}
}
