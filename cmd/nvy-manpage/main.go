package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/nvy/cmd/nvy"
	"github.com/arthur-debert/nvy/internal/version"
)

func main() {
	rootCmd := nvy.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "NVY",
		Section: "1",
		Source:  "nvy " + version.Version,
		Manual:  "nvy manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
