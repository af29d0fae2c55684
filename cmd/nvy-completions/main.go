// Command nvy-completions writes completion scripts for every supported
// shell into a directory, for packaging.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/nvy/cmd/nvy"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output-dir>\n", os.Args[0])
		os.Exit(1)
	}
	outDir := os.Args[1]

	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outDir, err)
		os.Exit(1)
	}

	rootCmd := nvy.NewRootCmd()
	generators := map[string]func(string) error{
		"nvy.bash": func(path string) error { return rootCmd.GenBashCompletionFileV2(path, true) },
		"_nvy":     rootCmd.GenZshCompletionFile,
		"nvy.fish": func(path string) error { return rootCmd.GenFishCompletionFile(path, true) },
		"nvy.ps1":  rootCmd.GenPowerShellCompletionFileWithDesc,
	}

	for name, generate := range generators {
		path := filepath.Join(outDir, name)
		if err := generate(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", path, err)
			os.Exit(1)
		}
	}
}
