// Package ui writes human-facing messages for nvy commands.
//
// Messages follow a "<Label>\t<message>" layout (Success, Warning, Error),
// with the label colored when the destination supports it. Color is
// decided once per Console from the output.color setting, NO_COLOR and
// whether the writer is a terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode selects whether output is styled
type ColorMode int

const (
	// ColorAuto styles output only on a color-capable terminal
	ColorAuto ColorMode = iota
	// ColorAlways styles output unconditionally
	ColorAlways
	// ColorNever never styles output
	ColorNever
)

// String returns the setting value for the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses an output.color setting value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}

// DetectProfile picks the termenv color profile for writing to w.
func DetectProfile(w io.Writer, mode ColorMode) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		return termenv.ANSI256
	}

	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	file, ok := w.(*os.File)
	if !ok {
		return termenv.Ascii
	}
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return termenv.Ascii
	}

	return termenv.NewOutput(file).EnvColorProfile()
}
