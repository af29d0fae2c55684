// pkg/ui/console_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test message layout, color mode parsing and color detection

package ui_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arthur-debert/nvy/pkg/ui"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_Plain(t *testing.T) {
	var buf bytes.Buffer
	console := ui.NewConsole(&buf, ui.ColorAuto)

	console.Success("Initialized %s in the current directory.", "nvy.yaml")
	console.Warning("Profile %s does not exist.", "ghost")
	console.Error("boom")
	console.Field("target", "sh")
	console.ProfileList([]string{"default", "prod"}, [][]string{{".env"}, {".env.prod"}})
	console.Fail(errors.New("nvy.yaml missing"))

	assert.Equal(t, "Success\tInitialized nvy.yaml in the current directory.\n"+
		"Warning\tProfile ghost does not exist.\n"+
		"Error\tboom\n"+
		"target: sh\n"+
		"  default: .env\n"+
		"  prod: .env.prod\n"+
		"Error: nvy.yaml missing\n", buf.String())
}

func TestConsole_AlwaysColors(t *testing.T) {
	var buf bytes.Buffer
	console := ui.NewConsole(&buf, ui.ColorAlways)
	console.Success("done")

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "\tdone\n")
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ui.ColorMode
		wantErr bool
	}{
		{"", ui.ColorAuto, false},
		{"auto", ui.ColorAuto, false},
		{"ALWAYS", ui.ColorAlways, false},
		{"never", ui.ColorNever, false},
		{"sometimes", ui.ColorAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseColorMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) ui.ColorMode {
	t.Helper()
	mode, err := ui.ParseColorMode(s)
	require.NoError(t, err)
	return mode
}

func TestDetectProfile(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, termenv.Ascii, ui.DetectProfile(&buf, ui.ColorNever))
	assert.Equal(t, termenv.ANSI256, ui.DetectProfile(&buf, ui.ColorAlways))
	// Not a terminal
	assert.Equal(t, termenv.Ascii, ui.DetectProfile(&buf, ui.ColorAuto))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, ui.DetectProfile(&buf, ui.ColorAuto))
}
