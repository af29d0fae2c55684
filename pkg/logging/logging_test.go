package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stateDir := t.TempDir()
			t.Setenv("NVY_STATE_DIR", stateDir)

			var console bytes.Buffer
			SetupLoggerWithWriter(tt.verbosity, &console)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			_, err := os.Stat(filepath.Join(stateDir, "nvy.log"))
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestSetupLoggerWritesToConsole(t *testing.T) {
	t.Setenv("NVY_STATE_DIR", t.TempDir())

	var console bytes.Buffer
	SetupLoggerWithWriter(1, &console)

	log.Info().Msg("switching profiles")
	assert.Contains(t, console.String(), "switching profiles")
}

func TestSetupLoggerUnwritableStateDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	// A file where a directory is expected makes MkdirAll fail.
	t.Setenv("NVY_STATE_DIR", filepath.Join(blocker, "nested"))

	var console bytes.Buffer
	assert.NotPanics(t, func() {
		SetupLoggerWithWriter(0, &console)
	})
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("profiles.merge")
	logger.Info().Msg("merged")

	assert.Contains(t, buf.String(), `"component":"profiles.merge"`)
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogCommand("use", []string{"base", "override"})

	output := buf.String()
	assert.Contains(t, output, "use")
	assert.Contains(t, output, "override")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "merge")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
}
