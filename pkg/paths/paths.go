// Package paths provides centralized path handling for nvy.
// It implements XDG Base Directory specification compliance for the
// files nvy keeps outside of the project directory (settings and logs),
// and resolves profile file paths relative to the project directory.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvNvyConfigDir overrides the XDG config directory for nvy
	EnvNvyConfigDir = "NVY_CONFIG_DIR"

	// EnvNvyStateDir overrides the XDG state directory for nvy
	EnvNvyStateDir = "NVY_STATE_DIR"
)

// Default directories and files
const (
	// NvyDirName is the directory name for nvy-specific files
	NvyDirName = "nvy"

	// ConfigFileName is the project configuration file kept in the working directory
	ConfigFileName = "nvy.yaml"

	// SettingsFileName is the user settings file kept in the config directory
	SettingsFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "nvy.log"
)

// ConfigDir returns the directory holding user-level nvy settings.
func ConfigDir() string {
	if dir := os.Getenv(EnvNvyConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, NvyDirName)
}

// StateDir returns the directory holding nvy's state, such as the log file.
func StateDir() string {
	if dir := os.Getenv(EnvNvyStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, NvyDirName)
}

// SettingsFilePath returns the path of the user settings file.
func SettingsFilePath() string {
	return filepath.Join(ConfigDir(), SettingsFileName)
}

// LogFilePath returns the path of the log file.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ProjectConfigPath returns the path of nvy.yaml inside the project directory.
func ProjectConfigPath(projectDir string) string {
	return filepath.Join(projectDir, ConfigFileName)
}

// Resolve joins a path from the project configuration with the project
// directory. Absolute paths are returned unchanged.
func Resolve(projectDir, path string) string {
	if filepath.IsAbs(path) || projectDir == "" {
		return path
	}
	return filepath.Join(projectDir, path)
}
