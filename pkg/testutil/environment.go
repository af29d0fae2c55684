// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Orchestrate test environments with proper dependencies

package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/arthur-debert/nvy/pkg/config"
	"github.com/arthur-debert/nvy/pkg/filesystem"
	"github.com/arthur-debert/nvy/pkg/paths"
	"github.com/arthur-debert/nvy/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a project directory and the state nvy keeps
// outside of it, isolated from the developer's machine.
type TestEnvironment struct {
	ProjectDir string
	ConfigDir  string
	StateDir   string

	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment. Settings and log
// locations always point into a temp directory, and the variables nvy
// reads from the environment are cleared.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	tempDir := t.TempDir()
	env := &TestEnvironment{
		ConfigDir: filepath.Join(tempDir, "config"),
		StateDir:  filepath.Join(tempDir, "state"),
		Type:      envType,
		t:         t,
	}

	switch envType {
	case EnvMemoryOnly:
		env.ProjectDir = "/virtual/project"
		env.FS = filesystem.NewMemoryFS()
	case EnvIsolated:
		env.ProjectDir = filepath.Join(tempDir, "project")
		if err := os.MkdirAll(env.ProjectDir, 0755); err != nil {
			t.Fatalf("Failed to create project directory: %v", err)
		}
		env.FS = filesystem.NewOS()
	}

	t.Setenv(paths.EnvNvyConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvNvyStateDir, env.StateDir)
	t.Setenv(config.EnvTarget, "")
	t.Setenv("NV_CURRENT_PROFILE", "")

	return env
}

// Path returns name joined to the project directory.
func (env *TestEnvironment) Path(name string) string {
	return filepath.Join(env.ProjectDir, name)
}

// WriteFile writes a file relative to the project directory.
func (env *TestEnvironment) WriteFile(name, content string) string {
	env.t.Helper()

	path := env.Path(name)
	if env.Type == EnvIsolated {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			env.t.Fatalf("Failed to create directory for %s: %v", name, err)
		}
	}
	if err := env.FS.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write file %s: %v", name, err)
	}
	return path
}

// ReadFile reads a file relative to the project directory.
func (env *TestEnvironment) ReadFile(name string) string {
	env.t.Helper()

	data, err := env.FS.ReadFile(env.Path(name))
	if err != nil {
		env.t.Fatalf("Failed to read file %s: %v", name, err)
	}
	return string(data)
}

// FileExists reports whether name exists in the project directory.
func (env *TestEnvironment) FileExists(name string) bool {
	_, err := env.FS.Stat(env.Path(name))
	return err == nil
}

// WithFileTree creates the files of tree in the project directory.
func (env *TestEnvironment) WithFileTree(tree FileTree) {
	env.t.Helper()
	createFileTree(env, "", tree)
}

// WithConfig writes an nvy.yaml with target and one path per profile.
func (env *TestEnvironment) WithConfig(target string, profiles map[string]string) *config.Config {
	env.t.Helper()

	cfg := config.New(env.ProjectDir, target)
	for name, path := range profiles {
		cfg.SetProfile(name, path)
	}
	if err := cfg.Save(env.FS); err != nil {
		env.t.Fatalf("Failed to save config: %v", err)
	}
	return cfg
}

// WithSettings writes the user settings file.
func (env *TestEnvironment) WithSettings(content string) {
	env.t.Helper()

	if err := os.MkdirAll(env.ConfigDir, 0755); err != nil {
		env.t.Fatalf("Failed to create config directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(env.ConfigDir, paths.SettingsFileName), []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write settings: %v", err)
	}
}

// LoadConfig loads the project configuration.
func (env *TestEnvironment) LoadConfig() *config.Config {
	env.t.Helper()

	cfg, err := config.Load(env.FS, env.ProjectDir)
	if err != nil {
		env.t.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// FileTree maps a path to its content (string) or to a nested FileTree.
type FileTree map[string]interface{}

func createFileTree(env *TestEnvironment, base string, tree FileTree) {
	env.t.Helper()

	names := make([]string, 0, len(tree))
	for name := range tree {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		rel := filepath.Join(base, name)
		switch v := tree[name].(type) {
		case string:
			env.WriteFile(rel, v)
		case FileTree:
			createFileTree(env, rel, v)
		default:
			env.t.Fatalf("Invalid file tree content type for %s: %T", rel, v)
		}
	}
}

// BaseOverrideProject is a project with a base and an override profile
// that share one key.
func BaseOverrideProject() FileTree {
	return FileTree{
		".env.base":     "BASE_ONLY=value\nSHARED=base\n",
		".env.override": "SHARED=override\nOVERRIDE_ONLY=value\n",
	}
}
