// Package testutil provides utilities for testing nvy components.
//
// Key components:
//   - TestEnvironment: a project directory with env files and an nvy.yaml,
//     backed either by an in-memory filesystem or a real temp directory
//   - FileTree: declarative file setup
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated when the code under test reaches
//     the real filesystem (for example the settings file)
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
