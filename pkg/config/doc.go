// Package config handles configuration management for nvy.
//
// There are two layers:
//
//   - The project configuration, nvy.yaml in the working directory, maps
//     profile names to the env files backing them and records the output
//     target. It is loaded with koanf (defaults, the file, then the
//     NVY_TARGET override) and saved with yaml.v3 so that the file keeps a
//     stable, human-friendly key order.
//   - User settings, an optional TOML file in the XDG config directory,
//     layered over embedded defaults and NVY_* environment variables.
package config
