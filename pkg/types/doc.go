// Package types defines the core types and interfaces used throughout nvy.
// This includes the filesystem capability the engine reads and writes
// through, the parsed and merged environment variable records, and the
// output target a project is configured for.
package types
