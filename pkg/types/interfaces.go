package types

import (
	"io/fs"
)

// FS is the filesystem interface required for nvy operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
}

// ProfileResolver maps a profile name to the single file backing it.
// Implementations return one of the PROFILE_* error codes when the name
// is unknown or its configuration is ambiguous.
type ProfileResolver interface {
	ProfilePath(name string) (string, error)
}

// TargetProvider reports where the output of a profile switch goes.
type TargetProvider interface {
	OutputTarget() OutputTarget
}
