// Package internal holds helpers shared by the command implementations.
package internal

import (
	"github.com/arthur-debert/nvy/pkg/config"
	"github.com/arthur-debert/nvy/pkg/filesystem"
	"github.com/arthur-debert/nvy/pkg/types"
)

// FS returns fs, or the OS filesystem when fs is nil.
func FS(fs types.FS) types.FS {
	if fs == nil {
		return filesystem.NewOS()
	}
	return fs
}

// LoadProject loads nvy.yaml from dir. A missing file is reported with
// the hint to run `nvy init`.
func LoadProject(fs types.FS, dir string) (*config.Config, error) {
	return config.Load(FS(fs), dir)
}
