// Package profile edits the profiles of an existing nvy.yaml.
package profile

import (
	"github.com/arthur-debert/nvy/pkg/commands/internal"
	"github.com/arthur-debert/nvy/pkg/errors"
	"github.com/arthur-debert/nvy/pkg/logging"
	"github.com/arthur-debert/nvy/pkg/paths"
	"github.com/arthur-debert/nvy/pkg/types"
)

// SetProfileOptions defines the options for the SetProfile command.
type SetProfileOptions struct {
	Dir string
	// Name is the profile to create or replace.
	Name string
	// File is the env file, relative to Dir or absolute.
	File       string
	FileSystem types.FS
}

// SetProfile points a profile at a single env file, creating the profile
// if needed. Other profiles and the target are left as they are.
func SetProfile(opts SetProfileOptions) error {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "SetProfile").Str("profile", opts.Name).Str("file", opts.File).Msg("Executing command")

	if opts.Name == "" {
		return errors.New(errors.ErrInvalidInput, "profile name cannot be empty")
	}

	fs := internal.FS(opts.FileSystem)
	cfg, err := internal.LoadProject(fs, opts.Dir)
	if err != nil {
		return err
	}

	if info, err := fs.Stat(paths.Resolve(opts.Dir, opts.File)); err != nil || info.IsDir() {
		return errors.Newf(errors.ErrFileNotFound,
			"File %s does not exist in the current directory.", opts.File).
			WithDetail("path", opts.File)
	}

	cfg.SetProfile(opts.Name, opts.File)
	if err := cfg.Save(fs); err != nil {
		return err
	}

	log.Info().Str("command", "SetProfile").Str("profile", opts.Name).Msg("Command finished")
	return nil
}

// RemoveProfileOptions defines the options for the RemoveProfile command.
type RemoveProfileOptions struct {
	Dir        string
	Name       string
	FileSystem types.FS
}

// RemoveProfile deletes a profile and reports whether it existed. Removing
// an unknown profile is not an error and leaves nvy.yaml untouched.
func RemoveProfile(opts RemoveProfileOptions) (bool, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "RemoveProfile").Str("profile", opts.Name).Msg("Executing command")

	fs := internal.FS(opts.FileSystem)
	cfg, err := internal.LoadProject(fs, opts.Dir)
	if err != nil {
		return false, err
	}

	if !cfg.RemoveProfile(opts.Name) {
		return false, nil
	}
	if err := cfg.Save(fs); err != nil {
		return false, err
	}

	log.Info().Str("command", "RemoveProfile").Str("profile", opts.Name).Msg("Command finished")
	return true, nil
}
