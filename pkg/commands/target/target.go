// Package target reads and changes the output target of nvy.yaml.
package target

import (
	"strings"

	"github.com/arthur-debert/nvy/pkg/commands/internal"
	"github.com/arthur-debert/nvy/pkg/errors"
	"github.com/arthur-debert/nvy/pkg/logging"
	"github.com/arthur-debert/nvy/pkg/types"
)

// TargetOptions defines the options for the target commands.
type TargetOptions struct {
	Dir string
	// Value is the new target for SetTarget: "sh" or a file path.
	Value      string
	FileSystem types.FS
}

// GetTarget returns the effective target, including any NVY_TARGET override.
func GetTarget(opts TargetOptions) (string, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "GetTarget").Msg("Executing command")

	cfg, err := internal.LoadProject(opts.FileSystem, opts.Dir)
	if err != nil {
		return "", err
	}
	return cfg.Target, nil
}

// SetTarget stores a new target in nvy.yaml.
func SetTarget(opts TargetOptions) error {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "SetTarget").Str("target", opts.Value).Msg("Executing command")

	if strings.TrimSpace(opts.Value) == "" {
		return errors.New(errors.ErrInvalidInput, "target cannot be empty")
	}

	fs := internal.FS(opts.FileSystem)
	cfg, err := internal.LoadProject(fs, opts.Dir)
	if err != nil {
		return err
	}

	cfg.SetTarget(opts.Value)
	if err := cfg.Save(fs); err != nil {
		return err
	}

	log.Info().Str("command", "SetTarget").Str("target", opts.Value).Msg("Command finished")
	return nil
}
