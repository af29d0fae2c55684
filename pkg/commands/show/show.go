// Package show summarizes the project configuration without changing it.
package show

import (
	"os"

	"github.com/arthur-debert/nvy/pkg/commands/internal"
	"github.com/arthur-debert/nvy/pkg/logging"
	"github.com/arthur-debert/nvy/pkg/profiles"
	"github.com/arthur-debert/nvy/pkg/types"
)

// ShowConfigOptions defines the options for the ShowConfig command.
type ShowConfigOptions struct {
	Dir string
	// Sentinel is the variable recording the active profiles.
	Sentinel string
	// LookupEnv reads the caller's environment. Defaults to os.LookupEnv.
	LookupEnv  func(string) (string, bool)
	FileSystem types.FS
}

// ShowConfig returns the target, the active profiles and the profile list.
func ShowConfig(opts ShowConfigOptions) (*types.ConfigSummary, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ShowConfig").Msg("Executing command")

	cfg, err := internal.LoadProject(opts.FileSystem, opts.Dir)
	if err != nil {
		return nil, err
	}

	sentinel := opts.Sentinel
	if sentinel == "" {
		sentinel = profiles.DefaultSentinel
	}
	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	active, _ := lookup(sentinel)

	return &types.ConfigSummary{
		Target:          cfg.Target,
		CurrentProfiles: profiles.DecodeActiveSet(active),
		Profiles:        cfg.ProfileInfos(),
	}, nil
}
