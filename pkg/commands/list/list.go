package list

import (
	"github.com/arthur-debert/nvy/pkg/commands/internal"
	"github.com/arthur-debert/nvy/pkg/logging"
	"github.com/arthur-debert/nvy/pkg/types"
)

// ListProfilesOptions defines the options for the ListProfiles command.
type ListProfilesOptions struct {
	// Dir is the project directory holding nvy.yaml.
	Dir        string
	FileSystem types.FS
}

// ListProfiles returns the configured profiles, default first.
func ListProfiles(opts ListProfilesOptions) (*types.ListProfilesResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ListProfiles").Msg("Executing command")

	cfg, err := internal.LoadProject(opts.FileSystem, opts.Dir)
	if err != nil {
		return nil, err
	}

	result := &types.ListProfilesResult{Profiles: cfg.ProfileInfos()}

	log.Info().Str("command", "ListProfiles").Int("profileCount", len(result.Profiles)).Msg("Command finished")
	return result, nil
}
