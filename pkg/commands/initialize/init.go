package initialize

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/nvy/pkg/commands/internal"
	"github.com/arthur-debert/nvy/pkg/config"
	"github.com/arthur-debert/nvy/pkg/errors"
	"github.com/arthur-debert/nvy/pkg/logging"
	"github.com/arthur-debert/nvy/pkg/types"
)

const envFilePrefix = ".env"

// InitOptions defines the options for the RunInit command.
type InitOptions struct {
	// Dir is the project directory to scan and write nvy.yaml into.
	Dir string
	// Settings supplies the ignore list and the default target.
	Settings *config.Settings
	// Confirm is asked before an existing nvy.yaml is replaced. A nil
	// Confirm replaces it without asking.
	Confirm func() (bool, error)
	// FileSystem defaults to the OS filesystem.
	FileSystem types.FS
}

// RunInit writes an nvy.yaml with one profile per env file in Dir.
func RunInit(opts InitOptions) (*types.InitResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "RunInit").Str("dir", opts.Dir).Msg("Executing command")

	fs := internal.FS(opts.FileSystem)
	settings := opts.Settings
	if settings == nil {
		var err error
		if settings, err = config.LoadSettings(); err != nil {
			return nil, err
		}
	}

	target := settings.Init.DefaultTarget
	if config.Exists(fs, opts.Dir) {
		if opts.Confirm != nil {
			ok, err := opts.Confirm()
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrInvalidInput, "failed to read confirmation")
			}
			if !ok {
				log.Info().Str("command", "RunInit").Msg("Reinitialization declined")
				return &types.InitResult{Cancelled: true}, nil
			}
		}

		// An unreadable config is replaced, keeping only what can be read.
		if existing, err := config.Load(fs, opts.Dir); err == nil {
			target = existing.FileTarget()
		} else {
			log.Warn().Err(err).Msg("Existing configuration could not be read, using default target")
		}
	}

	entries, err := fs.ReadDir(opts.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot list %s", opts.Dir)
	}

	cfg := config.New(opts.Dir, target)
	cfg.SetProfile(config.DefaultProfile, envFilePrefix)

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, envFilePrefix) {
			continue
		}
		if settings.IsIgnored(name) || isTarget(name, target) {
			log.Debug().Str("file", name).Msg("Skipping env file")
			continue
		}

		profile, ok := ProfileName(name)
		if !ok || profile == config.DefaultProfile {
			continue
		}
		cfg.SetProfile(profile, name)
	}

	if err := cfg.Save(fs); err != nil {
		return nil, err
	}

	result := &types.InitResult{
		Target:   target,
		Profiles: cfg.ProfileInfos(),
	}
	log.Info().Str("command", "RunInit").Int("profiles", len(result.Profiles)).Msg("Command finished")
	return result, nil
}

// ProfileName maps an env file name to the profile it backs: ".env" is
// the default profile and ".env.<name>" is <name>.
func ProfileName(fileName string) (string, bool) {
	if fileName == envFilePrefix {
		return config.DefaultProfile, true
	}
	suffix, ok := strings.CutPrefix(fileName, envFilePrefix+".")
	if !ok || suffix == "" {
		return "", false
	}
	return suffix, true
}

func isTarget(fileName, target string) bool {
	return filepath.Clean(target) == fileName
}
