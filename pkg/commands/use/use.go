package use

import (
	"os"

	"github.com/arthur-debert/nvy/pkg/commands/internal"
	"github.com/arthur-debert/nvy/pkg/config"
	"github.com/arthur-debert/nvy/pkg/errors"
	"github.com/arthur-debert/nvy/pkg/logging"
	"github.com/arthur-debert/nvy/pkg/profiles"
	"github.com/arthur-debert/nvy/pkg/render"
	"github.com/arthur-debert/nvy/pkg/types"
)

// UseOptions defines the options for the RunUse command.
type UseOptions struct {
	// Dir is the project directory holding nvy.yaml.
	Dir string
	// Profiles to activate, in precedence order. Empty means "default".
	Profiles []string
	// Sentinel is the variable recording the active profiles.
	// Defaults to NV_CURRENT_PROFILE.
	Sentinel string
	// LookupEnv reads the caller's environment. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	// FileSystem defaults to the OS filesystem.
	FileSystem types.FS
}

// RunUse switches to the requested profiles. In shell mode the result's
// Output holds the script for the caller to print; in file mode the
// destination has already been written when RunUse returns.
func RunUse(opts UseOptions) (*types.UseResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "RunUse").Strs("profiles", opts.Profiles).Msg("Executing command")

	fs := internal.FS(opts.FileSystem)
	cfg, err := internal.LoadProject(fs, opts.Dir)
	if err != nil {
		return nil, err
	}

	requested := opts.Profiles
	if len(requested) == 0 {
		requested = []string{config.DefaultProfile}
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

	result, err := profiles.Merge(fs, cfg, active, requested)
	if err != nil {
		return nil, err
	}

	target := cfg.OutputTarget()
	output, err := render.Render(result, target.Mode, render.Options{Sentinel: sentinel})
	if err != nil {
		return nil, err
	}

	if target.Mode == types.ModeFile {
		if err := fs.WriteFile(target.Destination, []byte(output), 0644); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target.Destination).
				WithDetail("path", target.Destination)
		}
	}

	useResult := &types.UseResult{
		Profiles: result.ProfileOrder,
		Target:   target,
		Output:   output,
		Exported: len(result.Export),
	}
	if target.Mode == types.ModeShell {
		useResult.Unset = len(result.Unset)
	}

	log.Info().
		Str("command", "RunUse").
		Str("mode", target.Mode.String()).
		Int("exported", useResult.Exported).
		Int("unset", useResult.Unset).
		Msg("Command finished")
	return useResult, nil
}
