package profiles

import (
	"github.com/arthur-debert/nvy/pkg/envfile"
	"github.com/arthur-debert/nvy/pkg/errors"
	"github.com/arthur-debert/nvy/pkg/logging"
	"github.com/arthur-debert/nvy/pkg/types"
)

type resolvedProfile struct {
	name string
	path string
}

// Merge computes the switch from the profiles in sentinelValue to the
// requested ones. Every requested profile is resolved and its file checked
// before anything is parsed; any failure aborts the whole merge.
func Merge(fs types.FS, resolver types.ProfileResolver, sentinelValue string, requested []string) (*types.MergeResult, error) {
	logger := logging.GetLogger("profiles.merge")

	resolved, err := resolveAll(fs, resolver, requested)
	if err != nil {
		return nil, err
	}

	candidates := CurrentVars(fs, resolver, sentinelValue)

	export := make(map[string]types.EnvVar)
	for _, p := range resolved {
		lines, err := envfile.ParseFile(fs, p.path)
		if err != nil {
			return nil, err
		}

		valid, dropped := envfile.ValidLines(lines)
		logDropped(p.name, p.path, dropped)

		for _, line := range valid {
			if prev, ok := export[line.Key]; ok && prev.SourceProfile != p.name {
				logger.Debug().
					Str("key", line.Key).
					Str("from", prev.SourceProfile).
					Str("to", p.name).
					Msg("Key overridden by later profile")
			}
			export[line.Key] = types.NewExport(line.Key, line.Value, p.name, line.LineIndex)
		}
	}

	unset := make(map[string]types.EnvVar)
	for key := range candidates {
		if _, ok := export[key]; !ok {
			unset[key] = types.NewUnset(key)
		}
	}

	order := make([]string, len(requested))
	copy(order, requested)

	logger.Debug().
		Strs("profiles", order).
		Int("export", len(export)).
		Int("unset", len(unset)).
		Msg("Merged profiles")

	return &types.MergeResult{
		Unset:        unset,
		Export:       export,
		ProfileOrder: order,
	}, nil
}

func resolveAll(fs types.FS, resolver types.ProfileResolver, requested []string) ([]resolvedProfile, error) {
	resolved := make([]resolvedProfile, 0, len(requested))
	for _, name := range requested {
		path, err := resolver.ProfilePath(name)
		if err != nil {
			return nil, err
		}

		info, err := fs.Stat(path)
		if err != nil || info.IsDir() {
			return nil, errors.Newf(errors.ErrProfileFileMissing,
				"Provided path %s under profile %s does not exist.", path, name).
				WithDetail("profile", name).
				WithDetail("path", path)
		}

		resolved = append(resolved, resolvedProfile{name: name, path: path})
	}
	return resolved, nil
}
