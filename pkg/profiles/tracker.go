package profiles

import (
	"github.com/arthur-debert/nvy/pkg/envfile"
	"github.com/arthur-debert/nvy/pkg/logging"
	"github.com/arthur-debert/nvy/pkg/types"
)

// CurrentVars returns every valid key exported by the profiles listed in
// sentinelValue. Profiles that no longer resolve or whose file cannot be
// read are skipped with a warning: a stale entry must never block a switch.
func CurrentVars(fs types.FS, resolver types.ProfileResolver, sentinelValue string) map[string]struct{} {
	logger := logging.GetLogger("profiles.tracker")
	keys := make(map[string]struct{})

	for _, name := range DecodeActiveSet(sentinelValue) {
		path, err := resolver.ProfilePath(name)
		if err != nil {
			logger.Warn().Err(err).Str("profile", name).Msg("Skipping previously active profile")
			continue
		}

		lines, err := envfile.ParseFile(fs, path)
		if err != nil {
			logger.Warn().Err(err).Str("profile", name).Str("path", path).
				Msg("Skipping previously active profile")
			continue
		}

		valid, dropped := envfile.ValidLines(lines)
		logDropped(name, path, dropped)
		for _, line := range valid {
			keys[line.Key] = struct{}{}
		}
	}

	logger.Debug().Int("keys", len(keys)).Str("active", sentinelValue).Msg("Collected active keys")
	return keys
}

func logDropped(profile, path string, dropped []types.ParsedLine) {
	if len(dropped) == 0 {
		return
	}
	logger := logging.GetLogger("profiles")
	for _, line := range dropped {
		logger.Debug().
			Str("profile", profile).
			Str("path", path).
			Str("key", line.Key).
			Int("line", line.LineIndex+1).
			Msg("Dropping invalid key")
	}
}
