package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/nvy/pkg/errors"
	"github.com/arthur-debert/nvy/pkg/logging"
	"github.com/arthur-debert/nvy/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Color modes accepted by output.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings holds user-level preferences that apply to every project.
type Settings struct {
	Init   InitSettings   `koanf:"init" toml:"init"`
	Output OutputSettings `koanf:"output" toml:"output"`
	Shell  ShellSettings  `koanf:"shell" toml:"shell"`
}

// InitSettings configures `nvy init`.
type InitSettings struct {
	// Ignore lists env file names never turned into profiles
	Ignore        []string `koanf:"ignore" toml:"ignore"`
	DefaultTarget string   `koanf:"default_target" toml:"default_target"`
}

// OutputSettings configures console output.
type OutputSettings struct {
	Color string `koanf:"color" toml:"color"`
}

// ShellSettings configures shell mode rendering.
type ShellSettings struct {
	// Sentinel is the variable recording the active profiles
	Sentinel string `koanf:"sentinel" toml:"sentinel"`
}

// LoadSettings loads the embedded defaults, then the user's settings file
// if present, then NVY_<SECTION>__<KEY> environment variables.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(paths.SettingsFilePath())
}

// LoadSettingsFrom is LoadSettings with an explicit settings file path.
func LoadSettingsFrom(settingsPath string) (*Settings, error) {
	logger := logging.GetLogger("config.settings")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default settings")
	}

	// 2. User settings file
	if settingsPath != "" {
		if _, err := os.Stat(settingsPath); err == nil {
			if err := k.Load(file.Provider(settingsPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid settings file %s", settingsPath).
					WithDetail("path", settingsPath)
			}
			logger.Debug().Str("path", settingsPath).Msg("Loaded user settings")
		}
	}

	// 3. Environment, e.g. NVY_OUTPUT__COLOR=never. NVY_TARGET and the
	// directory overrides have no "__" and are left alone.
	if err := k.Load(env.Provider("NVY_", ".", func(s string) string {
		key := strings.TrimPrefix(s, "NVY_")
		if !strings.Contains(key, "__") {
			return ""
		}
		return strings.ReplaceAll(strings.ToLower(key), "__", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load settings from environment")
	}

	settings := &Settings{}
	if err := k.UnmarshalWithConf("", settings, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           settings,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid settings")
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *Settings) validate() error {
	switch s.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigParse,
			"output.color must be one of auto, always or never, got %q", s.Output.Color)
	}
	if strings.TrimSpace(s.Shell.Sentinel) == "" {
		return errors.New(errors.ErrConfigParse, "shell.sentinel must not be empty")
	}
	if strings.TrimSpace(s.Init.DefaultTarget) == "" {
		return errors.New(errors.ErrConfigParse, "init.default_target must not be empty")
	}
	return nil
}

// IsIgnored reports whether init should skip the env file name.
func (s *Settings) IsIgnored(name string) bool {
	for _, ignored := range s.Init.Ignore {
		if ignored == name {
			return true
		}
	}
	return false
}
