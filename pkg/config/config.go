package config

import (
	"bytes"
	"io/fs"
	"sort"
	"strings"

	"github.com/arthur-debert/nvy/pkg/errors"
	"github.com/arthur-debert/nvy/pkg/logging"
	"github.com/arthur-debert/nvy/pkg/paths"
	"github.com/arthur-debert/nvy/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const (
	// DefaultProfile is the profile used when none is requested
	DefaultProfile = "default"

	// DefaultTarget is the output target of a new configuration
	DefaultTarget = ".env.nvy"

	// EnvTarget overrides the target of the loaded configuration
	EnvTarget = "NVY_TARGET"
)

// Profile is a single file entry under a profile name.
type Profile struct {
	Path string `koanf:"path" yaml:"path"`
}

// Config is the project configuration stored in nvy.yaml.
type Config struct {
	Target   string               `koanf:"target"`
	Profiles map[string][]Profile `koanf:"profiles"`

	dir string
	// fileTarget is the target as written in nvy.yaml, before env overrides
	fileTarget string
}

// New creates an empty configuration for the project in dir.
func New(dir, target string) *Config {
	if target == "" {
		target = DefaultTarget
	}
	return &Config{
		Target:     target,
		Profiles:   make(map[string][]Profile),
		dir:        dir,
		fileTarget: target,
	}
}

// Exists reports whether dir holds an nvy.yaml.
func Exists(fsys types.FS, dir string) bool {
	info, err := fsys.Stat(paths.ProjectConfigPath(dir))
	return err == nil && !info.IsDir()
}

// Load reads nvy.yaml from dir. The NVY_TARGET environment variable, when
// set, replaces the target for this invocation only.
func Load(fsys types.FS, dir string) (*Config, error) {
	logger := logging.GetLogger("config")
	path := paths.ProjectConfigPath(dir)

	content, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.New(errors.ErrConfigNotFound,
				"nvy.yaml does not exist in the current directory, please run `nvy init` first.").
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read %s", path)
	}

	// Profile names may contain dots, so keys are delimited by slashes.
	k := koanf.New("/")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"target": DefaultTarget,
	}, "/"), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if err := k.Load(&rawBytesProvider{bytes: content}, yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid %s", paths.ConfigFileName).
			WithDetail("path", path)
	}
	fileTarget := k.String("target")

	if err := k.Load(env.ProviderWithValue("NVY_", "/", func(key, value string) (string, interface{}) {
		if key != EnvTarget || strings.TrimSpace(value) == "" {
			return "", nil
		}
		return "target", value
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	cfg := &Config{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid %s", paths.ConfigFileName).
			WithDetail("path", path)
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string][]Profile)
	}
	cfg.dir = dir
	cfg.fileTarget = fileTarget

	if cfg.Target != fileTarget {
		logger.Debug().
			Str("file_target", fileTarget).
			Str("target", cfg.Target).
			Msg("Target overridden from environment")
	}
	logger.Debug().
		Str("path", path).
		Int("profiles", len(cfg.Profiles)).
		Msg("Loaded project configuration")

	return cfg, nil
}

// Dir returns the project directory the configuration belongs to.
func (c *Config) Dir() string {
	return c.dir
}

// ProfilePath resolves name to the single file backing it.
func (c *Config) ProfilePath(name string) (string, error) {
	entries, ok := c.Profiles[name]
	if !ok {
		return "", errors.Newf(errors.ErrProfileNotFound,
			"Profile %s does not exist in the nvy.yaml file.", name).
			WithDetail("profile", name)
	}

	switch len(entries) {
	case 0:
		return "", errors.Newf(errors.ErrProfileNoPath,
			"Profile %s does not have any paths defined.", name).
			WithDetail("profile", name)
	case 1:
	default:
		return "", errors.Newf(errors.ErrProfileMultiplePaths,
			"Profile %s has more than one path defined.", name).
			WithDetail("profile", name)
	}

	path := strings.TrimSpace(entries[0].Path)
	if path == "" {
		return "", errors.Newf(errors.ErrProfileEmptyPath,
			"Profile %s has an empty path defined.", name).
			WithDetail("profile", name)
	}

	return paths.Resolve(c.dir, path), nil
}

// OutputTarget returns where rendered output is sent.
func (c *Config) OutputTarget() types.OutputTarget {
	target := types.ParseTarget(c.Target)
	if target.Mode == types.ModeFile {
		target.Destination = paths.Resolve(c.dir, target.Destination)
	}
	return target
}

// FileTarget returns the target as written in nvy.yaml, ignoring NVY_TARGET.
func (c *Config) FileTarget() string {
	if c.fileTarget == "" {
		return c.Target
	}
	return c.fileTarget
}

// SetTarget changes the target, both for this invocation and in the saved file.
func (c *Config) SetTarget(target string) {
	c.Target = target
	c.fileTarget = target
}

// SetProfile points name at path, replacing any paths it had.
func (c *Config) SetProfile(name, path string) {
	if c.Profiles == nil {
		c.Profiles = make(map[string][]Profile)
	}
	c.Profiles[name] = []Profile{{Path: path}}
}

// RemoveProfile deletes name and reports whether it existed.
func (c *Config) RemoveProfile(name string) bool {
	if _, ok := c.Profiles[name]; !ok {
		return false
	}
	delete(c.Profiles, name)
	return true
}

// HasProfile reports whether name is configured.
func (c *Config) HasProfile(name string) bool {
	_, ok := c.Profiles[name]
	return ok
}

// ProfileNames returns the profile names with the default profile first
// and the rest sorted.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		if name != DefaultProfile {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := c.Profiles[DefaultProfile]; ok {
		names = append([]string{DefaultProfile}, names...)
	}
	return names
}

// ProfileInfos returns the profiles and their configured paths in
// ProfileNames order. Paths are reported as written in nvy.yaml.
func (c *Config) ProfileInfos() []types.ProfileInfo {
	names := c.ProfileNames()
	infos := make([]types.ProfileInfo, 0, len(names))
	for _, name := range names {
		info := types.ProfileInfo{Name: name}
		for _, p := range c.Profiles[name] {
			info.Paths = append(info.Paths, p.Path)
		}
		infos = append(infos, info)
	}
	return infos
}

// Marshal renders the configuration as it is stored in nvy.yaml.
func (c *Config) Marshal() ([]byte, error) {
	target := c.FileTarget()

	profiles := &yamlv3.Node{Kind: yamlv3.MappingNode}
	for _, name := range c.ProfileNames() {
		entries := &yamlv3.Node{Kind: yamlv3.SequenceNode}
		for _, p := range c.Profiles[name] {
			entries.Content = append(entries.Content, &yamlv3.Node{
				Kind: yamlv3.MappingNode,
				Content: []*yamlv3.Node{
					scalar("path"), scalar(p.Path),
				},
			})
		}
		profiles.Content = append(profiles.Content, scalar(name), entries)
	}

	doc := &yamlv3.Node{
		Kind: yamlv3.MappingNode,
		Content: []*yamlv3.Node{
			scalar("target"), scalar(target),
			scalar("profiles"), profiles,
		},
	}

	var buf bytes.Buffer
	enc := yamlv3.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the configuration to nvy.yaml in its project directory.
func (c *Config) Save(fsys types.FS) error {
	path := paths.ProjectConfigPath(c.dir)

	data, err := c.Marshal()
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigSave, "failed to encode configuration")
	}
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "failed to write %s", path).
			WithDetail("path", path)
	}

	logger := logging.GetLogger("config")
	logger.Debug().
		Str("path", path).
		Int("profiles", len(c.Profiles)).
		Msg("Saved project configuration")
	return nil
}

func scalar(value string) *yamlv3.Node {
	return &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: value}
}
