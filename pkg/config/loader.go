package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/filesystem"
	"github.com/arthur-debert/iconrules/pkg/iconpack"
	"github.com/arthur-debert/iconrules/pkg/logging"
	"github.com/arthur-debert/iconrules/pkg/paths"
	"github.com/arthur-debert/iconrules/pkg/rules"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	overrides map[string]interface{}
	disabled  []string
	packs     bool
	fs        filesystem.FS
}

// WithOverrides layers values, keyed like the settings file ("disabled_ids",
// "project.override_ide_settings"), on top of both files.
func WithOverrides(values map[string]interface{}) Option {
	return func(o *loadOptions) { o.overrides = values }
}

// WithDisabledIDs adds ids to the disabled ids of both files.
func WithDisabledIDs(ids ...string) Option {
	return func(o *loadOptions) { o.disabled = append(o.disabled, ids...) }
}

// WithoutPacks skips reading installed icon packs.
func WithoutPacks() Option {
	return func(o *loadOptions) { o.packs = false }
}

// WithFS sets the filesystem icon packs are read from.
func WithFS(fs filesystem.FS) Option {
	return func(o *loadOptions) { o.fs = fs }
}

// fileData mirrors the settings file layout.
type fileData struct {
	IgnoredPattern string         `koanf:"ignored_pattern"`
	DisabledIDs    []string       `koanf:"disabled_ids"`
	UIType         string         `koanf:"ui_type_icons_preference"`
	Facets         []string       `koanf:"facets"`
	Project        ProjectOptions `koanf:"project"`
	Rules          []rules.Spec   `koanf:"rules"`
}

// Load reads the IDE-level settings and, when projectBase is not empty,
// the project-level settings of that project.
func Load(projectBase string, opts ...Option) (*Settings, error) {
	o := loadOptions{packs: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fs == nil {
		o.fs = filesystem.NewOS()
	}

	logger := logging.GetLogger("config")
	done := logging.LogOperationStart(logger, "load settings")
	defer done()

	ide, err := LoadFile(paths.SettingsPath(), o.overrides)
	if err != nil {
		return nil, err
	}
	ide.DisabledIDs = append(ide.DisabledIDs, o.disabled...)
	s := &Settings{IDE: ide}

	if projectBase != "" {
		project, err := LoadFile(paths.ProjectSettingsPath(projectBase), o.overrides)
		if err != nil {
			return nil, err
		}
		project.DisabledIDs = append(project.DisabledIDs, o.disabled...)
		s.ProjectBase = projectBase
		s.Project = project
	}

	if o.packs {
		packs, err := iconpack.LoadDir(o.fs, paths.PacksPath())
		if err != nil {
			return nil, err
		}
		s.Packs = packs
	}

	logger.Debug().
		Bool("ideFile", s.IDE.Found).
		Bool("projectFile", s.Project.Found).
		Int("ideRules", len(s.IDE.Rules)).
		Int("projectRules", len(s.Project.Rules)).
		Int("packs", len(s.Packs)).
		Msg("Settings loaded")
	return s, nil
}

// LoadFile reads one settings file layered over the defaults and the
// environment. A missing file is not an error.
func LoadFile(path string, overrides map[string]interface{}) (File, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultSettings}, toml.Parser()); err != nil {
		return File{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default settings")
	}

	// 2. The file itself
	found := false
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return File{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse settings from %s", path).
				WithDetail("file", path)
		}
		found = true
	} else if !os.IsNotExist(err) {
		return File{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", path)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return File{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return File{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var data fileData
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &data,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &data, unmarshalConf); err != nil {
		return File{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to decode settings from %s", path).
			WithDetail("file", path)
	}

	return data.build(path, found)
}

func (d fileData) build(path string, found bool) (File, error) {
	ui, err := rules.ParseUIType(d.UIType)
	if err != nil {
		return File{}, errors.Wrapf(err, errors.ErrConfigValid, "%s: %s", path, KeyUIType).
			WithDetail("file", path)
	}
	userRules, err := rules.BuildAll(d.Rules, "")
	if err != nil {
		return File{}, errors.Wrapf(err, errors.ErrConfigValid, "%s: invalid user rule", path).
			WithDetail("file", path)
	}

	f := File{
		Path:           path,
		Found:          found,
		IgnoredPattern: d.IgnoredPattern,
		UIType:         ui,
		Project:        d.Project,
		Rules:          userRules,
	}
	for _, id := range d.DisabledIDs {
		if id = strings.TrimSpace(id); id != "" {
			f.DisabledIDs = append(f.DisabledIDs, id)
		}
	}
	for _, name := range d.Facets {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			f.Facets = append(f.Facets, name)
		}
	}
	return f, nil
}

// envKey maps ICONRULES_DISABLED_IDS to disabled_ids. Variables that name
// no settings key are dropped.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	switch key {
	case KeyIgnoredPattern, KeyDisabledIDs, KeyUIType:
		return key
	default:
		return ""
	}
}
