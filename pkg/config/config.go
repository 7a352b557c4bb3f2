package config

import (
	"github.com/arthur-debert/iconrules/pkg/iconpack"
	"github.com/arthur-debert/iconrules/pkg/rules"
	"github.com/arthur-debert/iconrules/pkg/ruleset"
)

// Environment variables overriding settings keys.
const (
	EnvPrefix         = "ICONRULES_"
	EnvIgnoredPattern = EnvPrefix + "IGNORED_PATTERN"
	EnvDisabledIDs    = EnvPrefix + "DISABLED_IDS"
	EnvUIType         = EnvPrefix + "UI_TYPE_ICONS_PREFERENCE"
)

// Settings keys.
const (
	KeyIgnoredPattern    = "ignored_pattern"
	KeyDisabledIDs       = "disabled_ids"
	KeyUIType            = "ui_type_icons_preference"
	KeyFacets            = "facets"
	KeyOverrideIDE       = "project.override_ide_settings"
	KeyAddToIDEUserIcons = "project.add_to_ide_user_icons"
	KeyRules             = "rules"
)

// ProjectOptions only mean something in a project-level file.
type ProjectOptions struct {
	OverrideIDE       bool `koanf:"override_ide_settings"`
	AddToIDEUserIcons bool `koanf:"add_to_ide_user_icons"`
}

// File is one loaded settings file.
type File struct {
	Path string
	// Found is false when the file does not exist; the other fields then
	// hold defaults and environment overrides.
	Found bool

	IgnoredPattern string
	DisabledIDs    []string
	UIType         rules.UIType
	Facets         []string
	Project        ProjectOptions
	Rules          []rules.Rule
}

func (f File) settings() ruleset.Settings {
	return ruleset.Settings{
		DisabledIDs:    ruleset.NewIDSet(f.DisabledIDs...),
		IgnoredPattern: f.IgnoredPattern,
	}
}

// Settings holds the IDE-level and project-level files plus the
// installed icon packs.
type Settings struct {
	IDE File
	// ProjectBase is empty when loaded without a project.
	ProjectBase string
	Project     File
	Packs       []iconpack.Pack
}

func (s *Settings) projectWins() bool {
	return s.ProjectBase != "" && s.Project.Project.OverrideIDE
}

// Effective returns the file whose options apply: the project file when
// it overrides the IDE settings, the IDE file otherwise.
func (s *Settings) Effective() File {
	if s.projectWins() {
		return s.Project
	}
	return s.IDE
}

// UIType returns the effective UI type preference.
func (s *Settings) UIType() rules.UIType {
	return s.Effective().UIType
}

// Facets returns the configured facets of both files.
func (s *Settings) Facets() []string {
	out := append([]string(nil), s.IDE.Facets...)
	if s.ProjectBase != "" {
		out = append(out, s.Project.Facets...)
	}
	return out
}

// Sources returns the rule set assembly inputs. Installed pack rules
// follow the IDE user rules.
func (s *Settings) Sources(bundled []rules.Rule) ruleset.Sources {
	src := ruleset.Sources{
		Bundled: bundled,
		IDEUser: iconpack.Merge(s.IDE.Rules, s.Packs...),
		IDE:     s.IDE.settings(),
	}
	if s.ProjectBase != "" {
		src.ProjectUser = s.Project.Rules
		src.ProjectSettings = s.Project.settings()
		src.Project = ruleset.ProjectSettings{
			Active:       true,
			OverrideIDE:  s.Project.Project.OverrideIDE,
			MergeIDEUser: s.Project.Project.AddToIDEUserIcons,
		}
	}
	return src
}
