// Package ruleset assembles the ordered rule list a dispatch sweep walks.
//
// Assembly merges the rule sources by precedence, places each rule's
// derived alternates right after it, and filters by kind, enablement and
// UI type. The result is an immutable Set: an arena of rules plus, for
// every entry, the arena index of its group origin. A rule and its
// alternates share one group and identical conditions.
package ruleset

import (
	"github.com/arthur-debert/iconrules/pkg/rules"
)

// Settings are the options that either the IDE-level or the project-level
// settings provide.
type Settings struct {
	DisabledIDs    map[string]struct{}
	IgnoredPattern string
}

// IsDisabled reports whether id is in the disabled set.
func (s Settings) IsDisabled(id string) bool {
	_, ok := s.DisabledIDs[id]
	return ok
}

// ProjectSettings tell how project-level settings combine with IDE-level
// ones.
type ProjectSettings struct {
	// Active is false when there is no project context.
	Active bool
	// OverrideIDE makes the project settings win over the IDE settings.
	OverrideIDE bool
	// MergeIDEUser keeps the IDE user rules, ahead of the project ones,
	// when OverrideIDE is set.
	MergeIDEUser bool
}

// Sources is everything assembly draws from.
type Sources struct {
	Bundled     []rules.Rule
	IDEUser     []rules.Rule
	ProjectUser []rules.Rule

	Project ProjectSettings

	IDE             Settings
	ProjectSettings Settings
}

// NewIDSet builds a disabled-id set.
func NewIDSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

func (s Sources) projectWins() bool {
	return s.Project.Active && s.Project.OverrideIDE
}

// Settings returns the effective settings: the project's when the project
// overrides the IDE settings, the IDE's otherwise.
func (s Sources) Settings() Settings {
	if s.projectWins() {
		return s.ProjectSettings
	}
	return s.IDE
}

// UserRules returns the user rules in precedence order.
func (s Sources) UserRules() []rules.Rule {
	if !s.projectWins() {
		return s.IDEUser
	}
	if !s.Project.MergeIDEUser {
		return s.ProjectUser
	}
	out := make([]rules.Rule, 0, len(s.IDEUser)+len(s.ProjectUser))
	out = append(out, s.IDEUser...)
	return append(out, s.ProjectUser...)
}

// Ordered returns every origin rule, user rules first, before expansion
// and filtering.
func (s Sources) Ordered() []rules.Rule {
	user := s.UserRules()
	out := make([]rules.Rule, 0, len(user)+len(s.Bundled))
	out = append(out, user...)
	return append(out, s.Bundled...)
}
