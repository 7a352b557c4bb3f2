package condition

import (
	"github.com/arthur-debert/iconrules/pkg/enablers"
	"github.com/arthur-debert/iconrules/pkg/errors"
)

// Spec is the serialised form of a Condition used by the catalog,
// settings files and icon packs.
type Spec struct {
	Start          []string `toml:"start,omitempty" koanf:"start" yaml:"start,omitempty"`
	Exact          []string `toml:"exact,omitempty" koanf:"exact" yaml:"exact,omitempty"`
	Suffix         []string `toml:"suffix,omitempty" koanf:"suffix" yaml:"suffix,omitempty"`
	MayEnd         []string `toml:"may_end,omitempty" koanf:"may_end" yaml:"may_end,omitempty"`
	NoDot          bool     `toml:"no_dot,omitempty" koanf:"no_dot" yaml:"no_dot,omitempty"`
	Parents        []string `toml:"parents,omitempty" koanf:"parents" yaml:"parents,omitempty"`
	Regex          string   `toml:"regex,omitempty" koanf:"regex" yaml:"regex,omitempty"`
	Facets         []string `toml:"facets,omitempty" koanf:"facets" yaml:"facets,omitempty"`
	Enabler        string   `toml:"enabler,omitempty" koanf:"enabler" yaml:"enabler,omitempty"`
	RootFolderOnly bool     `toml:"root_folder_only,omitempty" koanf:"root_folder_only" yaml:"root_folder_only,omitempty"`
	Disabled       bool     `toml:"disabled,omitempty" koanf:"disabled" yaml:"disabled,omitempty"`
}

// Build turns a Spec into a normalised Condition. It rejects specs that
// set both name modes or both suffix modes, and unknown enablers. The
// regular expression is not compiled here.
func (s Spec) Build() (Condition, error) {
	if len(s.Start) > 0 && len(s.Exact) > 0 {
		return Condition{}, errors.New(errors.ErrRuleInvalid, "condition cannot set both start and exact")
	}
	if len(s.Suffix) > 0 && len(s.MayEnd) > 0 {
		return Condition{}, errors.New(errors.ErrRuleInvalid, "condition cannot set both suffix and may_end")
	}

	c := New()
	switch {
	case len(s.Start) > 0:
		c = c.WithPrefix(s.Start...)
	case len(s.Exact) > 0:
		c = c.WithExact(s.Exact...)
	}
	switch {
	case len(s.Suffix) > 0:
		c = c.WithSuffix(s.Suffix...)
	case len(s.MayEnd) > 0:
		c = c.WithOptionalSuffix(s.MayEnd...)
	}
	if s.NoDot {
		c = c.WithNoDot()
	}
	if len(s.Parents) > 0 {
		c = c.WithParents(s.Parents...)
	}
	if s.Regex != "" {
		c = c.WithRegex(s.Regex)
	}
	if len(s.Facets) > 0 {
		c = c.WithFacets(s.Facets...)
	}
	if s.Enabler != "" {
		t, err := enablers.ParseType(s.Enabler)
		if err != nil {
			return Condition{}, err
		}
		c = c.WithEnabler(t)
	}
	if s.RootFolderOnly {
		c = c.InProjectRoot()
	}
	c.Disabled = s.Disabled
	return c, nil
}

// Spec returns the serialised form of c.
func (c Condition) Spec() Spec {
	s := Spec{
		NoDot:          c.ExcludeDotted,
		Regex:          c.Regex,
		Facets:         c.Facets,
		Enabler:        string(c.Enabler),
		RootFolderOnly: c.RootFolderOnly,
		Disabled:       c.Disabled,
	}
	switch {
	case c.MatchPrefix:
		s.Start = c.Names
	case c.MatchExact:
		s.Exact = c.Names
	}
	switch {
	case c.MatchSuffix:
		s.Suffix = c.Extensions
	case c.MatchOptionalSuffix:
		s.MayEnd = c.Extensions
	}
	if c.CheckParent {
		s.Parents = c.ParentNames
	}
	return s
}
