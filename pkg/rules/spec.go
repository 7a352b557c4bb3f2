package rules

import (
	"github.com/arthur-debert/iconrules/pkg/condition"
	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/iconref"
)

// Spec is the serialised form of a Rule shared by the catalog, the
// settings files and icon packs.
type Spec struct {
	ID           string           `toml:"id" koanf:"id" yaml:"id"`
	Kind         string           `toml:"kind" koanf:"kind" yaml:"kind"`
	Icon         string           `toml:"icon" koanf:"icon" yaml:"icon"`
	Description  string           `toml:"description,omitempty" koanf:"description" yaml:"description,omitempty"`
	Conditions   []condition.Spec `toml:"conditions,omitempty" koanf:"conditions" yaml:"conditions,omitempty"`
	Tags         []string         `toml:"tags,omitempty" koanf:"tags" yaml:"tags,omitempty"`
	AltIcons     []string         `toml:"alt_icons,omitempty" koanf:"alt_icons" yaml:"alt_icons,omitempty"`
	Disabled     bool             `toml:"disabled,omitempty" koanf:"disabled" yaml:"disabled,omitempty"`
	IDEIcon      string           `toml:"ide_icon,omitempty" koanf:"ide_icon" yaml:"ide_icon,omitempty"`
	NewUIVariant bool             `toml:"new_ui_variant,omitempty" koanf:"new_ui_variant" yaml:"new_ui_variant,omitempty"`
	UIType       string           `toml:"ui_type,omitempty" koanf:"ui_type" yaml:"ui_type,omitempty"`
}

// Build turns a Spec into a Rule. It does not validate the result.
func (s Spec) Build() (Rule, error) {
	kind, err := ParseKind(s.Kind)
	if err != nil {
		return Rule{}, errors.Wrapf(err, errors.ErrRuleInvalid, "rule %q", s.ID)
	}
	icon, err := iconref.Parse(s.Icon)
	if err != nil {
		return Rule{}, errors.Wrapf(err, errors.ErrRuleInvalid, "rule %q: icon", s.ID)
	}
	uiType, err := ParseUIType(s.UIType)
	if err != nil {
		return Rule{}, errors.Wrapf(err, errors.ErrRuleInvalid, "rule %q", s.ID)
	}

	r := Rule{
		ID:                       s.ID,
		Kind:                     kind,
		Icon:                     icon,
		Description:              s.Description,
		Disabled:                 s.Disabled,
		IDEIcon:                  s.IDEIcon,
		AutoLoadNewUIIconVariant: s.NewUIVariant,
		UIType:                   uiType,
	}

	for i, cs := range s.Conditions {
		c, err := cs.Build()
		if err != nil {
			return Rule{}, errors.Wrapf(err, errors.ErrRuleInvalid, "rule %q: condition %d", s.ID, i+1)
		}
		r.Conditions = append(r.Conditions, c)
	}
	for _, name := range s.Tags {
		t, err := ParseTag(name)
		if err != nil {
			return Rule{}, errors.Wrapf(err, errors.ErrRuleInvalid, "rule %q", s.ID)
		}
		r.Tags = append(r.Tags, t)
	}
	for _, alt := range s.AltIcons {
		ref, err := iconref.Parse(alt)
		if err != nil {
			return Rule{}, errors.Wrapf(err, errors.ErrRuleInvalid, "rule %q: alternate icon", s.ID)
		}
		r.AltIcons = append(r.AltIcons, ref)
	}
	return r, nil
}

// SpecOf returns the serialised form of r.
func SpecOf(r Rule) Spec {
	s := Spec{
		ID:           r.ID,
		Kind:         string(r.Kind),
		Icon:         r.Icon.String(),
		Description:  r.Description,
		Disabled:     r.Disabled,
		IDEIcon:      r.IDEIcon,
		NewUIVariant: r.AutoLoadNewUIIconVariant,
		UIType:       string(r.UIType),
	}
	for _, c := range r.Conditions {
		s.Conditions = append(s.Conditions, c.Spec())
	}
	for _, t := range r.Tags {
		s.Tags = append(s.Tags, string(t))
	}
	for _, alt := range r.AltIcons {
		s.AltIcons = append(s.AltIcons, alt.String())
	}
	return s
}

// BuildAll builds and validates specs in order. sourcePack is recorded on
// every rule when not empty.
func BuildAll(specs []Spec, sourcePack string) ([]Rule, error) {
	out := make([]Rule, 0, len(specs))
	seen := make(map[string]struct{}, len(specs))
	for _, s := range specs {
		r, err := s.Build()
		if err != nil {
			return nil, err
		}
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[r.ID]; dup {
			return nil, errors.Newf(errors.ErrAlreadyExists, "duplicate rule id %q", r.ID)
		}
		seen[r.ID] = struct{}{}
		r.SourcePack = sourcePack
		out = append(out, r)
	}
	return out, nil
}
