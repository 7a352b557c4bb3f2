package rules

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/arthur-debert/iconrules/pkg/condition"
	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/iconref"
)

// Rule binds conditions to an icon.
type Rule struct {
	ID          string
	Kind        Kind
	Icon        iconref.Ref
	Description string
	Conditions  []condition.Condition
	Tags        []Tag

	// Disabled rules never match.
	Disabled bool

	// ParentID is set on derived alternates.
	ParentID string
	AltIcons []iconref.Ref

	// SourcePack names the icon pack a user rule was imported from.
	SourcePack string

	// IDEIcon is the host icon an icon override replaces.
	IDEIcon                  string
	AutoLoadNewUIIconVariant bool
	UIType                   UIType
}

// Enabled reports whether the rule takes part in matching.
func (r Rule) Enabled() bool {
	return !r.Disabled
}

// GroupID returns the id shared by a rule and its alternates.
func (r Rule) GroupID() string {
	if r.ParentID != "" {
		return r.ParentID
	}
	return r.ID
}

// HasTag reports whether the rule carries t.
func (r Rule) HasTag(t Tag) bool {
	for _, tag := range r.Tags {
		if tag == t {
			return true
		}
	}
	return false
}

// Equal reports whether r and o describe the same rule. The source pack
// and derivation fields are ignored.
func (r Rule) Equal(o Rule) bool {
	return r.ID == o.ID &&
		r.Kind == o.Kind &&
		r.Icon == o.Icon &&
		r.Description == o.Description &&
		r.Disabled == o.Disabled &&
		r.IDEIcon == o.IDEIcon &&
		r.AutoLoadNewUIIconVariant == o.AutoLoadNewUIIconVariant &&
		r.UIType == o.UIType &&
		slices.Equal(r.Tags, o.Tags) &&
		slices.Equal(r.AltIcons, o.AltIcons) &&
		slices.EqualFunc(r.Conditions, o.Conditions, condition.Condition.Equal)
}

// Matches reports whether one of the rule's conditions holds. Conditions
// are tried in order; an evaluation error stops the rule.
func (r Rule) Matches(in condition.Input) (bool, error) {
	if r.Disabled {
		return false, nil
	}
	for i := range r.Conditions {
		ok, err := r.Conditions[i].Evaluate(in)
		if err != nil {
			return false, errors.Wrapf(err, errors.ErrRuleEvaluate, "rule %s", r.ID).
				WithDetail("rule", r.ID).
				WithDetail("condition", i)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Alternates derives one rule per alternate icon. Each shares the rule's
// conditions and points back to its group through ParentID.
func (r Rule) Alternates() []Rule {
	if len(r.AltIcons) == 0 {
		return nil
	}
	out := make([]Rule, len(r.AltIcons))
	for i, icon := range r.AltIcons {
		alt := r
		alt.AltIcons = nil
		alt.Icon = icon
		alt.ParentID = r.GroupID()
		if i == 0 {
			alt.ID = r.ID + "_alt"
			if len(r.AltIcons) == 1 {
				alt.Description = r.Description + " (alternative)"
			} else {
				alt.Description = r.Description + " (alternative 1)"
			}
		} else {
			alt.ID = r.ID + "_alt" + strconv.Itoa(i+1)
			alt.Description = fmt.Sprintf("%s (alternative %d)", r.Description, i+1)
		}
		out[i] = alt
	}
	return out
}

// Validate checks that the rule can be used.
func (r Rule) Validate() error {
	if r.ID == "" {
		return errors.New(errors.ErrRuleInvalid, "rule has no id")
	}

	switch r.Kind {
	case KindFile, KindFolder:
		if r.Icon.IsZero() {
			return invalid(r, "has no icon")
		}
		if len(r.Conditions) == 0 {
			return invalid(r, "has no condition")
		}
		for i, c := range r.Conditions {
			// A condition may delegate entirely to an enabler.
			if !c.Valid() && c.Enabler == "" {
				return invalid(r, fmt.Sprintf("condition %d sets no matching aspect", i+1))
			}
			if c.HasRegex() {
				if err := condition.CheckRegex(c.Regex); err != nil {
					return errors.Wrapf(err, errors.ErrRuleInvalid, "rule %s: condition %d", r.ID, i+1).
						WithDetail("rule", r.ID)
				}
			}
		}
	case KindIconOverride:
		if r.IDEIcon == "" {
			return invalid(r, "overrides no host icon")
		}
		if len(r.Conditions) > 0 {
			return invalid(r, "is an icon override and cannot have conditions")
		}
		if r.Icon.IsZero() {
			return invalid(r, "has no icon")
		}
	default:
		return errors.Newf(errors.ErrUnknownKind, "rule %s has unknown kind %q", r.ID, r.Kind).
			WithDetail("rule", r.ID)
	}
	return nil
}

func invalid(r Rule, msg string) error {
	return errors.Newf(errors.ErrRuleInvalid, "rule %s %s", r.ID, msg).WithDetail("rule", r.ID)
}
