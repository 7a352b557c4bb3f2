package testutil

import (
	"github.com/arthur-debert/iconrules/pkg/condition"
	"github.com/arthur-debert/iconrules/pkg/iconref"
	"github.com/arthur-debert/iconrules/pkg/rules"
)

// FileRule returns an enabled file rule with a bundled icon named after id.
func FileRule(id string, conds ...condition.Condition) rules.Rule {
	return rules.Rule{
		ID:          id,
		Kind:        rules.KindFile,
		Icon:        iconref.Bundled("extra-icons/" + id + ".svg"),
		Description: id,
		Conditions:  conds,
	}
}

// FolderRule returns an enabled folder rule with a bundled icon named after id.
func FolderRule(id string, conds ...condition.Condition) rules.Rule {
	r := FileRule(id, conds...)
	r.Kind = rules.KindFolder
	return r
}

// WithAlts adds one bundled alternate icon per suffix, e.g. "_alt".
func WithAlts(r rules.Rule, suffixes ...string) rules.Rule {
	for _, s := range suffixes {
		r.AltIcons = append(r.AltIcons, iconref.Bundled("extra-icons/"+r.ID+s+".svg"))
	}
	return r
}

// Exact is shorthand for an exact file name condition.
func Exact(names ...string) condition.Condition {
	return condition.New().WithExact(names...)
}
