// Package overrides maps host IDE icon paths to replacement icons, driven
// by rules of kind icon.
package overrides

import (
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/iconrules/pkg/iconref"
	"github.com/arthur-debert/iconrules/pkg/logging"
	"github.com/arthur-debert/iconrules/pkg/rules"
)

// Table is an immutable host icon to icon map.
type Table struct {
	icons map[string]Entry
}

// Entry is one row of a Table.
type Entry struct {
	IDEIcon string
	Icon    iconref.Ref
	RuleID  string
}

// PreferNewUI resolves a UI type preference against the active UI.
func PreferNewUI(pref rules.UIType, activeIsNew bool) bool {
	switch pref {
	case rules.UINew:
		return true
	case rules.UIOld:
		return false
	default:
		return activeIsNew
	}
}

// Build collects the enabled icon override rules of bundled then user,
// skipping ids in disabled. Only the first rule using a given icon is
// kept. A later rule for the same host icon replaces an earlier one.
func Build(bundled, user []rules.Rule, disabled map[string]struct{}, preferNewUI bool) *Table {
	logger := logging.GetLogger("overrides")

	t := &Table{icons: make(map[string]Entry)}
	seen := make(map[iconref.Ref]struct{})
	for _, group := range [][]rules.Rule{bundled, user} {
		for _, r := range group {
			if r.Kind != rules.KindIconOverride || !r.Enabled() {
				continue
			}
			if _, off := disabled[r.ID]; off {
				continue
			}
			if _, dup := seen[r.Icon]; dup {
				continue
			}
			seen[r.Icon] = struct{}{}

			icon := r.Icon
			if preferNewUI && r.AutoLoadNewUIIconVariant {
				icon = icon.NewUIVariant()
			}
			t.icons[r.IDEIcon] = Entry{IDEIcon: r.IDEIcon, Icon: icon, RuleID: r.ID}
		}
	}

	logger.Info().Int("overrides", len(t.icons)).Bool("preferNewUI", preferNewUI).Msg("Icon overrides built")
	return t
}

// Len returns the number of host icons replaced.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.icons)
}

// Lookup returns the replacement for the host icon at p. It tries p as
// is, then without its leading slash, then its base name.
func (t *Table) Lookup(p string) (iconref.Ref, bool) {
	if t == nil {
		return iconref.Ref{}, false
	}
	if e, ok := t.icons[p]; ok {
		return e.Icon, true
	}
	if strings.HasPrefix(p, "/") && len(p) > 2 {
		if e, ok := t.icons[p[1:]]; ok {
			return e.Icon, true
		}
	}
	e, ok := t.icons[path.Base(p)]
	return e.Icon, ok
}

// Entries returns the table sorted by host icon.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.icons))
	for _, e := range t.icons {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IDEIcon < out[j].IDEIcon })
	return out
}
