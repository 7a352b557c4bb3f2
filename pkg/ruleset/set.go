package ruleset

import (
	"github.com/arthur-debert/iconrules/pkg/logging"
	"github.com/arthur-debert/iconrules/pkg/rules"
)

// Set is an assembled, immutable rule list for one kind.
type Set struct {
	kind  rules.Kind
	arena []rules.Rule
	// group[i] is the arena index of the origin of entry i's group, or of
	// the first surviving alternate when the origin was filtered out.
	group []int
}

// Assemble builds the Set of kind for the UI type ui from src.
func Assemble(src Sources, kind rules.Kind, ui rules.UIType) *Set {
	logger := logging.GetLogger("ruleset")
	settings := src.Settings()

	keep := func(r rules.Rule) bool {
		return r.Kind == kind &&
			r.Enabled() &&
			!settings.IsDisabled(r.ID) &&
			r.UIType.Accepts(ui)
	}

	ordered := src.Ordered()
	s := &Set{kind: kind}
	dropped := 0
	for _, origin := range ordered {
		block := append([]rules.Rule{origin}, origin.Alternates()...)
		first := -1
		for _, r := range block {
			if !keep(r) {
				dropped++
				continue
			}
			idx := len(s.arena)
			if first < 0 {
				first = idx
			}
			s.arena = append(s.arena, r)
			s.group = append(s.group, first)
		}
	}

	logger.Debug().
		Str("kind", string(kind)).
		Str("ui", string(ui)).
		Int("origins", len(ordered)).
		Int("rules", len(s.arena)).
		Int("dropped", dropped).
		Msg("Rule set assembled")
	return s
}

// Kind returns the kind the set was assembled for.
func (s *Set) Kind() rules.Kind { return s.kind }

// Len returns the number of rules.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.arena)
}

// At returns rule i. The rule must not be modified.
func (s *Set) At(i int) *rules.Rule { return &s.arena[i] }

// Group returns the arena index of rule i's group origin.
func (s *Set) Group(i int) int { return s.group[i] }

// Rules returns a copy of the ordered rules.
func (s *Set) Rules() []rules.Rule {
	if s == nil {
		return nil
	}
	out := make([]rules.Rule, len(s.arena))
	copy(out, s.arena)
	return out
}
