package condition

import (
	"slices"
	"sort"
	"strings"

	"github.com/arthur-debert/iconrules/pkg/enablers"
)

// Condition is one predicate of a rule. Names, extensions, parents and
// facets are lower-cased; use the With methods or Normalize to keep it so.
type Condition struct {
	MatchPrefix         bool
	MatchExact          bool
	MatchOptionalSuffix bool
	MatchSuffix         bool
	ExcludeDotted       bool

	Names      []string
	Extensions []string

	CheckParent bool
	ParentNames []string

	Regex string

	Facets         []string
	Enabler        enablers.Type
	RootFolderOnly bool

	// Disabled conditions never match.
	Disabled bool
}

// New returns an empty, enabled condition.
func New() Condition {
	return Condition{}
}

// WithPrefix matches file names starting with one of names.
func (c Condition) WithPrefix(names ...string) Condition {
	c.MatchPrefix = true
	c.Names = lowerAll(names)
	return c
}

// WithExact matches file names equal to one of names.
func (c Condition) WithExact(names ...string) Condition {
	c.MatchExact = true
	c.Names = lowerAll(names)
	return c
}

// WithSuffix matches file names ending with one of exts. Combined with
// WithExact or WithPrefix the name must carry one of them.
func (c Condition) WithSuffix(exts ...string) Condition {
	c.MatchSuffix = true
	c.Extensions = lowerAll(exts)
	return c
}

// WithOptionalSuffix lets names match with or without one of exts.
func (c Condition) WithOptionalSuffix(exts ...string) Condition {
	c.MatchOptionalSuffix = true
	c.Extensions = lowerAll(exts)
	return c
}

// WithParents requires the parent folder to be one of parents. Without a
// name aspect, any file in such a folder matches.
func (c Condition) WithParents(parents ...string) Condition {
	c.CheckParent = true
	c.ParentNames = lowerSet(parents)
	return c
}

// WithRegex matches the lower-cased full path against re.
func (c Condition) WithRegex(re string) Condition {
	c.Regex = re
	return c
}

// WithFacets requires the project to have one of facets.
func (c Condition) WithFacets(facets ...string) Condition {
	c.Facets = lowerAll(facets)
	return c
}

// WithEnabler delegates to the project's enabler of type t.
func (c Condition) WithEnabler(t enablers.Type) Condition {
	c.Enabler = t
	return c
}

// WithNoDot restricts prefix matches to names without a dot.
func (c Condition) WithNoDot() Condition {
	c.ExcludeDotted = true
	return c
}

// InProjectRoot restricts the condition to entries of the project root.
func (c Condition) InProjectRoot() Condition {
	c.RootFolderOnly = true
	return c
}

// Enabled reports whether the condition takes part in matching.
func (c Condition) Enabled() bool {
	return !c.Disabled
}

// HasRegex reports whether a regular expression is set.
func (c Condition) HasRegex() bool {
	return c.Regex != ""
}

// Valid reports whether at least one matching aspect is set. Facets, the
// enabler and the project root restriction only narrow a condition.
func (c Condition) Valid() bool {
	return c.HasRegex() || c.CheckParent || c.MatchPrefix || c.MatchExact || c.MatchSuffix || c.MatchOptionalSuffix
}

// Normalize lower-cases every list. Decoded conditions go through it.
func (c Condition) Normalize() Condition {
	c.Names = lowerAll(c.Names)
	c.Extensions = lowerAll(c.Extensions)
	c.ParentNames = lowerSet(c.ParentNames)
	c.Facets = lowerAll(c.Facets)
	return c
}

// Equal compares two conditions structurally. Parent names compare as a set.
func (c Condition) Equal(o Condition) bool {
	return c.MatchPrefix == o.MatchPrefix &&
		c.MatchExact == o.MatchExact &&
		c.MatchOptionalSuffix == o.MatchOptionalSuffix &&
		c.MatchSuffix == o.MatchSuffix &&
		c.ExcludeDotted == o.ExcludeDotted &&
		c.CheckParent == o.CheckParent &&
		c.RootFolderOnly == o.RootFolderOnly &&
		c.Disabled == o.Disabled &&
		c.Regex == o.Regex &&
		c.Enabler == o.Enabler &&
		slices.Equal(c.Names, o.Names) &&
		slices.Equal(c.Extensions, o.Extensions) &&
		slices.Equal(lowerSet(c.ParentNames), lowerSet(o.ParentNames)) &&
		slices.Equal(c.Facets, o.Facets)
}

// Describe returns a readable summary such as
// "Name equals: package, name ends with: .json".
func (c Condition) Describe(delim string) string {
	var parts []string
	if c.HasRegex() {
		parts = append(parts, "regex: "+c.Regex)
	}
	if c.CheckParent {
		parts = append(parts, "parent(s): "+strings.Join(c.ParentNames, delim))
	}
	if c.MatchPrefix || c.MatchExact {
		names := strings.Join(c.Names, delim)
		if c.MatchPrefix {
			names = "name starts with: " + names
			if c.ExcludeDotted {
				names += " and does not contain a dot"
			}
		} else {
			names = "name equals: " + names
		}
		parts = append(parts, names)
	}
	if c.MatchOptionalSuffix || c.MatchSuffix {
		exts := strings.Join(c.Extensions, delim)
		if c.MatchOptionalSuffix {
			parts = append(parts, "name may end with: "+exts)
		} else {
			parts = append(parts, "name ends with: "+exts)
		}
	}
	if len(c.Facets) > 0 {
		parts = append(parts, "facets: ["+strings.Join(c.Facets, ", ")+"]")
	}
	if c.Enabler != "" {
		parts = append(parts, "enabler: "+string(c.Enabler))
	}
	if c.RootFolderOnly {
		parts = append(parts, "in project root")
	}

	s := strings.Join(parts, ", ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func lowerAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// lowerSet lower-cases, de-duplicates and sorts in.
func lowerSet(in []string) []string {
	out := lowerAll(in)
	sort.Strings(out)
	return slices.Compact(out)
}
