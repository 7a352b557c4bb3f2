package condition

import (
	"slices"
	"strings"

	"github.com/arthur-debert/iconrules/pkg/enablers"
	"github.com/arthur-debert/iconrules/pkg/facets"
)

// Project is the project context a condition may consult.
type Project interface {
	BasePath() string
	Enabler(t enablers.Type) (enablers.Enabler, bool)
}

// Input is the lower-cased description of the path being decorated.
type Input struct {
	ParentName string
	FileName   string
	// FullPath uses forward slashes. Empty means unknown.
	FullPath string
	Facets   facets.Set
	// Project may be nil.
	Project Project
}

// Evaluate reports whether the condition holds for in. The only error is
// a regular expression that does not compile.
func (c Condition) Evaluate(in Input) (bool, error) {
	if c.Disabled {
		return false, nil
	}

	if c.RootFolderOnly {
		if in.FullPath == "" || in.Project == nil {
			return false, nil
		}
		if !strings.EqualFold(in.FullPath, in.Project.BasePath()+"/"+in.FileName) {
			return false, nil
		}
	}

	if c.Enabler != "" && in.FullPath != "" && in.Project != nil {
		if e, ok := in.Project.Enabler(c.Enabler); ok {
			if !e.Verify(in.FullPath) {
				return false, nil
			}
			if e.Terminal() {
				return true, nil
			}
		}
	}

	// Facets narrow the other aspects and never match on their own.
	if len(c.Facets) > 0 {
		found := false
		for _, f := range c.Facets {
			if in.Facets.Has(f) {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}

	if c.CheckParent {
		inParent := slices.Contains(c.ParentNames, in.ParentName)
		if !(c.MatchPrefix || c.MatchExact || c.MatchSuffix || c.MatchOptionalSuffix) {
			if inParent {
				return true, nil
			}
		} else if !inParent {
			return false, nil
		}
	}

	if c.HasRegex() && in.FullPath != "" {
		re, err := compile(c.Regex)
		if err != nil {
			return false, err
		}
		matched, err := re.MatchString(in.FullPath)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}

	name := in.FileName

	if c.MatchExact {
		for _, n := range c.Names {
			switch {
			case c.MatchSuffix:
				if hasNameWithExt(name, n, c.Extensions) {
					return true, nil
				}
			case c.MatchOptionalSuffix:
				if name == n || hasNameWithExt(name, n, c.Extensions) {
					return true, nil
				}
			default:
				if name == n {
					return true, nil
				}
			}
		}
	}

	if c.MatchPrefix {
		for _, n := range c.Names {
			if !strings.HasPrefix(name, n) {
				continue
			}
			switch {
			case c.MatchSuffix:
				if hasAnySuffix(name, c.Extensions) {
					return true, nil
				}
			case c.MatchOptionalSuffix:
				return true, nil
			case c.ExcludeDotted:
				if !strings.Contains(name, ".") {
					return true, nil
				}
			default:
				return true, nil
			}
		}
	}

	if c.MatchSuffix && !c.MatchExact && !c.MatchPrefix {
		if hasAnySuffix(name, c.Extensions) {
			return true, nil
		}
	}

	return false, nil
}

func hasNameWithExt(name, base string, exts []string) bool {
	for _, e := range exts {
		if name == base+e {
			return true
		}
	}
	return false
}

func hasAnySuffix(name string, exts []string) bool {
	for _, e := range exts {
		if strings.HasSuffix(name, e) {
			return true
		}
	}
	return false
}
