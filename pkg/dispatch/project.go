package dispatch

import (
	"strings"

	"github.com/arthur-debert/iconrules/pkg/condition"
	"github.com/arthur-debert/iconrules/pkg/enablers"
	"github.com/arthur-debert/iconrules/pkg/facets"
)

// Project is the project context of a lookup.
type Project interface {
	condition.Project
	Facets() facets.Set
}

type project struct {
	base     string
	facets   facets.Source
	enablers *enablers.Set
}

// NewProject returns the standard Project. facetSource and enablerSet may
// be nil.
func NewProject(basePath string, facetSource facets.Source, enablerSet *enablers.Set) Project {
	base := strings.TrimSuffix(strings.ReplaceAll(basePath, `\`, "/"), "/")
	return &project{base: base, facets: facetSource, enablers: enablerSet}
}

func (p *project) BasePath() string { return p.base }

func (p *project) Facets() facets.Set {
	if p.facets == nil {
		return nil
	}
	return p.facets.Facets()
}

func (p *project) Enabler(t enablers.Type) (enablers.Enabler, bool) {
	return p.enablers.Get(t)
}
