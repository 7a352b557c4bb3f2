package testutil

import (
	"context"

	"github.com/arthur-debert/iconrules/pkg/enablers"
	"github.com/arthur-debert/iconrules/pkg/facets"
	"github.com/stretchr/testify/mock"
)

// MockEnabler is a testify mock of enablers.Enabler.
type MockEnabler struct {
	mock.Mock
}

func (m *MockEnabler) Init(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEnabler) Verify(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *MockEnabler) Terminal() bool {
	args := m.Called()
	return args.Bool(0)
}

// FuncEnabler adapts plain functions to enablers.Enabler.
type FuncEnabler struct {
	VerifyFunc func(path string) bool
	IsTerminal bool
}

func (f FuncEnabler) Init(context.Context) error { return nil }

func (f FuncEnabler) Verify(path string) bool {
	if f.VerifyFunc != nil {
		return f.VerifyFunc(path)
	}
	return false
}

func (f FuncEnabler) Terminal() bool { return f.IsTerminal }

// Project is a fixed project context.
type Project struct {
	Base        string
	FacetSet    facets.Set
	EnablersSet map[enablers.Type]enablers.Enabler
}

// NewProject returns a Project rooted at base with the given facets.
func NewProject(base string, facetNames ...string) *Project {
	return &Project{
		Base:        base,
		FacetSet:    facets.NewSet(facetNames...),
		EnablersSet: make(map[enablers.Type]enablers.Enabler),
	}
}

// WithEnabler installs e for type t.
func (p *Project) WithEnabler(t enablers.Type, e enablers.Enabler) *Project {
	p.EnablersSet[t] = e
	return p
}

func (p *Project) BasePath() string { return p.Base }

func (p *Project) Facets() facets.Set { return p.FacetSet }

func (p *Project) Enabler(t enablers.Type) (enablers.Enabler, bool) {
	e, ok := p.EnablersSet[t]
	return e, ok
}
