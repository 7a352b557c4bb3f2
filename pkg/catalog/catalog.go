// Package catalog holds the bundled icon rules. The catalog is an
// embedded TOML document decoded once, on first use.
package catalog

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/logging"
	"github.com/arthur-debert/iconrules/pkg/rules"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/catalog.toml
var catalogTOML []byte

type document struct {
	Rules []rules.Spec `toml:"rules"`
}

var (
	once    sync.Once
	bundled []rules.Rule
	loadErr error
)

// Rules returns the bundled rules in catalog order. The slice is a copy;
// the rules themselves must be treated as read-only.
func Rules() ([]rules.Rule, error) {
	once.Do(func() {
		logger := logging.GetLogger("catalog")
		done := logging.LogOperationStart(logger, "load catalog")
		defer done()

		bundled, loadErr = Parse(catalogTOML)
		if loadErr == nil {
			logger.Debug().Int("rules", len(bundled)).Msg("Bundled catalog loaded")
		}
	})
	if loadErr != nil {
		return nil, loadErr
	}
	out := make([]rules.Rule, len(bundled))
	copy(out, bundled)
	return out, nil
}

// MustRules is Rules for callers that cannot proceed without the catalog.
func MustRules() []rules.Rule {
	r, err := Rules()
	if err != nil {
		panic(err)
	}
	return r
}

// Source returns the embedded catalog document.
func Source() []byte {
	return bytes.Clone(catalogTOML)
}

// Parse decodes and validates a catalog document. Unknown keys are
// rejected.
func Parse(data []byte) ([]rules.Rule, error) {
	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrCatalogLoad, "cannot decode rule catalog")
	}

	out, err := rules.BuildAll(doc.Rules, "")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCatalogLoad, "invalid rule catalog")
	}
	return out, nil
}
