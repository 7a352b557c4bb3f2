package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/iconrules/pkg/catalog"
	"github.com/arthur-debert/iconrules/pkg/config"
	"github.com/arthur-debert/iconrules/pkg/dispatch"
	"github.com/arthur-debert/iconrules/pkg/enablers"
	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/facets"
	"github.com/arthur-debert/iconrules/pkg/filesystem"
	"github.com/arthur-debert/iconrules/pkg/logging"
)

// runtime is a loaded project: settings, a published engine and the
// project context lookups run against.
type runtime struct {
	base     string
	settings *config.Settings
	engine   *dispatch.Engine
	project  dispatch.Project
}

func (o *options) projectBase() (string, error) {
	base := o.project
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "failed to get working directory")
		}
		base = wd
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid project path %s", base)
	}
	return abs, nil
}

func (o *options) configOptions() []config.Option {
	var opts []config.Option
	if o.ignore != "" {
		opts = append(opts, config.WithOverrides(map[string]interface{}{
			config.KeyIgnoredPattern: o.ignore,
		}))
	}
	if len(o.disabled) > 0 {
		opts = append(opts, config.WithDisabledIDs(o.disabled...))
	}
	return opts
}

func (o *options) loadSettings() (string, *config.Settings, error) {
	base, err := o.projectBase()
	if err != nil {
		return "", nil, err
	}
	s, err := config.Load(base, o.configOptions()...)
	if err != nil {
		return "", nil, err
	}
	return base, s, nil
}

// load reads the settings, publishes the bundled and user rules and
// initialises the project enablers.
func (o *options) load(ctx context.Context) (*runtime, error) {
	logger := logging.GetLogger("cli")

	base, s, err := o.loadSettings()
	if err != nil {
		return nil, err
	}
	bundled, err := catalog.Rules()
	if err != nil {
		return nil, err
	}

	e := dispatch.New(dispatch.WithUIType(s.UIType()))
	e.Publish(s.Sources(bundled))

	fs := filesystem.NewOS()
	set := enablers.NewSet(fs, base)
	if err := set.InitAll(ctx); err != nil {
		// Enablers that failed answer false; lookups still work.
		logger.Warn().Err(err).Msg("Some enablers failed to initialise")
	}
	detector := facets.NewDetector(fs, base, s.Facets()...)
	if err := detector.Detect(ctx); err != nil {
		return nil, err
	}

	return &runtime{
		base:     base,
		settings: s,
		engine:   e,
		project:  dispatch.NewProject(base, detector, set),
	}, nil
}
