// Package watch reloads settings when the settings files or the installed
// icon packs change on disk.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/iconrules/pkg/config"
	"github.com/arthur-debert/iconrules/pkg/dispatch"
	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/logging"
	"github.com/arthur-debert/iconrules/pkg/paths"
	"github.com/arthur-debert/iconrules/pkg/rules"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce groups the bursts of events editors produce on save.
const DefaultDebounce = 200 * time.Millisecond

// Targets are the paths a Watcher follows.
type Targets struct {
	// Files trigger a reload when they are written, created, removed or
	// renamed. Their directories are watched, so files may not exist yet.
	Files []string
	// Dirs trigger a reload on any change of an entry.
	Dirs []string
}

// SettingsTargets returns the IDE settings file, the project settings
// file when projectBase is set, and the icon packs directory.
func SettingsTargets(projectBase string) Targets {
	t := Targets{
		Files: []string{paths.SettingsPath()},
		Dirs:  []string{paths.PacksPath()},
	}
	if projectBase != "" {
		t.Files = append(t.Files, paths.ProjectSettingsPath(projectBase))
	}
	return t
}

// Watcher calls a reload function after changes to its targets.
type Watcher struct {
	targets  Targets
	reload   func() error
	debounce time.Duration
	logger   zerolog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before reloading.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// New returns a Watcher calling reload after changes to targets.
func New(targets Targets, reload func() error, opts ...Option) *Watcher {
	w := &Watcher{
		targets:  targets,
		reload:   reload,
		debounce: DefaultDebounce,
		logger:   logging.GetLogger("watch"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is done. Reload failures are logged and watching
// goes on.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrWatch, "failed to create file watcher")
	}
	defer func() { _ = fw.Close() }()

	files := make(map[string]struct{}, len(w.targets.Files))
	dirs := make(map[string]struct{})
	for _, f := range w.targets.Files {
		f = filepath.Clean(f)
		files[f] = struct{}{}
		dirs[filepath.Dir(f)] = struct{}{}
	}
	watchedDirs := make(map[string]struct{}, len(w.targets.Dirs))
	for _, d := range w.targets.Dirs {
		d = filepath.Clean(d)
		watchedDirs[d] = struct{}{}
		dirs[d] = struct{}{}
	}

	added := 0
	for d := range dirs {
		if _, err := os.Stat(d); err != nil {
			w.logger.Debug().Str("dir", d).Msg("Not watching missing directory")
			continue
		}
		if err := fw.Add(d); err != nil {
			return errors.Wrapf(err, errors.ErrWatch, "failed to watch %s", d).WithDetail("dir", d)
		}
		added++
	}
	if added == 0 {
		return errors.New(errors.ErrWatch, "none of the watched directories exist")
	}
	w.logger.Info().Int("dirs", added).Msg("Watching settings")

	relevant := func(name string) bool {
		name = filepath.Clean(name)
		if _, ok := files[name]; ok {
			return true
		}
		_, ok := watchedDirs[filepath.Dir(name)]
		return ok
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod || !relevant(ev.Name) {
				continue
			}
			w.logger.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("Settings changed")
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("File watcher error")
		case <-timer.C:
			if err := w.reload(); err != nil {
				w.logger.Error().Err(err).Msg("Reload failed, keeping previous rules")
				continue
			}
			w.logger.Info().Msg("Settings reloaded")
		}
	}
}

// Republish returns a reload function loading the settings of projectBase
// and publishing them, over bundled, to e.
func Republish(e *dispatch.Engine, projectBase string, bundled []rules.Rule, opts ...config.Option) func() error {
	return func() error {
		s, err := config.Load(projectBase, opts...)
		if err != nil {
			return err
		}
		e.Publish(s.Sources(bundled))
		return nil
	}
}
