package dispatch

import (
	"sync/atomic"
	"time"

	"github.com/arthur-debert/iconrules/pkg/condition"
	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/iconref"
	"github.com/arthur-debert/iconrules/pkg/logging"
	"github.com/arthur-debert/iconrules/pkg/paths"
	"github.com/arthur-debert/iconrules/pkg/rules"
	"github.com/arthur-debert/iconrules/pkg/ruleset"
	"github.com/dlclark/regexp2"
	"github.com/rs/zerolog"
)

// Option configures an Engine.
type Option func(*Engine)

// WithGate installs the capability check run before every lookup. A gate
// answering false turns every lookup into a miss.
func WithGate(gate func() bool) Option {
	return func(e *Engine) { e.gate = gate }
}

// WithNotifier replaces the default LogNotifier.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithUIType selects the UI flavour bundled rules are filtered for.
func WithUIType(ui rules.UIType) Option {
	return func(e *Engine) { e.ui = ui }
}

type snapshot struct {
	files   *ruleset.Set
	folders *ruleset.Set
	ignore  *regexp2.Regexp
}

func (s *snapshot) set(kind rules.Kind) *ruleset.Set {
	switch kind {
	case rules.KindFile:
		return s.files
	case rules.KindFolder:
		return s.folders
	default:
		return nil
	}
}

// Engine resolves icons against published rule sets. It is safe for
// concurrent use.
type Engine struct {
	gate     func() bool
	notifier Notifier
	ui       rules.UIType

	snap atomic.Pointer[snapshot]

	lookups     atomic.Uint64
	checksDone  atomic.Uint64
	checksSaved atomic.Uint64

	logger zerolog.Logger
	faults zerolog.Logger
}

// New returns an Engine with nothing published. Lookups miss until the
// first Publish.
func New(opts ...Option) *Engine {
	logger := logging.GetLogger("dispatch")
	e := &Engine{
		notifier: LogNotifier{},
		logger:   logger,
		faults:   logger.Sample(&zerolog.BurstSampler{Burst: 10, Period: time.Minute}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Publish assembles the file and folder sets from src and makes them
// visible to subsequent lookups.
func (e *Engine) Publish(src ruleset.Sources) {
	done := logging.LogOperationStart(e.logger, "publish rule sets")
	defer done()

	s := &snapshot{
		files:   ruleset.Assemble(src, rules.KindFile, e.ui),
		folders: ruleset.Assemble(src, rules.KindFolder, e.ui),
	}
	if pattern := src.Settings().IgnoredPattern; pattern != "" {
		re, err := compileIgnore(pattern)
		if err != nil {
			e.notifier.IgnorePatternInvalid(pattern, err)
		} else {
			s.ignore = re
		}
	}
	e.snap.Store(s)

	e.logger.Info().
		Int("fileRules", s.files.Len()).
		Int("folderRules", s.folders.Len()).
		Bool("ignoreFilter", s.ignore != nil).
		Msg("Rule sets published")
}

func compileIgnore(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(`\A(?:`+pattern+`)\z`, regexp2.None)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRegexCompile, "invalid ignored pattern %q", pattern)
	}
	re.MatchTimeout = condition.MatchTimeout
	return re, nil
}

// Rules returns the published rules of kind, in evaluation order.
func (e *Engine) Rules(kind rules.Kind) []rules.Rule {
	s := e.snap.Load()
	if s == nil {
		return nil
	}
	return s.set(kind).Rules()
}

// ResolveIcon returns the icon of the first rule of kind matching path.
// ok is false when no rule applies, when there is no project, when the
// path is ignored or when the gate refuses the lookup.
func (e *Engine) ResolveIcon(path string, kind rules.Kind, project Project) (ref iconref.Ref, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.faults.Error().
				Interface("panic", r).
				Str("path", path).
				Msg("Icon lookup failed")
			ref, ok = iconref.Ref{}, false
		}
	}()

	if e.gate != nil && !e.gate() {
		return iconref.Ref{}, false
	}
	n := e.lookups.Add(1)
	defer e.logStats(n)

	if project == nil {
		return iconref.Ref{}, false
	}
	s := e.snap.Load()
	if s == nil {
		return iconref.Ref{}, false
	}
	if e.ignored(s, project, path) {
		return iconref.Ref{}, false
	}
	set := s.set(kind)
	if set.Len() == 0 {
		return iconref.Ref{}, false
	}

	parent, name, full := paths.Split(path)
	in := condition.Input{
		ParentName: parent,
		FileName:   name,
		FullPath:   full,
		Facets:     project.Facets(),
		Project:    project,
	}

	var done, saved uint64
	defer func() {
		e.checksDone.Add(done)
		e.checksSaved.Add(saved)
	}()

	lastFailed := -1
	for i := 0; i < set.Len(); i++ {
		group := set.Group(i)
		if group == lastFailed {
			saved++
			continue
		}
		done++
		r := set.At(i)
		if e.matches(r, in) {
			return r.Icon, true
		}
		lastFailed = group
	}
	return iconref.Ref{}, false
}

// matches evaluates one rule. Errors and panics make the rule fail.
func (e *Engine) matches(r *rules.Rule, in condition.Input) (matched bool) {
	defer func() {
		if rec := recover(); rec != nil {
			e.faults.Warn().
				Str("rule", r.ID).
				Interface("panic", rec).
				Str("path", in.FullPath).
				Msg("Rule evaluation panicked, treating rule as non-matching")
			matched = false
		}
	}()

	ok, err := r.Matches(in)
	if err != nil {
		e.faults.Warn().
			Err(err).
			Str("rule", r.ID).
			Str("path", in.FullPath).
			Msg("Rule evaluation failed, treating rule as non-matching")
		return false
	}
	return ok
}

func (e *Engine) ignored(s *snapshot, project Project, path string) bool {
	if s.ignore == nil {
		return false
	}
	rel, ok := paths.RelativeTo(project.BasePath(), path)
	if !ok {
		return false
	}
	matched, err := s.ignore.MatchString(rel)
	if err != nil {
		e.faults.Warn().Err(err).Str("path", rel).Msg("Ignored pattern evaluation failed")
		return false
	}
	return matched
}
