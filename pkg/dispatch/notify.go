package dispatch

import (
	"github.com/arthur-debert/iconrules/pkg/logging"
)

// Notifier tells the user about configuration problems found while
// publishing rule sets.
type Notifier interface {
	IgnorePatternInvalid(pattern string, err error)
}

// LogNotifier reports through the logger.
type LogNotifier struct{}

// IgnorePatternInvalid implements Notifier.
func (LogNotifier) IgnorePatternInvalid(pattern string, err error) {
	logger := logging.GetLogger("dispatch")
	logger.Warn().
		Err(err).
		Str("pattern", pattern).
		Msg("Ignored pattern is not a valid regular expression, ignore filter disabled")
}
