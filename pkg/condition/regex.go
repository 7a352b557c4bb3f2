package condition

import (
	"sync"
	"time"

	"github.com/arthur-debert/iconrules/pkg/errors"
	"github.com/arthur-debert/iconrules/pkg/logging"
	"github.com/dlclark/regexp2"
)

// MatchTimeout bounds a single regular expression match.
const MatchTimeout = 250 * time.Millisecond

type compiled struct {
	re  *regexp2.Regexp
	err error
}

// patterns caches compiled expressions by source. Two goroutines may
// compile the same expression; the first stored result wins.
var patterns sync.Map

// compile returns the full-match pattern for expr. Failures are cached
// too so a malformed expression is reported without recompiling.
func compile(expr string) (*regexp2.Regexp, error) {
	if v, ok := patterns.Load(expr); ok {
		c := v.(*compiled)
		return c.re, c.err
	}

	c := &compiled{}
	re, err := regexp2.Compile(`\A(?:`+expr+`)\z`, regexp2.None)
	if err != nil {
		c.err = errors.Wrapf(err, errors.ErrRegexCompile, "invalid regular expression %q", expr).
			WithDetail("regex", expr)
		logger := logging.GetLogger("condition")
		logger.Warn().Err(err).Str("regex", expr).Msg("Cannot compile condition regex")
	} else {
		re.MatchTimeout = MatchTimeout
		c.re = re
	}

	v, _ := patterns.LoadOrStore(expr, c)
	c = v.(*compiled)
	return c.re, c.err
}

// CheckRegex reports whether expr compiles.
func CheckRegex(expr string) error {
	_, err := compile(expr)
	return err
}
