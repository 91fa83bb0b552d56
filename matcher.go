package jsoncompare

import (
	"errors"
	"fmt"
)

// MatchFunc judges the pair of values at a path. A nil return means the pair
// is equivalent; any error records a diff finding. Returning a *MatchError
// controls which expected/actual values the finding carries.
type MatchFunc func(path string, expected, actual interface{}) error

// Matcher binds a MatchFunc to one exact rendered path. Registered matchers
// are consulted before every default comparison rule, including structural
// recursion, so a matcher fully owns its path.
type Matcher struct {
	Path  string
	Match MatchFunc
}

// MatchError reports a matcher failure together with the values the
// resulting finding should carry. A failing matcher never aborts the rest of
// the tree comparison; it only contributes a finding.
type MatchError struct {
	Expected interface{}
	Actual   interface{}
	Reason   string
}

func (e *MatchError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("expected %v, got %v", e.Expected, e.Actual)
}

func (c *Comparator) matcherFor(path Path) *Matcher {
	p := path.String()
	for i := range c.cfg.Matchers {
		if c.cfg.Matchers[i].Path == p {
			return &c.cfg.Matchers[i]
		}
	}
	return nil
}

func (c *Comparator) applyMatcher(m *Matcher, path Path, expected, actual interface{}, result *Result) {
	err := m.Match(path.String(), expected, actual)
	if err == nil {
		return
	}
	var matchErr *MatchError
	if errors.As(err, &matchErr) {
		result.fail(path, matchErr.Expected, matchErr.Actual)
		return
	}
	result.fail(path, expected, actual)
}
