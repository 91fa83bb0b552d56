package jsoncompare

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"
)

// Comparator compares value trees under one fixed Config. A Comparator is
// stateless across calls and safe to reuse; every Compare call owns a fresh
// Result. Evaluation is synchronous and purely recursive: recursion depth
// equals tree depth, and callers comparing adversarially deep or large
// documents should bound size externally.
type Comparator struct {
	cfg *Config
	// uniqueKeyNames indexes the configured unique-key paths by their final
	// segment: key name → parent paths it applies to
	uniqueKeyNames map[string][]string
}

// New creates a Comparator for the given mode. An absent or unknown mode is a
// programmer error and is rejected here rather than deferred into a finding.
func New(mode Mode, opts ...Option) (*Comparator, error) {
	if !mode.valid() {
		return nil, ErrInvalidMode
	}
	cfg := &Config{
		Mode:             mode,
		IgnorePaths:      map[string]bool{},
		IgnoreOrderPaths: map[string]bool{},
		RenamePaths:      map[string]map[string]string{},
		IgnoreValues:     map[string][]interface{}{},
		Tolerance:        map[string]time.Duration{},
		UniqueKeys:       map[string]bool{},
		StringJSONPaths:  map[string]bool{},
		MaxQuadraticLen:  DefaultMaxQuadraticLen,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Comparator{cfg: cfg, uniqueKeyNames: indexUniqueKeys(cfg.UniqueKeys)}, nil
}

// Compare walks expected and actual from the root and returns every
// discrepancy found. Both trees are read-only throughout: the comparator
// never mutates or retains them.
func (c *Comparator) Compare(expected, actual interface{}) *Result {
	result := newResult(c.cfg.IgnorePaths)
	c.compareValues(RootPath, expected, actual, result)
	if st := c.cfg.Stats; st != nil {
		st.Diffs += len(result.diffs)
		st.Missing += len(result.missed)
		st.Unexpected += len(result.extra)
	}
	return result
}

// CompareStrings decodes both sides and compares the resulting trees. A side
// that fails to decode is substituted by a synthetic single-field object so a
// malformed document surfaces as a content diff rather than an error.
func (c *Comparator) CompareStrings(expectedText, actualText string) *Result {
	et, at := strings.TrimSpace(expectedText), strings.TrimSpace(actualText)
	if et == at && (et == "" || et == "null") {
		return newResult(c.cfg.IgnorePaths)
	}

	expected, err := decodeDocument(expectedText)
	if err != nil {
		expected = parseFailure("expected")
	}
	actual, err := decodeDocument(actualText)
	if err != nil {
		actual = parseFailure("actual")
	}
	return c.Compare(expected, actual)
}

// Compare is a convenience entry point for mode-only comparisons
func Compare(expected, actual interface{}, mode Mode) (*Result, error) {
	c, err := New(mode)
	if err != nil {
		return nil, err
	}
	return c.Compare(expected, actual), nil
}

// CompareStrings is a convenience entry point for mode-only comparisons of
// JSON text
func CompareStrings(expectedText, actualText string, mode Mode) (*Result, error) {
	c, err := New(mode)
	if err != nil {
		return nil, err
	}
	return c.CompareStrings(expectedText, actualText), nil
}

func decodeDocument(text string) (interface{}, error) {
	var v interface{}
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, err
	}
	return v, nil
}

func parseFailure(side string) map[string]interface{} {
	return map[string]interface{}{"message": side + " could not be parsed"}
}

// compareValues is the value dispatcher: given two values at the same path it
// decides whether they are directly comparable, numerically equal,
// structurally recursable or divergent, and routes accordingly. The object
// and array comparators call back in for child values, producing mutual
// recursion down the tree.
func (c *Comparator) compareValues(path Path, expected, actual interface{}, result *Result) {
	if st := c.cfg.Stats; st != nil {
		st.NodesCompared++
		if d := path.depth(); d > st.MaxDepth {
			st.MaxDepth = d
		}
	}

	if m := c.matcherFor(path); m != nil {
		c.applyMatcher(m, path, expected, actual, result)
		return
	}

	switch {
	case expected == nil && actual == nil:
		return
	case expected == nil:
		// absence of expectation only fails when the mode forbids extras
		if !c.cfg.Mode.Extensible() {
			result.unexpected(path, actual)
		}
		return
	case actual == nil:
		result.missing(path, expected)
		return
	}

	if en, ok := numericValue(expected); ok {
		if an, aok := numericValue(actual); aok {
			if en != an && !c.withinTolerance(path, expected, actual) && !c.valueIgnored(path, expected) {
				result.fail(path, expected, actual)
			}
			return
		}
		result.fail(path, expected, actual)
		return
	}

	ek, ak := kindOf(expected), kindOf(actual)
	if ek != ak {
		result.fail(path, expected, actual)
		return
	}

	switch ek {
	case kindObject:
		c.compareObjects(path, expected.(map[string]interface{}), actual.(map[string]interface{}), result)
	case kindArray:
		c.compareArrays(path, expected.([]interface{}), actual.([]interface{}), result)
	case kindString:
		es, as := expected.(string), actual.(string)
		if es == as {
			return
		}
		if c.cfg.StringJSONPaths[path.String()] && c.compareEmbeddedJSON(path, es, as, result) {
			return
		}
		if c.withinTolerance(path, expected, actual) || c.valueIgnored(path, expected) {
			return
		}
		result.fail(path, expected, actual)
	case kindBool:
		if expected != actual && !c.valueIgnored(path, expected) {
			result.fail(path, expected, actual)
		}
	default:
		// values outside the decoded-JSON universe, from hand-built trees
		if !reflect.DeepEqual(expected, actual) {
			result.fail(path, expected, actual)
		}
	}
}

// compareObjects runs the two-phase key reconciliation: expected→actual with
// renames applied, then actual→expected for the unconsumed remainder when the
// mode forbids extras. Keys iterate in lexicographic order so output is
// deterministic.
func (c *Comparator) compareObjects(path Path, expected, actual map[string]interface{}, result *Result) {
	renames := c.cfg.RenamePaths[path.String()]
	consumed := make(map[string]bool, len(expected))

	for _, key := range sortedKeys(expected) {
		actualKey := key
		if to, ok := renames[key]; ok {
			actualKey = to
		}
		consumed[actualKey] = true

		child := path.Key(actualKey)
		if c.cfg.IgnorePaths[child.String()] {
			continue
		}
		if actualValue, ok := actual[actualKey]; ok {
			c.compareValues(child, expected[key], actualValue, result)
		} else {
			result.missing(child, expected[key])
		}
	}

	if c.cfg.Mode.Extensible() {
		return
	}
	for _, key := range sortedKeys(actual) {
		if consumed[key] {
			continue
		}
		if _, renamed := renames[key]; renamed {
			// the rename source may linger in actual; phase 1 already judged
			// its renamed counterpart
			continue
		}
		if _, ok := expected[key]; ok {
			continue
		}
		child := path.Key(key)
		if c.cfg.IgnorePaths[child.String()] {
			continue
		}
		result.unexpected(child, actual[key])
	}
}

// compareEmbeddedJSON descends into two differing string values that both
// look like JSON documents of the same shape. Reports whether the strings
// were handled structurally; any parse or shape failure returns false and
// leaves the caller to record a plain diff.
func (c *Comparator) compareEmbeddedJSON(path Path, expected, actual string, result *Result) bool {
	es, as := strings.TrimSpace(expected), strings.TrimSpace(actual)
	objects := delimitedBy(es, "{", "}") && delimitedBy(as, "{", "}")
	arrays := delimitedBy(es, "[", "]") && delimitedBy(as, "[", "]")
	if !objects && !arrays {
		return false
	}

	ev, err := decodeDocument(es)
	if err != nil {
		return false
	}
	av, err := decodeDocument(as)
	if err != nil {
		return false
	}

	child := path.Embedded()
	if objects {
		eo, eok := ev.(map[string]interface{})
		ao, aok := av.(map[string]interface{})
		if !eok || !aok {
			return false
		}
		c.compareObjects(child, eo, ao, result)
		return true
	}
	ea, eok := ev.([]interface{})
	aa, aok := av.([]interface{})
	if !eok || !aok {
		return false
	}
	c.compareArrays(child, ea, aa, result)
	return true
}

func delimitedBy(s, open, shut string) bool {
	return strings.HasPrefix(s, open) && strings.HasSuffix(s, shut)
}

// valueIgnored reports whether the expected value at this exact path is
// enrolled for suppression
func (c *Comparator) valueIgnored(path Path, expected interface{}) bool {
	values, ok := c.cfg.IgnoreValues[path.String()]
	if !ok {
		return false
	}
	key := valueKey(expected)
	for _, v := range values {
		if valueKey(v) == key {
			return true
		}
	}
	return false
}

// subCompare runs an independent throwaway comparison of two elements,
// used by the fallback array strategy to test candidate pairings. Stats are
// detached so probe comparisons don't pollute the caller's counters.
func (c *Comparator) subCompare(expected, actual interface{}) bool {
	sub := *c
	if c.cfg.Stats != nil {
		cfg := *c.cfg
		cfg.Stats = nil
		sub.cfg = &cfg
	}
	probe := newResult(nil)
	sub.compareValues(RootPath, expected, actual, probe)
	return probe.Passed()
}
