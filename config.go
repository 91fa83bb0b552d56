package jsoncompare

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Mode is the product of two independent switches: extensibility (may the
// actual document carry fields the expected one doesn't) and strict order
// (must arrays match positionally rather than by content).
type Mode uint8

const (
	// ModeInvalid is the zero value, rejected by New
	ModeInvalid Mode = iota
	// Strict is non-extensible with ordered arrays
	Strict
	// Lenient is extensible with unordered arrays
	Lenient
	// NonExtensible is non-extensible with unordered arrays
	NonExtensible
	// StrictOrder is extensible with ordered arrays
	StrictOrder
)

// ErrInvalidMode is returned by New when the comparison mode is absent or
// unknown. An invalid mode is a programmer error and fails fast instead of
// surfacing as a finding.
var ErrInvalidMode = errors.New("jsoncompare: invalid comparison mode")

// Extensible reports whether actual may contain fields or elements not
// present in expected without failing
func (m Mode) Extensible() bool {
	return m == Lenient || m == StrictOrder
}

// OrderMatters reports whether arrays must match by position
func (m Mode) OrderMatters() bool {
	return m == Strict || m == StrictOrder
}

func (m Mode) valid() bool {
	return m >= Strict && m <= StrictOrder
}

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	case NonExtensible:
		return "non-extensible"
	case StrictOrder:
		return "strict-order"
	default:
		return "invalid"
	}
}

// ParseMode maps the textual mode names used by rules files and the CLI back
// to a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	case "non-extensible", "non_extensible":
		return NonExtensible, nil
	case "strict-order", "strict_order":
		return StrictOrder, nil
	default:
		return ModeInvalid, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// DefaultMaxQuadraticLen bounds the arrays the O(n²) fallback strategy will
// touch. Larger arrays are reported as one opaque finding instead.
const DefaultMaxQuadraticLen = 500

// Config bundles the comparison policy for one comparator. It is assembled
// once by New through Options and never mutated during comparison. All path
// rules match the rendered Path by exact string equality, not by prefix.
type Config struct {
	// Mode selects extensibility and array ordering
	Mode Mode
	// IgnorePaths excludes subtrees from comparison entirely
	IgnorePaths map[string]bool
	// IgnoreOrderPaths compares the arrays at these paths with unordered
	// semantics even under a globally ordered mode
	IgnoreOrderPaths map[string]bool
	// RenamePaths maps a parent path to oldKey→newKey renames applied to
	// expected keys before looking them up in actual
	RenamePaths map[string]map[string]string
	// IgnoreValues suppresses findings at a path when the expected value is
	// one of the enrolled values
	IgnoreValues map[string][]interface{}
	// Tolerance allows timestamps at a path to drift by up to the bound
	Tolerance map[string]time.Duration
	// UniqueKeys declares full paths ("$.items.id") whose final segment
	// identifies array elements for order-independent matching
	UniqueKeys map[string]bool
	// StringJSONPaths enrolls string values at these paths for structural
	// comparison when both sides look like JSON documents themselves
	StringJSONPaths map[string]bool
	// Matchers are per-path extension points checked before the default
	// scalar equality rule
	Matchers []Matcher
	// MaxQuadraticLen guards the fallback array strategy; zero means the
	// default, negative disables the guard
	MaxQuadraticLen int
	// Stats, when non-nil, is populated with counters from the comparison
	Stats *Stats
}

// Option is a function that adjusts a Config, zero or more Options can be
// passed to New
type Option func(cfg *Config)

// OptionIgnorePaths excludes the subtrees at the given rendered paths
func OptionIgnorePaths(paths ...string) Option {
	return func(cfg *Config) {
		for _, p := range paths {
			cfg.IgnorePaths[p] = true
		}
	}
}

// OptionIgnoreOrderPaths relaxes array ordering at the given paths
func OptionIgnoreOrderPaths(paths ...string) Option {
	return func(cfg *Config) {
		for _, p := range paths {
			cfg.IgnoreOrderPaths[p] = true
		}
	}
}

// OptionRenameKey maps an expected key under parentPath to the name it
// carries in the actual document
func OptionRenameKey(parentPath, from, to string) Option {
	return func(cfg *Config) {
		renames, ok := cfg.RenamePaths[parentPath]
		if !ok {
			renames = map[string]string{}
			cfg.RenamePaths[parentPath] = renames
		}
		renames[from] = to
	}
}

// OptionIgnoreValues suppresses findings at path when the expected value is
// one of values
func OptionIgnoreValues(path string, values ...interface{}) Option {
	return func(cfg *Config) {
		cfg.IgnoreValues[path] = append(cfg.IgnoreValues[path], values...)
	}
}

// OptionTolerance tolerates timestamp drift at path within bound
func OptionTolerance(path string, bound time.Duration) Option {
	return func(cfg *Config) {
		cfg.Tolerance[path] = bound
	}
}

// OptionUniqueKeys declares configured identity fields for arrays of objects,
// as full paths of the form "$.items.id"
func OptionUniqueKeys(paths ...string) Option {
	return func(cfg *Config) {
		for _, p := range paths {
			cfg.UniqueKeys[p] = true
		}
	}
}

// OptionStringJSONPaths enrolls paths for embedded-JSON string comparison
func OptionStringJSONPaths(paths ...string) Option {
	return func(cfg *Config) {
		for _, p := range paths {
			cfg.StringJSONPaths[p] = true
		}
	}
}

// OptionMatcher registers a custom matcher for the exact rendered path
func OptionMatcher(path string, fn MatchFunc) Option {
	return func(cfg *Config) {
		cfg.Matchers = append(cfg.Matchers, Matcher{Path: path, Match: fn})
	}
}

// OptionMaxQuadraticLen sets the size guard for the fallback array strategy
func OptionMaxQuadraticLen(n int) Option {
	return func(cfg *Config) {
		cfg.MaxQuadraticLen = n
	}
}

// OptionSetStats will populate the passed-in stats pointer during comparison
func OptionSetStats(st *Stats) Option {
	return func(cfg *Config) {
		cfg.Stats = st
	}
}
