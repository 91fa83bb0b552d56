package jsoncompare

import (
	"regexp"
	"time"
)

// temporal tolerance: a per-path bound under which two timestamps are
// considered equivalent. Both sides must parse under the same detected
// format; when either side doesn't, the raw inequality stands.

var (
	datetimeStringRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	packedDigitsRe   = regexp.MustCompile(`^20\d{12}$`)
)

// plausible epoch-millisecond window for numeric timestamps, roughly
// 2011..2033. Numbers outside it are ordinary quantities, not clocks.
const (
	epochMillisMin = 1_300_000_000_000
	epochMillisMax = 2_000_000_000_000
)

// withinTolerance reports whether the configured bound for this exact path
// classifies both values as timestamps within the allowed drift
func (c *Comparator) withinTolerance(path Path, expected, actual interface{}) bool {
	bound, ok := c.cfg.Tolerance[path.String()]
	if !ok {
		return false
	}

	if es, ok := expected.(string); ok {
		as, ok := actual.(string)
		if !ok {
			return false
		}
		layout := timeLayout(es)
		if layout == "" {
			return false
		}
		et, err := time.Parse(layout, es)
		if err != nil {
			return false
		}
		at, err := time.Parse(layout, as)
		if err != nil {
			return false
		}
		return absDuration(et.Sub(at)) <= bound
	}

	en, ok := numericValue(expected)
	if !ok {
		return false
	}
	an, ok := numericValue(actual)
	if !ok {
		return false
	}
	if !plausibleEpochMillis(en) || !plausibleEpochMillis(an) {
		return false
	}
	drift := time.Duration(en-an) * time.Millisecond
	return absDuration(drift) <= bound
}

// timeLayout detects the shared format of a timestamp string; "" means the
// string is not a timestamp this engine understands
func timeLayout(s string) string {
	switch {
	case datetimeStringRe.MatchString(s):
		return "2006-01-02 15:04:05"
	case packedDigitsRe.MatchString(s):
		return "20060102150405"
	default:
		return ""
	}
}

func plausibleEpochMillis(v float64) bool {
	return v > epochMillisMin && v < epochMillisMax
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
