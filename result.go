package jsoncompare

import (
	"fmt"
	"strings"
)

// Finding is one recorded discrepancy with its path and values. A nil
// Expected denotes a value unexpected in actual, a nil Actual denotes a value
// missing from actual, both set denote a value mismatch.
type Finding struct {
	Path     string      `json:"path"`
	Expected interface{} `json:"expected,omitempty"`
	Actual   interface{} `json:"actual,omitempty"`
}

// Result accumulates the findings of one comparison. Each top-level compare
// call owns its Result exclusively; it is never reused across calls. Findings
// whose path is enrolled in IgnorePaths are filtered at insertion time and
// never recorded.
type Result struct {
	diffs   []Finding
	missed  []Finding
	extra   []Finding
	message strings.Builder
	ignore  map[string]bool
}

func newResult(ignore map[string]bool) *Result {
	return &Result{ignore: ignore}
}

// Passed reports whether the comparison recorded no findings
func (r *Result) Passed() bool {
	return len(r.diffs) == 0 && len(r.missed) == 0 && len(r.extra) == 0
}

// Failed reports whether the comparison recorded any finding
func (r *Result) Failed() bool {
	return !r.Passed()
}

// Diffs lists the value-mismatch findings in recording order. The returned
// slice is shared; treat it as read-only.
func (r *Result) Diffs() []Finding {
	return r.diffs
}

// Missing lists the expected values absent from the actual document
func (r *Result) Missing() []Finding {
	return r.missed
}

// Unexpected lists the actual values with no counterpart in expected
func (r *Result) Unexpected() []Finding {
	return r.extra
}

// Message renders one consolidated text block per finding in recording order,
// joined by " ; "
func (r *Result) Message() string {
	return r.message.String()
}

func (r *Result) String() string {
	return r.Message()
}

func (r *Result) fail(path Path, expected, actual interface{}) {
	p := path.String()
	if r.ignore[p] {
		return
	}
	r.diffs = append(r.diffs, Finding{Path: p, Expected: expected, Actual: actual})
	r.append(p + "\nExpected: " + describe(expected) + "\n     got: " + describe(actual) + "\n")
}

func (r *Result) missing(path Path, expected interface{}) {
	p := path.String()
	if r.ignore[p] {
		return
	}
	r.missed = append(r.missed, Finding{Path: p, Expected: expected})
	r.append(p + "\nExpected: " + describe(expected) + "\n     but none found\n")
}

func (r *Result) unexpected(path Path, actual interface{}) {
	p := path.String()
	if r.ignore[p] {
		return
	}
	r.extra = append(r.extra, Finding{Path: p, Actual: actual})
	r.append(p + "\nUnexpected: " + describe(actual) + "\n")
}

func (r *Result) append(block string) {
	if r.message.Len() > 0 {
		r.message.WriteString(" ; ")
	}
	r.message.WriteString(block)
}

// describe renders a value for diagnostic output. Composite values are
// summarized generically, scalars use their natural string form.
func describe(v interface{}) string {
	switch kindOf(v) {
	case kindObject:
		return "a JSON object"
	case kindArray:
		return "a JSON array"
	case kindNull:
		return "null"
	default:
		return fmt.Sprintf("%v", v)
	}
}
