package jsoncompare

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// finding categories render with diff-style markers: "~" for a value
// mismatch, "-" for a value missing from actual, "+" for a value actual
// carries unexpectedly
const (
	opDiff       = "~"
	opMissing    = "-"
	opUnexpected = "+"
)

// FormatPrettyString is a convenience wrapper that outputs to a string
// instead of an io.Writer
func FormatPrettyString(result *Result, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, result, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report of every finding to w, one line per
// finding. if colorTTY is true it will add
// red "-" for values missing from actual
// green "+" for values unexpected in actual
// blue "~" for value mismatches
func FormatPretty(w io.Writer, result *Result, colorTTY bool) error {
	var colorMap map[string]string
	if colorTTY {
		colorMap = map[string]string{
			"close": "\x1b[0m", // end color tag

			opUnexpected: "\x1b[32m", // green
			opMissing:    "\x1b[31m", // red
			opDiff:       "\x1b[34m", // blue
		}
	}

	for _, f := range result.Missing() {
		if err := formatFinding(w, opMissing, f.Path, f.Expected, colorMap); err != nil {
			return err
		}
	}
	for _, f := range result.Unexpected() {
		if err := formatFinding(w, opUnexpected, f.Path, f.Actual, colorMap); err != nil {
			return err
		}
	}
	for _, f := range result.Diffs() {
		if err := formatDiff(w, f, colorMap); err != nil {
			return err
		}
	}
	return nil
}

func formatFinding(w io.Writer, op, path string, value interface{}, colorMap map[string]string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s%s %s: %s%s\n", colorMap[op], op, path, data, colorMap["close"])
	return err
}

func formatDiff(w io.Writer, f Finding, colorMap map[string]string) error {
	expected, err := json.Marshal(f.Expected)
	if err != nil {
		return err
	}
	actual, err := json.Marshal(f.Actual)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s%s %s: %s => %s%s\n", colorMap[opDiff], opDiff, f.Path, expected, actual, colorMap["close"])
	return err
}

// FormatStats prints a one-line summary of comparison stats
func FormatStats(st *Stats) string {
	if st == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d %s. %d %s. %d %s. %d %s compared.\n",
		st.Diffs, plural(st.Diffs, "diff", "diffs"),
		st.Missing, plural(st.Missing, "missing", "missing"),
		st.Unexpected, plural(st.Unexpected, "unexpected", "unexpected"),
		st.NodesCompared, plural(st.NodesCompared, "node", "nodes"),
	)
}

func plural(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
