package jsoncompare

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToleranceDatetimeStrings(t *testing.T) {
	c := mustComparator(t, Strict, OptionTolerance("$.ts", time.Minute))

	result := c.CompareStrings(
		`{"ts":"2024-05-01 10:00:00"}`,
		`{"ts":"2024-05-01 10:00:30"}`,
	)
	assert.True(t, result.Passed(), result.Message())

	// symmetric: actual may run ahead or behind
	result = c.CompareStrings(
		`{"ts":"2024-05-01 10:00:30"}`,
		`{"ts":"2024-05-01 10:00:00"}`,
	)
	assert.True(t, result.Passed(), result.Message())

	// exactly at the bound still passes
	result = c.CompareStrings(
		`{"ts":"2024-05-01 10:00:00"}`,
		`{"ts":"2024-05-01 10:01:00"}`,
	)
	assert.True(t, result.Passed(), result.Message())

	// past the bound the diff stands
	result = c.CompareStrings(
		`{"ts":"2024-05-01 10:00:00"}`,
		`{"ts":"2024-05-01 10:01:01"}`,
	)
	require.Len(t, result.Diffs(), 1)
	assert.Equal(t, "$.ts", result.Diffs()[0].Path)
}

func TestTolerancePackedDigits(t *testing.T) {
	c := mustComparator(t, Strict, OptionTolerance("$.ts", time.Minute))

	result := c.CompareStrings(`{"ts":"20240501100000"}`, `{"ts":"20240501100030"}`)
	assert.True(t, result.Passed(), result.Message())

	result = c.CompareStrings(`{"ts":"20240501100000"}`, `{"ts":"20240501100201"}`)
	assert.True(t, result.Failed())
}

func TestToleranceFormatMismatch(t *testing.T) {
	// both sides must parse under the format detected from expected
	c := mustComparator(t, Strict, OptionTolerance("$.ts", time.Hour))

	result := c.CompareStrings(
		`{"ts":"2024-05-01 10:00:00"}`,
		`{"ts":"20240501100000"}`,
	)
	assert.True(t, result.Failed())
}

func TestToleranceEpochMillis(t *testing.T) {
	c := mustComparator(t, Strict, OptionTolerance("$.ts", time.Minute))

	result := c.CompareStrings(`{"ts":1700000000000}`, `{"ts":1700000030000}`)
	assert.True(t, result.Passed(), result.Message())

	result = c.CompareStrings(`{"ts":1700000000000}`, `{"ts":1700000061000}`)
	assert.True(t, result.Failed())
}

func TestToleranceIgnoresOrdinaryNumbers(t *testing.T) {
	// numbers outside the plausible epoch-millisecond window are quantities,
	// not clocks, even at an enrolled path
	c := mustComparator(t, Strict, OptionTolerance("$.n", time.Hour))

	result := c.CompareStrings(`{"n":5}`, `{"n":6}`)
	require.Len(t, result.Diffs(), 1)
	assert.Equal(t, "$.n", result.Diffs()[0].Path)
}

func TestToleranceOnlyAtEnrolledPath(t *testing.T) {
	c := mustComparator(t, Strict, OptionTolerance("$.ts", time.Hour))

	result := c.CompareStrings(
		`{"other":"2024-05-01 10:00:00"}`,
		`{"other":"2024-05-01 10:00:01"}`,
	)
	assert.True(t, result.Failed())
}

func TestToleranceNonTimestampStrings(t *testing.T) {
	c := mustComparator(t, Strict, OptionTolerance("$.ts", time.Hour))

	result := c.CompareStrings(`{"ts":"yesterday"}`, `{"ts":"today"}`)
	assert.True(t, result.Failed())
}

func TestTimeLayoutDetection(t *testing.T) {
	assert.Equal(t, "2006-01-02 15:04:05", timeLayout("2024-05-01 10:00:00"))
	assert.Equal(t, "20060102150405", timeLayout("20240501100000"))
	assert.Equal(t, "", timeLayout("2024-05-01T10:00:00Z"))
	assert.Equal(t, "", timeLayout("19990501100000"))
	assert.Equal(t, "", timeLayout("nope"))
}
