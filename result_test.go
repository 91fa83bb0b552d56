package jsoncompare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCategories(t *testing.T) {
	r := newResult(nil)
	assert.True(t, r.Passed())
	assert.False(t, r.Failed())

	r.fail(RootPath.Key("a"), 1, 2)
	r.missing(RootPath.Key("b"), "gone")
	r.unexpected(RootPath.Key("c"), true)

	assert.True(t, r.Failed())
	require.Len(t, r.Diffs(), 1)
	require.Len(t, r.Missing(), 1)
	require.Len(t, r.Unexpected(), 1)
	assert.Equal(t, Finding{Path: "$.a", Expected: 1, Actual: 2}, r.Diffs()[0])
	assert.Equal(t, Finding{Path: "$.b", Expected: "gone"}, r.Missing()[0])
	assert.Equal(t, Finding{Path: "$.c", Actual: true}, r.Unexpected()[0])
}

func TestResultMessageFormat(t *testing.T) {
	r := newResult(nil)
	r.fail(RootPath.Key("a"), 1, 2)
	assert.Equal(t, "$.a\nExpected: 1\n     got: 2\n", r.Message())

	r = newResult(nil)
	r.missing(RootPath.Key("b"), "x")
	assert.Equal(t, "$.b\nExpected: x\n     but none found\n", r.Message())

	r = newResult(nil)
	r.unexpected(RootPath.Key("c"), false)
	assert.Equal(t, "$.c\nUnexpected: false\n", r.Message())
}

func TestResultMessageJoinsFindings(t *testing.T) {
	r := newResult(nil)
	r.fail(RootPath.Key("a"), 1, 2)
	r.fail(RootPath.Key("b"), 3, 4)
	assert.Equal(t,
		"$.a\nExpected: 1\n     got: 2\n ; $.b\nExpected: 3\n     got: 4\n",
		r.Message())
	assert.Equal(t, r.Message(), r.String())
}

func TestResultMessageDescribesComposites(t *testing.T) {
	r := newResult(nil)
	r.fail(RootPath, map[string]interface{}{"a": 1}, []interface{}{1})
	assert.Equal(t, "$\nExpected: a JSON object\n     got: a JSON array\n", r.Message())

	r = newResult(nil)
	r.fail(RootPath, nil, "x")
	assert.Contains(t, r.Message(), "Expected: null")
}

func TestResultIgnoreFiltersAtInsertion(t *testing.T) {
	r := newResult(map[string]bool{"$.skip": true})
	r.fail(RootPath.Key("skip"), 1, 2)
	r.missing(RootPath.Key("skip"), 1)
	r.unexpected(RootPath.Key("skip"), 2)
	assert.True(t, r.Passed())
	assert.Empty(t, r.Message())

	r.fail(RootPath.Key("keep"), 1, 2)
	assert.True(t, r.Failed())
}
