package jsoncompare

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rulesFixture = `
mode: strict
ignorePaths:
  - $.meta.requestId
ignoreOrderPaths:
  - $.tags
renamePaths:
  $:
    old: new
ignoreValues:
  $.state:
    - PENDING
tolerance:
  $.ts: 1m
uniqueKeys:
  - $.items.code
stringJsonPaths:
  - $.payload
maxQuadraticLen: 100
`

func TestParseRules(t *testing.T) {
	rules, err := ParseRules(strings.NewReader(rulesFixture))
	require.NoError(t, err)

	assert.Equal(t, "strict", rules.Mode)
	assert.Equal(t, []string{"$.meta.requestId"}, rules.IgnorePaths)
	assert.Equal(t, []string{"$.tags"}, rules.IgnoreOrderPaths)
	assert.Equal(t, map[string]map[string]string{"$": {"old": "new"}}, rules.RenamePaths)
	assert.Equal(t, []string{"$.items.code"}, rules.UniqueKeys)
	assert.Equal(t, []string{"$.payload"}, rules.StringJSONPaths)
	assert.Equal(t, 100, rules.MaxQuadraticLen)
}

func TestParseRulesRejectsUnknownFields(t *testing.T) {
	_, err := ParseRules(strings.NewReader("mode: strict\nignorepaths: []\n"))
	assert.Error(t, err)
}

func TestParseRulesEmptyDocument(t *testing.T) {
	rules, err := ParseRules(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, &Rules{}, rules)
}

func TestParseRulesBadDuration(t *testing.T) {
	rules, err := ParseRules(strings.NewReader("tolerance:\n  $.ts: soonish\n"))
	require.NoError(t, err)
	_, err = rules.Options()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "$.ts")
}

func TestRulesComparator(t *testing.T) {
	rules, err := ParseRules(strings.NewReader(rulesFixture))
	require.NoError(t, err)

	c, err := rules.Comparator(Lenient)
	require.NoError(t, err)
	// the file's mode wins over the fallback
	assert.Equal(t, Strict, c.cfg.Mode)

	result := c.CompareStrings(
		`{"meta":{"requestId":"a"},"tags":[1,2],"old":1,"state":"PENDING","ts":"2024-05-01 10:00:00","items":[],"payload":""}`,
		`{"meta":{"requestId":"b"},"tags":[2,1],"new":1,"state":"DONE","ts":"2024-05-01 10:00:30","items":[],"payload":""}`,
	)
	assert.True(t, result.Passed(), result.Message())
}

func TestRulesComparatorFallbackMode(t *testing.T) {
	rules, err := ParseRules(strings.NewReader("ignorePaths: [$.x]\n"))
	require.NoError(t, err)

	c, err := rules.Comparator(NonExtensible)
	require.NoError(t, err)
	assert.Equal(t, NonExtensible, c.cfg.Mode)

	rules.Mode = "sideways"
	_, err = rules.Comparator(NonExtensible)
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rulesFixture), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, "strict", rules.Mode)

	_, err = LoadRules(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
