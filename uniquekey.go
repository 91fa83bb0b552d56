package jsoncompare

import (
	"sort"
	"strings"
)

// findUniqueKey discovers, for an array of objects, a field usable as a
// stable per-element identity. Configured keys valid for this exact parent
// path win; after that the first element's keys are tried with those named
// like identifiers first. Returns "" when nothing validates, forcing the
// quadratic fallback.
func (c *Comparator) findUniqueKey(path Path, expected []interface{}) string {
	first, ok := expected[0].(map[string]interface{})
	if !ok {
		return ""
	}
	keys := sortedKeys(first)

	parent := path.String()
	for _, key := range keys {
		if prefixes, ok := c.uniqueKeyNames[key]; ok && containsString(prefixes, parent) {
			if usableAsUniqueKey(key, expected) {
				return key
			}
		}
	}

	var preferred, rest []string
	for _, key := range keys {
		if looksLikeIdentity(key) {
			preferred = append(preferred, key)
		} else {
			rest = append(rest, key)
		}
	}
	for _, key := range append(preferred, rest...) {
		if usableAsUniqueKey(key, expected) {
			return key
		}
	}
	return ""
}

// looksLikeIdentity reports whether a field name ends in "id" or "key",
// case-insensitively
func looksLikeIdentity(key string) bool {
	lower := strings.ToLower(key)
	return strings.HasSuffix(lower, "id") || strings.HasSuffix(lower, "key")
}

// usableAsUniqueKey reports whether candidate works as an identity across
// els: every element is an object carrying the candidate, its value is a
// scalar, and no two values collide
func usableAsUniqueKey(candidate string, els []interface{}) bool {
	seen := make(map[string]bool, len(els))
	for _, el := range els {
		obj, ok := el.(map[string]interface{})
		if !ok {
			return false
		}
		value, ok := obj[candidate]
		if !ok {
			return false
		}
		if !isSimpleValue(value) {
			return false
		}
		key := valueKey(value)
		if seen[key] {
			return false
		}
		seen[key] = true
	}
	return true
}

// indexUniqueKeys splits configured unique-key paths ("$.items.id") into
// key name → the parent paths it is declared for
func indexUniqueKeys(paths map[string]bool) map[string][]string {
	index := map[string][]string{}
	for path := range paths {
		dot := strings.LastIndex(path, ".")
		if dot < 0 || dot == len(path)-1 {
			continue
		}
		name := path[dot+1:]
		index[name] = append(index[name], path[:dot])
	}
	for name := range index {
		sort.Strings(index[name])
	}
	return index
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
