package jsoncompare

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is an immutable cursor locating the node currently being compared.
// Every append returns a new value, so the same cursor can be handed to
// sibling recursive calls without aliasing. Rendering a Path at any point
// yields a stable JsonPath-like string: dotted keys, bracketed indices,
// predicate segments for unique-key matches and a reserved marker for values
// that are themselves JSON carried in a string.
type Path string

// RootPath addresses the top of a document
const RootPath = Path("$")

// EmbeddedMarker separates a path from the sub-path of a JSON document that
// was carried as a string value, disambiguating it from a literal object field
const EmbeddedMarker = ".$"

// Key appends a dotted object key, bare when the cursor is empty
func (p Path) Key(key string) Path {
	if p == "" {
		return Path(key)
	}
	return p + "." + Path(key)
}

// Index appends a bracketed array index
func (p Path) Index(i int) Path {
	return p + Path("["+strconv.Itoa(i)+"]")
}

// Wildcard appends an anonymous array segment
func (p Path) Wildcard() Path {
	return p + "[]"
}

// Predicate appends a JsonPath-style unique-key condition, addressing an
// array element by identity rather than position. Numbers render bare,
// everything else single-quoted.
func (p Path) Predicate(key string, value interface{}) Path {
	var rendered string
	if n, ok := numericValue(value); ok {
		rendered = strconv.FormatFloat(n, 'f', -1, 64)
	} else {
		rendered = "'" + fmt.Sprintf("%v", value) + "'"
	}
	return p + Path("[?(@."+key+"=="+rendered+")]")
}

// Embedded appends the reserved embedded-JSON marker before descending into a
// string value that parsed as a document of its own
func (p Path) Embedded() Path {
	return p + EmbeddedMarker
}

func (p Path) String() string {
	return string(p)
}

// depth counts the number of segments in the rendered path, used only for
// stats bookkeeping
func (p Path) depth() int {
	return strings.Count(string(p), ".") + strings.Count(string(p), "[")
}
