package jsoncompare

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// kind defines all of the atoms in our universe, or the shapes of data we
// will encounter while walking a decoded JSON tree
type kind uint8

const (
	kindInvalid kind = iota
	kindObject
	kindArray
	kindString
	kindNumber
	kindBool
	kindNull
)

func (k kind) String() string {
	switch k {
	case kindObject:
		return "object"
	case kindArray:
		return "array"
	case kindString:
		return "string"
	case kindNumber:
		return "number"
	case kindBool:
		return "bool"
	case kindNull:
		return "null"
	default:
		return "invalid"
	}
}

// kindOf tags a decoded value. encoding/json only produces maps, slices,
// strings, float64s, bools and nils, but callers hand-building trees get the
// other common numeric types for free.
func kindOf(v interface{}) kind {
	switch v.(type) {
	case nil:
		return kindNull
	case map[string]interface{}:
		return kindObject
	case []interface{}:
		return kindArray
	case string:
		return kindString
	case bool:
		return kindBool
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, json.Number:
		return kindNumber
	default:
		return kindInvalid
	}
}

// numericValue widens any supported numeric representation to float64.
// comparing on the widened value is what makes 1 and 1.0 equal.
func numericValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// isSimpleValue reports whether v is a scalar: neither object nor array
func isSimpleValue(v interface{}) bool {
	k := kindOf(v)
	return k != kindObject && k != kindArray
}

func allSimpleValues(els []interface{}) bool {
	for _, el := range els {
		if !isSimpleValue(el) {
			return false
		}
	}
	return true
}

func allObjects(els []interface{}) bool {
	for _, el := range els {
		if _, ok := el.(map[string]interface{}); !ok {
			return false
		}
	}
	return true
}

// scalarEqual compares two scalar values, treating all numeric
// representations of the same quantity as equal
func scalarEqual(a, b interface{}) bool {
	if an, ok := numericValue(a); ok {
		bn, bok := numericValue(b)
		return bok && an == bn
	}
	return a == b
}

// valueKey derives a canonical grouping key for a value. Go maps can't be
// keyed on arbitrary decoded trees, so multiset and unique-key reconciliation
// group elements by this string instead. The kind prefix keeps the string
// "true" apart from the boolean true; numbers collapse to their float64
// rendering so 1 and 1.0 land in the same group.
func valueKey(v interface{}) string {
	switch kindOf(v) {
	case kindNull:
		return "z:"
	case kindString:
		return "s:" + v.(string)
	case kindBool:
		if v.(bool) {
			return "b:true"
		}
		return "b:false"
	case kindNumber:
		n, _ := numericValue(v)
		return "n:" + strconv.FormatFloat(n, 'f', -1, 64)
	default:
		// composite values: encoding/json writes map keys in sorted order,
		// which makes the encoded form canonical for decoded trees
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("?:%v", v)
		}
		return "c:" + string(data)
	}
}

// sortedKeys returns the keys of m in lexicographic order so diff output is
// reproducible across runs
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// elemOrNil treats out-of-range access as an absent value
func elemOrNil(els []interface{}, i int) interface{} {
	if i >= len(els) {
		return nil
	}
	return els[i]
}
