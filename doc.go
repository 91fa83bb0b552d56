// Package jsoncompare is a structural comparison engine for JSON documents.
// Given an expected and an actual value tree it decides whether the two are
// semantically equivalent under a configurable policy, and when they are not
// it produces a path-addressed list of findings instead of a bare boolean.
// It's intended as the backend for JSON-based test assertions: "does this API
// response match this expected document, modulo field X, array ordering, a
// timestamp that may drift, etc."
//
// Instead of operating on JSON text directly, jsoncompare operates on value
// trees consisting of the go types created by unmarshaling JSON, which are two
// composite types:
//
//	map[string]interface{}
//	[]interface{}
//
// and four scalar types:
//
//	string, float64, bool, nil
//
// CompareStrings is a convenience wrapper that decodes both sides first.
//
// Comparison policy is the product of two independent switches: whether the
// actual document may carry fields the expected one doesn't (extensible), and
// whether arrays must match positionally (strict order). The four canonical
// combinations are exposed as the modes Strict, Lenient, NonExtensible and
// StrictOrder. On top of the mode, per-path rules can ignore subtrees, relax
// array ordering, rename keys, tolerate clock drift between timestamps, or
// plug in a custom matcher.
//
// Unordered arrays are reconciled with one of three strategies: a multiset
// count reconciliation for arrays of scalars, identity matching through a
// discovered unique key for arrays of objects, and a quadratic greedy matcher
// as a last resort. The fallback is intentionally O(n²) and short-circuits on
// the first unmatched element; a size guard keeps it away from large arrays.
package jsoncompare
