package jsoncompare

// compareArrays chooses and runs exactly one reconciliation strategy:
// positional comparison when order matters for this path, multiset count
// reconciliation for arrays of scalars, identity matching through a unique
// key for arrays of objects, and a quadratic greedy matcher as the last
// resort.
func (c *Comparator) compareArrays(path Path, expected, actual []interface{}, result *Result) {
	switch {
	case len(expected) == 0 && len(actual) == 0:
		return
	case len(expected) == 0:
		for i, el := range actual {
			result.unexpected(path.Index(i), el)
		}
		return
	case len(actual) == 0:
		for i, el := range expected {
			result.missing(path.Index(i), el)
		}
		return
	}

	ordered := c.cfg.Mode.OrderMatters() && !c.cfg.IgnoreOrderPaths[path.String()]
	switch {
	case ordered:
		c.compareArraysStrictOrder(path, expected, actual, result)
	case allSimpleValues(expected) || allSimpleValues(actual):
		c.compareArraysOfSimpleValues(path, expected, actual, result)
	case allObjects(expected) || allObjects(actual):
		c.compareArraysOfObjects(path, expected, actual, result)
	default:
		c.compareArraysUnordered(path, expected, actual, result)
	}
}

// compareArraysStrictOrder pairs elements positionally, treating an
// out-of-range side as an absent value so length mismatches surface as
// missing or unexpected findings at the overhanging indices.
func (c *Comparator) compareArraysStrictOrder(path Path, expected, actual []interface{}, result *Result) {
	n := len(expected)
	if len(actual) > n {
		n = len(actual)
	}
	for i := 0; i < n; i++ {
		c.compareValues(path.Index(i), elemOrNil(expected, i), elemOrNil(actual, i), result)
	}
}

// indexGroup maps each distinct value to the indices where it occurs,
// preserving first-occurrence order for deterministic output
type indexGroup struct {
	order  []string
	values map[string]interface{}
	index  map[string][]int
}

func groupByValue(els []interface{}, ignored func(interface{}) bool) *indexGroup {
	g := &indexGroup{values: map[string]interface{}{}, index: map[string][]int{}}
	for i, el := range els {
		if ignored(el) {
			continue
		}
		key := valueKey(el)
		if _, seen := g.index[key]; !seen {
			g.order = append(g.order, key)
			g.values[key] = el
		}
		g.index[key] = append(g.index[key], i)
	}
	return g
}

// compareArraysOfSimpleValues reconciles occurrence counts per distinct
// value rather than matching identities: a surplus on either side reports
// missing findings for the tail indices of that side, and in non-extensible
// modes actual values with no expected counterpart report unexpected at each
// of their indices.
func (c *Comparator) compareArraysOfSimpleValues(path Path, expected, actual []interface{}, result *Result) {
	ignored := func(v interface{}) bool { return c.valueIgnored(path, v) }
	expectedGroups := groupByValue(expected, ignored)
	actualGroups := groupByValue(actual, ignored)

	for _, key := range expectedGroups.order {
		value := expectedGroups.values[key]
		expectedIdx := expectedGroups.index[key]
		actualIdx := actualGroups.index[key]

		surplus := len(expectedIdx) - len(actualIdx)
		switch {
		case surplus > 0:
			for _, i := range expectedIdx[len(expectedIdx)-surplus:] {
				result.missing(path.Index(i), value)
			}
		case surplus < 0:
			for _, i := range actualIdx[len(actualIdx)+surplus:] {
				result.missing(path.Index(i), value)
			}
		}
	}

	if c.cfg.Mode.Extensible() {
		return
	}
	for _, key := range actualGroups.order {
		if _, ok := expectedGroups.index[key]; ok {
			continue
		}
		value := actualGroups.values[key]
		for _, i := range actualGroups.index[key] {
			result.unexpected(path.Index(i), value)
		}
	}
}

// keyedObject pairs an array element with the raw value of its unique key
type keyedObject struct {
	id  interface{}
	obj map[string]interface{}
}

func objectsByKey(els []interface{}, key string) (order []string, byKey map[string]keyedObject) {
	byKey = make(map[string]keyedObject, len(els))
	for _, el := range els {
		obj := el.(map[string]interface{})
		id := obj[key]
		k := valueKey(id)
		if _, seen := byKey[k]; !seen {
			order = append(order, k)
		}
		byKey[k] = keyedObject{id: id, obj: obj}
	}
	return order, byKey
}

// compareArraysOfObjects matches elements by a discovered unique key and
// recurses into pairs at a predicate-style path addressing each element by
// identity. Without a usable key on both sides it falls back to the
// quadratic strategy.
func (c *Comparator) compareArraysOfObjects(path Path, expected, actual []interface{}, result *Result) {
	key := c.findUniqueKey(path, expected)
	if key == "" || !usableAsUniqueKey(key, actual) {
		// an expensive last resort
		c.compareArraysUnordered(path, expected, actual, result)
		return
	}

	expectedOrder, expectedByKey := objectsByKey(expected, key)
	actualOrder, actualByKey := objectsByKey(actual, key)

	for _, k := range expectedOrder {
		entry := expectedByKey[k]
		child := path.Predicate(key, entry.id)
		if counterpart, ok := actualByKey[k]; ok {
			c.compareValues(child, entry.obj, counterpart.obj, result)
		} else {
			result.missing(child, entry.obj)
		}
	}

	if c.cfg.Mode.Extensible() {
		return
	}
	for _, k := range actualOrder {
		if _, ok := expectedByKey[k]; ok {
			continue
		}
		entry := actualByKey[k]
		result.unexpected(path.Predicate(key, entry.id), entry.obj)
	}
}

// compareArraysUnordered is the O(n²) last resort: greedily claim the first
// unmatched actual element equivalent to each expected element, probing
// composites with a full throwaway sub-comparison. The first expected element
// with no match records one diff and terminates the whole array comparison;
// this strategy is a short-circuiting last resort, not an exhaustive diff.
func (c *Comparator) compareArraysUnordered(path Path, expected, actual []interface{}, result *Result) {
	if limit := c.quadraticLimit(); limit > 0 && (len(expected) > limit || len(actual) > limit) {
		// past the guard the quadratic scan is off the table; settle for
		// canonical-encoding equality and one opaque finding
		if valueKey(expected) != valueKey(actual) {
			result.fail(path, expected, actual)
		}
		return
	}

	matched := make(map[int]bool, len(actual))
	for i, expectedEl := range expected {
		found := false
		for j, actualEl := range actual {
			if matched[j] {
				continue
			}
			if expectedEl == nil || actualEl == nil {
				if expectedEl == nil && actualEl == nil {
					matched[j] = true
					found = true
					break
				}
				continue
			}
			ek, ak := kindOf(expectedEl), kindOf(actualEl)
			if ek != ak {
				continue
			}
			switch ek {
			case kindObject:
				if c.subCompare(expectedEl, actualEl) {
					matched[j] = true
					found = true
				}
			case kindArray:
				if len(expectedEl.([]interface{})) < len(actualEl.([]interface{})) {
					continue
				}
				if c.subCompare(expectedEl, actualEl) {
					matched[j] = true
					found = true
				}
			default:
				if scalarEqual(expectedEl, actualEl) {
					matched[j] = true
					found = true
				}
			}
			if found {
				break
			}
		}
		if !found {
			result.fail(path.Index(i), expectedEl, nil)
			return
		}
	}
}

func (c *Comparator) quadraticLimit() int {
	if c.cfg.MaxQuadraticLen == 0 {
		return DefaultMaxQuadraticLen
	}
	return c.cfg.MaxQuadraticLen
}
