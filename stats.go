package jsoncompare

// Stats holds counters from a comparison, populated when a non-nil pointer
// is registered through OptionSetStats
type Stats struct {
	// NodesCompared counts dispatcher visits, probe comparisons excluded
	NodesCompared int `json:"nodesCompared"`
	// MaxDepth is the deepest path segment count reached
	MaxDepth int `json:"maxDepth"`

	Diffs      int `json:"diffs,omitempty"`      // value mismatches recorded
	Missing    int `json:"missing,omitempty"`    // expected values absent from actual
	Unexpected int `json:"unexpected,omitempty"` // actual values absent from expected
}

// Findings returns the total number of discrepancies across all categories
func (s Stats) Findings() int {
	return s.Diffs + s.Missing + s.Unexpected
}
