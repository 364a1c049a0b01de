package overlay

// LocalRingID identifies a ring within a single Geometry, independent of
// which input (0 or 1) that geometry plays in an overlay. MultiIndex is -1
// for a geometry that is not a multi-part collection. RingIndex is -1 for
// the exterior ring of a polygon, else the zero-based interior ring index.
type LocalRingID struct {
	MultiIndex int
	RingIndex  int
}

// RingID identifies a ring of one of the two overlay inputs.
type RingID struct {
	SourceIndex int
	MultiIndex  int
	RingIndex   int
}

// Ring projects a SegmentID down to the RingID it belongs to.
func (s SegmentID) Ring() RingID {
	return RingID{s.SourceIndex, s.MultiIndex, s.RingIndex}
}

// Less reports whether r orders before other, lexicographically by
// (SourceIndex, MultiIndex, RingIndex).
func (r RingID) Less(other RingID) bool {
	if r.SourceIndex != other.SourceIndex {
		return r.SourceIndex < other.SourceIndex
	}
	if r.MultiIndex != other.MultiIndex {
		return r.MultiIndex < other.MultiIndex
	}
	return r.RingIndex < other.RingIndex
}

// SegmentID identifies a single segment (the edge starting at SegmentIndex
// and ending at SegmentIndex+1, modulo the ring's vertex count) of one of
// the two overlay inputs. It is totally ordered, lexicographically, by
// (SourceIndex, MultiIndex, RingIndex, SegmentIndex).
type SegmentID struct {
	SourceIndex  int
	MultiIndex   int
	RingIndex    int
	SegmentIndex int
}

// Less reports whether s orders before other.
func (s SegmentID) Less(other SegmentID) bool {
	if s.SourceIndex != other.SourceIndex {
		return s.SourceIndex < other.SourceIndex
	}
	if s.MultiIndex != other.MultiIndex {
		return s.MultiIndex < other.MultiIndex
	}
	if s.RingIndex != other.RingIndex {
		return s.RingIndex < other.RingIndex
	}
	return s.SegmentIndex < other.SegmentIndex
}

// Equal reports whether s and other identify the same segment.
func (s SegmentID) Equal(other SegmentID) bool {
	return s == other
}
