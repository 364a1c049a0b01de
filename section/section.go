// Package section implements the sectionalizer: decomposition of a ring or
// linestring into monotonic, axis-aligned runs of segments, each with a
// bounding box, used upstream of segment-vs-segment intersection to prune
// candidate pairs quickly.
package section

import overlay "github.com/arl/go-overlay"

// Dims is the number of coordinate dimensions a Section tracks direction
// for. Two, for planar overlay — nothing in this module needs more.
const Dims = 2

// duplicateDirection marks a dimension in which a segment's two endpoints
// are equal: such a segment never merges with a directional run.
const duplicateDirection = -99

// Section is a maximal run of consecutive segments, all monotonic (sign of
// per-dimension coordinate change constant) in every dimension, or all
// duplicate (zero-length in every dimension).
type Section struct {
	RingID      overlay.LocalRingID
	BoundingBox overlay.Box

	// Directions holds, per dimension, the sign of coordinate change shared
	// by every segment in the section: -1, 0, +1, or duplicateDirection if
	// the section holds only duplicate (zero-length) segments.
	Directions [Dims]int8

	// BeginIndex, EndIndex delimit the half-open vertex range [Begin, End)
	// this section covers within its ring.
	BeginIndex, EndIndex int

	// Count is the number of segments in the section; RangeCount is the
	// number of vertices in the ring the section belongs to.
	Count      int
	RangeCount int

	Duplicate bool

	// NonDuplicateIndex is the count of non-duplicate segments in the ring
	// seen before this section opened: a running segment counter captured
	// at section-open time, not a per-section tally, so a section that
	// follows one holding 5 non-duplicate segments gets NonDuplicateIndex
	// 5, not the index of the previous section plus one.
	NonDuplicateIndex int

	// IsNonDuplicateFirst/IsNonDuplicateLast mark the first and last
	// non-duplicate sections in the ring, so traversal knows where a run of
	// degenerate leading or trailing segments ends.
	IsNonDuplicateFirst bool
	IsNonDuplicateLast  bool
}

func newSection(ringID overlay.LocalRingID, rangeCount, beginIndex int, dirs [Dims]int8, duplicate bool) Section {
	return Section{
		RingID:     ringID,
		Directions: dirs,
		BeginIndex: beginIndex,
		EndIndex:   beginIndex,
		RangeCount: rangeCount,
		Duplicate:  duplicate,
	}
}

// addSegment extends the section with the segment (p, q) that starts at
// vertex lastIndex-1 in the ring. EndIndex becomes lastIndex, one past that
// start, also for a closed ring's closing segment whose q is vertex 0.
func (s *Section) addSegment(p, q overlay.Point, lastIndex int) {
	box := overlay.UnionBox(overlay.NewBoxFromPoint(p), overlay.NewBoxFromPoint(q))
	if s.Count == 0 {
		s.BoundingBox = box
	} else {
		s.BoundingBox = overlay.UnionBox(s.BoundingBox, box)
	}
	s.EndIndex = lastIndex
	s.Count++
}
