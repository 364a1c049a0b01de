package overlay

import (
	"math"
	"sort"
)

// RankedPoint is one outgoing direction ranked by SideSorter.
type RankedPoint struct {
	SegID     SegmentID
	TurnIndex int
	OpIndex   int
	angle     float64
	// MainRank is 1 for the first (most clockwise, i.e. most "right-hand")
	// direction, and is shared by every direction collinear with it.
	// MainRank is monotonically non-decreasing in RankedPoints order.
	MainRank int
}

// SideSorter orders a bag of outgoing directed segments, all incident to a
// shared center point, by angle around that center: ascending math.Atan2
// angle, i.e. counter-clockwise starting just past the negative X axis, so
// the first direction is the most clockwise one. It is used
// both by the colocation handler's right-turn test and, implicitly,
// wherever enrichment must break a tie between operations sharing an exact
// (seg_id, fraction).
//
// Grounded on Boost.Geometry's sort_by_side::side_sorter, minus the
// compile-time strategy template parameter: directions are ordered here by
// their math.Atan2 angle, computed on the robust-policy-transformed
// coordinates.
type SideSorter struct {
	robustPolicy       RobustPolicy
	reverse1, reverse2 bool
	center             Point
	points             []RankedPoint
}

// NewSideSorter returns a SideSorter that will rank directions around
// center, honoring the Reverse1/Reverse2 orientation flags. Both center and
// every point later passed to Add are run through robustPolicy.Recalculate
// before the angle is computed, so callers that don't need a transform pass
// IdentityRobustPolicy{} explicitly.
func NewSideSorter(center Point, robustPolicy RobustPolicy, reverse1, reverse2 bool) *SideSorter {
	return &SideSorter{
		robustPolicy: robustPolicy,
		reverse1:     reverse1,
		reverse2:     reverse2,
		center:       robustPolicy.Recalculate(center),
	}
}

// Add appends the direction of op as seen from the center: the direction
// toward `to` if outgoing is true (op travels from the center toward `to`),
// or the direction of arrival if outgoing is false (op travels from `to`
// toward the center, so its direction is reversed to point away from the
// center, consistently with every other ray in the sort).
func (s *SideSorter) Add(op TurnOperation, turnIndex, opIndex int, to Point, outgoing bool) {
	to = s.robustPolicy.Recalculate(to)

	var dx, dy float64
	if outgoing {
		dx = float64(to.X() - s.center.X())
		dy = float64(to.Y() - s.center.Y())
	} else {
		dx = float64(s.center.X() - to.X())
		dy = float64(s.center.Y() - to.Y())
	}

	angle := math.Atan2(dy, dx)
	if op.SegID.SourceIndex == 0 && s.reverse1 {
		angle = -angle
	}
	if op.SegID.SourceIndex == 1 && s.reverse2 {
		angle = -angle
	}

	s.points = append(s.points, RankedPoint{
		SegID:     op.SegID,
		TurnIndex: turnIndex,
		OpIndex:   opIndex,
		angle:     angle,
	})
}

// angleEpsilon is the tolerance under which two directions are considered
// collinear and therefore share a MainRank.
const angleEpsilon = 1e-9

// Apply sorts the accumulated directions by ascending angle
// (counter-clockwise, most clockwise direction first) and assigns MainRank,
// starting at 1, with ties for collinear directions. Ranked points are
// returned in sorted order.
func (s *SideSorter) Apply() []RankedPoint {
	pts := s.points
	sort.SliceStable(pts, func(i, j int) bool {
		return pts[i].angle < pts[j].angle
	})

	rank := 0
	for i := range pts {
		if i == 0 || pts[i].angle-pts[i-1].angle > angleEpsilon {
			rank++
		}
		pts[i].MainRank = rank
	}
	return pts
}
