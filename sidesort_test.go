package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSideSorterOrdersByAngle(t *testing.T) {
	center := NewPoint(0, 0)
	sbs := NewSideSorter(center, IdentityRobustPolicy{}, false, false)

	east := TurnOperation{SegID: SegmentID{SourceIndex: 0}}
	north := TurnOperation{SegID: SegmentID{SourceIndex: 0}}
	west := TurnOperation{SegID: SegmentID{SourceIndex: 0}}

	sbs.Add(north, 0, 0, NewPoint(0, 1), true)
	sbs.Add(east, 1, 0, NewPoint(1, 0), true)
	sbs.Add(west, 2, 0, NewPoint(-1, 0), true)

	ranked := sbs.Apply()
	if assert.Len(t, ranked, 3) {
		// atan2 increasing order: east (0) < north (pi/2) < west (pi)
		assert.Equal(t, 1, ranked[0].TurnIndex)
		assert.Equal(t, 1, ranked[0].MainRank)
		assert.Equal(t, 0, ranked[1].TurnIndex)
		assert.Equal(t, 2, ranked[1].MainRank)
		assert.Equal(t, 2, ranked[2].TurnIndex)
		assert.Equal(t, 3, ranked[2].MainRank)
	}
}

func TestSideSorterCollinearDirectionsShareRank(t *testing.T) {
	center := NewPoint(0, 0)
	sbs := NewSideSorter(center, IdentityRobustPolicy{}, false, false)

	sbs.Add(TurnOperation{}, 0, 0, NewPoint(2, 0), true)
	sbs.Add(TurnOperation{}, 1, 0, NewPoint(5, 0), true)

	ranked := sbs.Apply()
	if assert.Len(t, ranked, 2) {
		assert.Equal(t, ranked[0].MainRank, ranked[1].MainRank)
	}
}

func TestSideSorterReverseFlipsSourceDirection(t *testing.T) {
	center := NewPoint(0, 0)

	plain := NewSideSorter(center, IdentityRobustPolicy{}, false, false)
	plain.Add(TurnOperation{SegID: SegmentID{SourceIndex: 0}}, 0, 0, NewPoint(0, 1), true)
	plain.Add(TurnOperation{SegID: SegmentID{SourceIndex: 0}}, 1, 0, NewPoint(1, 0), true)
	plainRanked := plain.Apply()

	reversed := NewSideSorter(center, IdentityRobustPolicy{}, true, false)
	reversed.Add(TurnOperation{SegID: SegmentID{SourceIndex: 0}}, 0, 0, NewPoint(0, 1), true)
	reversed.Add(TurnOperation{SegID: SegmentID{SourceIndex: 0}}, 1, 0, NewPoint(1, 0), true)
	reversedRanked := reversed.Apply()

	// Reversing source 0's orientation flips which of the two directions
	// ranks first.
	assert.NotEqual(t, plainRanked[0].TurnIndex, reversedRanked[0].TurnIndex)
}

func TestSideSorterIncomingDirectionIsReversed(t *testing.T) {
	center := NewPoint(0, 0)
	sbs := NewSideSorter(center, IdentityRobustPolicy{}, false, false)

	// Arriving from (1, 0) toward the center means the outward-pointing
	// direction is west (toward negative X), not east.
	sbs.Add(TurnOperation{}, 0, 0, NewPoint(1, 0), false)
	sbs.Add(TurnOperation{}, 1, 0, NewPoint(-1, 0), true)

	ranked := sbs.Apply()
	// Both now point west: they must share a rank.
	assert.Equal(t, ranked[0].MainRank, ranked[1].MainRank)
}
