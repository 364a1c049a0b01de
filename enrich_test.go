package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrichAssignSingleEntrySelfLoop(t *testing.T) {
	turns := []Turn{
		NewTurn(NewPoint(0, 0), MethodTouches,
			TurnOperation{SegID: seg(0, 0), Fraction: NewSegmentRatio(1, 2)},
			TurnOperation{SegID: seg(1, 0), Fraction: NewSegmentRatio(1, 2)}),
	}
	ops := []IndexedOperation{{TurnIndex: 0, OpIndex: 0, Operation: turns[0].Operations[0]}}

	EnrichAssign(ops, turns)

	enriched := turns[0].Operations[0].Enriched
	assert.Equal(t, 0, enriched.TravelsToIPIndex)
}

func TestEnrichAssignCircularTwoEntries(t *testing.T) {
	turns := []Turn{
		NewTurn(NewPoint(0, 0), MethodTouches,
			TurnOperation{SegID: seg(0, 0), Fraction: NewSegmentRatio(1, 4)},
			TurnOperation{SegID: seg(1, 0), Fraction: NewSegmentRatio(1, 4)}),
		NewTurn(NewPoint(1, 0), MethodTouches,
			TurnOperation{SegID: seg(0, 1), Fraction: NewSegmentRatio(3, 4)},
			TurnOperation{SegID: seg(1, 1), Fraction: NewSegmentRatio(3, 4)}),
	}
	ops := []IndexedOperation{
		{TurnIndex: 0, OpIndex: 0, Operation: turns[0].Operations[0]},
		{TurnIndex: 1, OpIndex: 0, Operation: turns[1].Operations[0]},
	}

	EnrichAssign(ops, turns)

	assert.Equal(t, 1, turns[0].Operations[0].Enriched.TravelsToIPIndex)
	assert.Equal(t, 0, turns[1].Operations[0].Enriched.TravelsToIPIndex)
}

func TestEnrichAssignNextIPIndexOnlyWhenSameSegmentAndGreaterFraction(t *testing.T) {
	turns := []Turn{
		NewTurn(NewPoint(0, 0), MethodTouches,
			TurnOperation{SegID: seg(0, 0), Fraction: NewSegmentRatio(1, 4)},
			TurnOperation{SegID: seg(1, 0), Fraction: NewSegmentRatio(1, 4)}),
		NewTurn(NewPoint(0, 0), MethodTouches,
			TurnOperation{SegID: seg(0, 0), Fraction: NewSegmentRatio(3, 4)},
			TurnOperation{SegID: seg(1, 0), Fraction: NewSegmentRatio(3, 4)}),
	}
	ops := []IndexedOperation{
		{TurnIndex: 0, OpIndex: 0, Operation: turns[0].Operations[0]},
		{TurnIndex: 1, OpIndex: 0, Operation: turns[1].Operations[0]},
	}

	EnrichAssign(ops, turns)

	assert.Equal(t, 1, turns[0].Operations[0].Enriched.NextIPIndex)
	// turns[1] wraps back to turns[0], which is on the same segment but at a
	// smaller fraction: not "next".
	assert.Equal(t, -1, turns[1].Operations[0].Enriched.NextIPIndex)
}

func TestEnrichSortOrdersBySegmentThenFraction(t *testing.T) {
	turns := []Turn{
		NewTurn(NewPoint(0, 0), MethodTouches,
			TurnOperation{SegID: seg(0, 1), Fraction: NewSegmentRatio(3, 4)},
			TurnOperation{SegID: seg(1, 0), Fraction: NewSegmentRatio(3, 4)}),
		NewTurn(NewPoint(0, 0), MethodTouches,
			TurnOperation{SegID: seg(0, 0), Fraction: NewSegmentRatio(1, 2)},
			TurnOperation{SegID: seg(1, 0), Fraction: NewSegmentRatio(1, 2)}),
	}
	ops := []IndexedOperation{
		{TurnIndex: 0, OpIndex: 0, Operation: turns[0].Operations[0]},
		{TurnIndex: 1, OpIndex: 0, Operation: turns[1].Operations[0]},
	}
	geoms := [2]Geometry{square(), square()}

	EnrichSort(ops, turns, geoms, IdentityRobustPolicy{}, false, false)

	assert.Equal(t, 1, ops[0].TurnIndex)
	assert.Equal(t, 0, ops[1].TurnIndex)
}

func TestEnrichDiscardsBothNoneTurns(t *testing.T) {
	turns := []Turn{
		NewTurn(NewPoint(0, 0), MethodTouches,
			TurnOperation{SegID: seg(0, 0), Operation: OpNone},
			TurnOperation{SegID: seg(1, 0), Operation: OpNone}),
	}
	clusters := make(Clusters)
	geoms := [2]Geometry{square(), square()}

	Enrich(turns, clusters, ModeUnion, geoms, IdentityRobustPolicy{}, false, false)

	assert.True(t, turns[0].Discarded)
}
