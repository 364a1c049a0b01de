package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func square() Geometry {
	return NewRing([]Point{
		NewPoint(0, 0), NewPoint(0, 10), NewPoint(10, 10), NewPoint(10, 0),
	})
}

func TestLessByFractionAndTypeOrdersByFractionFirst(t *testing.T) {
	turns := []Turn{
		NewTurn(NewPoint(0, 0), MethodTouches,
			TurnOperation{SegID: seg(0, 0), Fraction: NewSegmentRatio(1, 2), Operation: OpUnion},
			TurnOperation{SegID: seg(1, 0), Fraction: NewSegmentRatio(1, 2), Operation: OpUnion}),
		NewTurn(NewPoint(0, 0), MethodTouches,
			TurnOperation{SegID: seg(0, 0), Fraction: NewSegmentRatio(1, 4), Operation: OpUnion},
			TurnOperation{SegID: seg(1, 1), Fraction: NewSegmentRatio(1, 4), Operation: OpUnion}),
	}
	a := turnOperationIndex{0, 0}
	b := turnOperationIndex{1, 0}
	assert.False(t, lessByFractionAndType(turns, a, b))
	assert.True(t, lessByFractionAndType(turns, b, a))
}

func TestLessByFractionAndTypeXXFirst(t *testing.T) {
	frac := NewSegmentRatio(1, 2)
	turns := []Turn{
		NewTurn(NewPoint(0, 0), MethodTouches, // uu
			TurnOperation{SegID: seg(0, 0), Fraction: frac, Operation: OpUnion},
			TurnOperation{SegID: seg(1, 0), Fraction: frac, Operation: OpUnion}),
		NewTurn(NewPoint(0, 0), MethodTouches, // xx
			TurnOperation{SegID: seg(0, 0), Fraction: frac, Operation: OpBlocked},
			TurnOperation{SegID: seg(1, 1), Fraction: frac, Operation: OpBlocked}),
	}
	uu := turnOperationIndex{0, 0}
	xx := turnOperationIndex{1, 0}
	assert.True(t, lessByFractionAndType(turns, xx, uu))
	assert.False(t, lessByFractionAndType(turns, uu, xx))
}

func TestAddTurnToClusterAllocatesFreshID(t *testing.T) {
	uf := newClusterUnionFind()
	clusterPerSegment := make(map[SegmentFractionKey]int)

	turn := NewTurn(NewPoint(0, 0), MethodTouches,
		TurnOperation{SegID: seg(0, 0), Fraction: NewSegmentRatio(1, 2)},
		TurnOperation{SegID: seg(1, 0), Fraction: NewSegmentRatio(1, 2)},
	)

	id := addTurnToCluster(turn, clusterPerSegment, uf)
	id0, ok0 := getClusterID(turn.Operations[0], clusterPerSegment, uf)
	id1, ok1 := getClusterID(turn.Operations[1], clusterPerSegment, uf)
	assert.True(t, ok0)
	assert.True(t, ok1)
	assert.Equal(t, id, id0)
	assert.Equal(t, id, id1)
}

func TestAddTurnToClusterMergesExistingClusters(t *testing.T) {
	uf := newClusterUnionFind()
	clusterPerSegment := make(map[SegmentFractionKey]int)

	op0a := TurnOperation{SegID: seg(0, 0), Fraction: NewSegmentRatio(1, 2)}
	op1a := TurnOperation{SegID: seg(1, 0), Fraction: NewSegmentRatio(1, 2)}
	turnA := NewTurn(NewPoint(0, 0), MethodTouches, op0a, op1a)
	idA := addTurnToCluster(turnA, clusterPerSegment, uf)

	op0b := TurnOperation{SegID: seg(0, 1), Fraction: NewSegmentRatio(1, 2)}
	op1b := TurnOperation{SegID: seg(1, 1), Fraction: NewSegmentRatio(1, 2)}
	turnB := NewTurn(NewPoint(5, 5), MethodTouches, op0b, op1b)
	idB := addTurnToCluster(turnB, clusterPerSegment, uf)
	assert.NotEqual(t, idA, idB)

	// A third turn shares turnA's segment-0 operation and turnB's segment-1
	// operation: it must merge the two previously-separate clusters.
	bridging := NewTurn(NewPoint(0, 0), MethodTouches, op0a, op1b)
	merged := addTurnToCluster(bridging, clusterPerSegment, uf)

	finalA, _ := getClusterID(op0a, clusterPerSegment, uf)
	finalB, _ := getClusterID(op1b, clusterPerSegment, uf)
	assert.Equal(t, merged, finalA)
	assert.Equal(t, merged, finalB)
}

func TestDetectColocationsNoColocationsIsNoop(t *testing.T) {
	turns := []Turn{
		NewTurn(NewPoint(0, 0), MethodTouches,
			TurnOperation{SegID: seg(0, 0), Fraction: NewSegmentRatio(1, 2), Operation: OpUnion},
			TurnOperation{SegID: seg(1, 0), Fraction: NewSegmentRatio(1, 2), Operation: OpUnion}),
	}
	geoms := [2]Geometry{square(), square()}
	clusters := make(Clusters)

	colocatedCCMap, status := DetectColocations(turns, clusters, ModeUnion, geoms, false, false)
	assert.Nil(t, colocatedCCMap)
	assert.Equal(t, Status(0), status)
	assert.Equal(t, -1, turns[0].ClusterID)
}

func TestDetectColocationsClustersSharedSegmentFraction(t *testing.T) {
	frac := NewSegmentRatio(1, 2)
	// Two turns both land on segment 0 of source 0, same fraction, but
	// against two different segments of source 1: a genuine colocation.
	turns := []Turn{
		NewTurn(NewPoint(5, 0), MethodTouches,
			TurnOperation{SegID: seg(0, 0), Fraction: frac, Operation: OpUnion},
			TurnOperation{SegID: seg(1, 0), Fraction: frac, Operation: OpUnion}),
		NewTurn(NewPoint(5, 0), MethodTouches,
			TurnOperation{SegID: seg(0, 0), Fraction: frac, Operation: OpUnion},
			TurnOperation{SegID: seg(1, 1), Fraction: frac, Operation: OpUnion}),
	}
	geoms := [2]Geometry{square(), square()}
	clusters := make(Clusters)

	_, status := DetectColocations(turns, clusters, ModeUnion, geoms, false, false)
	assert.True(t, status.Has(StatusColocationsFound))
	assert.Equal(t, turns[0].ClusterID, turns[1].ClusterID)
	assert.NotEqual(t, -1, turns[0].ClusterID)
	assert.Len(t, clusters[turns[0].ClusterID], 2)
	assert.True(t, PointsEqual(turns[0].Point, turns[1].Point))
}
