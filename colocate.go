package overlay

import (
	"sort"

	assert "github.com/arl/assertgo"
)

// turnOperationIndex is a (turn, operation) pair, the unit colocation
// detection sorts and clusters.
type turnOperationIndex struct {
	TurnIndex int
	OpIndex   int
}

// lessByFractionAndType is the total order colocation detection sorts each
// segment's operations by. Operations at the same fraction are
// ordered so that a "both blocked" turn comes first (it pre-empts any
// colocated follower), then a "both union" turn, then by the other
// operation's segment id (exterior rings, which carry ring_index -1, sort
// before interior rings).
func lessByFractionAndType(turns []Turn, a, b turnOperationIndex) bool {
	leftTurn, rightTurn := turns[a.TurnIndex], turns[b.TurnIndex]
	leftOp, rightOp := leftTurn.Operations[a.OpIndex], rightTurn.Operations[b.OpIndex]

	if !leftOp.Fraction.Equal(rightOp.Fraction) {
		return leftOp.Fraction.Less(rightOp.Fraction)
	}

	leftXX, rightXX := leftTurn.Both(OpBlocked), rightTurn.Both(OpBlocked)
	if leftXX != rightXX {
		return leftXX
	}

	leftUU, rightUU := leftTurn.Both(OpUnion), rightTurn.Both(OpUnion)
	if leftUU != rightUU {
		return leftUU
	}

	leftOther := leftTurn.Operations[Other(a.OpIndex)]
	rightOther := rightTurn.Operations[Other(b.OpIndex)]
	return leftOther.SegID.Less(rightOther.SegID)
}

// assertTotalOrder verifies, in debug builds only, that lessByFractionAndType
// behaves as a total order on an already-sorted run: no adjacent pair may
// compare both a<b and b<a. A no-op in release builds.
func assertTotalOrder(turns []Turn, ops []turnOperationIndex) {
	for i := 1; i < len(ops); i++ {
		forward := lessByFractionAndType(turns, ops[i-1], ops[i])
		backward := lessByFractionAndType(turns, ops[i], ops[i-1])
		assert.False(forward && backward, "lessByFractionAndType is not a total order at %d/%d", i-1, i)
	}
}

func getClusterID(op TurnOperation, clusterPerSegment map[SegmentFractionKey]int, uf *clusterUnionFind) (int, bool) {
	id, ok := clusterPerSegment[SegmentFractionKey{op.SegID, op.Fraction}]
	if !ok {
		return -1, false
	}
	return uf.find(id), true
}

func addClusterID(op TurnOperation, clusterPerSegment map[SegmentFractionKey]int, id int) {
	clusterPerSegment[SegmentFractionKey{op.SegID, op.Fraction}] = id
}

// addTurnToCluster ensures both of turn's operations are registered in
// clusterPerSegment under the same cluster id, allocating a fresh one if
// neither operation was registered yet, and properly unioning the two ids
// if they were each already registered under a *different* id (see
// DESIGN.md "Open Question decisions" for why this merges rather than
// picking one id arbitrarily).
func addTurnToCluster(turn Turn, clusterPerSegment map[SegmentFractionKey]int, uf *clusterUnionFind) int {
	cid0, ok0 := getClusterID(turn.Operations[0], clusterPerSegment, uf)
	cid1, ok1 := getClusterID(turn.Operations[1], clusterPerSegment, uf)

	switch {
	case !ok0 && !ok1:
		id := uf.newID()
		addClusterID(turn.Operations[0], clusterPerSegment, id)
		addClusterID(turn.Operations[1], clusterPerSegment, id)
		return id
	case !ok0:
		addClusterID(turn.Operations[0], clusterPerSegment, cid1)
		return cid1
	case !ok1:
		addClusterID(turn.Operations[1], clusterPerSegment, cid0)
		return cid0
	case cid0 == cid1:
		return cid0
	default:
		merged := uf.union(cid0, cid1)
		addClusterID(turn.Operations[0], clusterPerSegment, merged)
		addClusterID(turn.Operations[1], clusterPerSegment, merged)
		return merged
	}
}

// addOperationDirection adds to sbs the direction op travels in at the
// shared cluster point: toward the next vertex on its segment if outgoing,
// or from the previous vertex (reversed, so it still points away from the
// center) otherwise.
func addOperationDirection(sbs *SideSorter, op TurnOperation, turnIndex, opIndex int, geoms [2]Geometry, outgoing bool) {
	geom := geoms[op.SegID.SourceIndex]
	ringID := LocalRingID{MultiIndex: op.SegID.MultiIndex, RingIndex: op.SegID.RingIndex}
	n := geom.VertexCount(ringID)

	var idx int
	if outgoing {
		idx = (op.SegID.SegmentIndex + 1) % n
	} else {
		idx = ((op.SegID.SegmentIndex-1)%n + n) % n
	}
	sbs.Add(op, turnIndex, opIndex, geom.PointAt(ringID, idx), outgoing)
}

// discardColocatedUU implements the right-turn test: at the
// shared point, sort the three relevant outgoing directions (ref's two
// operations plus the follower's non-shared operation) angularly. If every
// direction ranked main_rank==1 (the most right-hand / most clockwise)
// originates from the same source as ref's subject operation, the follower
// is dominated and may be discarded.
//
// This right-turn test runs on untransformed coordinates: it compares
// directions local to a single already-identified cluster point, not
// fractions or positions across the whole geometry, so it has no need of
// a robust policy's rescaling and always sorts with IdentityRobustPolicy{}.
func discardColocatedUU(turns []Turn, ref, toi turnOperationIndex, geoms [2]Geometry, reverse1, reverse2 bool) bool {
	refTurn := turns[ref.TurnIndex]
	turn := turns[toi.TurnIndex]

	sbs := NewSideSorter(refTurn.Point, IdentityRobustPolicy{}, reverse1, reverse2)
	addOperationDirection(sbs, refTurn.Operations[ref.OpIndex], ref.TurnIndex, ref.OpIndex, geoms, true)
	addOperationDirection(sbs, refTurn.Operations[Other(ref.OpIndex)], ref.TurnIndex, Other(ref.OpIndex), geoms, false)
	addOperationDirection(sbs, turn.Operations[Other(toi.OpIndex)], toi.TurnIndex, Other(toi.OpIndex), geoms, false)

	sourceIndex := refTurn.Operations[ref.OpIndex].SegID.SourceIndex
	for _, rp := range sbs.Apply() {
		if rp.MainRank > 1 {
			break
		}
		if rp.SegID.SourceIndex != sourceIndex {
			// Another source's direction is collinear with or ranked
			// before the reference: not dominated, keep the follower.
			return false
		}
	}
	return true
}

// handleColocationCluster walks one segment's sorted colocated operations
// with a one-element reference window, clustering and discarding as it
// goes. It returns true if a cluster merge happened while processing this
// segment.
func handleColocationCluster(
	turns []Turn,
	uf *clusterUnionFind,
	clusterPerSegment map[SegmentFractionKey]int,
	colocatedCCMap map[RingID]int,
	ops []turnOperationIndex,
	mode OperationMode,
	geoms [2]Geometry,
	reverse1, reverse2 bool,
) bool {
	merged := false
	ref := ops[0]
	refID := -1

	for _, toi := range ops[1:] {
		refTurn := &turns[ref.TurnIndex]
		refOp := refTurn.Operations[ref.OpIndex]

		turn := &turns[toi.TurnIndex]
		op := turn.Operations[toi.OpIndex]

		if !refOp.Fraction.Equal(op.Fraction) {
			ref = toi
			refID = -1
			continue
		}

		refOtherOp := refTurn.Operations[Other(ref.OpIndex)]
		otherOp := turn.Operations[Other(toi.OpIndex)]

		if refID == -1 {
			cid0, ok0 := getClusterID(refTurn.Operations[0], clusterPerSegment, uf)
			cid1, ok1 := getClusterID(refTurn.Operations[1], clusterPerSegment, uf)
			if ok0 && ok1 && cid0 != cid1 {
				// addTurnToCluster is about to union these two clusters.
				merged = true
			}
			refID = addTurnToCluster(*refTurn, clusterPerSegment, uf)
		}

		if id, ok := getClusterID(otherOp, clusterPerSegment, uf); ok {
			if id != refID {
				refID = uf.union(id, refID)
				addClusterID(otherOp, clusterPerSegment, refID)
				merged = true
			}
		} else {
			addClusterID(otherOp, clusterPerSegment, refID)
		}

		if refTurn.Both(OpBlocked) {
			// Colocated with xx: the follower is discarded outright. xx
			// itself is never discarded, it must remain to stop other
			// traversals.
			turn.Discarded = true
		}

		if mode == ModeUnion && refTurn.Both(OpUnion) && !turn.Both(OpUnion) {
			if otherOp.SegID.MultiIndex == refOtherOp.SegID.MultiIndex &&
				otherOp.SegID.RingIndex == refOtherOp.SegID.RingIndex &&
				discardColocatedUU(turns, ref, toi, geoms, reverse1, reverse2) {
				turn.Discarded = true
				turn.Colocated = true
			}
			if turn.Both(OpContinue) {
				turn.Discarded = true
				turn.Colocated = true
				colocatedCCMap[op.SegID.Ring()]++
				colocatedCCMap[otherOp.SegID.Ring()]++
			}
		}
	}
	return merged
}

// assignClusterToTurns scans every non-discarded turn and, for each
// operation present in clusterPerSegment, sets the turn's ClusterID. A turn
// whose two operations resolve to two different cluster roots is a defect
// in the colocation pass above (every merge should already be folded into
// the disjoint set); it is still handled safely, by unioning on the spot,
// but is logged and asserted against (the assertion fires in debug builds
// only) since it should never happen.
func assignClusterToTurns(turns []Turn, clusters Clusters, clusterPerSegment map[SegmentFractionKey]int, uf *clusterUnionFind) {
	for i := range turns {
		if turns[i].Discarded {
			// Processed above (to build a correct map) but not added: may
			// leave a cluster with only one member, fixed up afterwards.
			continue
		}

		var resolved [2]int
		var found [2]bool
		for k := 0; k < 2; k++ {
			if id, ok := getClusterID(turns[i].Operations[k], clusterPerSegment, uf); ok {
				resolved[k], found[k] = id, true
			}
		}

		var id int
		switch {
		case found[0] && found[1]:
			id = resolved[0]
			if resolved[0] != resolved[1] {
				id = uf.union(resolved[0], resolved[1])
				reportClusterConflict(i, resolved[0], resolved[1])
			}
			assert.False(resolved[0] != resolved[1], "cluster conflict on turn %d: roots %d and %d", i, resolved[0], resolved[1])
		case found[0]:
			id = resolved[0]
		case found[1]:
			id = resolved[1]
		default:
			continue
		}

		turns[i].ClusterID = id
		clusters.add(id, i)
	}
}

// DetectColocations builds a per-segment map of colocated operations,
// clusters and discards as described above, then assigns final cluster ids
// to turns and removes any cluster left with a single member. It returns,
// per ring, the number of "cc" (both-continue) turns discarded as
// colocated-with-uu — the input the lonely-uu discard pass needs — and a
// Status summarizing what happened.
//
// If no segment carries more than one turn, colocation detection is a
// no-op and returns a nil map with a zero Status.
func DetectColocations(turns []Turn, clusters Clusters, mode OperationMode, geoms [2]Geometry, reverse1, reverse2 bool) (map[RingID]int, Status) {
	bySegment := make(map[SegmentID][]turnOperationIndex)
	for i := range turns {
		bySegment[turns[i].Operations[0].SegID] = append(bySegment[turns[i].Operations[0].SegID], turnOperationIndex{i, 0})
		bySegment[turns[i].Operations[1].SegID] = append(bySegment[turns[i].Operations[1].SegID], turnOperationIndex{i, 1})
	}

	hasColocations := false
	for _, ops := range bySegment {
		if len(ops) > 1 {
			hasColocations = true
			break
		}
	}
	if !hasColocations {
		return nil, 0
	}

	// Map iteration order is undefined in Go; sort the keys in SegmentID
	// order (source, multi, ring, segment), which within a polygon puts the
	// exterior ring (ring_index -1) before its interior ones, to keep a
	// deterministic processing order.
	segIDs := make([]SegmentID, 0, len(bySegment))
	for id := range bySegment {
		segIDs = append(segIDs, id)
	}
	sort.Slice(segIDs, func(i, j int) bool { return segIDs[i].Less(segIDs[j]) })

	for _, id := range segIDs {
		ops := bySegment[id]
		sort.SliceStable(ops, func(i, j int) bool {
			return lessByFractionAndType(turns, ops[i], ops[j])
		})
		assertTotalOrder(turns, ops)
	}

	colocatedCCMap := make(map[RingID]int)
	clusterPerSegment := make(map[SegmentFractionKey]int)
	uf := newClusterUnionFind()

	status := StatusColocationsFound
	for _, id := range segIDs {
		ops := bySegment[id]
		if len(ops) > 1 {
			if handleColocationCluster(turns, uf, clusterPerSegment, colocatedCCMap, ops, mode, geoms, reverse1, reverse2) {
				status |= StatusClusterMerged
			}
		}
	}

	assignClusterToTurns(turns, clusters, clusterPerSegment, uf)
	removeSingletonClusters(turns, clusters)

	return colocatedCCMap, status
}
