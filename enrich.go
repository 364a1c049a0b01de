package overlay

import "sort"

// EnrichSort sorts one ring's bucketed operations by segment index and then
// fraction. Operations that land on the exact same point (same
// segment index and fraction — necessarily part of the same cluster) are
// then reordered, as a group, by angular order around that point under
// robustPolicy, so that colocated alternatives leave in their
// angularly-correct order rather than in map-insertion order.
func EnrichSort(ops []IndexedOperation, turns []Turn, geoms [2]Geometry, robustPolicy RobustPolicy, reverse1, reverse2 bool) {
	sort.SliceStable(ops, func(i, j int) bool {
		a, b := ops[i].Operation, ops[j].Operation
		if a.SegID.SegmentIndex != b.SegID.SegmentIndex {
			return a.SegID.SegmentIndex < b.SegID.SegmentIndex
		}
		return a.Fraction.Less(b.Fraction)
	})

	for start := 0; start < len(ops); {
		end := start + 1
		for end < len(ops) && sameSegmentFraction(ops[start].Operation, ops[end].Operation) {
			end++
		}
		if end-start > 1 {
			reorderTiedGroup(ops[start:end], turns, geoms, robustPolicy, reverse1, reverse2)
		}
		start = end
	}
}

func sameSegmentFraction(a, b TurnOperation) bool {
	return a.SegID.SegmentIndex == b.SegID.SegmentIndex && a.Fraction.Equal(b.Fraction)
}

// reorderTiedGroup re-sorts, in place, a run of operations that all land on
// the same point, using the side sorter on their outgoing direction.
func reorderTiedGroup(group []IndexedOperation, turns []Turn, geoms [2]Geometry, robustPolicy RobustPolicy, reverse1, reverse2 bool) {
	point := turns[group[0].TurnIndex].Point
	sbs := NewSideSorter(point, robustPolicy, reverse1, reverse2)
	for _, io := range group {
		addOperationDirection(sbs, io.Operation, io.TurnIndex, io.OpIndex, geoms, true)
	}

	rankOf := make(map[turnOperationIndex]int, len(group))
	for pos, rp := range sbs.Apply() {
		rankOf[turnOperationIndex{rp.TurnIndex, rp.OpIndex}] = pos
	}
	sort.SliceStable(group, func(i, j int) bool {
		return rankOf[turnOperationIndex{group[i].TurnIndex, group[i].OpIndex}] <
			rankOf[turnOperationIndex{group[j].TurnIndex, group[j].OpIndex}]
	})
}

// EnrichAssign walks a ring's sorted operation vector circularly, assigning
// each entry's successor. The "next" index only ever advances; it is never
// recomputed from the current position, so that a cluster skip carries its
// extra advancement forward into later iterations rather than being undone
// by the next loop step.
func EnrichAssign(ops []IndexedOperation, turns []Turn) {
	n := len(ops)
	if n == 0 {
		return
	}

	nextIdx := 1 % n
	for i := 0; i < n; i++ {
		cur := ops[i]
		curTurn := &turns[cur.TurnIndex]

		if ops[nextIdx].TurnIndex == cur.TurnIndex {
			nextIdx = (nextIdx + 1) % n
		}

		// Cluster skip: inside a cluster, successive operations on the same
		// segment are colocated alternatives; jump past the whole cluster
		// to the next distinct location.
		for curTurn.ClusterID != -1 &&
			ops[nextIdx].TurnIndex != cur.TurnIndex &&
			turns[ops[nextIdx].TurnIndex].ClusterID == curTurn.ClusterID &&
			ops[nextIdx].Operation.SegID == curTurn.Operations[cur.OpIndex].SegID {
			nextIdx = (nextIdx + 1) % n
		}

		next := ops[nextIdx]
		nextOp := turns[next.TurnIndex].Operations[next.OpIndex]

		op := &curTurn.Operations[cur.OpIndex]
		op.Enriched.TravelsToIPIndex = next.TurnIndex
		op.Enriched.TravelsToVertexIndex = nextOp.SegID.SegmentIndex

		if op.SegID.SegmentIndex == nextOp.SegID.SegmentIndex && op.Fraction.Less(nextOp.Fraction) {
			// Next turn is located further along the same segment: this is
			// not circular, so the fraction check (rather than just index
			// equality) prevents a false "next on segment" after wraparound.
			op.Enriched.NextIPIndex = next.TurnIndex
		} else {
			op.Enriched.NextIPIndex = -1
		}
	}
}

// Enrich is the core's single entry point. Given the turn list produced by
// pairwise segment intersection and an empty cluster map, it discards
// "none" turns, clusters colocated turns and discards redundant ones,
// buckets surviving operations per ring, discards lonely uu turns where
// applicable, then sorts and assigns successor links per ring. turns and
// clusters are mutated in place; the returned Status summarizes what
// happened, for diagnostics.
func Enrich(
	turns []Turn,
	clusters Clusters,
	mode OperationMode,
	geoms [2]Geometry,
	robustPolicy RobustPolicy,
	reverse1, reverse2 bool,
) Status {
	for i := range turns {
		if turns[i].Both(OpNone) {
			turns[i].Discarded = true
		}
	}

	colocatedCCMap, status := DetectColocations(turns, clusters, mode, geoms, reverse1, reverse2)

	mapped := CreateMap(turns, mode)

	if status.Has(StatusColocationsFound) {
		status |= DiscardLonelyUUTurns(mapped, turns, colocatedCCMap)
	}

	for _, ops := range mapped {
		EnrichSort(ops, turns, geoms, robustPolicy, reverse1, reverse2)
	}
	for _, ops := range mapped {
		EnrichAssign(ops, turns)
	}

	return status
}
