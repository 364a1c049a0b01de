package overlay

import "sort"

// IndexedOperation is one turn operation as bucketed per ring: which turn
// and which of its two operations, a copy of that operation, and
// the segment id of the *other* operation. EnrichSort does not read
// OtherSegID: it breaks ties between operations that land on the exact same
// point by angle (see reorderTiedGroup).
type IndexedOperation struct {
	TurnIndex  int
	OpIndex    int
	Operation  TurnOperation
	OtherSegID SegmentID
}

// CreateMap buckets every non-discarded, relevant turn operation by the
// ring its segment lives on. For a mode other than union, a
// turn that has a blocked operation but no operation equal to mode is
// skipped entirely: "ux"/"xu" turns only matter for union, and would
// wrongly terminate an intersection/difference traversal. A surviving
// turn's operations are both inserted, blocked ones included: a blocked
// operation on this ring can still be the relevant terminator for the
// *other* ring's traversal.
func CreateMap(turns []Turn, mode OperationMode) map[RingID][]IndexedOperation {
	mapped := make(map[RingID][]IndexedOperation)

	for i, turn := range turns {
		if turn.Discarded {
			continue
		}
		if mode != ModeUnion && turn.Has(OpBlocked) && !turn.Has(operationFor(mode)) {
			continue
		}

		for opIndex, op := range turn.Operations {
			ringID := op.SegID.Ring()
			mapped[ringID] = append(mapped[ringID], IndexedOperation{
				TurnIndex:  i,
				OpIndex:    opIndex,
				Operation:  op,
				OtherSegID: turn.Operations[Other(opIndex)].SegID,
			})
		}
	}
	return mapped
}

// operationFor maps an OperationMode to the Operation class a turn must
// carry, alongside a blocked one, to remain relevant for that mode.
func operationFor(mode OperationMode) Operation {
	switch mode {
	case ModeIntersection:
		return OpIntersection
	case ModeDifference:
		// Difference is computed as an intersection of geometry1 with the
		// complement of geometry2; a blocked operation survives for
		// difference under the same condition as for intersection.
		return OpIntersection
	default:
		return OpUnion
	}
}

// DiscardLonelyUUTurns handles the case where, per ring, the ring's
// bucketed operation vector holds exactly one entry, that turn has both
// operations union, and the ring appears in colocatedCCMap (meaning the
// ring's "cc" turns were all discarded as colocated with a uu turn during
// colocation detection), then the turn is discarded and purged from every
// ring's vector
// that mentions it — otherwise a solitary uu on a ring whose continuations
// were all discarded would be traveled twice.
func DiscardLonelyUUTurns(mapped map[RingID][]IndexedOperation, turns []Turn, colocatedCCMap map[RingID]int) Status {
	if len(colocatedCCMap) == 0 {
		return 0
	}

	// Discarding one ring's lonely turn can purge another ring down to a
	// single entry, making the outcome of this pass depend on visitation
	// order. Go's map iteration order is randomized per run, so both the
	// outer scan and the purge below range a sorted copy of the ring ids
	// rather than the map directly, to keep the cascade deterministic.
	ringIDs := make([]RingID, 0, len(mapped))
	for ringID := range mapped {
		ringIDs = append(ringIDs, ringID)
	}
	sort.Slice(ringIDs, func(i, j int) bool { return ringIDs[i].Less(ringIDs[j]) })

	var status Status
	for _, ringID := range ringIDs {
		ops := mapped[ringID]
		if len(ops) != 1 {
			continue
		}
		turnIndex := ops[0].TurnIndex
		turn := &turns[turnIndex]
		if !turn.Both(OpUnion) {
			continue
		}
		if _, ok := colocatedCCMap[ringID]; !ok {
			continue
		}

		turn.Discarded = true
		status |= StatusLonelyUUDiscarded

		for _, other := range ringIDs {
			mapped[other] = removeTurnIndex(mapped[other], turnIndex)
		}
	}
	return status
}

func removeTurnIndex(ops []IndexedOperation, turnIndex int) []IndexedOperation {
	kept := ops[:0]
	for _, op := range ops {
		if op.TurnIndex != turnIndex {
			kept = append(kept, op)
		}
	}
	return kept
}
