// Package dbg renders opt-in textual traces of sort order and colocation
// state, for debugging only — nothing here affects observable behavior.
// Nothing here is on the Enrich hot path; it is only ever called from
// cmd/overlay's trace subcommand.
package dbg

import (
	"fmt"
	"sort"
	"strings"

	overlay "github.com/arl/go-overlay"
)

// TraceTurns renders one line per turn: its point, method, and each
// operation's segment id, fraction, class, cluster membership and enriched
// successor links.
func TraceTurns(turns []overlay.Turn) string {
	var b strings.Builder
	for i, turn := range turns {
		status := "live"
		if turn.Discarded {
			status = "discarded"
		}
		fmt.Fprintf(&b, "turn %d: pt=%s method=%v cluster=%d [%s]\n",
			i, turn.Point, turn.Method, turn.ClusterID, status)
		for opIndex, op := range turn.Operations {
			fmt.Fprintf(&b, "  op%d: seg=%+v frac=%s class=%s -> ip=%d vtx=%d next=%d\n",
				opIndex, op.SegID, op.Fraction, op.Operation,
				op.Enriched.TravelsToIPIndex, op.Enriched.TravelsToVertexIndex, op.Enriched.NextIPIndex)
		}
	}
	return b.String()
}

// TraceClusters renders one line per cluster id, sorted, listing its member
// turn indices in ascending order.
func TraceClusters(clusters overlay.Clusters) string {
	ids := make([]int, 0, len(clusters))
	for id := range clusters {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var b strings.Builder
	for _, id := range ids {
		members := make([]int, 0, len(clusters[id]))
		for turnIndex := range clusters[id] {
			members = append(members, turnIndex)
		}
		sort.Ints(members)
		fmt.Fprintf(&b, "cluster %d: %v\n", id, members)
	}
	return b.String()
}

// TraceRingMap renders one section per ring, listing its bucketed
// operations in their current (possibly sorted) order.
func TraceRingMap(mapped map[overlay.RingID][]overlay.IndexedOperation) string {
	rings := make([]overlay.RingID, 0, len(mapped))
	for r := range mapped {
		rings = append(rings, r)
	}
	sort.Slice(rings, func(i, j int) bool {
		a, b := rings[i], rings[j]
		if a.SourceIndex != b.SourceIndex {
			return a.SourceIndex < b.SourceIndex
		}
		if a.MultiIndex != b.MultiIndex {
			return a.MultiIndex < b.MultiIndex
		}
		return a.RingIndex < b.RingIndex
	})

	var b strings.Builder
	for _, r := range rings {
		fmt.Fprintf(&b, "ring %+v:\n", r)
		for _, op := range mapped[r] {
			fmt.Fprintf(&b, "  turn=%d op=%d seg=%+v frac=%s\n",
				op.TurnIndex, op.OpIndex, op.Operation.SegID, op.Operation.Fraction)
		}
	}
	return b.String()
}
