// Package overlay implements the core of a two-dimensional polygon overlay
// engine: turning the raw intersection points ("turns") between two input
// geometries into a directed graph ready for ring traversal.
//
// The package does not compute intersections itself, and it does not walk
// the resulting graph into output rings. It sits between those two stages:
// given a turn list produced by pairwise segment intersection, it clusters
// colocated turns, discards the ones that are provably redundant, and wires
// each turn's successor so that a traversal stage can later follow the
// graph for union, intersection or difference.
//
// Sub-package section implements the sectionalizer, the monotonic-section
// decomposition that the intersection stage uses to prune segment-vs-segment
// candidates before any turn exists.
package overlay
