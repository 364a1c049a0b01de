package overlay

import (
	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/math32"
)

// Point is a 2D coordinate. It is stored as a 3D d3.Vec3 with a zero Z, so
// that go-overlay can reuse gogeo's vector and rectangle math rather than
// hand-rolling a parallel 2D one.
type Point = d3.Vec3

// NewPoint returns the 2D point (x, y).
func NewPoint(x, y float32) Point {
	return d3.NewVec3XYZ(x, y, 0)
}

// Box is an axis-aligned bounding box in the plane.
type Box = d3.Rectangle

// NewBoxFromPoint returns the degenerate box containing only p.
func NewBoxFromPoint(p Point) Box {
	return d3.Rect(p.X(), p.Y(), 0, p.X(), p.Y(), 0)
}

// UnionBox returns the smallest box containing both a and b. gogeo's own
// Rectangle.Union treats any box with zero extent along an axis as "empty"
// and special-cases it away — correct for the 3D navmesh boxes it was
// written for, wrong here, since every 2D box in this package has zero
// extent on Z by construction and would otherwise be silently discarded.
func UnionBox(a, b Box) Box {
	return d3.Rect(
		math32.Min(a.Min.X(), b.Min.X()), math32.Min(a.Min.Y(), b.Min.Y()), 0,
		math32.Max(a.Max.X(), b.Max.X()), math32.Max(a.Max.Y(), b.Max.Y()), 0,
	)
}

// InflateBox returns a, expanded by n on every side in X and Y.
func InflateBox(a Box, n float32) Box {
	return d3.Rect(a.Min.X()-n, a.Min.Y()-n, 0, a.Max.X()+n, a.Max.Y()+n, 0)
}

// Geometry is the capability set the sectionalizer and ring bucketizer need
// from an input geometry: enumerate its rings, and walk a ring's vertices.
// Ring, LineString, Polygon, MultiPolygon and Box (see constructors below)
// all implement it, so that sectionalizer/bucketizer code does not need to
// know which of the five it was handed.
type Geometry interface {
	// Rings returns the geometry's rings in the order sectionalization must
	// visit them: each polygon's exterior ring before its interior rings,
	// polygon by polygon for a multi-polygon.
	Rings() []LocalRingID
	// VertexCount returns the number of vertices in the given ring.
	VertexCount(ring LocalRingID) int
	// PointAt returns the vertex at index within the given ring.
	PointAt(ring LocalRingID, index int) Point
	// Closed reports whether the given ring wraps around (its last vertex
	// connects back to its first, contributing one more segment than open
	// geometries like a LineString).
	Closed(ring LocalRingID) bool
}

// ring is a sequence of points: Geometry for a LineString or polygon ring,
// and the building block for Polygon/MultiPolygon/Box.
type ring struct {
	points []Point
	closed bool
}

// NewRing returns a Geometry for a single closed ring: its last vertex
// connects back to its first, contributing one additional segment.
func NewRing(points []Point) Geometry {
	return ring{points: points, closed: true}
}

// NewLineString returns a Geometry for an open line string: its last vertex
// does not connect back to its first.
func NewLineString(points []Point) Geometry {
	return ring{points: points, closed: false}
}

func (r ring) Rings() []LocalRingID { return []LocalRingID{{MultiIndex: -1, RingIndex: -1}} }
func (r ring) VertexCount(LocalRingID) int { return len(r.points) }
func (r ring) PointAt(_ LocalRingID, index int) Point { return r.points[index] }
func (r ring) Closed(LocalRingID) bool { return r.closed }

// polygon is an exterior ring plus zero or more interior (hole) rings.
type polygon struct {
	exterior  []Point
	interiors [][]Point
}

// NewPolygon returns a Geometry for a polygon with the given exterior ring
// and interior (hole) rings.
func NewPolygon(exterior []Point, interiors [][]Point) Geometry {
	return polygon{exterior: exterior, interiors: interiors}
}

func (p polygon) Rings() []LocalRingID {
	ids := make([]LocalRingID, 0, 1+len(p.interiors))
	ids = append(ids, LocalRingID{MultiIndex: -1, RingIndex: -1})
	for i := range p.interiors {
		ids = append(ids, LocalRingID{MultiIndex: -1, RingIndex: i})
	}
	return ids
}

func (p polygon) VertexCount(r LocalRingID) int {
	if r.RingIndex == -1 {
		return len(p.exterior)
	}
	return len(p.interiors[r.RingIndex])
}

func (p polygon) PointAt(r LocalRingID, index int) Point {
	if r.RingIndex == -1 {
		return p.exterior[index]
	}
	return p.interiors[r.RingIndex][index]
}

// Closed always reports true: every ring of a polygon, exterior or
// interior, is closed.
func (p polygon) Closed(LocalRingID) bool { return true }

// multiPolygon is an ordered collection of polygons.
type multiPolygon struct {
	polys []polygon
}

// NewMultiPolygon returns a Geometry for a collection of polygons, each
// given as (exterior, interiors) the same way NewPolygon takes them.
func NewMultiPolygon(exteriors [][]Point, interiorsPerPoly [][][]Point) Geometry {
	polys := make([]polygon, len(exteriors))
	for i, ext := range exteriors {
		var interiors [][]Point
		if i < len(interiorsPerPoly) {
			interiors = interiorsPerPoly[i]
		}
		polys[i] = polygon{exterior: ext, interiors: interiors}
	}
	return multiPolygon{polys: polys}
}

func (m multiPolygon) Rings() []LocalRingID {
	var ids []LocalRingID
	for mi, p := range m.polys {
		for _, r := range p.Rings() {
			ids = append(ids, LocalRingID{MultiIndex: mi, RingIndex: r.RingIndex})
		}
	}
	return ids
}

func (m multiPolygon) VertexCount(r LocalRingID) int {
	return m.polys[r.MultiIndex].VertexCount(LocalRingID{RingIndex: r.RingIndex})
}

func (m multiPolygon) PointAt(r LocalRingID, index int) Point {
	return m.polys[r.MultiIndex].PointAt(LocalRingID{RingIndex: r.RingIndex}, index)
}

func (m multiPolygon) Closed(LocalRingID) bool { return true }

// NewBox returns a Geometry for an axis-aligned box, synthesized as the
// 5-point ring ll -> ul -> ur -> lr -> ll. Its last point repeats the
// first, so its Closed method reports false: the closing segment is
// already explicit and no extra wrap-around segment is added.
func NewBox(min, max Point) Geometry {
	ll := NewPoint(min.X(), min.Y())
	ul := NewPoint(min.X(), max.Y())
	ur := NewPoint(max.X(), max.Y())
	lr := NewPoint(max.X(), min.Y())
	return ring{points: []Point{ll, ul, ur, lr, ll}}
}

// PointsEqual reports whether a and b are equal under a relaxed epsilon
// scaled to their magnitude: the equality two turns in the same cluster
// must satisfy under the robust policy in play.
func PointsEqual(a, b Point) bool {
	return approxEqual(a.X(), b.X()) && approxEqual(a.Y(), b.Y())
}

// RobustPolicy converts geometry points into a robust coordinate space used
// by the side sorter; the sectionalizer does not use it. The core treats
// it as an opaque capability; a policy that returns points unchanged
// (identity) is valid and is what the tests in this package use.
type RobustPolicy interface {
	Recalculate(p Point) Point
}

// IdentityRobustPolicy is a RobustPolicy that performs no rescaling.
type IdentityRobustPolicy struct{}

// Recalculate returns p unchanged.
func (IdentityRobustPolicy) Recalculate(p Point) Point { return p }
