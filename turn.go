package overlay

// Operation classifies how one source traverses a turn.
type Operation int

// The five operation classes a turn operation can carry.
const (
	OpNone Operation = iota
	OpUnion
	OpIntersection
	OpBlocked
	OpContinue
)

// Char returns the single-letter code used in debug traces: u/i/x/c/-.
func (o Operation) Char() byte {
	switch o {
	case OpUnion:
		return 'u'
	case OpIntersection:
		return 'i'
	case OpBlocked:
		return 'x'
	case OpContinue:
		return 'c'
	default:
		return '-'
	}
}

func (o Operation) String() string {
	return string(o.Char())
}

// Method classifies the geometry of the intersection itself.
type Method int

// Method values, following Boost.Geometry's overlay method enumeration.
const (
	MethodNone Method = iota
	MethodCrosses
	MethodTouches
	MethodTouchInterior
	MethodCollinear
	MethodEqual
	MethodError
)

// OperationMode selects which boolean operation the enriched graph will be
// traversed for. It is a parameter the core consumes: the traversal that
// resolves union/intersection/difference semantics lives outside this
// package.
type OperationMode int

// The three traversal modes the core is parameterized by.
const (
	ModeUnion OperationMode = iota
	ModeIntersection
	ModeDifference
)

// Enriched holds the successor links computed by Enrich. NewTurn sets all
// fields to -1; they keep that value until enrichment has run on the
// containing turn.
type Enriched struct {
	// TravelsToIPIndex is the index, into the owning Turns slice, of the
	// turn to travel to when leaving this operation.
	TravelsToIPIndex int
	// TravelsToVertexIndex is the segment index of the vertex to walk
	// toward next.
	TravelsToVertexIndex int
	// NextIPIndex is the index of the next turn on the same segment, or -1
	// if none.
	NextIPIndex int
}

func newEnriched() Enriched {
	return Enriched{TravelsToIPIndex: -1, TravelsToVertexIndex: -1, NextIPIndex: -1}
}

// TurnOperation is one source's side of a Turn.
type TurnOperation struct {
	SegID     SegmentID
	Fraction  SegmentRatio
	Operation Operation
	Enriched  Enriched
}

// Turn is a point where a segment of geometry 0 meets a segment of
// geometry 1.
type Turn struct {
	Operations [2]TurnOperation
	Point      Point
	Method     Method

	// ClusterID is -1 until this turn is assigned to a cluster.
	ClusterID int
	Discarded bool
	Colocated bool
}

// NewTurn returns a Turn with both operations' SegID.SourceIndex set to 0
// and 1 respectively, unenriched, unclustered.
func NewTurn(point Point, method Method, op0, op1 TurnOperation) Turn {
	op0.SegID.SourceIndex = 0
	op1.SegID.SourceIndex = 1
	op0.Enriched = newEnriched()
	op1.Enriched = newEnriched()
	return Turn{
		Operations: [2]TurnOperation{op0, op1},
		Point:      point,
		Method:     method,
		ClusterID:  -1,
	}
}

// Has reports whether either operation of t has the given Operation class.
func (t Turn) Has(op Operation) bool {
	return t.Operations[0].Operation == op || t.Operations[1].Operation == op
}

// Both reports whether both operations of t have the given Operation class
// (the "xx"/"uu"/"cc" tests throughout colocation handling).
func (t Turn) Both(op Operation) bool {
	return t.Operations[0].Operation == op && t.Operations[1].Operation == op
}

// Other returns 1-opIndex, the index of the operation not at opIndex.
func Other(opIndex int) int {
	return 1 - opIndex
}
