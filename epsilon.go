package overlay

import (
	"math"

	"github.com/arl/math32"
)

// Epsilon32 is the machine epsilon for float32, i.e. the smallest value such
// that 1+Epsilon32 != 1.
var Epsilon32 float32

func init() {
	Epsilon32 = math.Nextafter32(1, 2) - 1
}

// relaxedEpsilon returns factor*Epsilon32, the tolerance used to inflate a
// section's bounding box (see section.Sectionalize) so that a vertex lying
// exactly on a section boundary is not missed by a strict-inside overlap
// test downstream.
func relaxedEpsilon(factor float32) float32 {
	return factor * Epsilon32
}

// approxEqual reports whether a and b are equal within a relaxed epsilon
// scaled to their magnitude, used where robust-policy coordinates must be
// compared for practical rather than bit-exact equality.
func approxEqual(a, b float32) bool {
	return math32.Abs(a-b) < relaxedEpsilon(100)*(1+math32.Max(math32.Abs(a), math32.Abs(b)))
}
