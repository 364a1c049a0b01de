package overlay

import "math/big"

// SegmentRatio is a rational number in [0,1] giving the distance of a point
// along a segment, stored as an exact fraction in lowest terms. Ordering and
// equality are exact: two ratios compare equal iff numerically identical,
// never by converting to a float — comparing converted floating-point
// fractions is incorrect because two operations whose fractions differ by
// one ulp must still sort consistently with the angular side-sort.
//
// The numerator and denominator, not a *big.Rat, are the stored
// representation: SegmentRatio is used as a map key (via
// SegmentFractionKey) throughout colocation handling, and a pointer field
// would make two independently-constructed-but-equal ratios compare unequal
// as map keys (Go compares pointer fields by address, not by what they
// point to).
type SegmentRatio struct {
	num, den int64
}

// ZeroRatio is the ratio at the start of a segment.
var ZeroRatio = NewSegmentRatio(0, 1)

// OneRatio is the ratio at the end of a segment.
var OneRatio = NewSegmentRatio(1, 1)

// NewSegmentRatio returns the exact ratio numerator/denominator, reduced to
// lowest terms so that two ratios constructed from different but equal
// fractions (e.g. 1/2 and 2/4) compare equal as plain Go values.
func NewSegmentRatio(numerator, denominator int64) SegmentRatio {
	r := big.NewRat(numerator, denominator)
	return SegmentRatio{num: r.Num().Int64(), den: r.Denom().Int64()}
}

func (s SegmentRatio) rat() *big.Rat {
	return big.NewRat(s.num, s.den)
}

// Less reports whether s orders strictly before other.
func (s SegmentRatio) Less(other SegmentRatio) bool {
	return s.rat().Cmp(other.rat()) < 0
}

// Equal reports whether s and other are the same exact fraction. Since both
// are always kept in lowest terms, this is a plain value comparison.
func (s SegmentRatio) Equal(other SegmentRatio) bool {
	return s.num == other.num && s.den == other.den
}

// Float64 returns an approximation of the ratio, for display or for
// interpolating a point along a segment. It must never be used to compare
// two ratios.
func (s SegmentRatio) Float64() float64 {
	f, _ := s.rat().Float64()
	return f
}

func (s SegmentRatio) String() string {
	return s.rat().RatString()
}

// SegmentFractionKey identifies a point on a segment by (segment, exact
// fraction along it). It is totally ordered: by SegID first, then by
// Fraction.
type SegmentFractionKey struct {
	SegID    SegmentID
	Fraction SegmentRatio
}

// Less reports whether k orders before other.
func (k SegmentFractionKey) Less(other SegmentFractionKey) bool {
	if k.SegID != other.SegID {
		return k.SegID.Less(other.SegID)
	}
	return k.Fraction.Less(other.Fraction)
}

// Equal reports whether k and other identify the same segment fraction.
func (k SegmentFractionKey) Equal(other SegmentFractionKey) bool {
	return k.SegID == other.SegID && k.Fraction.Equal(other.Fraction)
}
