package overlay

import "fmt"

// Status reports the outcome of Enrich. There is no failure state here:
// the core has no retryable errors, so Status is informational only,
// meant for the debug trace CLI (cmd/overlay) and tests, not for control
// flow.
type Status uint32

// Status detail flags, combinable with |.
const (
	// StatusColocationsFound means at least one segment carried two or more
	// turn operations, at any fractions, so clustering ran.
	StatusColocationsFound Status = 1 << 0
	// StatusLonelyUUDiscarded means at least one ring's sole surviving
	// operation was a lonely uu turn discarded as a dead-end traversal.
	StatusLonelyUUDiscarded Status = 1 << 1
	// StatusClusterMerged means two previously distinct clusters were
	// unioned while processing a colocation.
	StatusClusterMerged Status = 1 << 2
)

// Has reports whether flag is set in s.
func (s Status) Has(flag Status) bool {
	return s&flag != 0
}

func (s Status) String() string {
	if s == 0 {
		return "clean"
	}
	out := ""
	add := func(flag Status, name string) {
		if s.Has(flag) {
			if out != "" {
				out += "|"
			}
			out += name
		}
	}
	add(StatusColocationsFound, "colocations")
	add(StatusLonelyUUDiscarded, "lonely-uu-discarded")
	add(StatusClusterMerged, "cluster-merged")
	return fmt.Sprintf("%s (0x%x)", out, uint32(s))
}
