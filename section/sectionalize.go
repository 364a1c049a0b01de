package section

import overlay "github.com/arl/go-overlay"

// DefaultMaxCount is the default maximum number of segments a single
// section may hold before it is closed and a new one started.
const DefaultMaxCount = 10

// inflateFactor is the relaxed-epsilon multiplier applied to every
// section's box after it is built, so a vertex sitting exactly on a
// section boundary is not missed by a downstream strict-inside overlap
// test.
const inflateFactor = 10

// Sectionalize decomposes every ring of geom into monotonic sections.
// maxCount caps the number of segments per section; callers
// wanting the default pass DefaultMaxCount. Sections are returned in
// ring-order, each ring's sections in vertex order.
func Sectionalize(geom overlay.Geometry, maxCount int) []Section {
	if maxCount <= 0 {
		maxCount = DefaultMaxCount
	}

	var all []Section
	for _, ringID := range geom.Rings() {
		all = append(all, sectionalizeRange(geom, ringID, maxCount)...)
	}
	markNonDuplicates(all)
	for i := range all {
		all[i].BoundingBox = overlay.InflateBox(all[i].BoundingBox, overlay.Epsilon32*inflateFactor)
	}
	return all
}

// direction returns the per-dimension sign of q-p, or duplicateDirection in
// every slot if p and q coincide in every dimension.
func direction(p, q overlay.Point) [Dims]int8 {
	var d [Dims]int8
	dup := true
	for axis := 0; axis < Dims; axis++ {
		diff := coord(q, axis) - coord(p, axis)
		switch {
		case diff > 0:
			d[axis] = 1
			dup = false
		case diff < 0:
			d[axis] = -1
			dup = false
		default:
			d[axis] = 0
		}
	}
	if dup {
		for axis := range d {
			d[axis] = duplicateDirection
		}
	}
	return d
}

func coord(p overlay.Point, axis int) float32 {
	if axis == 0 {
		return p.X()
	}
	return p.Y()
}

func sameDirection(a, b [Dims]int8) bool {
	return a == b
}

// sectionalizeRange builds the sections of a single ring or linestring by
// grouping consecutive same-direction segments together. A range with 0 or
// 1 vertices produces no sections.
func sectionalizeRange(geom overlay.Geometry, ringID overlay.LocalRingID, maxCount int) []Section {
	n := geom.VertexCount(ringID)
	if n < 2 {
		return nil
	}

	segCount := n - 1
	if geom.Closed(ringID) {
		segCount = n
	}
	if segCount < 1 {
		return nil
	}

	var sections []Section
	var cur *Section
	ndi := 0 // count of non-duplicate segments seen so far in this ring

	for i := 0; i < segCount; i++ {
		p := geom.PointAt(ringID, i)
		q := geom.PointAt(ringID, (i+1)%n)
		dirs := direction(p, q)
		duplicate := dirs[0] == duplicateDirection

		if cur == nil || !sameDirection(cur.Directions, dirs) || cur.Count >= maxCount {
			if cur != nil {
				sections = append(sections, *cur)
			}
			s := newSection(ringID, n, i, dirs, duplicate)
			s.NonDuplicateIndex = ndi
			cur = &s
		}
		cur.addSegment(p, q, i+1)
		if !duplicate {
			ndi++
		}
	}
	if cur != nil {
		sections = append(sections, *cur)
	}
	return sections
}

// markNonDuplicates sets IsNonDuplicateFirst/IsNonDuplicateLast, ring by
// ring: traversal needs to know where a ring's leading or trailing run of
// degenerate sections ends. NonDuplicateIndex itself is assigned earlier,
// in sectionalizeRange, since it needs the running non-duplicate-segment
// count at section-open time rather than a post-hoc per-section tally.
func markNonDuplicates(all []Section) {
	start := 0
	for start < len(all) {
		end := start + 1
		for end < len(all) && all[end].RingID == all[start].RingID {
			end++
		}
		markRingNonDuplicates(all[start:end])
		start = end
	}
}

func markRingNonDuplicates(ring []Section) {
	first, last := -1, -1
	for i := range ring {
		if ring[i].Duplicate {
			continue
		}
		if first == -1 {
			first = i
		}
		last = i
	}
	if first != -1 {
		ring[first].IsNonDuplicateFirst = true
		ring[last].IsNonDuplicateLast = true
	}
}
