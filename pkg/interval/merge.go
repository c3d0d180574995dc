package interval

import "sort"

// Merge returns the minimum and sorted set of intervals that cover in.
// Intervals sharing at least one point are merged; adjacent intervals such
// as 1-5 and 6-10 are kept apart. in is not modified.
func Merge(in []Interval) []Interval {
	switch len(in) {
	case 0:
		return []Interval{}
	case 1:
		return []Interval{in[0]}
	}

	sorted := make([]Interval, len(in))
	copy(sorted, in)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	out := make([]Interval, 1, len(sorted))
	out[0] = sorted[0]
	for _, r := range sorted[1:] {
		prev := &out[len(out)-1]
		switch {
		case prev.end < r.start:
			// No shared point, no merging possible.
			//
			//   prev       r
			// s------e  s-----e
			out = append(out, r)
		case prev.end < r.end:
			// Partial overlap or touching at prev.end, extend prev.
			//
			//   prev
			// s------e
			//        s-----e
			//           r
			prev.end = r.end
		default:
			// r entirely contained in prev, nothing to do.
			//
			//    prev
			// s--------e
			//  s-----e
			//     r
		}
	}
	return out
}

// IsNormalized reports whether rr is sorted by start and every interval
// begins after the end of its predecessor.
func IsNormalized(rr []Interval) bool {
	for i := 1; i < len(rr); i++ {
		if rr[i].start <= rr[i-1].end {
			return false
		}
	}
	return true
}
