package interval

// Subtract removes every point covered by excludes from includes. Both
// arguments must be normalized, i.e. outputs of Merge; the result is then
// normalized as well and is not merged again.
//
// Every include is checked against the full exclude list.
func Subtract(includes, excludes []Interval) []Interval {
	if len(excludes) == 0 {
		return append([]Interval{}, includes...)
	}

	out := make([]Interval, 0, len(includes))
	for _, inc := range includes {
		cursor := inc.start
		for _, exc := range excludes {
			if exc.end < cursor || exc.start > inc.end {
				continue
			}
			if exc.start <= cursor && exc.end >= inc.end {
				// exclude covers what is left of the include
				cursor = inc.end + 1
				break
			}
			switch {
			case exc.start <= cursor && exc.end < inc.end:
				// exclude overlaps the leading edge, a later exclude may
				// still cut what remains
				cursor = exc.end + 1
			case exc.start > cursor && exc.end < inc.end:
				// exclude sits in the middle
				out = append(out, Interval{start: cursor, end: exc.start - 1})
				cursor = exc.end + 1
			case exc.start > cursor && exc.end >= inc.end:
				// exclude overlaps the trailing edge
				out = append(out, Interval{start: cursor, end: exc.start - 1})
				cursor = inc.end + 1
			}
		}
		if cursor <= inc.end {
			out = append(out, Interval{start: cursor, end: inc.end})
		}
	}
	return out
}

// Sweep returns the same result as Subtract in a single pass over both
// lists. includes and excludes must be normalized.
func Sweep(includes, excludes []Interval) []Interval {
	in := append([]Interval{}, includes...)
	out := excludes

	res := make([]Interval, 0, len(in))
	for len(in) > 0 && len(out) > 0 {
		rin, rout := in[0], out[0]

		switch {
		case rout.EntirelyBefore(rin):
			// "out" is entirely before "in".
			//
			//    out         in
			// s-------e   s-------e
			out = out[1:]
		case rin.EntirelyBefore(rout):
			// "in" is entirely before "out".
			//
			//    in         out
			// s------e   s-------e
			res = append(res, rin)
			in = in[1:]
		case rin.CoveredBy(rout):
			// "out" entirely covers "in".
			//
			//       out
			// s-------------e
			//    s------e
			//       in
			in = in[1:]
		case rout.InMiddleOf(rin):
			// "in" entirely covers "out".
			//
			//       in
			// s-------------e
			//    s------e
			//       out
			res = append(res, Interval{start: rin.start, end: rout.start - 1})
			// Adjust in[0], not rin, because the trimmed range is
			// considered on the next iteration.
			in[0].start = rout.end + 1
			out = out[1:]
		case rout.OverlapsStartOf(rin):
			// "out" overlaps start of "in".
			//
			//   out
			// s------e
			//    s------e
			//       in
			//
			// A later out might trim in[0] further, so it is not
			// emitted yet.
			in[0].start = rout.end + 1
			out = out[1:]
		case rout.OverlapsEndOf(rin):
			// "out" overlaps end of "in". out is kept since it may
			// overlap the next in as well.
			//
			//           out
			//        s------e
			//    s------e
			//       in
			res = append(res, Interval{start: rin.start, end: rout.start - 1})
			in = in[1:]
		default:
			panic("unexpected additional overlap scenario")
		}
	}
	return append(res, in...)
}
