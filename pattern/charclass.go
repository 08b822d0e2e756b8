package pattern

import "github.com/coregx/lexgen/interval"

// ResolveCharClass returns the concrete (non-inverted) set of intervals a
// CharClass pattern matches: p.Intervals itself if p is not Inverted, or
// p.Intervals' complement over [0, interval.MaxRune] if it is.
//
// The complement is computed by sorting a copy of p.Intervals ascending by
// Lo and filling the gaps; per the original tool's behavior this is not
// guaranteed minimal when the declared intervals overlap, which is fine —
// the NFA builder emits one edge per interval and the determinizer resolves
// overlap regardless.
func ResolveCharClass(p *Pattern) []interval.Interval {
	if !p.Inverted {
		return p.Intervals
	}

	sorted := make([]interval.Interval, len(p.Intervals))
	copy(sorted, p.Intervals)
	interval.SortIntervals(sorted)
	return interval.Invert(sorted)
}
