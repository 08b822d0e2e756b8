package dfa

import (
	"testing"

	"github.com/coregx/lexgen/interval"
	"github.com/coregx/lexgen/nfa"
)

// TestDeterminizeDisjointOutgoingIntervals exercises testable property 1:
// after determinization, no two edges out of the same state overlap.
func TestDeterminizeDisjointOutgoingIntervals(t *testing.T) {
	n := nfa.New()
	start := n.AddState()
	t0 := n.AddState()
	t1 := n.AddState()
	n.AddEdge(start, interval.New('a', 'f'), t0)
	n.AddEdge(start, interval.New('c', 'z'), t1)
	n.State(t0).CompletedMatch = 0
	n.State(t1).CompletedMatch = 1
	n.SetStartState("INITIAL", start)

	Determinize(n)

	edges := n.State(start).Edges
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if edges[i].Interval.Overlaps(edges[j].Interval) {
				t.Fatalf("overlapping edges after determinization: %v and %v", edges[i], edges[j])
			}
		}
	}
}

// TestDeterminizeS3OverlapSplit exercises spec scenario S3: [a-f]->T0 and
// [c-z]->T1 split into three disjoint ranges, with the middle range's
// superstate completing on T0 (smaller ordinal wins).
func TestDeterminizeS3OverlapSplit(t *testing.T) {
	n := nfa.New()
	start := n.AddState()
	t0 := n.AddState()
	t1 := n.AddState()
	n.AddEdge(start, interval.New('a', 'f'), t0)
	n.AddEdge(start, interval.New('c', 'z'), t1)
	n.State(t0).CompletedMatch = 0
	n.State(t1).CompletedMatch = 1
	n.SetStartState("INITIAL", start)

	Determinize(n)

	edges := n.State(start).Edges
	if len(edges) != 3 {
		t.Fatalf("expected 3 disjoint edges, got %d: %v", len(edges), edges)
	}

	var sawMiddle bool
	for _, e := range edges {
		if e.Interval == interval.New('c', 'f') {
			sawMiddle = true
			if n.State(e.Target).CompletedMatch != 0 {
				t.Errorf("middle superstate should complete on T0 (ordinal 0), got %d", n.State(e.Target).CompletedMatch)
			}
		}
	}
	if !sawMiddle {
		t.Fatalf("expected a [c-f] edge among %v", edges)
	}
}

// TestDeterminizeSingletonReusesOriginalState exercises the "cardinality 1
// uses the lone state directly" rule: disjoint edges to different targets
// should not allocate any superstate.
func TestDeterminizeSingletonReusesOriginalState(t *testing.T) {
	n := nfa.New()
	start := n.AddState()
	t0 := n.AddState()
	t1 := n.AddState()
	n.AddEdge(start, interval.New('a', 'f'), t0)
	n.AddEdge(start, interval.New('g', 'z'), t1)
	n.SetStartState("INITIAL", start)

	before := n.Len()
	Determinize(n)
	after := n.Len()

	if after != before {
		t.Errorf("expected no new states for already-disjoint edges, before=%d after=%d", before, after)
	}
}

func TestDeterminizeUnionOfTransitionsPreserved(t *testing.T) {
	n := nfa.New()
	start := n.AddState()
	t0 := n.AddState()
	t1 := n.AddState()
	n.AddEdge(start, interval.New('a', 'm'), t0)
	n.AddEdge(start, interval.New('h', 'z'), t1)
	n.SetStartState("INITIAL", start)

	Determinize(n)

	covered := func(r rune) bool {
		for _, e := range n.State(start).Edges {
			if e.Interval.Contains(r) {
				return true
			}
		}
		return false
	}
	for r := rune('a'); r <= 'z'; r++ {
		if !covered(r) {
			t.Errorf("rune %q lost coverage after determinization", r)
		}
	}
}
