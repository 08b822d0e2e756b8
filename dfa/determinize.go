package dfa

import (
	"sort"

	"github.com/coregx/lexgen/interval"
	"github.com/coregx/lexgen/nfa"
)

// DFA is the determinized NFA: the same state pool, with every reachable
// state's outgoing intervals pairwise disjoint. It is not a distinct data
// structure from the NFA -- the NFA pool is reused in place, exactly as
// the original tool's single lex_machine_state array serves both phases.
type DFA struct {
	n *nfa.NFA
}

// NFA exposes the underlying state pool for dump/inspection.
func (d *DFA) NFA() *nfa.NFA {
	return d.n
}

// Determinize runs interval-based subset construction over n, which must
// already be epsilon-free (see nfa.RemoveEpsilons). It mutates n in place:
// every reachable state's Edges list is replaced with an equivalent set of
// pairwise-disjoint, sorted intervals, and superstates introduced along the
// way are appended to n's pool.
func Determinize(n *nfa.NFA) *DFA {
	// Step 1: mark every state unvisited. IsReachable is repurposed here
	// as visited-tracking for the subset-construction worklist.
	for _, s := range n.States() {
		s.IsReachable = false
	}

	cache := make(map[StateKey]nfa.StateID)
	worklist := append([]nfa.StateID(nil), n.StartStateList()...)

	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]

		s := n.State(id)
		if s.IsReachable {
			continue
		}
		s.IsReachable = true

		worklist = fixOneState(n, s, cache, worklist)
	}

	return &DFA{n: n}
}

type workEdge struct {
	iv     interval.Interval
	target nfa.StateID
}

// fixOneState runs the sweep-line interval-splitting algorithm over s's
// edge list, replacing it with a pairwise-disjoint, Lo-sorted edge list,
// and returns worklist with the target of every new edge appended.
func fixOneState(n *nfa.NFA, s *nfa.State, cache map[StateKey]nfa.StateID, worklist []nfa.StateID) []nfa.StateID {
	queue := make([]workEdge, len(s.Edges))
	for i, e := range s.Edges {
		queue[i] = workEdge{iv: e.Interval, target: e.Target}
	}
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].iv.Lo < queue[j].iv.Lo
	})

	var newEdges []nfa.Edge

	for len(queue) > 0 {
		lo := queue[0].iv.Lo

		split := 0
		for split < len(queue) && queue[split].iv.Lo == lo {
			split++
		}
		group := queue[:split]
		rest := queue[split:]

		hi := group[0].iv.Hi
		for _, e := range group[1:] {
			if e.iv.Hi < hi {
				hi = e.iv.Hi
			}
		}
		if len(rest) > 0 && rest[0].iv.Lo <= hi {
			hi = rest[0].iv.Lo - 1
		}

		targetIDs := make([]nfa.StateID, len(group))
		for i, e := range group {
			targetIDs[i] = e.target
		}
		targets := dedupSortedTargets(targetIDs)

		target, newWorklist := resolveTarget(n, targets, cache, worklist)
		worklist = newWorklist

		newEdges = append(newEdges, nfa.Edge{Interval: interval.New(lo, hi), Target: target})

		var leftover []workEdge
		for _, e := range group {
			if e.iv.Hi == hi {
				continue
			}
			leftover = append(leftover, workEdge{iv: interval.New(hi+1, e.iv.Hi), target: e.target})
		}
		queue = append(leftover, rest...)
	}

	s.Edges = newEdges
	return worklist
}

// resolveTarget maps a set of NFA state ids to the single DFA state that
// represents it: the lone member itself if the set is a singleton,
// otherwise a cached or newly materialized superstate. The resolved state is
// appended to worklist; states already visited are skipped when dequeued.
func resolveTarget(n *nfa.NFA, targets []nfa.StateID, cache map[StateKey]nfa.StateID, worklist []nfa.StateID) (nfa.StateID, []nfa.StateID) {
	if len(targets) == 1 {
		return targets[0], append(worklist, targets[0])
	}

	key := ComputeStateKey(targets)
	if existing, ok := cache[key]; ok {
		return existing, append(worklist, existing)
	}

	super := n.AddState()
	cache[key] = super
	dst := n.State(super)
	for _, tid := range targets {
		nfa.MergeInto(dst, n.State(tid))
	}
	nfa.Canonicalize(dst)

	return super, append(worklist, super)
}
