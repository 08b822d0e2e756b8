// Package dfa implements interval-based subset construction: converting an
// epsilon-free NFA whose states may still have overlapping outgoing
// intervals into a DFA where every state's outgoing intervals are pairwise
// disjoint.
package dfa

import (
	"hash/fnv"

	"github.com/coregx/lexgen/nfa"
)

// StateKey uniquely identifies a superstate by the sorted set of NFA state
// indices it represents: two target sets are equivalent, and so should
// share a single materialized superstate, exactly when their sorted index
// lists match.
type StateKey uint64

// ComputeStateKey hashes a set of NFA state ids into a StateKey. The ids
// are sorted first so that {1,2,3} and {3,2,1} produce the same key, then
// combined with FNV-1a -- the same approach this engine's regex-matching
// sibling uses for its lazy-DFA state cache, adapted from uint32 byte
// transitions to a set of interval-NFA state ids.
func ComputeStateKey(ids []nfa.StateID) StateKey {
	if len(ids) == 0 {
		return StateKey(0)
	}

	sorted := make([]nfa.StateID, len(ids))
	copy(sorted, ids)
	sortStateIDs(sorted)

	h := fnv.New64a()
	for _, id := range sorted {
		v := uint32(id)
		_, _ = h.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
	}
	return StateKey(h.Sum64())
}

// sortStateIDs insertion-sorts ids ascending. State sets produced during
// determinization are small, so this avoids pulling in sort.Slice's
// reflection overhead for what is usually a handful of elements.
func sortStateIDs(ids []nfa.StateID) {
	for i := 1; i < len(ids); i++ {
		v := ids[i]
		j := i - 1
		for j >= 0 && ids[j] > v {
			ids[j+1] = ids[j]
			j--
		}
		ids[j+1] = v
	}
}

// dedupSortedTargets returns the sorted, duplicate-free set of edge targets
// among targets.
func dedupSortedTargets(targets []nfa.StateID) []nfa.StateID {
	sorted := make([]nfa.StateID, len(targets))
	copy(sorted, targets)
	sortStateIDs(sorted)

	out := sorted[:0:0]
	for i, id := range sorted {
		if i == 0 || id != sorted[i-1] {
			out = append(out, id)
		}
	}
	return out
}
