package nfa

import "github.com/coregx/lexgen/internal/sparse"

// mergeCompletion implements the "smaller-ordinal-wins" rule: the better of
// two completion values (an ordinal or NoMatch) is the smaller non-NoMatch
// one, encoding first-declared-wins priority.
func mergeCompletion(a, b int) int {
	switch {
	case a == NoMatch:
		return b
	case b == NoMatch:
		return a
	case a < b:
		return a
	default:
		return b
	}
}

// canonicalize reduces redundancy among the four completion slots so each
// remaining slot implies strictly more specific context than a weaker one.
func canonicalize(s *State) {
	if s.CompletedMatchBOL != NoMatch && s.CompletedMatch != NoMatch &&
		s.CompletedMatchBOL >= s.CompletedMatch {
		s.CompletedMatchBOL = NoMatch
	}
	if s.CompletedMatchEOL != NoMatch && s.CompletedMatch != NoMatch &&
		s.CompletedMatchEOL >= s.CompletedMatch {
		s.CompletedMatchEOL = NoMatch
	}

	if s.CompletedMatchBEOL != NoMatch {
		bestSingle := mergeCompletion(s.CompletedMatch, mergeCompletion(s.CompletedMatchBOL, s.CompletedMatchEOL))
		if bestSingle != NoMatch && s.CompletedMatchBEOL >= bestSingle {
			s.CompletedMatchBEOL = NoMatch
		}
	}
}

// closure computes the set of states reachable from start via zero or more
// epsilon edges, including start itself, using a worklist so the NFA's own
// epsilon edges never need to be mutated mid-traversal. Discovery order is
// stable (a stack, always pushing in edge-list order) so results are
// reproducible across runs.
func closure(n *NFA, start StateID) []StateID {
	visited := sparse.NewSparseSet(uint32(n.Len()))
	var order []StateID
	stack := []StateID{start}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited.Contains(uint32(id)) {
			continue
		}
		visited.Insert(uint32(id))
		order = append(order, id)

		for _, eps := range n.State(id).Epsilons {
			if !visited.Contains(uint32(eps)) {
				stack = append(stack, eps)
			}
		}
	}

	return order
}

func hasEdge(s *State, e Edge) bool {
	for _, existing := range s.Edges {
		if existing.Target == e.Target && existing.Interval == e.Interval {
			return true
		}
	}
	return false
}

func hasPPat(s *State, p PPat) bool {
	for _, existing := range s.PPats {
		if existing == p {
			return true
		}
	}
	return false
}

// RemoveEpsilons runs epsilon-closure collapse over every state in the
// pool, in pool order: for each state S, merges every state in
// closure(S)'s completion slots, PPATs, and non-epsilon edges back onto S,
// then clears S's epsilon list. This mirrors the original tool's
// lex_rmepsilons, which likewise processes every pool state rather than
// only the reachable ones.
func RemoveEpsilons(n *NFA) {
	for _, s := range n.States() {
		members := closure(n, s.Index)

		for _, memberID := range members {
			member := n.State(memberID)

			s.CompletedMatch = mergeCompletion(s.CompletedMatch, member.CompletedMatch)
			s.CompletedMatchBOL = mergeCompletion(s.CompletedMatchBOL, member.CompletedMatchBOL)
			s.CompletedMatchEOL = mergeCompletion(s.CompletedMatchEOL, member.CompletedMatchEOL)
			s.CompletedMatchBEOL = mergeCompletion(s.CompletedMatchBEOL, member.CompletedMatchBEOL)

			for _, p := range member.PPats {
				if !hasPPat(s, p) {
					s.PPats = append(s.PPats, p)
				}
			}

			for _, e := range member.Edges {
				if !hasEdge(s, e) {
					s.Edges = append(s.Edges, e)
				}
			}
		}

		canonicalize(s)
		s.Epsilons = nil
	}
}
