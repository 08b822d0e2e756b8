package nfa

// MergeCompletion is the exported form of the completion merge rule: the
// smaller non-NoMatch ordinal wins, encoding first-declared-wins priority.
// Used by both epsilon-closure collapse and the determinizer.
func MergeCompletion(a, b int) int {
	return mergeCompletion(a, b)
}

// Canonicalize is the exported form of the completion-slot canonicalization
// pass, used after any merge of completion slots -- whether from
// epsilon-closure collapse or from determinization.
func Canonicalize(s *State) {
	canonicalize(s)
}

// MergeInto merges src's completion slots and PPATs into dst (via
// MergeCompletion, deduplicated for PPATs) and appends a copy of every one
// of src's non-epsilon edges onto dst, without deduplicating them -- the
// determinizer resolves any resulting overlap the next time dst is
// processed. Does not touch epsilon edges (closure collapse already
// cleared them) and does not canonicalize dst; call Canonicalize once after
// merging every constituent.
func MergeInto(dst, src *State) {
	dst.CompletedMatch = MergeCompletion(dst.CompletedMatch, src.CompletedMatch)
	dst.CompletedMatchBOL = MergeCompletion(dst.CompletedMatchBOL, src.CompletedMatchBOL)
	dst.CompletedMatchEOL = MergeCompletion(dst.CompletedMatchEOL, src.CompletedMatchEOL)
	dst.CompletedMatchBEOL = MergeCompletion(dst.CompletedMatchBEOL, src.CompletedMatchBEOL)

	for _, p := range src.PPats {
		if !hasPPat(dst, p) {
			dst.PPats = append(dst.PPats, p)
		}
	}

	dst.Edges = append(dst.Edges, src.Edges...)
}
