// Package dump renders a stable, human-readable machine dump, for use
// whenever a trace flag is set around a build phase.
package dump

import (
	"fmt"
	"io"

	"github.com/coregx/lexgen/nfa"
	"github.com/coregx/lexgen/pattern"
	"github.com/coregx/lexgen/token"
)

// Machine renders every state in n, in pool order, the way the original
// tool's lex_machine_print does: start-state markers, completion slot
// lines, a "Partial matches:" block with caret-annotated patterns, then an
// "Outgoing edges:" block.
func Machine(w io.Writer, n *nfa.NFA, table *token.Table) {
	for _, s := range n.States() {
		fmt.Fprintf(w, "State %d:\n", s.Index)

		if s.StartForMode != "" {
			fmt.Fprintf(w, "  Start state for: %s\n", s.StartForMode)
		}

		printCompletion(w, "completed_match", s.CompletedMatch)
		printCompletion(w, "completed_match_bol", s.CompletedMatchBOL)
		printCompletion(w, "completed_match_eol", s.CompletedMatchEOL)
		printCompletion(w, "completed_match_beol", s.CompletedMatchBEOL)

		if len(s.PPats) > 0 {
			fmt.Fprintln(w, "  Partial matches:")
			for _, p := range s.PPats {
				printed := "?"
				if table != nil && p.TokenDef >= 0 && p.TokenDef < table.Len() {
					def := table.Defs()[p.TokenDef]
					printed = pattern.FormatWithCaret(def.Pattern.Pattern, p.Position)
				}
				fmt.Fprintf(w, "    %s (Pattern index #%d)\n", printed, p.TokenDef)
			}
		}

		if len(s.Edges) > 0 || len(s.Epsilons) > 0 {
			fmt.Fprintln(w, "  Outgoing edges:")
			for _, e := range s.Edges {
				fmt.Fprintf(w, "    %s\n", describeEdge(e))
			}
			for _, eps := range s.Epsilons {
				fmt.Fprintf(w, "    Jump to state %d\n", eps)
			}
		}

		fmt.Fprintln(w)
	}
}

func printCompletion(w io.Writer, name string, ordinal int) {
	if ordinal != nfa.NoMatch {
		fmt.Fprintf(w, "  %s: %d\n", name, ordinal)
	}
}

func describeEdge(e nfa.Edge) string {
	lo := pattern.QuoteRune(e.Interval.Lo, false)
	if e.Interval.Lo == e.Interval.Hi {
		return fmt.Sprintf("Consume '%s' and go to state %d", lo, e.Target)
	}
	hi := pattern.QuoteRune(e.Interval.Hi, false)
	return fmt.Sprintf("Consume '%s'-'%s' and go to state %d", lo, hi, e.Target)
}
