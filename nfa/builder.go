package nfa

import (
	"github.com/coregx/lexgen/diag"
	"github.com/coregx/lexgen/interval"
	"github.com/coregx/lexgen/mode"
	"github.com/coregx/lexgen/pattern"
	"github.com/coregx/lexgen/token"
)

// lf and cr are excluded from Dot's edges; Dot's first edge starts at 1, so
// NUL is excluded as well.
const (
	lf = '\n'
	cr = '\r'
)

// Build runs Thompson construction over table, for every mode in reg that
// FindReachableModes (or validate.Check) has already marked reachable. It
// returns a populated NFA with one start state per reachable mode and,
// ε-reachable from each, one subgraph per token definition active in that
// mode, in declaration order.
func Build(table *token.Table, reg *mode.Registry) *NFA {
	n := New()

	for _, m := range reg.Modes() {
		if !m.IsReachable {
			continue
		}

		sM := n.AddState()
		n.State(sM).StartForMode = m.Name
		m.StartState = int(sM)
		n.SetStartState(m.Name, sM)

		for idx, d := range table.Defs() {
			if !d.Modes.Contains(m) {
				continue
			}

			sT := n.AddState()
			n.AddEpsilon(sM, sT)

			cursor := 0
			n.SeedPPat(sT, idx, cursor)

			tail := buildPattern(n, sT, d.Pattern.Pattern, idx, &cursor)

			switch {
			case d.Pattern.BOL && d.Pattern.EOL:
				n.State(tail).CompletedMatchBEOL = idx
			case d.Pattern.BOL:
				n.State(tail).CompletedMatchBOL = idx
			case d.Pattern.EOL:
				n.State(tail).CompletedMatchEOL = idx
			default:
				n.State(tail).CompletedMatch = idx
			}
		}
	}

	return n
}

// buildPattern walks one pattern AST, extending n from state, and returns
// the tail state reached after matching p. cursor is bumped at exactly the
// points a partial-match cursor is expected to land on for each node kind;
// it is shared across the whole pattern tree for a single token definition.
func buildPattern(n *NFA, state StateID, p *pattern.Pattern, tokenDef int, cursor *int) StateID {
	switch p.Kind {
	case pattern.Literal:
		for _, c := range p.Runes {
			*cursor++
			next := n.AddState()
			n.AddEdge(state, interval.New(c, c), next)
			state = next
		}
		return state

	case pattern.Dot:
		*cursor++
		next := n.AddState()
		n.AddEdge(state, interval.New(1, lf-1), next)
		n.AddEdge(state, interval.New(lf+1, cr-1), next)
		n.AddEdge(state, interval.New(cr+1, interval.MaxRune), next)
		return next

	case pattern.CharClass:
		resolved := pattern.ResolveCharClass(p)
		*cursor++
		next := n.AddState()
		for _, iv := range resolved {
			n.AddEdge(state, iv, next)
		}
		return next

	case pattern.Sequence:
		mid := buildPattern(n, state, p.Child1, tokenDef, cursor)
		return buildPattern(n, mid, p.Child2, tokenDef, cursor)

	case pattern.Star:
		a := n.AddState()
		n.AddEpsilon(state, a)
		n.SeedPPat(a, tokenDef, *cursor)
		b := buildPattern(n, a, p.Child1, tokenDef, cursor)
		n.AddEpsilon(b, a)
		*cursor++
		c := n.AddState()
		n.AddEpsilon(b, c)
		n.AddEpsilon(a, c)
		return c

	case pattern.Plus:
		a := n.AddState()
		n.AddEpsilon(state, a)
		n.SeedPPat(a, tokenDef, *cursor)
		b := buildPattern(n, a, p.Child1, tokenDef, cursor)
		n.AddEpsilon(b, a)
		*cursor++
		c := n.AddState()
		n.AddEpsilon(b, c)
		return c

	case pattern.Optional:
		b := buildPattern(n, state, p.Child1, tokenDef, cursor)
		*cursor++
		c := n.AddState()
		n.AddEpsilon(b, c)
		n.AddEpsilon(state, c)
		return c

	case pattern.Alternate:
		e := n.AddState()
		b1 := buildPattern(n, state, p.Child1, tokenDef, cursor)
		n.AddEpsilon(b1, e)
		*cursor++
		b2 := buildPattern(n, state, p.Child2, tokenDef, cursor)
		n.AddEpsilon(b2, e)
		n.SeedPPat(e, tokenDef, *cursor)
		return e

	default:
		diag.Raise("nfa.buildPattern", "unreachable pattern kind %v", p.Kind)
		panic("unreachable")
	}
}
