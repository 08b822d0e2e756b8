package pattern

import (
	"strings"

	"github.com/coregx/lexgen/diag"
)

// Precedence classifies how tightly a node binds when printed as a child of
// another node: 1 for atoms (Literal, Dot, CharClass) and quantified nodes
// (Star, Plus, Optional), 2 for Sequence, 3 for Alternate.
func Precedence(p *Pattern) int {
	switch p.Kind {
	case Sequence:
		return 2
	case Alternate:
		return 3
	default:
		return 1
	}
}

// CursorPositions returns the number of cursor bumps a pattern introduces
// during NFA construction: one per Literal code point, one for Dot, one for
// CharClass, and one at the loop-back/bypass point of Star/Plus/Optional and
// at the branch point of Alternate. Sequence contributes no bump of its own.
// This is the same counting rule the NFA builder uses for PPAT positions, so
// a PPAT position produced during construction always corresponds to a
// reachable caret placement here.
func CursorPositions(p *Pattern) int {
	switch p.Kind {
	case Literal:
		return len(p.Runes)
	case Dot, CharClass:
		return 1
	case Sequence:
		return CursorPositions(p.Child1) + CursorPositions(p.Child2)
	case Star, Plus, Optional:
		return CursorPositions(p.Child1) + 1
	case Alternate:
		return CursorPositions(p.Child1) + CursorPositions(p.Child2) + 1
	default:
		diag.Raise("pattern.CursorPositions", "unreachable kind %v", p.Kind)
		panic("unreachable")
	}
}

// Format pretty-prints p with precedence-minimal parenthesization and no
// caret.
func Format(p *Pattern) string {
	var sb strings.Builder
	counter := 0
	writeNode(&sb, p, 3, &counter, -1)
	return sb.String()
}

// FormatWithCaret pretty-prints p, inserting the literal marker "<:>" at the
// syntactic point corresponding to cursor position pos (as produced by
// CursorPositions/the NFA builder's PPAT bumps).
func FormatWithCaret(p *Pattern, pos int) string {
	var sb strings.Builder
	counter := 0
	writeNode(&sb, p, 3, &counter, pos)
	maybeCaret(&sb, &counter, pos)
	return sb.String()
}

func maybeCaret(sb *strings.Builder, counter *int, caret int) {
	if *counter == caret {
		sb.WriteString("<:>")
	}
}

// writeNode prints p, parenthesizing it if its own precedence exceeds
// maxPrec (the precedence a child is allowed to have, unparenthesized, in
// the slot it is being printed into).
func writeNode(sb *strings.Builder, p *Pattern, maxPrec int, counter *int, caret int) {
	needParens := Precedence(p) > maxPrec
	if needParens {
		sb.WriteByte('(')
	}
	writeBody(sb, p, counter, caret)
	if needParens {
		sb.WriteByte(')')
	}
}

func writeBody(sb *strings.Builder, p *Pattern, counter *int, caret int) {
	switch p.Kind {
	case Literal:
		sb.WriteByte('"')
		for _, r := range p.Runes {
			maybeCaret(sb, counter, caret)
			sb.WriteString(QuoteRune(r, false))
			*counter++
		}
		sb.WriteByte('"')
	case Dot:
		maybeCaret(sb, counter, caret)
		sb.WriteByte('.')
		*counter++
	case CharClass:
		maybeCaret(sb, counter, caret)
		sb.WriteByte('[')
		if p.Inverted {
			sb.WriteByte('^')
		}
		for _, iv := range p.Intervals {
			sb.WriteString(QuoteRune(iv.Lo, true))
			if iv.Hi != iv.Lo {
				sb.WriteByte('-')
				sb.WriteString(QuoteRune(iv.Hi, true))
			}
		}
		sb.WriteByte(']')
		*counter++
	case Sequence:
		writeNode(sb, p.Child1, 2, counter, caret)
		writeNode(sb, p.Child2, 2, counter, caret)
	case Star, Plus, Optional:
		writeNode(sb, p.Child1, 1, counter, caret)
		maybeCaret(sb, counter, caret)
		*counter++
		switch p.Kind {
		case Star:
			sb.WriteByte('*')
		case Plus:
			sb.WriteByte('+')
		case Optional:
			sb.WriteByte('?')
		}
	case Alternate:
		writeNode(sb, p.Child1, 3, counter, caret)
		maybeCaret(sb, counter, caret)
		*counter++
		sb.WriteByte('|')
		writeNode(sb, p.Child2, 3, counter, caret)
	default:
		diag.Raise("pattern.writeBody", "unreachable kind %v", p.Kind)
	}
}
