// Package pattern implements the pattern AST that token definitions are
// built from: an immutable tree of regular-expression-like nodes together
// with the operations the rest of the engine needs from it — character
// class extension and inversion, an emptiness test, and a precedence-aware
// pretty-printer.
package pattern

import (
	"errors"

	"github.com/coregx/lexgen/interval"
)

// Kind tags the variant a Pattern node holds.
type Kind int

const (
	// Literal matches an exact sequence of code points.
	Literal Kind = iota
	// Dot matches any code point except NUL, LF and CR.
	Dot
	// CharClass matches any code point in (or, if Inverted, outside) a set of intervals.
	CharClass
	// Sequence matches Child1 followed by Child2.
	Sequence
	// Star matches Child1 zero or more times.
	Star
	// Plus matches Child1 one or more times.
	Plus
	// Optional matches Child1 zero or one times.
	Optional
	// Alternate matches Child1 or Child2.
	Alternate
)

// String names the Kind, matching the vocabulary used in diagnostics.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Dot:
		return "dot"
	case CharClass:
		return "charclass"
	case Sequence:
		return "sequence"
	case Star:
		return "star"
	case Plus:
		return "plus"
	case Optional:
		return "optional"
	case Alternate:
		return "alternate"
	default:
		return "unknown"
	}
}

// Pattern is an immutable node in a token's pattern tree. It owns its
// children and its interval buffer exclusively: no two patterns alias the
// same child or CharClass slice.
type Pattern struct {
	Kind Kind

	// Runes holds the decoded code-point sequence for a Literal node.
	Runes []rune

	// Intervals holds the declared ranges for a CharClass node. Intervals
	// are appended as declared and are NOT coalesced; overlap is permitted.
	Intervals []interval.Interval
	// Inverted marks a CharClass node as the complement of Intervals. The
	// NFA builder resolves this (via ResolveCharClass) at construction time
	// rather than at declaration time.
	Inverted bool

	// Child1 is the sole child of Star/Plus/Optional and the left child of
	// Sequence/Alternate.
	Child1 *Pattern
	// Child2 is the right child of Sequence/Alternate; nil otherwise.
	Child2 *Pattern
}

// ErrEmptyLiteral is reported when a LITERAL pattern is constructed with no
// code points.
var ErrEmptyLiteral = errors.New("pattern: empty literal")

// NewLiteral builds a Literal pattern from a UTF-8 string, decoding it into
// its constituent code points at construction time (the engine never emits
// per-byte edges).
func NewLiteral(s string) (*Pattern, error) {
	if s == "" {
		return nil, ErrEmptyLiteral
	}
	return &Pattern{Kind: Literal, Runes: []rune(s)}, nil
}

// NewDot builds a Dot pattern.
func NewDot() *Pattern {
	return &Pattern{Kind: Dot}
}

// NewCharClass builds an empty, non-inverted CharClass pattern. Use
// ExtendCharClass to populate it.
func NewCharClass() *Pattern {
	return &Pattern{Kind: CharClass}
}

// ExtendCharClass appends the interval [lo, hi] to p's interval list.
// Intervals are not coalesced or sorted; the determinizer resolves any
// resulting overlap.
func ExtendCharClass(p *Pattern, lo, hi rune) {
	p.Intervals = append(p.Intervals, interval.New(lo, hi))
}

// NewSequence builds a Sequence pattern matching c1 followed by c2.
func NewSequence(c1, c2 *Pattern) *Pattern {
	return &Pattern{Kind: Sequence, Child1: c1, Child2: c2}
}

// NewStar builds a Star pattern matching child zero or more times.
func NewStar(child *Pattern) *Pattern {
	return &Pattern{Kind: Star, Child1: child}
}

// NewPlus builds a Plus pattern matching child one or more times.
func NewPlus(child *Pattern) *Pattern {
	return &Pattern{Kind: Plus, Child1: child}
}

// NewOptional builds an Optional pattern matching child zero or one times.
func NewOptional(child *Pattern) *Pattern {
	return &Pattern{Kind: Optional, Child1: child}
}

// NewAlternate builds an Alternate pattern matching c1 or c2.
func NewAlternate(c1, c2 *Pattern) *Pattern {
	return &Pattern{Kind: Alternate, Child1: c1, Child2: c2}
}

// Anchored pairs a pattern with its line-anchor context.
type Anchored struct {
	Pattern *Pattern
	BOL     bool
	EOL     bool
}
