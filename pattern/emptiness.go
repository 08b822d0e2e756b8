package pattern

import "github.com/coregx/lexgen/diag"

// CanBeEmpty decides whether p can match the empty string, recursively:
//
//	Literal   -> content is empty (never true for a validly constructed Literal)
//	Dot       -> false
//	CharClass -> no declared intervals
//	Sequence  -> both children can be empty
//	Star      -> always true
//	Optional  -> always true
//	Plus      -> child can be empty
//	Alternate -> either child can be empty
func CanBeEmpty(p *Pattern) bool {
	switch p.Kind {
	case Literal:
		return len(p.Runes) == 0
	case Dot:
		return false
	case CharClass:
		return len(p.Intervals) == 0
	case Sequence:
		return CanBeEmpty(p.Child1) && CanBeEmpty(p.Child2)
	case Star, Optional:
		return true
	case Plus:
		return CanBeEmpty(p.Child1)
	case Alternate:
		return CanBeEmpty(p.Child1) || CanBeEmpty(p.Child2)
	default:
		diag.Raise("pattern.CanBeEmpty", "unreachable kind %v", p.Kind)
		panic("unreachable")
	}
}
