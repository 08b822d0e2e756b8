package token

import (
	"fmt"
	"io"

	"github.com/coregx/lexgen/diag"
	"github.com/coregx/lexgen/mode"
	"github.com/coregx/lexgen/pattern"
)

// Def is one token definition: a symbol name, its anchored pattern, an
// optional action, the set of modes it is active in, and its source
// location. A Def's position in Table.defs is its priority: lower index
// wins on a tie.
type Def struct {
	Symbol   string
	Pattern  pattern.Anchored
	Action   *Action
	Modes    *mode.Set
	Location diag.Location
}

// Table is the ordered token-definition table: the source of truth for
// match priority across the whole engine.
type Table struct {
	defs []Def
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{}
}

// Add admits a new token definition, in the manner of the original tool's
// lex_add_tokendef: it validates the pattern and action, reports
// diagnostics for any violation, but always appends the definition so later
// passes can find further problems. Returns the definition's ordinal index.
func Add(t *Table, sym string, ap pattern.Anchored, act *Action, modes *mode.Set, symLoc, patLoc diag.Location, diags *diag.Collector) int {
	if pattern.CanBeEmpty(ap.Pattern) {
		// LITERAL and CHARCLASS are not reported here: an empty literal is
		// already rejected by pattern.NewLiteral (ErrEmptyLiteral), and an
		// empty character class is left to the caller to report.
		if ap.Pattern.Kind != pattern.Literal && ap.Pattern.Kind != pattern.CharClass {
			diags.Errorf(patLoc, "pattern can be empty")
		}
	}

	if act != nil {
		act.Validate(diags)
	}

	t.defs = append(t.defs, Def{
		Symbol:   sym,
		Pattern:  ap,
		Action:   act,
		Modes:    modes,
		Location: symLoc,
	})
	return len(t.defs) - 1
}

// Defs returns every admitted token definition, in declaration order.
func (t *Table) Defs() []Def {
	return t.defs
}

// Len returns the number of admitted token definitions.
func (t *Table) Len() int {
	return len(t.defs)
}

// SectionFinished reports an error if no tokens were defined, matching
// lex_section_finished's "Lexer has no tokens" diagnostic.
func SectionFinished(t *Table, loc diag.Location, diags *diag.Collector) {
	if t.Len() == 0 {
		diags.Errorf(loc, "Lexer has no tokens")
	}
}

// Print renders the table the way lex_print_tokendefs does: a "%in-modes"
// header whenever the active mode set changes, then one line per
// definition of the form "SYMBOL: pattern -> actions".
func Print(w io.Writer, t *Table) {
	if t.Len() == 0 {
		return
	}

	var current *mode.Set
	for _, d := range t.defs {
		if current == nil || !current.Same(d.Modes) {
			current = d.Modes
			fmt.Fprint(w, "\n%in-modes")
			for _, idx := range current.Indices() {
				fmt.Fprintf(w, " %d", idx)
			}
			fmt.Fprint(w, "\n\n")
		}

		fmt.Fprintf(w, "%s: %s", d.Symbol, pattern.Format(d.Pattern.Pattern))
		if d.Action != nil {
			fmt.Fprintf(w, " -> %s", d.Action.String())
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
