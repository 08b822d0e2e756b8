// Package lexgen turns a set of lexical token declarations, grouped into
// modes, into a deterministic finite-state machine ready for a generated
// scanner to step through one input rune at a time.
//
// Basic usage:
//
//	eng := lexgen.NewEngine()
//	initial := eng.ModeLookup("INITIAL")
//	set := mode.NewSet()
//	set.Add(initial)
//	p, _ := pattern.NewLiteral("if")
//	eng.AddTokenDef("IF", pattern.Anchored{Pattern: p}, nil, set, loc, loc)
//	eng.SectionFinished(loc)
//	if !eng.Check() {
//	    // inspect eng.Diagnostics()
//	}
//	d, err := eng.Build()
package lexgen

import (
	"fmt"

	"github.com/coregx/lexgen/diag"
	"github.com/coregx/lexgen/dfa"
	"github.com/coregx/lexgen/mode"
	"github.com/coregx/lexgen/nfa"
	"github.com/coregx/lexgen/pattern"
	"github.com/coregx/lexgen/token"
	"github.com/coregx/lexgen/validate"
)

// Engine bundles every piece of state a grammar-reading front end
// accumulates across a single lexer description: the mode registry, the
// token table, and the diagnostics collected along the way. It replaces
// the original tool's file-scope global tables with a single value, in the
// manner of this module's own regex facade (a constructor plus a small set
// of rich, doc-commented methods).
type Engine struct {
	modes *mode.Registry
	table *token.Table
	diags *diag.Collector
}

// NewEngine returns an Engine ready to accept token definitions. Mode 0
// ("INITIAL" by the front end's convention) is created lazily on first
// lookup, matching mode.Registry's own lazy interning.
func NewEngine() *Engine {
	return &Engine{
		modes: mode.NewRegistry(),
		table: token.NewTable(),
		diags: diag.NewCollector(),
	}
}

// AddTokenDef admits a new token definition. It returns the definition's
// ordinal index, which is both its match priority (lower wins ties) and
// the index a built machine's completion slots and PPATs refer back to.
func (e *Engine) AddTokenDef(sym string, ap pattern.Anchored, act *token.Action, modes *mode.Set, symLoc, patLoc diag.Location) int {
	return token.Add(e.table, sym, ap, act, modes, symLoc, patLoc, e.diags)
}

// SectionFinished marks the end of the token-declaration section, reporting
// an error if no tokens were ever defined.
func (e *Engine) SectionFinished(loc diag.Location) {
	token.SectionFinished(e.table, loc, e.diags)
}

// ModeLookup interns a mode by name, creating it if this is the first
// reference.
func (e *Engine) ModeLookup(name string) *mode.Mode {
	return e.modes.Lookup(name)
}

// RuleStanzaModeRefsAdd records that ref's mode has an explicit rule
// stanza, so mode-reachability validation can later warn if it turns out to
// be unreachable from mode 0.
func (e *Engine) RuleStanzaModeRefsAdd(ref *mode.Ref) {
	e.modes.RuleStanzaModeRefsAdd(ref)
}

// Check runs mode-reachability analysis and action validation over every
// admitted token definition, reporting diagnostics for undeclared mode
// references and warning on unreachable rule stanzas. It returns whether
// the engine is still error-free; Build refuses to run if it is not.
func (e *Engine) Check() bool {
	validate.Check(e.modes, e.table, e.diags)
	return !e.diags.HasErrors()
}

// Build runs Thompson construction, epsilon-closure collapse, and
// interval-based determinization over every reachable mode's token
// definitions, in that order. It returns an error without panicking if any
// error diagnostic is pending, whether from admission or from Check. It does
// not track whether Check has run: without Check no mode is marked
// reachable, and the built machine has no start states.
//
// Internal invariant violations raised anywhere in the pipeline (via
// diag.Raise, e.g. an unreachable pattern-kind switch case) are recovered
// here and reported as a plain *diag.InternalError rather than propagated
// as a panic, since Build is this engine's single public entry point for
// the construction pipeline. Any other panic -- one this engine did not
// raise itself, such as a genuine runtime error -- is not an internal
// invariant violation and is re-panicked uncaught.
func (e *Engine) Build() (d *dfa.DFA, err error) {
	if e.diags.HasErrors() {
		return nil, fmt.Errorf("lexgen: refusing to build: %d diagnostic error(s) pending", countErrors(e.diags))
	}

	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*diag.InternalError); ok {
				err = ie
				return
			}
			panic(r)
		}
	}()

	n := nfa.Build(e.table, e.modes)
	nfa.RemoveEpsilons(n)
	return dfa.Determinize(n), nil
}

// Diagnostics returns every diagnostic collected so far, in the order it
// was reported.
func (e *Engine) Diagnostics() []diag.Diagnostic {
	return e.diags.Diagnostics()
}

func countErrors(c *diag.Collector) int {
	n := 0
	for _, d := range c.Diagnostics() {
		if d.Severity == diag.SeverityError {
			n++
		}
	}
	return n
}
