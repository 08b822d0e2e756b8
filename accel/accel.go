// Package accel builds an Aho-Corasick literal accelerator over the
// pure-literal token definitions in a mode, the way this engine's
// regex-matching sibling accelerates large literal alternations (see
// meta.buildStrategyEngines's UseAhoCorasick branch). A scanner can probe
// the accelerator before falling back to full DFA stepping whenever a
// mode's literal tokens dominate its token table.
package accel

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/lexgen/mode"
	"github.com/coregx/lexgen/pattern"
	"github.com/coregx/lexgen/token"
)

// Index maps literal token definitions within a single mode to an
// Aho-Corasick automaton, so the generated scanner can shortcut straight to
// a token ordinal for any input that begins with one of the mode's literal
// patterns.
type Index struct {
	auto *ahocorasick.Automaton
	// ordinals[i] is the token-table ordinal for the i'th pattern added to
	// auto, in AddPattern call order -- Automaton identifies matches by
	// that same pattern index.
	ordinals []int
}

// Build constructs one Index per mode that has at least one qualifying
// literal token, skipping modes whose tokens are entirely pattern-based
// (nothing to accelerate). Patterns are added in token-table declaration
// order, so ties in the automaton's reported pattern index still resolve to
// the same smaller-ordinal-wins priority as the rest of the engine.
func Build(reg *mode.Registry, table *token.Table) map[int]*Index {
	byMode := make(map[int]*Index)
	builders := make(map[int]*ahocorasick.Builder)

	for ord, def := range table.Defs() {
		lit := literalBytes(def.Pattern)
		if lit == nil {
			continue
		}
		for _, m := range reg.Modes() {
			if !def.Modes.ContainsIndex(m.Index) {
				continue
			}
			b, ok := builders[m.Index]
			if !ok {
				b = ahocorasick.NewBuilder()
				builders[m.Index] = b
				byMode[m.Index] = &Index{}
			}
			b.AddPattern(lit)
			idx := byMode[m.Index]
			idx.ordinals = append(idx.ordinals, ord)
		}
	}

	out := make(map[int]*Index)
	for modeIdx, b := range builders {
		auto, err := b.Build()
		if err != nil {
			// A pattern set the builder cannot compile yields no
			// acceleration for this mode; the DFA still covers it.
			continue
		}
		idx := byMode[modeIdx]
		idx.auto = auto
		out[modeIdx] = idx
	}
	return out
}

// literalBytes returns the literal byte sequence def's pattern matches
// exactly, or nil if def is not a pure, unanchored LITERAL (anchored
// literals and everything else are left to the DFA).
func literalBytes(ap pattern.Anchored) []byte {
	if ap.BOL || ap.EOL {
		return nil
	}
	if ap.Pattern.Kind != pattern.Literal {
		return nil
	}
	return []byte(string(ap.Pattern.Runes))
}

// Find reports the token ordinal of the earliest, highest-priority literal
// match starting at or after pos in haystack, or (-1, false) if none of the
// index's literals occur.
func (idx *Index) Find(haystack []byte, pos int) (int, bool) {
	if idx == nil || idx.auto == nil {
		return -1, false
	}
	m := idx.auto.Find(haystack, pos)
	if m == nil {
		return -1, false
	}
	return idx.ordinals[m.Pattern], true
}
