// Package mode implements lexical modes: named contexts that gate which
// token definitions are candidates for matching. Mode reachability is
// computed by package validate, which sets Mode.IsReachable.
package mode

import (
	"sort"

	"github.com/coregx/lexgen/diag"
)

// Mode is a single named lexical context.
type Mode struct {
	Index          int
	Name           string
	StartState     int // index into the NFA/DFA state pool, set once the builder runs
	IsReachable    bool
	HasRuleStanza  bool
}

// Ref is a located reference to a Mode from a grammar file, e.g. the target
// of a mode-push or mode-change action.
type Ref struct {
	Mode     *Mode
	Location diag.Location
}

// Registry interns modes by name and tracks which ones have an explicit
// rule stanza and which mode-references were recorded via a
// %rules-for-modes-style declaration.
type Registry struct {
	modes    []*Mode
	byName   map[string]*Mode
	ruleRefs []*Ref
}

// NewRegistry returns an empty Registry. Mode 0 ("INITIAL" by convention of
// the caller) is not created automatically: the first call to Lookup
// creates it, matching the original tool's lazy mode table.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Mode)}
}

// Lookup interns a mode by name, creating it (with the next unused index) if
// it has not been seen before.
func (r *Registry) Lookup(name string) *Mode {
	if m, ok := r.byName[name]; ok {
		return m
	}
	m := &Mode{Index: len(r.modes), Name: name}
	r.modes = append(r.modes, m)
	r.byName[name] = m
	return m
}

// Modes returns every interned mode, in interning order (mode 0 first).
func (r *Registry) Modes() []*Mode {
	return r.modes
}

// RuleStanzaModeRefsAdd records that ref's mode has an explicit rule
// stanza, and remembers ref so Check can later warn if it turns out to be
// unreachable.
func (r *Registry) RuleStanzaModeRefsAdd(ref *Ref) {
	ref.Mode.HasRuleStanza = true
	r.ruleRefs = append(r.ruleRefs, ref)
}

// RuleStanzaRefs returns every mode reference recorded via
// RuleStanzaModeRefsAdd, in recording order.
func (r *Registry) RuleStanzaRefs() []*Ref {
	return r.ruleRefs
}

// Set is an unordered set of mode indices.
type Set struct {
	indices map[int]bool
}

// NewSet returns an empty mode Set.
func NewSet() *Set {
	return &Set{indices: make(map[int]bool)}
}

// Add inserts m's index into the set.
func (s *Set) Add(m *Mode) {
	s.indices[m.Index] = true
}

// AddIndex inserts a raw mode index into the set.
func (s *Set) AddIndex(idx int) {
	s.indices[idx] = true
}

// Contains reports whether m's index is in the set.
func (s *Set) Contains(m *Mode) bool {
	return s.indices[m.Index]
}

// ContainsIndex reports whether idx is in the set.
func (s *Set) ContainsIndex(idx int) bool {
	return s.indices[idx]
}

// Same reports set equality (not declaration-order equality).
func (s *Set) Same(other *Set) bool {
	if len(s.indices) != len(other.indices) {
		return false
	}
	for idx := range s.indices {
		if !other.indices[idx] {
			return false
		}
	}
	return true
}

// Indices returns the set's members as a sorted slice, so that debug
// output is reproducible across runs (map iteration order is not).
func (s *Set) Indices() []int {
	out := make([]int, 0, len(s.indices))
	for idx := range s.indices {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// Dup returns a copy of s.
func (s *Set) Dup() *Set {
	clone := NewSet()
	for idx := range s.indices {
		clone.indices[idx] = true
	}
	return clone
}
