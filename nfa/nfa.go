// Package nfa implements the NFA state graph, the Thompson-construction
// builder, and epsilon-closure collapse.
package nfa

import (
	"fmt"

	"github.com/coregx/lexgen/interval"
)

// StateID indexes a State in an NFA's state pool. The pool is append-only:
// states are never removed, only marked unreachable.
type StateID int

// InvalidStateID is never a valid index into a state pool.
const InvalidStateID StateID = -1

// NoMatch is the sentinel value for an unset completion slot.
const NoMatch = -1

// PPat is a partial-pattern position: a cursor inside a specific token
// definition's pattern, used only for diagnostics and debug dumps, never
// for matching correctness.
type PPat struct {
	TokenDef int
	Position int
}

// Edge is a non-epsilon transition labeled with a character interval.
type Edge struct {
	Interval interval.Interval
	Target   StateID
}

// State is one node of the NFA (or, after determinization, the DFA) state
// graph.
type State struct {
	Index StateID

	// StartForMode holds the name of the mode this state is the start
	// state for, or "" if it is not a mode start state.
	StartForMode string

	// IsReachable is "visited" bookkeeping, repurposed by the determinizer:
	// true once a state has been dequeued from the subset-construction
	// worklist.
	IsReachable bool

	CompletedMatch     int
	CompletedMatchBOL  int
	CompletedMatchEOL  int
	CompletedMatchBEOL int

	PPats    []PPat
	Edges    []Edge
	Epsilons []StateID
}

func newState(idx StateID) *State {
	return &State{
		Index:              idx,
		CompletedMatch:     NoMatch,
		CompletedMatchBOL:  NoMatch,
		CompletedMatchEOL:  NoMatch,
		CompletedMatchBEOL: NoMatch,
	}
}

// String gives a compact one-line summary, useful in test failure output.
func (s *State) String() string {
	return fmt.Sprintf("State(%d, start=%q, edges=%d, eps=%d, ppats=%d)",
		s.Index, s.StartForMode, len(s.Edges), len(s.Epsilons), len(s.PPats))
}

// NFA is the global, append-only state pool plus the per-mode start-state
// index.
type NFA struct {
	states      []*State
	startStates map[string]StateID
	startOrder  []StateID
}

// New returns an empty NFA.
func New() *NFA {
	return &NFA{startStates: make(map[string]StateID)}
}

// AddState appends a fresh state to the pool and returns its id.
func (n *NFA) AddState() StateID {
	id := StateID(len(n.states))
	n.states = append(n.states, newState(id))
	return id
}

// State returns the state at id. Panics if id is out of range: this pool
// uses stable arena indices throughout, so an out-of-range id is a
// programmer error, not a recoverable condition.
func (n *NFA) State(id StateID) *State {
	return n.states[id]
}

// States returns every state in the pool, in allocation order.
func (n *NFA) States() []*State {
	return n.states
}

// Len returns the number of states in the pool.
func (n *NFA) Len() int {
	return len(n.states)
}

// SetStartState records id as the start state for the named mode.
func (n *NFA) SetStartState(modeName string, id StateID) {
	n.states[id].StartForMode = modeName
	n.startStates[modeName] = id
	n.startOrder = append(n.startOrder, id)
}

// StartStateList returns every mode start state, in the order modes were
// registered -- the deterministic seed for the determinizer's worklist.
func (n *NFA) StartStateList() []StateID {
	return n.startOrder
}

// StartState returns the start state for the named mode, or
// (InvalidStateID, false) if that mode has no recorded start state.
func (n *NFA) StartState(modeName string) (StateID, bool) {
	id, ok := n.startStates[modeName]
	if !ok {
		return InvalidStateID, false
	}
	return id, true
}

// StartStates returns every mode-name -> start-state mapping.
func (n *NFA) StartStates() map[string]StateID {
	return n.startStates
}

// AddEdge appends a non-epsilon edge from 'from' to 'to' labeled iv.
func (n *NFA) AddEdge(from StateID, iv interval.Interval, to StateID) {
	s := n.states[from]
	s.Edges = append(s.Edges, Edge{Interval: iv, Target: to})
}

// AddEpsilon appends an epsilon edge from 'from' to 'to'.
func (n *NFA) AddEpsilon(from, to StateID) {
	s := n.states[from]
	s.Epsilons = append(s.Epsilons, to)
}

// SeedPPat appends ppat to state id's partial-match set.
func (n *NFA) SeedPPat(id StateID, tokenDef, position int) {
	s := n.states[id]
	s.PPats = append(s.PPats, PPat{TokenDef: tokenDef, Position: position})
}
