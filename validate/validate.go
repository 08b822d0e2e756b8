// Package validate implements the action validator: cross-checks run once
// the token-definition table is fully populated, covering mode-reachability
// and mode-reference validity. Per-definition pattern/action checks already
// ran at admission time (token.Add); this package is the "at check" half of
// the error taxonomy.
package validate

import (
	"github.com/coregx/lexgen/diag"
	"github.com/coregx/lexgen/mode"
	"github.com/coregx/lexgen/token"
)

// addNextModes records, for every mode in from, that it can transition to
// to's mode (via mode-push or mode-change).
func addNextModes(nextModesAfter []*mode.Set, from *mode.Set, to *mode.Ref) {
	if to == nil {
		return
	}
	for _, idx := range from.Indices() {
		nextModesAfter[idx].AddIndex(to.Mode.Index)
	}
}

func traceReachableNodes(modes []*mode.Mode, nextModesAfter []*mode.Set, idx int) {
	if modes[idx].IsReachable {
		return
	}
	modes[idx].IsReachable = true
	for _, next := range nextModesAfter[idx].Indices() {
		traceReachableNodes(modes, nextModesAfter, next)
	}
}

// FindReachableModes computes is_reachable for every mode in reg by tracing
// the mode-transition graph induced by mode-push/mode-change actions,
// starting from mode 0. Mirrors the original tool's find_reachable_modes.
func FindReachableModes(reg *mode.Registry, table *token.Table) {
	modes := reg.Modes()
	if len(modes) == 0 {
		return
	}

	nextModesAfter := make([]*mode.Set, len(modes))
	for i := range nextModesAfter {
		nextModesAfter[i] = mode.NewSet()
	}

	for _, d := range table.Defs() {
		if d.Action == nil {
			continue
		}
		addNextModes(nextModesAfter, d.Modes, d.Action.ModePush)
		addNextModes(nextModesAfter, d.Modes, d.Action.ModeChange)
	}

	traceReachableNodes(modes, nextModesAfter, 0)
}

func checkModeRef(ref *mode.Ref, diags *diag.Collector) {
	if ref == nil {
		return
	}
	if !ref.Mode.HasRuleStanza {
		diags.Errorf(ref.Location, "Unrecognized mode %s", ref.Mode.Name)
	}
}

// Check runs the action validator: computes mode reachability, verifies
// every mode reference in an action targets a mode that was actually
// declared with a rule stanza, and warns (non-fatal) about any declared
// mode that the reachability trace never reaches. Mirrors the original
// tool's lex_mode_check.
func Check(reg *mode.Registry, table *token.Table, diags *diag.Collector) {
	FindReachableModes(reg, table)

	for _, d := range table.Defs() {
		if d.Action == nil {
			continue
		}
		checkModeRef(d.Action.ModePush, diags)
		checkModeRef(d.Action.ModeChange, diags)
	}

	for _, ref := range reg.RuleStanzaRefs() {
		if !ref.Mode.IsReachable {
			diags.Warnf(ref.Location, "Mode %s is unreachable", ref.Mode.Name)
		}
	}
}
