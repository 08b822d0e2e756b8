// Package token implements the token-definition table: the ordered list of
// (symbol, anchored pattern, action, mode set) tuples that is the source of
// truth for match priority, plus the Action type and its merge rules.
package token

import (
	"strings"

	"github.com/coregx/lexgen/diag"
	"github.com/coregx/lexgen/mode"
)

// Action configures what happens when a token definition's pattern matches:
// skipping the token, switching lexical mode, or reporting a fixed error
// message instead of emitting a token.
//
// Invariants (enforced by Merge and Validate, not by the zero value):
//   - Error is mutually exclusive with every other field.
//   - ExpectModePop is valid only alongside ModePush.
//   - At most one of {ModeChange, ModePop, ModePush} may be set.
type Action struct {
	Skip bool

	ModePop   bool
	ModePopLoc diag.Location

	ModeChange *mode.Ref
	ModePush   *mode.Ref

	ExpectModePop    bool
	ExpectModePopLoc diag.Location

	Error    string
	ErrorLoc diag.Location
}

// hasModeAction reports whether a is set to any of the three
// mutually-exclusive mode actions.
func (a *Action) hasModeAction() bool {
	return a.ModeChange != nil || a.ModePop || a.ModePush != nil
}

// Merge combines right into left in place, reporting a diagnostic at
// rightLoc on any conflict, matching the original tool's lex_actions_merge:
// a second error action, or a second mode action, is rejected; skip and
// expect-mode-pop are simple overrides.
func Merge(left, right *Action, rightLoc diag.Location, diags *diag.Collector) {
	if right.Error != "" {
		if left.Error != "" {
			diags.Errorf(rightLoc, "multiple error actions")
		} else {
			left.Error = right.Error
			left.ErrorLoc = right.ErrorLoc
		}
	}

	if right.hasModeAction() {
		if left.hasModeAction() {
			diags.Errorf(rightLoc, "multiple mode actions")
		} else {
			left.ModeChange = right.ModeChange
			left.ModePop = right.ModePop
			left.ModePopLoc = right.ModePopLoc
			left.ModePush = right.ModePush
		}
	}

	if right.ExpectModePop {
		left.ExpectModePop = true
		left.ExpectModePopLoc = right.ExpectModePopLoc
	}

	if right.Skip {
		left.Skip = right.Skip
	}
}

// Validate reports admission-time action errors: error combined with any
// other action, or expect-mode-pop without mode-push.
func (a *Action) Validate(diags *diag.Collector) {
	if a.Error != "" && (a.hasModeAction() || a.ExpectModePop || a.Skip) {
		diags.Errorf(a.ErrorLoc, "cannot combine error actions with other actions")
	}
	if a.ExpectModePop && a.ModePush == nil {
		diags.Errorf(a.ExpectModePopLoc, "expect-mode-pop can only be used along with mode-push")
	}
}

// String renders the action set the way token-table dumps print it:
// comma-separated, in skip/mode-change/mode-push/mode-pop order, matching
// the original tool's lex_actions_print.
func (a *Action) String() string {
	var parts []string
	if a.Skip {
		parts = append(parts, "skip")
	}
	if a.ModeChange != nil {
		parts = append(parts, "mode-change("+a.ModeChange.Mode.Name+")")
	}
	if a.ModePush != nil {
		parts = append(parts, "mode-push("+a.ModePush.Mode.Name+")")
	}
	if a.ModePop {
		parts = append(parts, "mode-pop()")
	}
	return strings.Join(parts, ", ")
}
