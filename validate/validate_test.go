package validate

import (
	"testing"

	"github.com/coregx/lexgen/diag"
	"github.com/coregx/lexgen/mode"
	"github.com/coregx/lexgen/pattern"
	"github.com/coregx/lexgen/token"
)

func modeSetOf(modes ...*mode.Mode) *mode.Set {
	s := mode.NewSet()
	for _, m := range modes {
		s.Add(m)
	}
	return s
}

func TestFindReachableModesFromModeZero(t *testing.T) {
	reg := mode.NewRegistry()
	initial := reg.Lookup("INITIAL") // index 0
	str := reg.Lookup("STRING")
	unreachable := reg.Lookup("GHOST")
	_ = unreachable

	table := token.NewTable()
	diags := diag.NewCollector()
	lit, _ := pattern.NewLiteral(`"`)
	act := &token.Action{ModePush: &mode.Ref{Mode: str}}
	token.Add(table, "QUOTE", pattern.Anchored{Pattern: lit}, act, modeSetOf(initial), diag.Location{}, diag.Location{}, diags)

	FindReachableModes(reg, table)

	if !initial.IsReachable {
		t.Error("mode 0 must always be reachable")
	}
	if !str.IsReachable {
		t.Error("STRING should be reachable via mode-push from INITIAL")
	}
	if unreachable.IsReachable {
		t.Error("GHOST should not be reachable")
	}
}

func TestCheckWarnsOnUnreachableDeclaredMode(t *testing.T) {
	reg := mode.NewRegistry()
	initial := reg.Lookup("INITIAL")
	ghost := reg.Lookup("GHOST")

	table := token.NewTable()
	diags := diag.NewCollector()
	lit, _ := pattern.NewLiteral("x")
	token.Add(table, "X", pattern.Anchored{Pattern: lit}, nil, modeSetOf(initial), diag.Location{}, diag.Location{}, diags)

	reg.RuleStanzaModeRefsAdd(&mode.Ref{Mode: ghost, Location: diag.Location{Line: 9}})

	Check(reg, table, diags)

	foundWarning := false
	for _, d := range diags.Diagnostics() {
		if d.Severity == diag.SeverityWarning {
			foundWarning = true
		}
	}
	if !foundWarning {
		t.Fatal("expected a warning for the unreachable GHOST mode")
	}
	if diags.HasErrors() {
		t.Fatalf("unreachable mode should only warn, not error: %v", diags.Diagnostics())
	}
}

func TestCheckErrorsOnUndeclaredModeReference(t *testing.T) {
	reg := mode.NewRegistry()
	initial := reg.Lookup("INITIAL")
	undeclared := reg.Lookup("NOPE") // never gets a rule stanza

	table := token.NewTable()
	diags := diag.NewCollector()
	lit, _ := pattern.NewLiteral("x")
	act := &token.Action{ModePush: &mode.Ref{Mode: undeclared, Location: diag.Location{Line: 3}}}
	token.Add(table, "X", pattern.Anchored{Pattern: lit}, act, modeSetOf(initial), diag.Location{}, diag.Location{}, diags)

	Check(reg, table, diags)

	if !diags.HasErrors() {
		t.Fatal("expected an error referencing an undeclared mode")
	}
}
