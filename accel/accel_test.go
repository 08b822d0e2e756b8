package accel

import (
	"testing"

	"github.com/coregx/lexgen/diag"
	"github.com/coregx/lexgen/mode"
	"github.com/coregx/lexgen/pattern"
	"github.com/coregx/lexgen/token"
)

func addLiteral(t *testing.T, table *token.Table, set *mode.Set, sym, lit string, diags *diag.Collector) {
	t.Helper()
	p, err := pattern.NewLiteral(lit)
	if err != nil {
		t.Fatalf("NewLiteral(%q): %v", lit, err)
	}
	token.Add(table, sym, pattern.Anchored{Pattern: p}, nil, set, diag.Location{}, diag.Location{}, diags)
}

func TestBuildSkipsModesWithNoLiterals(t *testing.T) {
	reg := mode.NewRegistry()
	init := reg.Lookup("INITIAL")
	init.IsReachable = true

	table := token.NewTable()
	diags := diag.NewCollector()

	set := mode.NewSet()
	set.Add(init)

	p := pattern.NewDot()
	token.Add(table, "ANY", pattern.Anchored{Pattern: p}, nil, set, diag.Location{}, diag.Location{}, diags)

	idx := Build(reg, table)
	if len(idx) != 0 {
		t.Errorf("expected no accelerated modes, got %d", len(idx))
	}
}

func TestBuildAndFindReturnsOrdinal(t *testing.T) {
	reg := mode.NewRegistry()
	init := reg.Lookup("INITIAL")
	init.IsReachable = true

	table := token.NewTable()
	diags := diag.NewCollector()
	set := mode.NewSet()
	set.Add(init)

	addLiteral(t, table, set, "IF", "if", diags)
	addLiteral(t, table, set, "INT", "int", diags)

	idx := Build(reg, table)
	modeIdx, ok := idx[init.Index]
	if !ok {
		t.Fatalf("expected an accelerator for mode %d", init.Index)
	}

	ord, found := modeIdx.Find([]byte("if x"), 0)
	if !found {
		t.Fatalf("expected a match for \"if\"")
	}
	if ord != 0 {
		t.Errorf("expected ordinal 0 (IF), got %d", ord)
	}
}

func TestFindNilIndexReturnsNotFound(t *testing.T) {
	var idx *Index
	if _, found := idx.Find([]byte("anything"), 0); found {
		t.Errorf("expected no match from a nil index")
	}
}
