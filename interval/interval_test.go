package interval

import "testing"

func TestSortIntervals(t *testing.T) {
	ivs := []Interval{{Lo: 5, Hi: 9}, {Lo: 1, Hi: 3}, {Lo: 1, Hi: 1}}
	SortIntervals(ivs)
	want := []Interval{{Lo: 1, Hi: 1}, {Lo: 1, Hi: 3}, {Lo: 5, Hi: 9}}
	for i := range want {
		if ivs[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, ivs[i], want[i])
		}
	}
}

func TestInvertDisjoint(t *testing.T) {
	ivs := []Interval{{Lo: 'a', Hi: 'f'}, {Lo: 'm', Hi: 'z'}}
	inv := Invert(ivs)
	want := []Interval{
		{Lo: 0, Hi: 'a' - 1},
		{Lo: 'f' + 1, Hi: 'm' - 1},
		{Lo: 'z' + 1, Hi: MaxRune},
	}
	if len(inv) != len(want) {
		t.Fatalf("expected %d intervals, got %d: %v", len(want), len(inv), inv)
	}
	for i := range want {
		if inv[i] != want[i] {
			t.Errorf("index %d: got %v, want %v", i, inv[i], want[i])
		}
	}
}

func TestInvertIdempotenceOnDisjointInput(t *testing.T) {
	ivs := []Interval{{Lo: 'a', Hi: 'f'}, {Lo: 'm', Hi: 'z'}}
	twice := Invert(Invert(ivs))

	covered := func(set []Interval, r rune) bool {
		for _, iv := range set {
			if iv.Contains(r) {
				return true
			}
		}
		return false
	}

	for r := rune(0); r < 200; r++ {
		if covered(ivs, r) != covered(twice, r) {
			t.Fatalf("mismatch at rune %d: original=%v twice=%v", r, covered(ivs, r), covered(twice, r))
		}
	}
}

func TestInvertEmpty(t *testing.T) {
	inv := Invert(nil)
	if len(inv) != 1 || inv[0] != (Interval{Lo: 0, Hi: MaxRune}) {
		t.Fatalf("expected full range, got %v", inv)
	}
}

func TestOverlaps(t *testing.T) {
	a := Interval{Lo: 1, Hi: 5}
	b := Interval{Lo: 5, Hi: 10}
	c := Interval{Lo: 6, Hi: 10}
	if !a.Overlaps(b) {
		t.Error("expected overlap at boundary")
	}
	if a.Overlaps(c) {
		t.Error("expected no overlap")
	}
}
