package sparse

import "testing"

func TestSparseSetBasic(t *testing.T) {
	s := NewSparseSet(100)

	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	s.Insert(5)
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	s.Insert(5)
	if s.Size() != 1 {
		t.Errorf("duplicate insert should not grow size, got %d", s.Size())
	}

	s.Insert(10)
	s.Insert(3)
	s.Insert(7)
	if s.Size() != 4 {
		t.Errorf("size should be 4, got %d", s.Size())
	}

	s.Clear()
	if !s.IsEmpty() {
		t.Error("set should be empty after clear")
	}
	if s.Contains(5) {
		t.Error("cleared set should not contain 5")
	}
}

func TestSparseSetInsertionOrder(t *testing.T) {
	s := NewSparseSet(100)
	s.Insert(5)
	s.Insert(2)
	s.Insert(8)
	s.Insert(1)

	expected := []uint32{5, 2, 8, 1}
	values := s.Values()
	if len(values) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(values))
	}
	for i, v := range values {
		if v != expected[i] {
			t.Errorf("at index %d: expected %d, got %d", i, expected[i], v)
		}
	}
}

func TestSparseSetRemove(t *testing.T) {
	s := NewSparseSet(100)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	s.Remove(2)
	if s.Contains(2) {
		t.Error("set should not contain 2 after remove")
	}
	if s.Size() != 2 {
		t.Errorf("size should be 2 after remove, got %d", s.Size())
	}
	if !s.Contains(1) || !s.Contains(3) {
		t.Error("set should still contain 1 and 3")
	}
}

func TestSparseSetOutOfRange(t *testing.T) {
	s := NewSparseSet(10)
	if s.Contains(1000) {
		t.Error("out-of-range value should not be reported as contained")
	}
}

func TestSparseSetIter(t *testing.T) {
	s := NewSparseSet(100)
	want := map[uint32]bool{1: true, 2: true, 3: true}
	for v := range want {
		s.Insert(v)
	}

	got := map[uint32]bool{}
	s.Iter(func(v uint32) { got[v] = true })

	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for v := range want {
		if !got[v] {
			t.Errorf("missing %d from iteration", v)
		}
	}
}
