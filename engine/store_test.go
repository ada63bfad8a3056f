package engine

import (
	"testing"

	"github.com/lixenwraith/xgalaga/core"
)

// TestStoreSetGetRemove verifies basic store lifecycle
func TestStoreSetGetRemove(t *testing.T) {
	s := NewStore[int]()
	s.Set(1, 10)
	s.Set(2, 20)
	s.Set(1, 11) // update, not insert

	if s.Count() != 2 {
		t.Fatalf("Count = %d, want 2", s.Count())
	}
	if v, ok := s.Get(1); !ok || v != 11 {
		t.Errorf("Get(1) = %d, %v, want 11, true", v, ok)
	}

	s.Remove(1)
	s.Remove(1) // no-op
	if s.Has(1) || s.Count() != 1 {
		t.Errorf("Remove failed: has=%v count=%d", s.Has(1), s.Count())
	}
	if _, ok := s.Get(99); ok {
		t.Error("Get on unknown entity returned ok")
	}
}

// TestStoreIterationOrder verifies All keeps insertion order across removals
func TestStoreIterationOrder(t *testing.T) {
	s := NewStore[string]()
	for e := core.Entity(1); e <= 5; e++ {
		s.Set(e, "x")
	}
	s.Remove(2)
	s.RemoveBatch([]core.Entity{4, 42})

	got := s.All()
	want := []core.Entity{1, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("All = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All = %v, want %v", got, want)
			break
		}
	}
}

// TestStoreAllIsCopy verifies mutation during iteration does not affect the snapshot
func TestStoreAllIsCopy(t *testing.T) {
	s := NewStore[int]()
	s.Set(1, 1)
	s.Set(2, 2)

	snapshot := s.All()
	for _, e := range snapshot {
		s.Remove(e)
		s.Set(e+10, 0)
	}
	if len(snapshot) != 2 || snapshot[0] != 1 || snapshot[1] != 2 {
		t.Errorf("snapshot mutated: %v", snapshot)
	}
	if s.Count() != 2 || !s.Has(11) || !s.Has(12) {
		t.Errorf("unexpected store contents: %v", s.All())
	}
}
