package ecs

import (
	"testing"

	"github.com/milk9111/runonce/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if w.EntityCount() != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, w.EntityCount())
			}
			if c.destroyIndex >= 0 {
				if !w.DestroyEntity(ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.EntityCount() != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, w.EntityCount())
				}
			}
		})
	}
}

func TestWorldEntityGenerations(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.DestroyEntity(e)

	reused := w.CreateEntity()
	if reused.ID != e.ID {
		t.Fatalf("expected id %d to be recycled, got %d", e.ID, reused.ID)
	}
	if reused.Gen == e.Gen {
		t.Fatalf("recycled id should carry a new generation")
	}
	if w.IsAlive(e) {
		t.Fatalf("stale handle should not be alive")
	}
	if !w.IsAlive(reused) {
		t.Fatalf("recycled handle should be alive")
	}
}

func TestWorldComponents(t *testing.T) {
	hInt := component.New[int]()
	hStr := component.New[string]()

	w := NewWorld()
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()

	if err := Add(w, e1, hInt, 10); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := Add(w, e1, hStr, "a"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := Add(w, e2, hStr, "b"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if v, ok := Get(w, e1, hInt); !ok || v != 10 {
		t.Fatalf("expected 10, got %v ok=%v", v, ok)
	}
	if Has(w, e2, hInt) {
		t.Fatalf("e2 should not have an int component")
	}
	if v, ok := Get(w, e2, hStr); !ok || v != "b" {
		t.Fatalf("expected b, got %v ok=%v", v, ok)
	}

	if !Remove(w, e1, hInt) {
		t.Fatalf("Remove should report true for present component")
	}
	if Has(w, e1, hInt) {
		t.Fatalf("component should be gone after Remove")
	}
	if Remove(w, e1, hInt) {
		t.Fatalf("Remove should report false for absent component")
	}
}

func TestWorldComponentErrors(t *testing.T) {
	hInt := component.New[int]()

	w := NewWorld()
	dead := w.CreateEntity()
	w.DestroyEntity(dead)

	if err := Add(w, dead, hInt, 1); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	if err := w.AddComponent(w.CreateEntity(), 0, 1); err != component.ErrInvalidHandle {
		t.Fatalf("expected ErrInvalidHandle, got %v", err)
	}
}

func TestWorldDestroyDropsComponents(t *testing.T) {
	hInt := component.New[int]()

	w := NewWorld()
	e := w.CreateEntity()
	if err := Add(w, e, hInt, 5); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	w.DestroyEntity(e)

	reused := w.CreateEntity()
	if reused.ID != e.ID {
		t.Fatalf("expected recycled id for this test, got %d vs %d", reused.ID, e.ID)
	}
	if Has(w, reused, hInt) {
		t.Fatalf("recycled entity should not inherit components")
	}
}

func TestIntersectEntities(t *testing.T) {
	a := &SparseSet{}
	b := &SparseSet{}
	for _, id := range []int{1, 2, 3, 5} {
		a.Set(id, id)
	}
	for _, id := range []int{2, 5, 7} {
		b.Set(id, id)
	}

	got := IntersectEntities(a, b)
	want := map[int]bool{2: true, 5: true}
	if len(got) != len(want) {
		t.Fatalf("expected %d ids, got %v", len(want), got)
	}
	for _, id := range got {
		if !want[id] {
			t.Fatalf("unexpected id %d in intersection", id)
		}
	}
}

func TestSparseSetRemoveSwaps(t *testing.T) {
	s := &SparseSet{}
	s.Set(1, "a")
	s.Set(2, "b")
	s.Set(3, "c")

	if !s.Remove(1) {
		t.Fatalf("Remove should succeed for present id")
	}
	if s.Len() != 2 || s.Has(1) {
		t.Fatalf("id 1 should be gone, len=%d", s.Len())
	}
	if s.Get(3) != "c" || s.Get(2) != "b" {
		t.Fatalf("remaining values should survive the swap, got %v %v", s.Get(2), s.Get(3))
	}
}
