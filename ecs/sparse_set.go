package ecs

// sparseEntry pairs an entity id with its stored component value.
type sparseEntry struct {
	id    int
	value any
}

// SparseSet stores one component value per entity id with O(1) lookup and a
// packed dense slice for iteration. Values are held as `any`; typed access
// goes through the generic helpers in generics.go.
type SparseSet struct {
	dense  []sparseEntry
	sparse []int
}

// Has reports whether the entity id has a value in the set.
func (s *SparseSet) Has(id int) bool {
	if s == nil || id <= 0 || id > len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.dense) && s.dense[idx].id == id
}

// Get returns the value for id, or nil if absent.
func (s *SparseSet) Get(id int) any {
	if !s.Has(id) {
		return nil
	}
	return s.dense[s.sparse[id-1]].value
}

// Set inserts or replaces the value for id.
func (s *SparseSet) Set(id int, v any) {
	if s == nil || id <= 0 {
		return
	}
	for id > len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.Has(id) {
		s.dense[s.sparse[id-1]].value = v
		return
	}
	s.dense = append(s.dense, sparseEntry{id: id, value: v})
	s.sparse[id-1] = len(s.dense) - 1
}

// Remove deletes the value for id, swapping the last dense entry into its
// slot. Returns false if id had no value.
func (s *SparseSet) Remove(id int) bool {
	if !s.Has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.dense) - 1
	s.dense[idx] = s.dense[last]
	s.sparse[s.dense[idx].id-1] = idx
	s.dense = s.dense[:last]
	s.sparse[id-1] = -1
	return true
}

// Len returns the number of stored values.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}

// Entities returns the dense entity id list in storage order.
func (s *SparseSet) Entities() []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s.dense))
	for i, e := range s.dense {
		out[i] = e.id
	}
	return out
}

// IntersectEntities returns entity ids present in both sets.
func IntersectEntities(a, b *SparseSet) []int {
	if a == nil || b == nil {
		return nil
	}
	// iterate smaller set
	if a.Len() > b.Len() {
		a, b = b, a
	}
	out := make([]int, 0, a.Len())
	for _, e := range a.dense {
		if b.Has(e.id) {
			out = append(out, e.id)
		}
	}
	return out
}
