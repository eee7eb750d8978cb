package ecs

import "strconv"

// Entity is a generational handle. The zero Entity is never alive.
type Entity struct {
	ID  int
	Gen int
}

func (e Entity) Valid() bool {
	return e.ID > 0
}

func (e Entity) String() string {
	return strconv.Itoa(e.ID) + "v" + strconv.Itoa(e.Gen)
}

// entityStore tracks entity generations and recycles freed ids.
type entityStore struct {
	gen  []int
	free []int
}

func (s *entityStore) create() Entity {
	if s == nil {
		return Entity{}
	}
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		return Entity{ID: id, Gen: s.gen[id-1]}
	}
	s.gen = append(s.gen, 0)
	return Entity{ID: len(s.gen)}
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	s.gen[e.ID-1]++
	s.free = append(s.free, e.ID)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if s == nil || e.ID <= 0 || e.ID > len(s.gen) {
		return false
	}
	return s.gen[e.ID-1] == e.Gen
}

func (s *entityStore) count() int {
	if s == nil {
		return 0
	}
	return len(s.gen) - len(s.free)
}
