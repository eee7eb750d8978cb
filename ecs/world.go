package ecs

import (
	"reflect"

	"github.com/rs/zerolog"

	"github.com/milk9111/runonce/ecs/component"
)

// World owns entities, component storage, and resources. A world expects a
// single mutator at a time: callers that share a world across goroutines must
// serialize access themselves.
type World struct {
	entities  entityStore
	stores    map[component.ID]*SparseSet
	resources map[reflect.Type]any
	log       zerolog.Logger
}

// NewWorld creates an empty world with a no-op logger.
func NewWorld() *World {
	return &World{log: zerolog.Nop()}
}

// SetLogger installs the logger used for world diagnostics.
func (w *World) SetLogger(log zerolog.Logger) {
	if w == nil {
		return
	}
	w.log = log
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return Entity{}
	}
	return w.entities.create()
}

// DestroyEntity invalidates an entity handle and drops its components.
// Returns false if the entity was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e.ID)
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.entities.count()
}

// Storage returns the sparse set backing a component id, creating it on
// first use.
func (w *World) Storage(id component.ID) *SparseSet {
	if w == nil || id == 0 {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// AddComponent attaches a value to an entity under the given component id.
func (w *World) AddComponent(e Entity, id component.ID, v any) error {
	if id == 0 {
		return component.ErrInvalidHandle
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.Storage(id).Set(e.ID, v)
	return nil
}

// GetComponent returns the value attached to an entity for a component id.
func (w *World) GetComponent(e Entity, id component.ID) (any, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	s, ok := w.stores[id]
	if !ok || !s.Has(e.ID) {
		return nil, false
	}
	return s.Get(e.ID), true
}

// HasComponent reports whether the entity has a value for the component id.
func (w *World) HasComponent(e Entity, id component.ID) bool {
	_, ok := w.GetComponent(e, id)
	return ok
}

// RemoveComponent detaches the component from the entity if present.
func (w *World) RemoveComponent(e Entity, id component.ID) bool {
	if w == nil || !w.IsAlive(e) {
		return false
	}
	s, ok := w.stores[id]
	if !ok {
		return false
	}
	return s.Remove(e.ID)
}
