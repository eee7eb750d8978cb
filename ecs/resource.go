package ecs

import "reflect"

// Resources are world-global singletons keyed by their Go type: at most one
// value per type exists in a world. They back the Initialized markers and the
// Schedules registry, and are available for any other world-global state.

func (w *World) resourceMap() map[reflect.Type]any {
	if w.resources == nil {
		w.resources = make(map[reflect.Type]any)
	}
	return w.resources
}

// InsertResource stores value as the resource of type T, replacing any
// existing value.
func InsertResource[T any](w *World, value T) {
	if w == nil {
		return
	}
	w.resourceMap()[reflect.TypeFor[T]()] = value
}

// Resource returns the resource of type T, if present.
func Resource[T any](w *World) (T, bool) {
	var zero T
	if w == nil || w.resources == nil {
		return zero, false
	}
	v, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// HasResource reports whether a resource of type T exists.
func HasResource[T any](w *World) bool {
	if w == nil || w.resources == nil {
		return false
	}
	_, ok := w.resources[reflect.TypeFor[T]()]
	return ok
}

// InitResource inserts a zero value of T if no T resource exists. Returns
// true if the resource was inserted by this call.
func InitResource[T any](w *World) bool {
	if w == nil || HasResource[T](w) {
		return false
	}
	var zero T
	InsertResource(w, zero)
	return true
}

// RemoveResource deletes the resource of type T. Returns false if absent.
// Removal is the world owner's call; nothing in this package removes
// resources on its own.
func RemoveResource[T any](w *World) bool {
	if w == nil || w.resources == nil {
		return false
	}
	key := reflect.TypeFor[T]()
	if _, ok := w.resources[key]; !ok {
		return false
	}
	delete(w.resources, key)
	return true
}
