package ecs

import "github.com/milk9111/runonce/ecs/component"

func Add[T any](w *World, e Entity, h component.Handle[T], value T) error {
	return w.AddComponent(e, h.ID(), value)
}

func Remove[T any](w *World, e Entity, h component.Handle[T]) bool {
	return w.RemoveComponent(e, h.ID())
}

func Has[T any](w *World, e Entity, h component.Handle[T]) bool {
	return w.HasComponent(e, h.ID())
}

func Get[T any](w *World, e Entity, h component.Handle[T]) (T, bool) {
	var zero T
	value, ok := w.GetComponent(e, h.ID())
	if !ok {
		return zero, false
	}
	cast, ok := value.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}
