package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrInvalidHandle  = errors.New("ecs: invalid component handle")
)

// ID identifies a registered component type within the process.
type ID uint32

var nextID atomic.Uint32

// Handle is a typed key into a world's component storage. Declare one
// package-level handle per component type.
type Handle[T any] struct {
	id ID
}

// New allocates a fresh component handle.
func New[T any]() Handle[T] {
	return Handle[T]{id: ID(nextID.Add(1))}
}

func (h Handle[T]) ID() ID {
	return h.id
}

func (h Handle[T]) Valid() bool {
	return h.id != 0
}
