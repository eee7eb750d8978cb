package ecs

import (
	"fmt"
	"reflect"
)

// Initialized is a zero-size marker resource recording that the setup
// associated with the tag type M has run. M is a label only; it is never
// instantiated. Presence of Initialized[M] in a world means the setup for M
// happened exactly once; the marker is never removed by this package.
type Initialized[M any] struct{}

// Init marks tag M as initialized on this world and reports whether this
// call did the marking. The first call for a given M on a given world
// returns true; every later call returns false. Distinct tags are fully
// independent. Init never fails.
//
// Use it to guard setup that may be reached many times but must take effect
// once:
//
//	if ecs.Init[spawnedBoss](world) {
//	    spawnBoss(world)
//	}
func Init[M any](w *World) bool {
	if w == nil || HasResource[Initialized[M]](w) {
		return false
	}
	InsertResource(w, Initialized[M]{})
	w.log.Debug().
		Str("tag", reflect.TypeFor[M]().String()).
		Msg("marked initialized")
	return true
}

// registration is the compound identity for a lazy system registration:
// which schedule, and which system instance.
type registration struct {
	label ScheduleLabel
	work  System
}

// registeredSystems tracks which (schedule, system) registrations have
// already happened on a world. Stored as a resource alongside the markers.
type registeredSystems struct {
	seen map[registration]struct{}
}

// InitAndRegister appends each system to the schedule named by label,
// at most once per (label, system) pair per world, creating the schedule in
// the registry if it does not exist yet. It returns true if any system was
// registered by this call and false if every pair had already been seen.
//
// Identity is the System interface value: the same instance (or an equal
// value-typed system) is registered once no matter how often this is called,
// while two separately constructed instances, including two NewSystemFunc
// wrappers around identical closures, are distinct and each register.
// Registrations made directly on the schedule are invisible here; combining
// both paths for the same system runs it twice.
//
// InitAndRegister panics if the world has no Schedules resource: inserting
// the registry is the world owner's responsibility, and calling this before
// that is a programming error, not a recoverable condition.
func InitAndRegister(w *World, label ScheduleLabel, systems ...System) bool {
	if w == nil {
		return false
	}
	regs, ok := Resource[*registeredSystems](w)
	if !ok {
		regs = &registeredSystems{seen: make(map[registration]struct{})}
		InsertResource(w, regs)
	}

	anyFresh := false
	for _, sys := range systems {
		if sys == nil {
			continue
		}
		if _, done := regs.seen[registration{label: label, work: sys}]; !done {
			anyFresh = true
			break
		}
	}
	if !anyFresh {
		return false
	}

	schedules, ok := Resource[*Schedules](w)
	if !ok {
		panic(fmt.Sprintf("ecs: no Schedules resource in world: insert one before registering systems into schedule %q", label))
	}
	sched := schedules.Get(label)
	if sched == nil {
		sched = NewSchedule(label)
		schedules.Insert(sched)
	}
	registered := false
	for _, sys := range systems {
		if sys == nil {
			continue
		}
		reg := registration{label: label, work: sys}
		if _, done := regs.seen[reg]; done {
			continue
		}
		sched.Add(sys)
		regs.seen[reg] = struct{}{}
		registered = true
		w.log.Debug().
			Str("schedule", string(label)).
			Type("system", sys).
			Msg("registered system")
	}
	return registered
}
