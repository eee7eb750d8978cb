package ecs

import "sort"

// System updates a world each time its schedule runs.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a function into a System. Each NewSystemFunc call
// allocates a distinct value, so two wrappers around the same function (or
// around closures with identical bodies) are separate systems with separate
// identities.
type SystemFunc struct {
	fn func(w *World)
}

// NewSystemFunc wraps fn as a System.
func NewSystemFunc(fn func(w *World)) *SystemFunc {
	return &SystemFunc{fn: fn}
}

func (s *SystemFunc) Update(w *World) {
	if s == nil || s.fn == nil {
		return
	}
	s.fn(w)
}

// ScheduleLabel names a schedule in the registry.
type ScheduleLabel string

// Schedule is an ordered collection of systems run together.
type Schedule struct {
	label   ScheduleLabel
	systems []System
}

// NewSchedule creates a schedule with the given systems in order.
func NewSchedule(label ScheduleLabel, systems ...System) *Schedule {
	copied := append([]System(nil), systems...)
	return &Schedule{label: label, systems: copied}
}

// Label returns the schedule's registry key.
func (s *Schedule) Label() ScheduleLabel {
	if s == nil {
		return ""
	}
	return s.label
}

// Add appends a system to the run order.
func (s *Schedule) Add(system System) {
	if s == nil || system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs all systems once, in order.
func (s *Schedule) Update(w *World) {
	if s == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
}

// Len returns the number of systems in the schedule.
func (s *Schedule) Len() int {
	if s == nil {
		return 0
	}
	return len(s.systems)
}

// Systems returns a copy of the run order.
func (s *Schedule) Systems() []System {
	if s == nil {
		return nil
	}
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

// Count returns how many times a system appears in the run order, compared
// by identity. The system's dynamic type must be comparable.
func (s *Schedule) Count(system System) int {
	if s == nil {
		return 0
	}
	n := 0
	for _, sys := range s.systems {
		if sys == system {
			n++
		}
	}
	return n
}

// Contains reports whether the system is in the run order.
func (s *Schedule) Contains(system System) bool {
	return s.Count(system) > 0
}

// Schedules is the registry of named schedules. It lives in the world as a
// resource; the world owner inserts it before any system registration.
type Schedules struct {
	byLabel map[ScheduleLabel]*Schedule
}

// NewSchedules creates an empty registry.
func NewSchedules() *Schedules {
	return &Schedules{byLabel: make(map[ScheduleLabel]*Schedule)}
}

// Get returns the schedule under label, or nil.
func (r *Schedules) Get(label ScheduleLabel) *Schedule {
	if r == nil {
		return nil
	}
	return r.byLabel[label]
}

// Insert adds a schedule under its label, replacing any existing one.
func (r *Schedules) Insert(s *Schedule) {
	if r == nil || s == nil {
		return
	}
	if r.byLabel == nil {
		r.byLabel = make(map[ScheduleLabel]*Schedule)
	}
	r.byLabel[s.Label()] = s
}

// Entry returns the schedule under label, creating and inserting an empty
// one if absent.
func (r *Schedules) Entry(label ScheduleLabel) *Schedule {
	if r == nil {
		return nil
	}
	if s := r.byLabel[label]; s != nil {
		return s
	}
	s := NewSchedule(label)
	r.Insert(s)
	return s
}

// Labels returns the registered labels in sorted order.
func (r *Schedules) Labels() []ScheduleLabel {
	if r == nil {
		return nil
	}
	labels := make([]ScheduleLabel, 0, len(r.byLabel))
	for label := range r.byLabel {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

// Run updates the schedule under label, if it exists.
func (r *Schedules) Run(w *World, label ScheduleLabel) {
	r.Get(label).Update(w)
}
