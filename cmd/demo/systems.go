package main

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/milk9111/runonce/ecs"
)

// ScheduleUpdate is the demo's per-frame simulation schedule.
const ScheduleUpdate ecs.ScheduleLabel = "Update"

// spawnSystem adds one dot per tick until the configured cap is reached.
type spawnSystem struct {
	rng *rand.Rand
}

func newSpawnSystem(seed int64) *spawnSystem {
	return &spawnSystem{rng: rand.New(rand.NewSource(seed))}
}

func (s *spawnSystem) Update(w *ecs.World) {
	cfg, ok := ecs.Resource[*Config](w)
	if !ok {
		return
	}
	if w.Storage(DotComponent.ID()).Len() >= cfg.Dots.Max {
		return
	}

	e := w.CreateEntity()
	dot := &Dot{
		X:  s.rng.Float64() * float64(cfg.Window.Width),
		Y:  s.rng.Float64() * float64(cfg.Window.Height),
		VX: (s.rng.Float64()*2 - 1) * cfg.Dots.Speed,
		VY: (s.rng.Float64()*2 - 1) * cfg.Dots.Speed,
	}
	_ = ecs.Add(w, e, DotComponent, dot)
}

// moveSystem advances dots and bounces them off the window edges.
type moveSystem struct{}

func (s *moveSystem) Update(w *ecs.World) {
	cfg, ok := ecs.Resource[*Config](w)
	if !ok {
		return
	}
	maxX := float64(cfg.Window.Width) - cfg.Dots.Size
	maxY := float64(cfg.Window.Height) - cfg.Dots.Size

	store := w.Storage(DotComponent.ID())
	for _, id := range store.Entities() {
		dot, ok := store.Get(id).(*Dot)
		if !ok {
			continue
		}
		dot.X += dot.VX
		dot.Y += dot.VY
		if dot.X < 0 {
			dot.X, dot.VX = 0, -dot.VX
		} else if dot.X > maxX {
			dot.X, dot.VX = maxX, -dot.VX
		}
		if dot.Y < 0 {
			dot.Y, dot.VY = 0, -dot.VY
		} else if dot.Y > maxY {
			dot.Y, dot.VY = maxY, -dot.VY
		}
	}
}

// statsSystem periodically logs the dot population. Registered lazily when
// debug logging is toggled on.
type statsSystem struct {
	log   zerolog.Logger
	ticks int
}

func (s *statsSystem) Update(w *ecs.World) {
	s.ticks++
	if s.ticks%120 != 0 {
		return
	}
	s.log.Info().
		Int("dots", w.Storage(DotComponent.ID()).Len()).
		Int("entities", w.EntityCount()).
		Msg("simulation stats")
}
