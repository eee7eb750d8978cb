package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/milk9111/runonce/ecs"
)

// simulationStarted tags the one-time world seeding that happens on the
// first start of the simulation.
type simulationStarted struct{}

// Game wires the demo loop. The point of the demo is the setup path: it can
// be hit any number of times (keypresses, config reloads) and every
// registration in it happens once.
type Game struct {
	world  *ecs.World
	log    zerolog.Logger
	reload chan *Config
	frames int

	spawn *spawnSystem
	move  *moveSystem
	stats *statsSystem
}

func NewGame(world *ecs.World, cfg *Config, log zerolog.Logger) *Game {
	ecs.InsertResource(world, cfg)
	return &Game{
		world:  world,
		log:    log,
		reload: make(chan *Config, 1),
		spawn:  newSpawnSystem(time.Now().UnixNano()),
		move:   &moveSystem{},
		stats:  &statsSystem{log: log},
	}
}

// Reload hands a freshly loaded config to the game loop.
func (g *Game) Reload(cfg *Config) {
	select {
	case g.reload <- cfg:
	default:
	}
}

// startSimulation registers the simulation systems and seeds the world.
// Safe to call every frame: the markers make it a no-op after the first
// effective call.
func (g *Game) startSimulation() {
	if ecs.InitAndRegister(g.world, ScheduleUpdate, g.spawn, g.move) {
		g.log.Info().Str("schedule", string(ScheduleUpdate)).Msg("simulation systems registered")
	}
	if ecs.Init[simulationStarted](g.world) {
		g.log.Info().Msg("simulation started")
	}
}

func (g *Game) Update() error {
	g.frames++

	select {
	case cfg := <-g.reload:
		ecs.InsertResource(g.world, cfg)
		// setup is re-run on purpose: a reload must not double-register
		g.startSimulation()
		g.log.Info().Msg("config reloaded")
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.startSimulation()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		if ecs.InitAndRegister(g.world, ScheduleUpdate, g.stats) {
			g.log.Info().Msg("stats system registered")
		}
	}

	if schedules, ok := ecs.Resource[*ecs.Schedules](g.world); ok {
		schedules.Run(g.world, ScheduleUpdate)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	cfg, ok := ecs.Resource[*Config](g.world)
	if !ok {
		return
	}

	store := g.world.Storage(DotComponent.ID())
	for _, id := range store.Entities() {
		dot, ok := store.Get(id).(*Dot)
		if !ok {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(dot.X), float32(dot.Y),
			float32(cfg.Dots.Size), float32(cfg.Dots.Size),
			color.RGBA{R: 0x5c, G: 0xd6, B: 0x8a, A: 0xff}, false)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"space: start sim    d: stats system    dots: %d    fps: %.1f",
		store.Len(), ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg, ok := ecs.Resource[*Config](g.world)
	if !ok {
		return outsideWidth, outsideHeight
	}
	return cfg.Window.Width, cfg.Window.Height
}
