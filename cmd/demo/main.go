package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/milk9111/runonce/ecs"
)

func main() {
	configPath := flag.String("config", "", "path to a yaml config (watched for changes)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	log := zerolog.New(cw).Level(level).With().Timestamp().Logger()

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load config")
		}
		cfg = loaded
	}

	world := ecs.NewWorld()
	world.SetLogger(log)
	ecs.InsertResource(world, ecs.NewSchedules())

	game := NewGame(world, cfg, log)

	if *configPath != "" {
		watcher, err := NewWatcher(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("watch config")
		}
		defer watcher.Close()
		go func() {
			for {
				select {
				case _, ok := <-watcher.Events:
					if !ok {
						return
					}
					loaded, err := LoadConfig(*configPath)
					if err != nil {
						log.Warn().Err(err).Msg("reload config")
						continue
					}
					game.Reload(loaded)
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					log.Warn().Err(err).Msg("config watcher")
				}
			}
		}()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("runonce demo")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
