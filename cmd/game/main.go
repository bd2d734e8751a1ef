package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/carchrae/hogs/internal/arena"
	"github.com/carchrae/hogs/internal/audio"
	"github.com/carchrae/hogs/internal/config"
	"github.com/carchrae/hogs/internal/game"
	"github.com/carchrae/hogs/internal/logging"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "optional config file (json, yaml or toml)")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogPretty)

	var sound game.EffectSink = game.NopEffects{}
	if cfg.Audio.Enabled {
		p := audio.NewPlayer(cfg.Audio.Volume, logger)
		if err := p.Init(); err != nil {
			logger.Warn().Err(err).Msg("audio unavailable, continuing silently")
		} else {
			defer p.Close()
			sound = p
		}
	}

	ebiten.SetWindowTitle("Hog Defense")
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	g := arena.New(arena.Options{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		SimOptions: cfg.GameOptions(),
		Sound:      sound,
		Logger:     logger,
	})
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal().Err(err).Msg("game exited")
	}
}
