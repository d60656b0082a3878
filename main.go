package main

import (
	"errors"
	"flag"

	"raycaster/internal/assets"
	"raycaster/internal/config"
	"raycaster/internal/game"
	"raycaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "config.yaml", "renderer configuration")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fatal(err)
	}
}

// run loads everything the game needs, then blocks in the ebiten loop.
// Deferred cleanup runs before the caller exits on error.
func run(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := config.ConfigureLogging(cfg.Logging); err != nil {
		return err
	}

	m, tiles, err := world.LoadLevel(cfg.Map)
	if err != nil {
		return err
	}
	if err := world.CheckStart(m, cfg.Movement.StartPosition); err != nil {
		return err
	}

	atlas, err := assets.LoadAtlas(cfg.Textures.Atlas, cfg.Textures.AtlasSize, cfg.Textures.TileSize, tiles.MaxAtlasIndex()+1)
	if err != nil {
		return &config.ConfigError{Op: "load atlas", Path: cfg.Textures.Atlas, Err: err}
	}
	face, err := assets.LoadFontFace(cfg.Display.Font, cfg.Display.FontSize)
	if err != nil {
		return &config.ConfigError{Op: "load font", Path: cfg.Display.Font, Err: err}
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	ebiten.SetTPS(cfg.Display.TPS)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewGame(cfg, m, tiles, atlas, face)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return nil
}

// fatal logs a failure and exits; nothing renders after one
func fatal(err error) {
	entry := logrus.WithError(err)
	var cerr *config.ConfigError
	if errors.As(err, &cerr) {
		entry = entry.WithFields(logrus.Fields{"op": cerr.Op, "path": cerr.Path})
	}
	entry.Fatal("raycaster stopped")
}
