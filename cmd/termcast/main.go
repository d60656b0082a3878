// Command termcast runs the raycaster in a terminal, one colored cell per
// rendered column and row.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"raycaster/internal/assets"
	"raycaster/internal/config"
	"raycaster/internal/term"
	"raycaster/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "config.yaml", "renderer configuration")
	logPath := flag.String("log", "termcast.log", "log file; the terminal is busy drawing")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		entry := logrus.WithError(err)
		var cerr *config.ConfigError
		if errors.As(err, &cerr) {
			entry = entry.WithFields(logrus.Fields{"op": cerr.Op, "path": cerr.Path})
		}
		entry.Fatal("termcast stopped")
	}
}

func run(configPath, logPath string) error {
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

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return &config.ConfigError{Op: "open log", Path: logPath, Err: err}
	}
	defer logFile.Close()
	logrus.SetOutput(logFile)
	defer logrus.SetOutput(os.Stderr)

	screen, err := tcell.NewScreen()
	if err != nil {
		return &config.ConfigError{Op: "open terminal", Err: err}
	}
	if err := screen.Init(); err != nil {
		return &config.ConfigError{Op: "init terminal", Err: err}
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := term.NewApp(screen, cfg, m, tiles, atlas)
	defer app.Close()
	return app.Run(ctx)
}
