// Minesweeper - a minesweeper game built with Ebitengine
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/minesweeper/internal/config"
	"github.com/hailam/minesweeper/internal/layout"
	"github.com/hailam/minesweeper/internal/storage"
	"github.com/hailam/minesweeper/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	storage.SetDataDir(cfg.DataDir)
	log := config.OpenLogger(cfg, storage.GetLogDir, os.Stderr)
	storage.Log = log
	ui.Log = log

	game := ui.NewGame(ui.Options{Seed: cfg.Seed, HasSeed: cfg.HasSeed})
	defer game.Close()

	ebiten.SetWindowSize(layout.MenuWindowW, layout.MenuWindowH)
	ebiten.SetWindowTitle("Minesweeper")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.WithField("development", cfg.Development).Info("starting")
	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Error("game stopped")
		game.Close()
		os.Exit(1)
	}
}
