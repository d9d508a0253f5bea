// Command minesweeper-cli plays minesweeper over a line protocol on stdin/stdout.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hailam/minesweeper/internal/board"
	"github.com/hailam/minesweeper/internal/config"
	"github.com/hailam/minesweeper/internal/console"
	"github.com/hailam/minesweeper/internal/storage"
)

var (
	presetName = flag.String("preset", "easy", "starting difficulty: easy, medium or hard")
	seed       = flag.Uint64("seed", 0, "seed for mine placement (0 picks a random seed)")
	record     = flag.Bool("record", true, "record finished games in the statistics database")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	storage.SetDataDir(cfg.DataDir)
	log := config.OpenLogger(cfg, storage.GetLogDir, os.Stderr)
	storage.Log = log
	console.Log = log

	preset, ok := board.PresetByName(*presetName)
	if !ok {
		log.WithField("preset", *presetName).Fatal("unknown preset")
	}

	opts := []console.Option{console.WithPreset(preset)}
	switch {
	case *seed != 0:
		opts = append(opts, console.WithSeed(*seed))
	case cfg.HasSeed:
		opts = append(opts, console.WithSeed(cfg.Seed))
	}

	if *record {
		store, err := storage.NewStorage()
		if err != nil {
			log.WithError(err).Warn("statistics disabled")
		} else {
			defer store.Close()
			opts = append(opts, console.WithRecorder(store))
		}
	}

	if err := console.New(os.Stdin, os.Stdout, opts...).Run(); err != nil {
		log.WithError(err).Error("console stopped")
		os.Exit(1)
	}
}
