// Package main is the entry point for mazegen.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/samdwyer/mazegen/internal/config"
	"github.com/samdwyer/mazegen/internal/level"
	"github.com/samdwyer/mazegen/internal/maze"
	"github.com/samdwyer/mazegen/internal/telemetry"
	"github.com/samdwyer/mazegen/internal/ui"
	"github.com/samdwyer/mazegen/internal/viewer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	preview := flag.Bool("preview", false, "open an interactive terminal preview")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "maze width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "maze height in cells")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")
	flag.Float64Var(&cfg.CellSize, "cell", cfg.CellSize, "world size of one cell")
	flag.BoolVar(&cfg.Enclose, "enclose", cfg.Enclose, "emit the outer boundary walls")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format: ascii, yaml or json")
	flag.StringVar(&cfg.Output, "out", cfg.Output, "output file (default stdout)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	ctx := context.Background()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	opts := maze.Options{
		Width:    cfg.Width,
		Height:   cfg.Height,
		CellSize: cfg.CellSize,
		Enclose:  cfg.Enclose,
	}

	if *preview {
		if err := runPreview(ctx, opts, cfg.Seed); err != nil {
			log.Fatalf("Preview error: %v", err)
		}
		return
	}

	if err := run(ctx, cfg, opts); err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config, opts maze.Options) error {
	opts.Rand = rand.New(rand.NewSource(cfg.Seed))
	m, err := maze.Generate(ctx, opts)
	if err != nil {
		return err
	}

	a := m.Analyze()
	log.Printf("Generated %dx%d maze (seed %d): %s walls, %s passages, %s dead ends, longest path %s",
		m.Width, m.Height, cfg.Seed,
		humanize.Comma(int64(len(m.Walls)+len(m.Boundary))),
		humanize.Comma(int64(len(m.Passages))),
		humanize.Comma(int64(a.DeadEnds)),
		humanize.Comma(int64(a.Diameter)))

	if cfg.Output == "" {
		return write(os.Stdout, cfg, m)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", cfg.Output, err)
	}
	defer f.Close()

	if err := write(f, cfg, m); err != nil {
		return err
	}
	if info, err := f.Stat(); err == nil {
		log.Printf("Wrote %s (%s)", cfg.Output, humanize.Bytes(uint64(info.Size())))
	}
	return nil
}

func write(w io.Writer, cfg config.Config, m *maze.Maze) error {
	switch cfg.Format {
	case config.FormatYAML:
		return level.WriteYAML(w, level.FromMaze(m, cfg.Seed))
	case config.FormatJSON:
		return level.WriteJSON(w, level.FromMaze(m, cfg.Seed))
	default:
		_, err := io.WriteString(w, m.String())
		return err
	}
}

func runPreview(ctx context.Context, opts maze.Options, seed int64) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	return viewer.New(screen, opts, seed).Run(ctx)
}
