// Command genmaps writes a procedurally generated world and its tilemaps.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"chosenoffset.com/tilepush/internal/config"
	"chosenoffset.com/tilepush/internal/logging"
	"chosenoffset.com/tilepush/internal/world"
	"chosenoffset.com/tilepush/internal/world/mapgen"
	"chosenoffset.com/tilepush/internal/world/maploader"
)

func main() {
	out := flag.String("out", "assets/generated", "output directory")
	name := flag.String("name", "gen", "world name, also the tilemap name prefix")
	cols := flag.Int("cols", world.TilemapsCount.X, "world columns")
	rows := flag.Int("rows", world.TilemapsCount.Y, "world rows")
	seed := flag.Int64("seed", mapgen.DefaultOptions.Seed, "noise seed")
	format := flag.String("format", "json", "file format: json, yaml or yml")
	flag.Parse()

	log, err := logging.New(config.LoggingConfig{Level: "info", Format: "console"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *cols <= 0 || *cols > world.TilemapsCount.X || *rows <= 0 || *rows > world.TilemapsCount.Y {
		log.Fatal("world size out of range",
			zap.Int("cols", *cols), zap.Int("rows", *rows), zap.Stringer("max", world.TilemapsCount))
	}

	ext, err := formatExt(*format)
	if err != nil {
		log.Fatal("invalid format", zap.Error(err))
	}

	opts := mapgen.DefaultOptions
	opts.Seed = *seed
	wf, tilemaps := mapgen.New(opts).World(*name, *cols, *rows, world.Vec2i{X: 1, Y: 1})

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal("failed to create output directory", zap.Error(err))
	}
	if err := maploader.WriteFile(filepath.Join(*out, "world"+ext), wf); err != nil {
		log.Fatal("failed to write world", zap.Error(err))
	}
	for _, mf := range tilemaps {
		if err := maploader.WriteFile(filepath.Join(*out, mf.Name+ext), mf); err != nil {
			log.Fatal("failed to write tilemap", zap.String("name", mf.Name), zap.Error(err))
		}
	}

	log.Info("world generated",
		zap.String("dir", *out),
		zap.Int("tilemaps", len(tilemaps)),
		zap.Int64("seed", *seed),
	)
}

// formatExt returns the file extension for a -format value.
func formatExt(format string) (string, error) {
	switch format {
	case "json", "yaml", "yml":
		return "." + format, nil
	default:
		return "", fmt.Errorf("unsupported format %q, want json, yaml or yml", format)
	}
}
