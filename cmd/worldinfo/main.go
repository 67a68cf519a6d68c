// Command worldinfo loads a world description without opening a window and
// prints every tilemap as ASCII.
//
//	.  ground     #  wall
//	@  player     %  pushable wall
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"chosenoffset.com/tilepush/internal/config"
	"chosenoffset.com/tilepush/internal/logging"
	"chosenoffset.com/tilepush/internal/world"
	"chosenoffset.com/tilepush/internal/world/maploader"
)

func main() {
	defaults := config.Defaults()
	worldFile := flag.String("world", defaults.Assets.WorldFile, "world description file")
	tilemapsDir := flag.String("dir", defaults.Assets.TilemapsDir, "tilemaps directory, with trailing separator")
	scan := flag.Bool("scan", false, "list every world and tilemap file in the tilemaps directory")
	level := flag.String("log", "info", "log level")
	flag.Parse()

	log, err := logging.New(config.LoggingConfig{Level: *level, Format: "console"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	loader := world.NewLoader(*worldFile, *tilemapsDir)
	if *scan {
		if err := printCatalog(loader); err != nil {
			log.Fatal("failed to scan maps", zap.Error(err))
		}
		return
	}

	entities := world.NewEntities(world.DefaultCapacities)
	w, start, err := world.Build(loader, entities, log)
	if err != nil {
		log.Fatal("failed to build world", zap.Error(err))
	}

	fmt.Printf("world %q offset (%.1f, %.1f)\n", w.Name, w.Offset.X(), w.Offset.Y())
	fmt.Printf("player %s\n\n", start)
	for _, placed := range w.Tilemaps() {
		tilemap := entities.Tilemap(placed.Handle)
		siblings := w.GetSiblingTilemaps(placed.World, false)
		fmt.Printf("%s %q (%s) siblings=%d\n", placed.World, tilemap.Name, tilemap.Pathfile, len(siblings))
		fmt.Println(tilemap.ASCII(entities.Walls))
	}
}

func printCatalog(loader *maploader.Loader) error {
	catalog, err := maploader.Scan(loader.TilemapsDir)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d worlds, %d tilemaps\n", catalog.Dir, len(catalog.Worlds), len(catalog.Tilemaps))
	for _, name := range catalog.Worlds {
		fmt.Printf("  world   %s\n", name)
	}
	for _, name := range catalog.Tilemaps {
		fmt.Printf("  tilemap %s\n", name)
	}

	wf, err := loader.LoadWorld()
	if err != nil {
		return err
	}
	if unused := catalog.Unreferenced(wf); len(unused) > 0 {
		fmt.Printf("not placed in %q: %v\n", wf.Name, unused)
	}
	return nil
}
