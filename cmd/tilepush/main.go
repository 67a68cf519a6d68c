package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"chosenoffset.com/tilepush/internal/config"
	"chosenoffset.com/tilepush/internal/game"
	"chosenoffset.com/tilepush/internal/logging"
	ebitenrender "chosenoffset.com/tilepush/internal/render/ebiten"
	"chosenoffset.com/tilepush/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "config/game.toml", "path to the TOML config")
	flag.Parse()
	if p := os.Getenv("TILEPUSH_CONFIG"); p != "" {
		*cfgPath = p
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	entities := world.NewEntities(world.Capacities{
		Tilemaps: cfg.Arena.Tilemaps,
		WallsMB:  cfg.Arena.WallsMB,
	})
	loader := world.NewLoader(cfg.Assets.WorldFile, cfg.Assets.TilemapsDir)
	w, start, err := world.Build(loader, entities, log)
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	defer w.Teardown(entities)

	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g := game.New(cfg, w, entities, start, renderer, inputMgr, log.Named("game"))

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(fmt.Sprintf("%s - %s", cfg.Window.Title, w.Name))
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Window.TPS)

	log.Info("starting game", zap.String("world", w.Name), zap.Int("tps", cfg.Window.TPS))
	return engine.RunGame(g)
}
