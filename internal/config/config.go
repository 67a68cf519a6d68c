// Package config loads the game configuration from TOML.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the whole game configuration, one field per TOML section.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Assets  AssetsConfig  `toml:"assets"`
	Arena   ArenaConfig   `toml:"arena"`
	Input   InputConfig   `toml:"input"`
	Render  RenderConfig  `toml:"render"`
	Logging LoggingConfig `toml:"logging"`
}

// WindowConfig sizes the window and paces the update loop.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	TPS    int    `toml:"tps"` // target updates per second
}

// AssetsConfig locates the world description and its tilemap files.
type AssetsConfig struct {
	WorldFile   string `toml:"world_file"`
	TilemapsDir string `toml:"tilemaps_dir"`
}

// ArenaConfig sizes the fixed-capacity arenas.
type ArenaConfig struct {
	Tilemaps   int `toml:"tilemaps"`    // item capacity
	WallsMB    int `toml:"walls_mb"`    // byte budget for walls
	DebugLines int `toml:"debug_lines"` // item capacity
}

// InputConfig tunes keyboard handling.
type InputConfig struct {
	RepeatDelay Duration `toml:"repeat_delay"`
}

// RenderConfig controls what is drawn and at which scale.
type RenderConfig struct {
	TileSize             int  `toml:"tile_size"` // pixels per tile
	DrawDiagonalSiblings bool `toml:"draw_diagonal_siblings"`
	ShowDebug            bool `toml:"show_debug"`
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Duration is a time.Duration read from a TOML string such as "70ms".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a time.ParseDuration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "Tilepush",
			TPS:    60,
		},
		Assets: AssetsConfig{
			WorldFile:   "assets/maps/world.json",
			TilemapsDir: "assets/maps/",
		},
		Arena: ArenaConfig{
			Tilemaps:   35,
			WallsMB:    1,
			DebugLines: 64,
		},
		Input: InputConfig{
			RepeatDelay: Duration{70 * time.Millisecond},
		},
		Render: RenderConfig{
			TileSize:             32,
			DrawDiagonalSiblings: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", c.Window.TPS)
	}
	if c.Arena.Tilemaps <= 0 || c.Arena.WallsMB <= 0 || c.Arena.DebugLines <= 0 {
		return fmt.Errorf("arena capacities must be positive")
	}
	if c.Render.TileSize <= 0 {
		return fmt.Errorf("invalid tile size %d", c.Render.TileSize)
	}
	return nil
}
