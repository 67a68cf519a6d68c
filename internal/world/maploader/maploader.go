// Package maploader reads world and tilemap description files.
//
// Files are JSON by default. Files ending in .yaml or .yml are decoded as
// YAML with the same field names.
package maploader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidDimension is returned when a declared dimension is not positive
	// or exceeds the allowed bounds.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrGridShape is returned when the grid does not cover the declared dimension.
	ErrGridShape = errors.New("grid does not match dimension")
)

// WorldFile describes the world: which tilemap file sits in each world cell
// and where the player starts.
type WorldFile struct {
	Name   string     `json:"name" yaml:"name"`
	Offset [2]float32 `json:"offset" yaml:"offset"`
	// Player is (world.x, world.y, tilemap.x, tilemap.y).
	Player [4]int `json:"player" yaml:"player"`
	// Dimension is (columns, rows).
	Dimension [2]int `json:"dimension" yaml:"dimension"`
	// Grid is indexed [row][column]; nil entries are holes.
	Grid [][]*string `json:"grid" yaml:"grid"`
}

// MapFile describes one tilemap.
type MapFile struct {
	Name     string `json:"name" yaml:"name"`
	Pathfile string `json:"pathfile" yaml:"pathfile"`
	// Dimension is (columns, rows).
	Dimension [2]int `json:"dimension" yaml:"dimension"`
	// Grid is indexed [row][column]; nil entries decode to void.
	Grid [][]*int `json:"grid" yaml:"grid"`
}

// Cell returns the name of the tilemap at (col, row), if any.
func (w *WorldFile) Cell(col, row int) (string, bool) {
	name := w.Grid[row][col]
	if name == nil {
		return "", false
	}
	return *name, true
}

// Tag returns the tile tag at (col, row). Missing cells report ok=false.
func (m *MapFile) Tag(col, row int) (tag int, ok bool) {
	if row >= len(m.Grid) || col >= len(m.Grid[row]) {
		return 0, false
	}
	v := m.Grid[row][col]
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Loader resolves and decodes description files.
type Loader struct {
	// WorldPath is the world description file.
	WorldPath string
	// TilemapsDir is prepended to tilemap names. It is used verbatim, so it
	// normally ends with a separator.
	TilemapsDir string
	// MaxWorld and MaxTilemap bound the dimensions files may declare.
	MaxWorld   [2]int
	MaxTilemap [2]int
}

// TilemapPath returns the file a tilemap name resolves to. The extension is
// taken from the world file.
func (l *Loader) TilemapPath(name string) string {
	ext := filepath.Ext(l.WorldPath)
	if ext == "" {
		ext = ".json"
	}
	return l.TilemapsDir + name + ext
}

// LoadWorld reads and validates the world description.
func (l *Loader) LoadWorld() (*WorldFile, error) {
	var wf WorldFile
	if err := decodeFile(l.WorldPath, &wf); err != nil {
		return nil, err
	}
	if err := validateWorld(&wf, l.MaxWorld); err != nil {
		return nil, fmt.Errorf("invalid world file %s: %w", l.WorldPath, err)
	}
	return &wf, nil
}

// LoadTilemap reads and validates the tilemap called name.
func (l *Loader) LoadTilemap(name string) (*MapFile, error) {
	path := l.TilemapPath(name)
	var mf MapFile
	if err := decodeFile(path, &mf); err != nil {
		return nil, err
	}
	if err := validateTilemap(&mf, l.MaxTilemap); err != nil {
		return nil, fmt.Errorf("invalid tilemap file %s: %w", path, err)
	}
	if mf.Pathfile == "" {
		mf.Pathfile = path
	}
	return &mf, nil
}

func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func validateDimension(dim, max [2]int) error {
	if dim[0] <= 0 || dim[1] <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, dim[0], dim[1])
	}
	if dim[0] > max[0] || dim[1] > max[1] {
		return fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrInvalidDimension, dim[0], dim[1], max[0], max[1])
	}
	return nil
}

func validateWorld(wf *WorldFile, max [2]int) error {
	if err := validateDimension(wf.Dimension, max); err != nil {
		return err
	}
	if len(wf.Grid) < wf.Dimension[1] {
		return fmt.Errorf("%w: %d rows, expected %d", ErrGridShape, len(wf.Grid), wf.Dimension[1])
	}
	for row := 0; row < wf.Dimension[1]; row++ {
		if len(wf.Grid[row]) < wf.Dimension[0] {
			return fmt.Errorf("%w: row %d has %d columns, expected %d", ErrGridShape, row, len(wf.Grid[row]), wf.Dimension[0])
		}
	}
	return nil
}

// Tilemap grids may be ragged; missing cells are void.
func validateTilemap(mf *MapFile, max [2]int) error {
	if err := validateDimension(mf.Dimension, max); err != nil {
		return err
	}
	if len(mf.Grid) > max[1] {
		return fmt.Errorf("%w: %d rows exceeds %d", ErrGridShape, len(mf.Grid), max[1])
	}
	for row, cells := range mf.Grid {
		if len(cells) > max[0] {
			return fmt.Errorf("%w: row %d has %d columns, max %d", ErrGridShape, row, len(cells), max[0])
		}
	}
	return nil
}

// WriteFile encodes v to path, as YAML for .yaml/.yml and indented JSON
// otherwise.
func WriteFile(path string, v any) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(v)
	default:
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
