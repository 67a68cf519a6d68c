package maploader

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Catalog lists the description files found in a maps directory.
type Catalog struct {
	Dir string
	// Worlds are files that declare a player start.
	Worlds []string
	// Tilemaps are tilemap names, without extension.
	Tilemaps []string
}

// Unreferenced returns the tilemaps in c that no cell of wf names.
func (c *Catalog) Unreferenced(wf *WorldFile) []string {
	used := make(map[string]bool)
	for _, row := range wf.Grid {
		for _, name := range row {
			if name != nil {
				used[*name] = true
			}
		}
	}
	var out []string
	for _, name := range c.Tilemaps {
		if !used[name] {
			out = append(out, name)
		}
	}
	return out
}

// probe is decoded from every candidate file to tell worlds from tilemaps.
type probe struct {
	Player *[4]int `json:"player" yaml:"player"`
}

// Scan reads dir and sorts every JSON or YAML description file into worlds
// and tilemaps. Files that fail to decode are skipped.
func Scan(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read maps directory: %w", err)
	}

	c := &Catalog{Dir: dir}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		name := entry.Name()
		switch strings.ToLower(filepath.Ext(name)) {
		case ".json", ".yaml", ".yml":
		default:
			continue
		}

		var p probe
		if err := decodeFile(filepath.Join(dir, name), &p); err != nil {
			continue
		}
		if p.Player != nil {
			c.Worlds = append(c.Worlds, name)
		} else {
			c.Tilemaps = append(c.Tilemaps, strings.TrimSuffix(name, filepath.Ext(name)))
		}
	}

	slices.Sort(c.Worlds)
	slices.Sort(c.Tilemaps)
	return c, nil
}
