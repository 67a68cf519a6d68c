// Profiling:
// go build ./cmd/arenaprof
// ./arenaprof -mode cpu
// go tool pprof -http=":8000" ./arenaprof cpu.pprof

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"chosenoffset.com/tilepush/internal/arena"
	"chosenoffset.com/tilepush/internal/world"
)

func main() {
	mode := flag.String("mode", "cpu", "profile mode: cpu or mem")
	rounds := flag.Int("rounds", 50, "rounds")
	iters := flag.Int("iters", 1000, "insert/remove cycles per round")
	walls := flag.Int("walls", 1000, "walls per cycle")
	flag.Parse()

	var opt func(*profile.Profile)
	switch *mode {
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfileAllocs
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}

	p := profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook)
	live := run(*rounds, *iters, *walls)
	p.Stop()

	fmt.Printf("done, %d walls live at exit\n", live)
}

// run fills and drains a wall arena, then flushes it, the way a level
// reload does.
func run(rounds, iters, numWalls int) int {
	a := arena.New[world.Wall](numWalls)
	handles := make([]arena.Handle[world.Wall], 0, numWalls)

	for range rounds {
		for range iters {
			for i := range numWalls {
				pos := world.AbsolutePosition{Tilemap: world.Vec2i{X: i % world.TilesCount.X, Y: i % world.TilesCount.Y}}
				handles = append(handles, a.Insert(world.NewWall(pos, i%2 == 0)))
			}
			for _, wall := range a.All() {
				wall.Pushable = !wall.Pushable
			}
			for _, h := range handles[:len(handles)/2] {
				a.Remove(h)
			}
			handles = handles[:0]
			a.Flush()
		}
	}
	return a.Len()
}
