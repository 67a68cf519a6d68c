package game

import (
	"cmp"
	"fmt"
	"slices"

	"chosenoffset.com/tilepush/internal/arena"
)

// DebugLine is one line of on-screen debug text.
type DebugLine struct {
	Text string
}

// DebugOverlay collects debug text for the current frame. Lines live in an
// arena that is flushed at the start of every frame.
type DebugOverlay struct {
	Visible bool
	lines   *arena.Arena[DebugLine]
}

// NewDebugOverlay holds up to capacity lines per frame.
func NewDebugOverlay(capacity int) *DebugOverlay {
	return &DebugOverlay{lines: arena.New[DebugLine](capacity)}
}

// Begin drops last frame's lines.
func (d *DebugOverlay) Begin() {
	d.lines.Flush()
}

// Printf adds a line. Lines past capacity are dropped.
func (d *DebugOverlay) Printf(format string, args ...any) {
	if d.lines.Len() >= d.lines.Cap() {
		return
	}
	d.lines.Insert(DebugLine{Text: fmt.Sprintf(format, args...)})
}

// Lines returns this frame's lines in the order they were added.
func (d *DebugOverlay) Lines() []string {
	type entry struct {
		gen  uint64
		text string
	}
	var entries []entry
	for h, line := range d.lines.All() {
		entries = append(entries, entry{h.Generation(), line.Text})
	}
	// Flushed slots are reused in reverse, so slot order is not insert order.
	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.gen, b.gen)
	})

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.text
	}
	return lines
}
