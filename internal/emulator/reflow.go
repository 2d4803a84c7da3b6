package emulator

import "github.com/vtrender/termframe/internal/reflow"

// SetWidth reflows the full transcript to a new column width, preserving
// viewport height. Grid, scrollback, and ledger are mutated as one unit
// since reflow borrows both exclusively-owned fields under the same lock
// (spec §9: "no aliasing can occur").
func (e *Emulator) SetWidth(width int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return reflow.SetWidth(e.grid, e.scrollback, width)
}

// SetHeight resizes the viewport, unscrolling previously-evicted rows
// back into view if it grows.
func (e *Emulator) SetHeight(height int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return reflow.SetHeight(e.grid, e.scrollback, height)
}

// RecommendedWidth returns the widest logical line in the transcript.
func (e *Emulator) RecommendedWidth() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return reflow.RecommendedWidth(e.scrollback.Rows(), e.grid.VisibleRows())
}

// RecommendedHeight returns the number of display rows the transcript
// would occupy at the grid's current width, excluding trailing blank
// logical lines.
func (e *Emulator) RecommendedHeight() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	width, _ := e.grid.Dimensions()
	return reflow.RecommendedHeight(e.scrollback.Rows(), e.grid.VisibleRows(), width)
}
