// Package reflow reconstructs the terminal's scrollback+visible rows into
// logical lines, rewraps them to a new column width, and unscrolls them
// into a viewport of a requested height. It borrows and mutates the
// Emulator's Grid and Scrollback during a resize; it does not own either.
package reflow

import (
	"errors"

	"github.com/vtrender/termframe/internal/grid"
)

// ErrNonPositiveDimension is returned by Resize/SetWidth/SetHeight when
// asked for a zero or negative width/height — unspecified in the source
// this system was modeled on, and rejected here rather than guessed at.
var ErrNonPositiveDimension = errors.New("reflow: width and height must be positive")

// joinLogicalLines groups consecutive rows into logical lines: a run
// continues while the previous row's wrapped-bit is true.
func joinLogicalLines(rows []grid.Row) [][]grid.Row {
	var lines [][]grid.Row
	var cur []grid.Row
	for _, r := range rows {
		cur = append(cur, r)
		if !r.Wrapped {
			lines = append(lines, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

func lineWidth(line []grid.Row) int {
	w := 0
	for _, r := range line {
		w += r.DisplayWidth()
	}
	return w
}

func transcript(scrollback, visible []grid.Row) []grid.Row {
	all := make([]grid.Row, 0, len(scrollback)+len(visible))
	all = append(all, scrollback...)
	all = append(all, visible...)
	return all
}

// RecommendedWidth returns the maximum logical-line display width across
// scrollback and visible rows.
func RecommendedWidth(scrollback, visible []grid.Row) int {
	lines := joinLogicalLines(transcript(scrollback, visible))
	max := 0
	for _, l := range lines {
		if w := lineWidth(l); w > max {
			max = w
		}
	}
	return max
}

// RecommendedHeight returns the sum of ceil(lineWidth/width) (or 1 for an
// empty line) over logical lines, excluding trailing empty logical lines
// so the result never counts blank tail padding.
func RecommendedHeight(scrollback, visible []grid.Row, width int) int {
	lines := joinLogicalLines(transcript(scrollback, visible))
	for len(lines) > 0 && lineWidth(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	total := 0
	for _, l := range lines {
		lw := lineWidth(l)
		if lw == 0 {
			total++
			continue
		}
		total += (lw + width - 1) / width
	}
	return total
}

// flattenVisible concatenates the visible cells of every row in a logical
// line into one cell stream; spacer cells (the second column of a wide
// grapheme) are passed through and skipped by rewrapLine, which
// regenerates them by replaying the grapheme writes.
func flattenVisible(line []grid.Row) []grid.Cell {
	var cells []grid.Cell
	for _, r := range line {
		cells = append(cells, r.VisibleCells()...)
	}
	return cells
}

// rewrapLine re-chunks one logical line's cell stream to newWidth columns
// by replaying each grapheme through a scratch Grid — reusing
// Grid.WriteGrapheme's own autowrap policy keeps rewrap and live autowrap
// governed by exactly one implementation, rather than two that could
// drift apart.
func rewrapLine(line []grid.Row, newWidth int) []grid.Row {
	cells := flattenVisible(line)
	if len(cells) == 0 {
		return []grid.Row{grid.NewRow(newWidth)}
	}

	scratch := grid.New(newWidth, len(cells)+1)
	for _, c := range cells {
		if c.Width == 0 {
			continue
		}
		scratch.SetAttributes(c.Attrs)
		scratch.WriteGrapheme(c.Grapheme, c.Width)
	}

	lastRow := scratch.CursorPosition().Row
	out := make([]grid.Row, lastRow+1)
	for r := 0; r <= lastRow; r++ {
		out[r] = scratch.Row(r)
	}
	for i := 0; i < len(out)-1; i++ {
		out[i].Wrapped = true
	}
	return out
}

func trimTrailingBlank(rows []grid.Row) []grid.Row {
	end := len(rows)
	for end > 0 && len(rows[end-1].VisibleCells()) == 0 {
		end--
	}
	return rows[:end]
}

// SetWidth reflows the full transcript to newWidth, preserving the
// current viewport height.
func SetWidth(g *grid.Grid, sb *grid.Scrollback, newWidth int) error {
	_, height := g.Dimensions()
	return Resize(g, sb, newWidth, height)
}

// SetHeight resizes the viewport to newHeight at the current width. If
// the viewport grows, rows previously pushed to scrollback move back
// into view.
func SetHeight(g *grid.Grid, sb *grid.Scrollback, newHeight int) error {
	width, _ := g.Dimensions()
	return Resize(g, sb, width, newHeight)
}

// Resize performs the full set_width/set_height algorithm (spec §4.3):
// reconstruct logical lines from scrollback+visible, rewrap each to
// newWidth, trim trailing blank rows, split the result into a
// scrollback prefix and a bottom-aligned visible window of newHeight
// rows, and write the result back into the resized grid with a per-cell
// diff (Grid.Resize itself allocates fresh storage for every row).
func Resize(g *grid.Grid, sb *grid.Scrollback, newWidth, newHeight int) error {
	if newWidth <= 0 || newHeight <= 0 {
		return ErrNonPositiveDimension
	}

	lines := joinLogicalLines(transcript(sb.Rows(), g.VisibleRows()))

	var rewrapped []grid.Row
	for _, l := range lines {
		rewrapped = append(rewrapped, rewrapLine(l, newWidth)...)
	}
	rewrapped = trimTrailingBlank(rewrapped)

	var newScrollback, visible []grid.Row
	if len(rewrapped) > newHeight {
		split := len(rewrapped) - newHeight
		newScrollback = rewrapped[:split]
		visible = rewrapped[split:]
	} else {
		visible = rewrapped
	}
	if len(visible) < newHeight {
		pad := make([]grid.Row, newHeight-len(visible))
		for i := range pad {
			pad[i] = grid.NewRow(newWidth)
		}
		visible = append(pad, visible...)
	}

	sb.Replace(newScrollback)
	g.Resize(newWidth, newHeight)
	applyMinimalDiff(g, visible)
	return nil
}

// applyMinimalDiff writes rows into the grid one cell at a time, only
// touching columns that actually changed, instead of swapping in whole
// Row values.
func applyMinimalDiff(g *grid.Grid, rows []grid.Row) {
	for r, newRow := range rows {
		cells := g.RowCellsMut(r)
		if cells == nil {
			continue
		}
		for c := range cells {
			if c < len(newRow.Cells) && cells[c] != newRow.Cells[c] {
				cells[c] = newRow.Cells[c]
			}
		}
		g.SetWrapped(r, newRow.Wrapped)
	}
}
