package emulator

import (
	"fmt"
	"image/color"

	"github.com/danielgatis/go-ansicode"

	"github.com/vtrender/termframe/internal/grid"
)

var _ ansicode.Handler = (*Emulator)(nil)

// Input writes a single grapheme at the cursor, performing autowrap per
// §4.2 rule 1 if it does not fit in the remaining columns of the row.
// Zero-width runes (combining marks) are dropped; a full implementation
// would merge them into the previous cell's grapheme cluster.
func (e *Emulator) Input(r rune) {
	e.mu.Lock()
	defer e.mu.Unlock()

	width := runeWidth(r)
	if width == 0 {
		return
	}

	evicted := e.grid.WriteGrapheme(string(r), width)
	e.pushEvicted(evicted)
}

// LineFeed performs LF/VT/FF semantics: move to the next row, scrolling up
// (and evicting row 0 to scrollback) if already on the bottom row. The
// line left behind is marked not-wrapped, since this is an explicit
// newline rather than an autowrap.
func (e *Emulator) LineFeed() {
	e.mu.Lock()
	defer e.mu.Unlock()

	evicted := e.grid.Newline()
	e.pushEvicted(evicted)
}

// CarriageReturn moves the cursor to column 0 of the current row.
func (e *Emulator) CarriageReturn() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.CarriageReturn()
}

// Backspace performs a destructive backspace.
func (e *Emulator) Backspace() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.Backspace()
}

// Tab advances the cursor to the n-th next tab stop (fixed every 8
// columns; custom tab stops are not supported).
func (e *Emulator) Tab(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	width, _ := e.grid.Dimensions()
	pos := e.grid.CursorPosition()
	col := pos.Col
	for i := 0; i < n; i++ {
		col = grid.NextTabStop(col, width)
	}
	e.grid.MoveCursorAbs(col, pos.Row)
}

// MoveForwardTabs advances the cursor to the n-th next tab stop.
func (e *Emulator) MoveForwardTabs(n int) { e.Tab(n) }

// MoveBackwardTabs moves the cursor back to the n-th previous tab stop.
func (e *Emulator) MoveBackwardTabs(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pos := e.grid.CursorPosition()
	col := pos.Col
	for i := 0; i < n; i++ {
		col = grid.PrevTabStop(col)
	}
	e.grid.MoveCursorAbs(col, pos.Row)
}

// Goto moves the cursor to an absolute (row, col).
func (e *Emulator) Goto(row, col int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.MoveCursorAbs(col, row)
}

// GotoCol moves the cursor to an absolute column, same row.
func (e *Emulator) GotoCol(col int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pos := e.grid.CursorPosition()
	e.grid.MoveCursorAbs(col, pos.Row)
}

// GotoLine moves the cursor to an absolute row, same column.
func (e *Emulator) GotoLine(row int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pos := e.grid.CursorPosition()
	e.grid.MoveCursorAbs(pos.Col, row)
}

// MoveUp moves the cursor up n rows.
func (e *Emulator) MoveUp(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.MoveCursorRel(0, -n)
}

// MoveUpCr moves the cursor up n rows and to column 0.
func (e *Emulator) MoveUpCr(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.MoveCursorRel(0, -n)
	e.grid.CarriageReturn()
}

// MoveDown moves the cursor down n rows.
func (e *Emulator) MoveDown(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.MoveCursorRel(0, n)
}

// MoveDownCr moves the cursor down n rows and to column 0.
func (e *Emulator) MoveDownCr(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.MoveCursorRel(0, n)
	e.grid.CarriageReturn()
}

// MoveForward moves the cursor right n columns.
func (e *Emulator) MoveForward(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.MoveCursorRel(n, 0)
}

// MoveBackward moves the cursor left n columns.
func (e *Emulator) MoveBackward(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.MoveCursorRel(-n, 0)
}

// SaveCursorPosition saves cursor position and current write attributes to
// a single slot (DECSC keeps one slot, not a stack — matching every real
// terminal's behavior despite the "stack" phrasing some specs use).
func (e *Emulator) SaveCursorPosition() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.saved = savedCursor{pos: e.grid.CursorPosition(), attrs: e.grid.Attributes()}
	e.hasSaved = true
}

// RestoreCursorPosition restores the last-saved cursor position and
// attributes (DECRC). A no-op if nothing was saved.
func (e *Emulator) RestoreCursorPosition() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.hasSaved {
		return
	}
	e.grid.MoveCursorAbs(e.saved.pos.Col, e.saved.pos.Row)
	e.grid.SetAttributes(e.saved.attrs)
}

// ReverseIndex performs RI: cursor up one row, scrolling the viewport down
// if already on row 0.
func (e *Emulator) ReverseIndex() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.ReverseIndex()
}

// ScrollUp scrolls the viewport up n rows, evicting rows to scrollback.
// The cursor does not move (distinct from LineFeed).
func (e *Emulator) ScrollUp(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	evicted := e.grid.ScrollUp(n)
	for i := range evicted {
		e.scrollback.Push(evicted[i])
	}
}

// ScrollDown scrolls the viewport down n rows; rows falling off the bottom
// are discarded. The cursor does not move.
func (e *Emulator) ScrollDown(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid.ScrollDown(n)
}

// ResetState performs a full terminal reset (RIS): blanks the grid,
// homes the cursor, restores default write attributes, and drops any
// OSC 4/10/11 color overrides. Scrollback and the title are left alone,
// matching the teacher's own resetStateInternal.
func (e *Emulator) ResetState() {
	e.mu.Lock()
	defer e.mu.Unlock()

	width, height := e.grid.Dimensions()
	for r := 0; r < height; r++ {
		cells := e.grid.RowCellsMut(r)
		for c := 0; c < width && c < len(cells); c++ {
			cells[c] = grid.Cell{Grapheme: " ", Width: 1, Attrs: grid.DefaultAttributes()}
		}
	}
	e.grid.MoveCursorAbs(0, 0)
	e.grid.SetAttributes(grid.DefaultAttributes())
	e.colors = make(map[int]grid.Color)
}

// DeviceStatus answers a DSR request: n=5 reports ready, n=6 reports the
// cursor position (1-based) as ESC[row;colR.
func (e *Emulator) DeviceStatus(n int) {
	e.mu.RLock()
	pos := e.grid.CursorPosition()
	e.mu.RUnlock()

	switch n {
	case 5:
		e.writeResponse("\x1b[0n")
	case 6:
		e.writeResponse(fmt.Sprintf("\x1b[%d;%dR", pos.Row+1, pos.Col+1))
	}
}

// SetTerminalCharAttribute applies one SGR attribute to the current write
// attributes.
func (e *Emulator) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a := e.grid.Attributes()

	switch attr.Attr {
	case ansicode.CharAttributeReset:
		a = grid.DefaultAttributes()

	case ansicode.CharAttributeBold:
		a.Intensity = grid.IntensityBold
	case ansicode.CharAttributeDim:
		a.Intensity = grid.IntensityHalf
	case ansicode.CharAttributeCancelBold, ansicode.CharAttributeCancelBoldDim:
		a.Intensity = grid.IntensityNormal

	case ansicode.CharAttributeItalic:
		a.Italic = true
	case ansicode.CharAttributeCancelItalic:
		a.Italic = false

	case ansicode.CharAttributeUnderline:
		a.Underline = grid.UnderlineSingle
	case ansicode.CharAttributeDoubleUnderline:
		a.Underline = grid.UnderlineDouble
	case ansicode.CharAttributeCurlyUnderline:
		a.Underline = grid.UnderlineCurly
	case ansicode.CharAttributeDottedUnderline:
		a.Underline = grid.UnderlineDotted
	case ansicode.CharAttributeDashedUnderline:
		a.Underline = grid.UnderlineDashed
	case ansicode.CharAttributeCancelUnderline:
		a.Underline = grid.UnderlineNone

	case ansicode.CharAttributeReverse:
		a.Reverse = true
	case ansicode.CharAttributeCancelReverse:
		a.Reverse = false

	case ansicode.CharAttributeHidden:
		a.Invisible = true
	case ansicode.CharAttributeCancelHidden:
		a.Invisible = false

	case ansicode.CharAttributeStrike:
		a.Strikethrough = true
	case ansicode.CharAttributeCancelStrike:
		a.Strikethrough = false

	case ansicode.CharAttributeForeground:
		a.Fg = resolveAttrColor(attr, grid.DefaultColor())
	case ansicode.CharAttributeBackground:
		a.Bg = resolveAttrColor(attr, grid.DefaultColor())
	case ansicode.CharAttributeUnderlineColor:
		if attr.RGBColor == nil && attr.IndexedColor == nil && attr.NamedColor == nil {
			a.UnderlineColor = grid.DefaultColor()
		} else {
			a.UnderlineColor = resolveAttrColor(attr, grid.DefaultColor())
		}

	case ansicode.CharAttributeBlinkSlow, ansicode.CharAttributeBlinkFast,
		ansicode.CharAttributeCancelBlink:
		// Blink is not part of the rendered attribute set (spec §3 omits
		// it); the SGR parameter is still consumed so later attributes in
		// the same sequence parse correctly.
	}

	e.grid.SetAttributes(a)
}

func resolveAttrColor(attr ansicode.TerminalCharAttribute, fallback grid.Color) grid.Color {
	if attr.RGBColor != nil {
		return grid.TrueColor(attr.RGBColor.R, attr.RGBColor.G, attr.RGBColor.B, 255)
	}
	if attr.IndexedColor != nil {
		return grid.PaletteColor(attr.IndexedColor.Index)
	}
	if attr.NamedColor != nil {
		return fallback
	}
	return fallback
}

// SetColor stores a custom color at index (used by OSC 4 palette sets and
// OSC 10/11 default foreground/background sets, which go-ansicode routes
// here with index = NamedColorForeground/NamedColorBackground).
func (e *Emulator) SetColor(index int, c color.Color) {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, g, b := rgbaFromColorColor(c)
	e.colors[index] = grid.TrueColor(r, g, b, 255)
}

// ResetColor removes a custom color override at index.
func (e *Emulator) ResetColor(i int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.colors, i)
}

// SetDynamicColor answers an OSC 10/11/12 query with the current value of
// the color at index, formatted rgb:RRRR/GGGG/BBBB (component doubled to
// 16 bits per xterm convention).
func (e *Emulator) SetDynamicColor(prefix string, index int, terminator string) {
	e.mu.RLock()
	c, ok := e.colors[index]
	fallback := e.defaultForFallback(index)
	e.mu.RUnlock()

	if !ok {
		c = fallback
	}
	e.writeResponse(formatDynamicColor(prefix, c, fallback, terminator))
}

func (e *Emulator) defaultForFallback(index int) grid.Color {
	switch index {
	case NamedColorForeground:
		return e.defaultFg
	case NamedColorBackground:
		return e.defaultBg
	default:
		return grid.DefaultColor()
	}
}
