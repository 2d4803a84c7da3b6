package emulator

import (
	"github.com/danielgatis/go-ansicode"

	"github.com/vtrender/termframe/internal/grid"
)

// SetTitle updates the window title (OSC 0/1/2).
func (e *Emulator) SetTitle(title string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.title = title
}

// PushTitle saves the current title to the title stack (XTWINOPS 22).
func (e *Emulator) PushTitle() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.titleStack = append(e.titleStack, e.title)
}

// PopTitle restores the previous title from the stack (XTWINOPS 23).
func (e *Emulator) PopTitle() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n := len(e.titleStack); n > 0 {
		e.title = e.titleStack[n-1]
		e.titleStack = e.titleStack[:n-1]
	}
}

// ClearLine clears a portion of the current row (EL).
func (e *Emulator) ClearLine(mode ansicode.LineClearMode) {
	e.mu.Lock()
	defer e.mu.Unlock()

	width, _ := e.grid.Dimensions()
	pos := e.grid.CursorPosition()
	col := pos.Col
	if col > width {
		col = width
	}

	var from, to int
	switch mode {
	case ansicode.LineClearModeRight:
		from, to = col, width
	case ansicode.LineClearModeLeft:
		from, to = 0, col+1
	case ansicode.LineClearModeAll:
		from, to = 0, width
	default:
		return
	}
	e.blankRange(pos.Row, from, to)
}

// ClearScreen clears a portion of the viewport (ED). Mode "saved" (clear
// scrollback) also discards the scrollback, matching xterm.
func (e *Emulator) ClearScreen(mode ansicode.ClearMode) {
	e.mu.Lock()
	defer e.mu.Unlock()

	width, height := e.grid.Dimensions()
	pos := e.grid.CursorPosition()

	switch mode {
	case ansicode.ClearModeBelow:
		e.blankRange(pos.Row, pos.Col, width)
		for r := pos.Row + 1; r < height; r++ {
			e.blankRange(r, 0, width)
		}
	case ansicode.ClearModeAbove:
		for r := 0; r < pos.Row; r++ {
			e.blankRange(r, 0, width)
		}
		e.blankRange(pos.Row, 0, pos.Col+1)
	case ansicode.ClearModeAll:
		for r := 0; r < height; r++ {
			e.blankRange(r, 0, width)
		}
	case ansicode.ClearModeSaved:
		e.scrollback.Clear()
	}
}

// EraseChars resets n cells at the cursor to blank without shifting (ECH).
func (e *Emulator) EraseChars(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	width, _ := e.grid.Dimensions()
	pos := e.grid.CursorPosition()
	to := pos.Col + n
	if to > width {
		to = width
	}
	e.blankRange(pos.Row, pos.Col, to)
}

func (e *Emulator) blankRange(row, from, to int) {
	cells := e.grid.RowCellsMut(row)
	if cells == nil {
		return
	}
	if from < 0 {
		from = 0
	}
	if to > len(cells) {
		to = len(cells)
	}
	attrs := e.grid.Attributes()
	for c := from; c < to; c++ {
		cells[c] = grid.Cell{Grapheme: " ", Width: 1, Attrs: attrs}
	}
}

// Decaln fills the viewport with 'E' (DEC screen alignment test).
func (e *Emulator) Decaln() {
	e.mu.Lock()
	defer e.mu.Unlock()
	width, height := e.grid.Dimensions()
	for r := 0; r < height; r++ {
		cells := e.grid.RowCellsMut(r)
		for c := 0; c < width && c < len(cells); c++ {
			cells[c] = grid.Cell{Grapheme: "E", Width: 1, Attrs: grid.DefaultAttributes()}
		}
	}
}

// Substitute replaces the cell at the cursor with '?' (SUB).
func (e *Emulator) Substitute() {
	e.mu.Lock()
	defer e.mu.Unlock()
	pos := e.grid.CursorPosition()
	cells := e.grid.RowCellsMut(pos.Row)
	if pos.Col < len(cells) {
		cells[pos.Col].Grapheme = "?"
	}
}

// IdentifyTerminal answers a DA request by identifying as a VT220.
func (e *Emulator) IdentifyTerminal(b byte) {
	e.writeResponse("\x1b[?62;c")
}

// Bell is a no-op: there is no bell provider in a headless renderer.
func (e *Emulator) Bell() {
	e.log.Debug().Msg("bell received, discarded")
}

// The remaining Handler methods cover interactive input (keyboard
// reporting, clipboard, bracketed paste), the alternate screen,
// scrolling regions, and image protocols — all explicit non-goals. They
// are silently discarded at debug level, per the "unsupported sequences
// are silently discarded" rule.

func (e *Emulator) ApplicationCommandReceived(data []byte) { e.discard("APC") }
func (e *Emulator) PrivacyMessageReceived(data []byte)     { e.discard("PM") }
func (e *Emulator) StartOfStringReceived(data []byte)      { e.discard("SOS") }
func (e *Emulator) ClipboardLoad(clipboard byte, terminator string) {
	e.discard("OSC 52 load")
}
func (e *Emulator) ClipboardStore(clipboard byte, data []byte) { e.discard("OSC 52 store") }

func (e *Emulator) ClearTabs(mode ansicode.TabulationClearMode)               { e.discard("TBC") }
func (e *Emulator) HorizontalTabSet()                                        { e.discard("HTS") }
func (e *Emulator) ConfigureCharset(idx ansicode.CharsetIndex, cs ansicode.Charset) {
	e.discard("charset designation")
}

// SetActiveCharset selects the active G0-G3 charset slot (SI/SO/LS2/LS3).
// Charset translation is not modeled, so every cell renders whatever
// rune was decoded regardless of the active slot.
func (e *Emulator) SetActiveCharset(n int) { e.discard("active charset switch") }

func (e *Emulator) DeleteChars(n int)       { e.discard("DCH") }
func (e *Emulator) DeleteLines(n int)       { e.discard("DL") }
func (e *Emulator) InsertBlank(n int)       { e.discard("ICH") }
func (e *Emulator) InsertBlankLines(n int)  { e.discard("IL") }
func (e *Emulator) SetScrollingRegion(top, bottom int) {
	e.discard("DECSTBM (scrolling regions are not modeled)")
}

func (e *Emulator) SetCursorStyle(style ansicode.CursorStyle) { e.discard("DECSCUSR") }
func (e *Emulator) SetHyperlink(h *ansicode.Hyperlink)        { e.discard("OSC 8 hyperlink") }

func (e *Emulator) PushKeyboardMode(mode ansicode.KeyboardMode) { e.discard("kitty keyboard push") }
func (e *Emulator) PopKeyboardMode(n int)                       { e.discard("kitty keyboard pop") }
func (e *Emulator) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {
	e.discard("kitty keyboard set")
}
func (e *Emulator) ReportKeyboardMode()        { e.discard("kitty keyboard report") }
func (e *Emulator) SetModifyOtherKeys(m ansicode.ModifyOtherKeys) { e.discard("modifyOtherKeys") }
func (e *Emulator) ReportModifyOtherKeys()     { e.discard("modifyOtherKeys report") }

func (e *Emulator) SetKeypadApplicationMode()   {}
func (e *Emulator) UnsetKeypadApplicationMode() {}
func (e *Emulator) SetMode(mode ansicode.TerminalMode)   { e.discard("DECSET") }
func (e *Emulator) UnsetMode(mode ansicode.TerminalMode) { e.discard("DECRST") }

func (e *Emulator) SetWorkingDirectory(uri string) { e.discard("OSC 7") }
func (e *Emulator) WorkingDirectory() string       { return "" }
func (e *Emulator) WorkingDirectoryPath() string   { return "" }

func (e *Emulator) CellSizePixels()                                  { e.discard("CSI 16 t") }
func (e *Emulator) TextAreaSizeChars()                                { e.discard("CSI 18 t") }
func (e *Emulator) TextAreaSizePixels()                               { e.discard("CSI 14 t") }
func (e *Emulator) SixelReceived(params [][]uint16, data []byte)      { e.discard("sixel") }

func (e *Emulator) discard(what string) {
	e.log.Debug().Str("sequence", what).Msg("unsupported sequence discarded")
}
