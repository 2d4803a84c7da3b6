package grid

// Position is a zero-based (column, row) cursor location.
type Position struct {
	Col, Row int
}

// Grid is the addressable cell matrix: dimensions, cursor, current write
// attributes, and the row array. It does not own a Scrollback — per the
// component ownership split, the Emulator owns both and decides what to do
// with rows this Grid evicts during a scroll.
type Grid struct {
	width, height int
	cursor        Position
	attrs         Attributes
	rows          []Row
	ledger        []bool // wrap ledger: mirrors rows[i].Wrapped, rotated on ScrollUp
}

// New returns a grid of the given dimensions, cursor at (0,0), default
// attributes.
func New(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.rows = make([]Row, height)
	for i := range g.rows {
		g.rows[i] = NewRow(width)
	}
	g.ledger = make([]bool, height)
	g.attrs = DefaultAttributes()
	return g
}

// Dimensions returns (width, height).
func (g *Grid) Dimensions() (int, int) { return g.width, g.height }

// CursorPosition returns the current cursor position.
func (g *Grid) CursorPosition() Position { return g.cursor }

// Attributes returns the attributes that will be applied to the next
// written cell.
func (g *Grid) Attributes() Attributes { return g.attrs }

// SetAttributes replaces the current write attributes.
func (g *Grid) SetAttributes(a Attributes) { g.attrs = a }

// VisibleRows returns the grid's rows top to bottom. The returned slice
// aliases internal storage and must not be mutated by the caller; use
// RowCellsMut for in-place edits.
func (g *Grid) VisibleRows() []Row { return g.rows }

// Row returns a copy of the row at index r, or the zero Row if out of
// range.
func (g *Grid) Row(r int) Row {
	if r < 0 || r >= len(g.rows) {
		return Row{}
	}
	return g.rows[r]
}

// RowCellsMut returns the mutable cell slice for row r, or nil if out of
// range.
func (g *Grid) RowCellsMut(r int) []Cell {
	if r < 0 || r >= len(g.rows) {
		return nil
	}
	return g.rows[r].Cells
}

// IsWrapped reports the wrapped-bit of row r.
func (g *Grid) IsWrapped(r int) bool {
	if r < 0 || r >= len(g.rows) {
		return false
	}
	return g.rows[r].Wrapped
}

// SetWrapped sets the wrapped-bit of row r and mirrors it into the ledger.
func (g *Grid) SetWrapped(r int, wrapped bool) {
	if r < 0 || r >= len(g.rows) {
		return
	}
	g.rows[r].Wrapped = wrapped
	if r < len(g.ledger) {
		g.ledger[r] = wrapped
	}
}

// Ledger returns the wrap ledger, one boolean per visible row.
func (g *Grid) Ledger() []bool {
	out := make([]bool, len(g.ledger))
	copy(out, g.ledger)
	return out
}

// MoveCursorAbs moves the cursor to an absolute position, clamping column
// to [0,width] and row to [0,height-1].
func (g *Grid) MoveCursorAbs(col, row int) {
	g.cursor.Col = clamp(col, 0, g.width)
	g.cursor.Row = clamp(row, 0, g.height-1)
}

// MoveCursorRel moves the cursor by a relative (dcol, drow) offset, with
// the same clamping as MoveCursorAbs.
func (g *Grid) MoveCursorRel(dcol, drow int) {
	g.MoveCursorAbs(g.cursor.Col+dcol, g.cursor.Row+drow)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NextTabStop returns the next multiple-of-8 column strictly after col,
// clamped to width.
func NextTabStop(col, width int) int {
	next := ((col / 8) + 1) * 8
	if next > width {
		next = width
	}
	return next
}

// PrevTabStop returns the previous multiple-of-8 column strictly before
// col, clamped to 0.
func PrevTabStop(col int) int {
	if col <= 0 {
		return 0
	}
	prev := ((col - 1) / 8) * 8
	if prev < 0 {
		prev = 0
	}
	return prev
}

// WriteGrapheme writes a single grapheme cluster of the given display
// width at the cursor, performing an autowrap first if it does not fit in
// the remaining columns of the current row. It returns the row evicted by
// a bottom scroll, or nil if no scroll occurred. The caller (Emulator) is
// responsible for pushing an evicted row onto its Scrollback.
//
// After writing, the cursor advances by width; if it lands exactly on
// column width, it is left in the past-the-end state (no immediate wrap —
// the next printable grapheme triggers one).
func (g *Grid) WriteGrapheme(s string, width int) *Row {
	var evicted *Row

	if g.cursor.Col+width > g.width {
		evicted = g.autowrap()
	}

	row := g.cursor.Row
	col := g.cursor.Col
	cells := g.rows[row].Cells
	cells[col] = Cell{Grapheme: s, Width: width, Attrs: g.attrs}
	if width == 2 && col+1 < g.width {
		cells[col+1] = Cell{Grapheme: "", Width: 0, Attrs: g.attrs}
	}

	g.cursor.Col += width
	return evicted
}

// autowrap marks the current row as soft-wrapped and advances the cursor
// to column 0 of the next row, scrolling the viewport up by one (and
// returning the evicted row) if already on the bottom row.
func (g *Grid) autowrap() *Row {
	g.SetWrapped(g.cursor.Row, true)
	if g.cursor.Row < g.height-1 {
		g.cursor.Row++
		g.cursor.Col = 0
		return nil
	}
	evicted := g.scrollUpOne()
	g.cursor.Col = 0
	return evicted
}

// Newline performs LF/VT/FF semantics: move to column 0 of the next row,
// scrolling up by one (and returning the evicted row) if already on the
// bottom row. The row left behind is marked not-wrapped (explicit
// newline).
func (g *Grid) Newline() *Row {
	g.SetWrapped(g.cursor.Row, false)
	g.cursor.Col = 0
	if g.cursor.Row < g.height-1 {
		g.cursor.Row++
		return nil
	}
	return g.scrollUpOne()
}

// scrollUpOne evicts row 0, shifts all other rows up by one, clears the
// new bottom row, and rotates the wrap ledger left. The cursor row does
// not move (callers adjust col/row separately).
func (g *Grid) scrollUpOne() *Row {
	evicted := g.rows[0].Clone()
	copy(g.rows, g.rows[1:])
	g.rows[g.height-1] = NewRow(g.width)

	copy(g.ledger, g.ledger[1:])
	g.ledger[g.height-1] = false

	return &evicted
}

// CarriageReturn moves the cursor to column 0 of the current row.
func (g *Grid) CarriageReturn() {
	g.cursor.Col = 0
}

// Backspace performs a destructive backspace: move left, write a space,
// move left again.
func (g *Grid) Backspace() {
	if g.cursor.Col == 0 {
		return
	}
	g.cursor.Col--
	g.rows[g.cursor.Row].Cells[g.cursor.Col] = NewCell()
}

// Resize changes the grid's dimensions in place, preserving the top-left
// content (per reflow, which calls this after computing the new row set;
// Resize itself does not reflow — it only reshapes storage).
func (g *Grid) Resize(width, height int) {
	newRows := make([]Row, height)
	for i := range newRows {
		if i < len(g.rows) {
			newRows[i] = g.rows[i].Resize(width)
		} else {
			newRows[i] = NewRow(width)
		}
	}
	newLedger := make([]bool, height)
	for i := range newLedger {
		if i < len(newRows) {
			newLedger[i] = newRows[i].Wrapped
		}
	}
	g.rows = newRows
	g.ledger = newLedger
	g.width = width
	g.height = height
	g.cursor.Col = clamp(g.cursor.Col, 0, width)
	g.cursor.Row = clamp(g.cursor.Row, 0, height-1)
}

// ReverseIndex performs RI: move the cursor up one row, or, if already on
// row 0, scroll the viewport down by one (a blank row appears at the top,
// the bottom row's content is lost). Unlike a forward scroll this never
// evicts to scrollback — reverse scrolling only ever exposes rows already
// held in the viewport.
func (g *Grid) ReverseIndex() {
	if g.cursor.Row > 0 {
		g.cursor.Row--
		return
	}
	g.scrollDownOne()
}

func (g *Grid) scrollDownOne() {
	copy(g.rows[1:], g.rows[:g.height-1])
	g.rows[0] = NewRow(g.width)

	copy(g.ledger[1:], g.ledger[:g.height-1])
	g.ledger[0] = false
}

// ScrollUp scrolls the full viewport up by n rows without moving the
// cursor, returning the evicted rows oldest first for the caller to push
// onto its Scrollback.
func (g *Grid) ScrollUp(n int) []Row {
	evicted := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		evicted = append(evicted, *g.scrollUpOne())
	}
	return evicted
}

// ScrollDown scrolls the full viewport down by n rows without moving the
// cursor. Rows that fall off the bottom are discarded.
func (g *Grid) ScrollDown(n int) {
	for i := 0; i < n; i++ {
		g.scrollDownOne()
	}
}

// ReplaceRows overwrites all rows and the ledger wholesale (used by the
// CLI to build a grid from a cropped transcript). len(rows) must equal the
// grid height.
func (g *Grid) ReplaceRows(rows []Row) {
	for i := range rows {
		if i >= g.height {
			break
		}
		g.rows[i] = rows[i]
		g.ledger[i] = rows[i].Wrapped
	}
}
