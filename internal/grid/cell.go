package grid

// Intensity is the SGR bold/faint state of a cell.
type Intensity uint8

const (
	IntensityNormal Intensity = iota
	IntensityBold
	IntensityHalf
)

// UnderlineStyle enumerates the underline renderings a cell can carry.
type UnderlineStyle uint8

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// Attributes are the SGR-controlled rendering attributes shared by a run of
// cells. They are copied by value into each Cell as it is written.
type Attributes struct {
	Fg             Color
	Bg             Color
	Intensity      Intensity
	Italic         bool
	Underline      UnderlineStyle
	UnderlineColor Color
	Strikethrough  bool
	Reverse        bool
	Invisible      bool
}

// DefaultAttributes returns the SGR-reset attribute set.
func DefaultAttributes() Attributes {
	return Attributes{Fg: DefaultColor(), Bg: DefaultColor(), UnderlineColor: DefaultColor()}
}

// IsDefault reports whether a carries no non-default rendering at all.
func (a Attributes) IsDefault() bool {
	return a == DefaultAttributes()
}

// Cell is a single grapheme cluster (1 or 2 columns wide) plus its
// rendering attributes. The wrapped-bit lives on Row, not Cell, since it is
// a property of the row's last visible cell as a whole (see Row.Wrapped).
type Cell struct {
	Grapheme string
	Width    int
	Attrs    Attributes
}

// NewCell returns a blank (space) cell with default attributes.
func NewCell() Cell {
	return Cell{Grapheme: " ", Width: 1, Attrs: DefaultAttributes()}
}

// IsBlank reports whether the cell is an unwritten space with default
// attributes — the state visible_cells() trims from the end of a row.
func (c Cell) IsBlank() bool {
	return c.Grapheme == " " && c.Attrs.IsDefault()
}
