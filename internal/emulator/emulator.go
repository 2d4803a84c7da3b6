// Package emulator implements the byte-to-grid state machine: it consumes
// PTY output through github.com/danielgatis/go-ansicode's Decoder, mutates
// a grid.Grid, owns the Scrollback the Grid evicts into, and writes device
// reports (CPR, OSC color queries) back to the PTY.
package emulator

import (
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/danielgatis/go-ansicode"
	"github.com/rs/zerolog"

	"github.com/vtrender/termframe/internal/grid"
)

// NamedColorForeground and NamedColorBackground are the sentinel indices
// go-ansicode's SetColor/SetDynamicColor callbacks use for OSC 10/11 (the
// same numbering convention xterm itself uses for its "special colors").
const (
	NamedColorForeground = 256
	NamedColorBackground = 257
)

// ResponseWriter receives device reports (CPR, OSC color query replies).
// An io.Writer connected back to the PTY's input side satisfies it.
type ResponseWriter = io.Writer

// NoopResponseWriter discards all responses.
type NoopResponseWriter struct{}

func (NoopResponseWriter) Write(p []byte) (int, error) { return len(p), nil }

type savedCursor struct {
	pos   grid.Position
	attrs grid.Attributes
}

// Emulator owns a Grid and its Scrollback exclusively; Reflow borrows both
// during a resize, Renderer borrows the Grid read-only.
type Emulator struct {
	mu sync.RWMutex

	grid       *grid.Grid
	scrollback *grid.Scrollback

	decoder *ansicode.Decoder

	response ResponseWriter
	log      zerolog.Logger

	title      string
	titleStack []string

	colors map[int]grid.Color

	saved     savedCursor
	hasSaved  bool
	cursorVis bool

	defaultFg grid.Color
	defaultBg grid.Color
}

// Option configures an Emulator during construction.
type Option func(*Emulator)

// WithResponse sets the writer device reports are sent to. Defaults to a
// sink if not set.
func WithResponse(w ResponseWriter) Option {
	return func(e *Emulator) { e.response = w }
}

// WithLogger sets the logger used for discarded/unsupported-sequence
// diagnostics. Defaults to a disabled logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Emulator) { e.log = l }
}

// WithScrollbackCap overrides the default scrollback row cap.
func WithScrollbackCap(cap int) Option {
	return func(e *Emulator) { e.scrollback = grid.NewScrollback(cap) }
}

// WithDefaultForeground seeds the value OSC 10 queries report before any
// OSC 10 set has been received. Callers typically seed this from the
// resolved theme's foreground.
func WithDefaultForeground(c grid.Color) Option {
	return func(e *Emulator) { e.defaultFg = c }
}

// WithDefaultBackground seeds the value OSC 11 queries report before any
// OSC 11 set has been received.
func WithDefaultBackground(c grid.Color) Option {
	return func(e *Emulator) { e.defaultBg = c }
}

// New returns an Emulator with a grid of the given dimensions, cursor at
// (0,0), default attributes, and an empty scrollback.
func New(width, height int, opts ...Option) *Emulator {
	e := &Emulator{
		grid:       grid.New(width, height),
		scrollback: grid.NewScrollback(grid.DefaultScrollbackCap),
		response:   NoopResponseWriter{},
		log:        zerolog.Nop(),
		colors:     make(map[int]grid.Color),
		cursorVis:  true,
		defaultFg:  grid.TrueColor(255, 255, 255, 255),
		defaultBg:  grid.TrueColor(0, 0, 0, 255),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.decoder = ansicode.NewDecoder(e)
	return e
}

// Grid returns the emulator's grid for the Reflow engine and Renderer to
// borrow. Callers must not retain it past the Emulator's lifetime.
func (e *Emulator) Grid() *grid.Grid { return e.grid }

// Scrollback returns the emulator's scrollback FIFO.
func (e *Emulator) Scrollback() *grid.Scrollback { return e.scrollback }

// Title returns the current window title (OSC 0/1/2).
func (e *Emulator) Title() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.title
}

// Write feeds raw PTY bytes through the ANSI decoder. Implements io.Writer.
// Parser errors never occur here: go-ansicode never returns a non-nil error
// from Write, malformed sequences are simply dropped.
func (e *Emulator) Write(p []byte) (int, error) {
	return e.decoder.Write(p)
}

func (e *Emulator) writeResponse(s string) {
	if e.response == nil {
		return
	}
	// Device report failures are swallowed: the renderer must still
	// proceed even if the PTY's input side is gone.
	_, _ = e.response.Write([]byte(s))
}

// pushEvicted stores a row the grid scrolled out of the viewport. Called
// with the lock held.
func (e *Emulator) pushEvicted(rows ...*grid.Row) {
	for _, r := range rows {
		if r != nil {
			e.scrollback.Push(*r)
		}
	}
}

func rgbaFromColorColor(c color.Color) (r, g, b uint8) {
	cr, cg, cb, _ := c.RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8)
}

func formatDynamicColor(prefix string, c grid.Color, fallback grid.Color, terminator string) string {
	rc := c
	if rc.IsDefault() {
		rc = fallback
	}
	return fmt.Sprintf("\x1b]%s;rgb:%02x%02x/%02x%02x/%02x%02x%s",
		prefix, rc.R, rc.R, rc.G, rc.G, rc.B, rc.B, terminator)
}
