package emulator

import (
	"bytes"
	"testing"

	"github.com/vtrender/termframe/internal/grid"
)

func TestWritePlainTextAdvancesCursor(t *testing.T) {
	e := New(10, 3)
	if _, err := e.Write([]byte("hi")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos := e.Grid().CursorPosition()
	if pos.Col != 2 || pos.Row != 0 {
		t.Errorf("expected cursor at (0,2), got (%d,%d)", pos.Row, pos.Col)
	}
}

func TestWriteCarriageReturnLineFeed(t *testing.T) {
	e := New(10, 3)
	if _, err := e.Write([]byte("ab\r\ncd")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos := e.Grid().CursorPosition()
	if pos.Row != 1 || pos.Col != 2 {
		t.Errorf("expected cursor at (1,2) after CRLF, got (%d,%d)", pos.Row, pos.Col)
	}
}

func TestWriteSGRBoldSetsIntensity(t *testing.T) {
	e := New(10, 3)
	if _, err := e.Write([]byte("\x1b[1mx")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Grid().Attributes().Intensity != grid.IntensityBold {
		t.Error("expected SGR 1 to set bold intensity")
	}
}

func TestWriteSGRResetClearsAttributes(t *testing.T) {
	e := New(10, 3)
	if _, err := e.Write([]byte("\x1b[1m\x1b[0m")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	attrs := e.Grid().Attributes()
	if !attrs.IsDefault() {
		t.Errorf("expected SGR 0 to restore default attributes, got %+v", attrs)
	}
}

func TestCursorPositioningEscape(t *testing.T) {
	e := New(10, 5)
	if _, err := e.Write([]byte("\x1b[3;5H")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos := e.Grid().CursorPosition()
	// CSI row;col H is 1-based.
	if pos.Row != 2 || pos.Col != 4 {
		t.Errorf("expected cursor at (2,4) (0-based) after CSI 3;5H, got (%d,%d)", pos.Row, pos.Col)
	}
}

func TestSetTitleViaOSC(t *testing.T) {
	e := New(10, 3)
	if _, err := e.Write([]byte("\x1b]2;my title\x07")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Title() != "my title" {
		t.Errorf("expected title %q, got %q", "my title", e.Title())
	}
}

func TestDeviceStatusReportWritesCursorPosition(t *testing.T) {
	var resp bytes.Buffer
	e := New(10, 5, WithResponse(&resp))

	if _, err := e.Write([]byte("\x1b[3;5H\x1b[6n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "\x1b[3;5R"
	if resp.String() != want {
		t.Errorf("expected DSR response %q, got %q", want, resp.String())
	}
}

func TestClearScreenAllBlanksGrid(t *testing.T) {
	e := New(5, 2)
	if _, err := e.Write([]byte("hello\x1b[2J")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, row := range e.Grid().VisibleRows() {
		if len(row.VisibleCells()) != 0 {
			t.Fatalf("expected every row blank after CSI 2J, got %+v", row)
		}
	}
}

func TestLineFeedsEvictToScrollback(t *testing.T) {
	e := New(5, 2)
	if _, err := e.Write([]byte("a\r\nb\r\nc\r\nd")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Scrollback().Len() == 0 {
		t.Error("expected scrolling past the bottom row to push at least one row to scrollback")
	}
}

func TestDefaultBackgroundSeedsOSCQueryBeforeAnySet(t *testing.T) {
	bg := grid.TrueColor(4, 5, 6, 255)
	var resp bytes.Buffer
	e := New(5, 2, WithDefaultBackground(bg), WithResponse(&resp))

	if _, err := e.Write([]byte("\x1b]11;?\x07")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Len() == 0 {
		t.Fatal("expected an OSC 11 query to produce a response even with no color explicitly set")
	}
	for _, want := range []string{"0404", "0505", "0606"} {
		if !bytes.Contains(resp.Bytes(), []byte(want)) {
			t.Errorf("expected the seeded default background %v in the response %q", want, resp.String())
		}
	}
}
