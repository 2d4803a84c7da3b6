package render

import (
	"testing"

	"github.com/vtrender/termframe/internal/grid"
	"github.com/vtrender/termframe/internal/theme"
)

func testTheme() theme.Theme {
	bright := grid.TrueColor(0xff, 0xff, 0xff, 0xff)
	return theme.NewTheme(
		grid.TrueColor(0, 0, 0, 0xff),
		grid.TrueColor(0xc0, 0xc0, 0xc0, 0xff),
		&bright,
		map[uint8]grid.Color{1: grid.TrueColor(0xaa, 0, 0, 0xff)},
	)
}

func TestPaletteBuilderLiteralMode(t *testing.T) {
	p := newPaletteBuilder(testTheme(), false)

	if got := p.Background(grid.DefaultColor()).CSS(); got != "#000000" {
		t.Errorf("expected literal default background, got %q", got)
	}
	if got := p.Foreground(grid.DefaultColor()).CSS(); got != "#c0c0c0" {
		t.Errorf("expected literal default foreground, got %q", got)
	}
	if got := p.Foreground(grid.PaletteColor(1)).CSS(); got != "#aa0000" {
		t.Errorf("expected resolved palette literal, got %q", got)
	}
}

func TestPaletteBuilderVarModeTracksUsage(t *testing.T) {
	p := newPaletteBuilder(testTheme(), true)

	if got := p.Background(grid.DefaultColor()).CSS(); got != "var(--bg)" {
		t.Errorf("expected var(--bg), got %q", got)
	}
	if got := p.Foreground(grid.PaletteColor(1)).CSS(); got != "var(--c-1)" {
		t.Errorf("expected var(--c-1), got %q", got)
	}

	vars := p.CSSVariables()
	if len(vars) != 2 {
		t.Fatalf("expected exactly the 2 used variables, got %d: %v", len(vars), vars)
	}
}

func TestPaletteBuilderVarModeOmitsUnusedVariables(t *testing.T) {
	p := newPaletteBuilder(testTheme(), true)
	p.Background(grid.DefaultColor())

	vars := p.CSSVariables()
	if len(vars) != 1 || vars[0][0] != "--bg" {
		t.Errorf("expected only --bg emitted, got %v", vars)
	}
}

func TestBrightForegroundPromotesLowAnsiIndex(t *testing.T) {
	th := testTheme()
	p := newPaletteBuilder(th, false)

	got := p.BrightForeground(grid.PaletteColor(1)).CSS()
	want := cssColor(th.Palette[9])
	if got != want {
		t.Errorf("expected palette index 1 promoted to 9, got %q want %q", got, want)
	}
}

func TestBrightForegroundDefaultUsesThemeBright(t *testing.T) {
	th := testTheme()
	p := newPaletteBuilder(th, false)

	got := p.BrightForeground(grid.DefaultColor()).CSS()
	want := cssColor(*th.BrightForeground)
	if got != want {
		t.Errorf("expected the theme's bright foreground, got %q want %q", got, want)
	}
}

func TestTrueColorBypassesThemeEntirely(t *testing.T) {
	p := newPaletteBuilder(testTheme(), true)
	tc := grid.TrueColor(1, 2, 3, 255)

	if got := p.Foreground(tc).CSS(); got != cssColor(tc) {
		t.Errorf("expected true color literal even in var mode, got %q", got)
	}
}
