package render

import (
	"strings"
	"testing"

	"github.com/vtrender/termframe/internal/config"
	"github.com/vtrender/termframe/internal/theme"
)

func TestRenderChromeWrapsInnerSVG(t *testing.T) {
	opt := ChromeOptions{
		Style:      config.DefaultWindowStyle(),
		Mode:       theme.Dark,
		Title:      "hello",
		Background: "#000000",
		FontFamily: []string{"monospace"},
		FontSize:   12,
	}

	var b strings.Builder
	inner := `<g>inner</g>`
	if err := renderChrome(&b, inner, 100, 50, opt, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := b.String()
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Fatalf("expected an <svg> root, got prefix %q", out[:min(60, len(out))])
	}
	if !strings.Contains(out, inner) {
		t.Error("expected the inner screen markup to be embedded verbatim")
	}
	if !strings.Contains(out, "hello") {
		t.Error("expected the title text to appear")
	}
	if !strings.Contains(out, "<filter id=\"shadow\">") {
		t.Error("expected a drop shadow filter since the default style enables one")
	}
	// three traffic-light buttons
	if got := strings.Count(out, "<circle"); got != 3 {
		t.Errorf("expected 3 button circles, got %d", got)
	}
}

func TestRenderChromeOmitsTitleWhenEmpty(t *testing.T) {
	opt := ChromeOptions{
		Style:      config.DefaultWindowStyle(),
		Mode:       theme.Dark,
		Background: "#000000",
	}

	var b strings.Builder
	if err := renderChrome(&b, "<g/>", 100, 50, opt, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(b.String(), "<text") {
		t.Error("expected no <text> element when Title is empty")
	}
}

func TestRenderChromeNoShadowWhenDisabled(t *testing.T) {
	style := config.DefaultWindowStyle()
	style.Shadow.Enabled = false
	opt := ChromeOptions{Style: style, Mode: theme.Dark, Background: "#000"}

	var b strings.Builder
	if err := renderChrome(&b, "<g/>", 100, 50, opt, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(b.String(), "<filter id=\"shadow\">") {
		t.Error("expected no shadow filter when Shadow.Enabled is false")
	}
}

func TestTrimTitleFitsWithinWidth(t *testing.T) {
	got := trimTitle("hello", 10)
	if got != "hello" {
		t.Errorf("expected the short title to pass through unchanged, got %q", got)
	}
}

func TestTrimTitleTruncatesWithEllipsis(t *testing.T) {
	got := trimTitle("a long window title that will not fit", 5)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected a truncated title ending in an ellipsis, got %q", got)
	}
	if widthOf([]rune(got)) > 5 {
		t.Errorf("expected the truncated title to fit within the available width, got %q", got)
	}
}

func TestTrimTitleTooNarrowForEvenEllipsis(t *testing.T) {
	got := trimTitle("hello", 0.5)
	if got != "" {
		t.Errorf("expected an empty result when even the ellipsis doesn't fit, got %q", got)
	}
}

func TestButtonEdgeClearanceAccountsForRadius(t *testing.T) {
	cfg := config.WindowButtons{Radius: 6, Spacing: 20}
	width := 200.0

	got := buttonEdgeClearance(cfg, width)
	leftmost := buttonsStartX(cfg, width)
	want := width - leftmost + cfg.Radius
	if got != want {
		t.Errorf("expected clearance %v, got %v", want, got)
	}
}
