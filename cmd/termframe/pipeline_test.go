package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vtrender/termframe/internal/config"
	"github.com/vtrender/termframe/internal/emulator"
	"github.com/vtrender/termframe/internal/xerr"
)

func fillEmulator(t *testing.T, w, h int, text string) *emulator.Emulator {
	t.Helper()
	emu := emulator.New(w, h)
	if _, err := emu.Write([]byte(text)); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return emu
}

func TestCropTranscriptFullRange(t *testing.T) {
	emu := fillEmulator(t, 10, 3, "a\r\nb\r\nc")

	g := cropTranscript(emu, -1, -1)
	w, h := g.Dimensions()
	if w != 10 || h != 3 {
		t.Errorf("expected the full 10x3 viewport, got %dx%d", w, h)
	}
}

func TestCropTranscriptBoundedRange(t *testing.T) {
	emu := fillEmulator(t, 10, 3, "a\r\nb\r\nc")

	g := cropTranscript(emu, 1, 2)
	_, h := g.Dimensions()
	if h != 1 {
		t.Errorf("expected a single-row slice, got height %d", h)
	}
}

func TestCropTranscriptInvertedBoundsYieldsEmpty(t *testing.T) {
	emu := fillEmulator(t, 10, 3, "x")

	g := cropTranscript(emu, 2, 1)
	_, h := g.Dimensions()
	if h != 0 {
		t.Errorf("expected an empty slice when start > end, got height %d", h)
	}
}

func TestResolveFinalSizeAutoWidthShrinksToContent(t *testing.T) {
	emu := fillEmulator(t, 40, 5, "hi")

	err := resolveFinalSize(emu, config.Auto(), config.Auto())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w, _ := emu.Grid().Dimensions()
	if w != 2 {
		t.Errorf("expected width recommended down to content width 2, got %d", w)
	}
}

func TestOpenOutputDash(t *testing.T) {
	w, closeFn, err := openOutput("-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeFn()
	if w != os.Stdout {
		t.Error("expected \"-\" to resolve to stdout")
	}
}

func TestOpenOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	w, closeFn, err := openOutput(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := w.Write([]byte("hi")); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if string(data) != "hi" {
		t.Errorf("expected file contents %q, got %q", "hi", data)
	}
}

func TestOpenOutputUnwritablePathErrors(t *testing.T) {
	_, _, err := openOutput(filepath.Join(t.TempDir(), "missing-dir", "out.svg"))
	if err == nil {
		t.Fatal("expected an error for a path in a nonexistent directory")
	}
	var xe *xerr.Error
	if !errors.As(err, &xe) {
		t.Errorf("expected an *xerr.Error, got %T", err)
	}
}

func TestBuildSettingsAppliesFlagsOntoDefaults(t *testing.T) {
	resetFlags(t)
	widthFlag = "100"
	heightFlag = "auto"
	paddingFlag = "4"
	fontFamilyFlag = "Menlo"
	fontSizeFlag = 14
	fontWeightFlag = "normal"
	fontWeightBoldFlag = "bold"
	fontWeightFaintFlag = "normal"
	lineHeightFlag = 1.3
	faintOpacityFlag = 0.4
	precisionFlag = 3
	themeFlag = "dracula"

	s, err := buildSettings()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.FontFamily != "Menlo" {
		t.Errorf("expected font family Menlo, got %q", s.FontFamily)
	}
	if s.ThemeName != "dracula" {
		t.Errorf("expected theme dracula, got %q", s.ThemeName)
	}
	if s.Padding.Top != 4 {
		t.Errorf("expected uniform padding 4, got %+v", s.Padding)
	}
}

func TestBuildSettingsPropagatesBadWidth(t *testing.T) {
	resetFlags(t)
	widthFlag = "not-a-dimension"

	if _, err := buildSettings(); err == nil {
		t.Error("expected an error for an invalid --width value")
	}
}

// resetFlags restores every package-level flag variable to main's
// registered default, so tests don't leak state into one another.
func resetFlags(t *testing.T) {
	t.Helper()
	widthFlag = "auto"
	heightFlag = "auto"
	paddingFlag = "0"
	fontFamilyFlag = "monospace"
	fontSizeFlag = 12
	fontWeightFlag = "normal"
	fontWeightBoldFlag = "bold"
	fontWeightFaintFlag = "normal"
	lineHeightFlag = 1.2
	faintOpacityFlag = 0.5
	precisionFlag = 2
	themeFlag = "default"
	startFlag = -1
	endFlag = -1
	outputFlag = "-"
}
