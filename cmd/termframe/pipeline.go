package main

import (
	"bufio"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vtrender/termframe/internal/config"
	"github.com/vtrender/termframe/internal/emulator"
	"github.com/vtrender/termframe/internal/grid"
	"github.com/vtrender/termframe/internal/ptydriver"
	"github.com/vtrender/termframe/internal/render"
	"github.com/vtrender/termframe/internal/theme"
	"github.com/vtrender/termframe/internal/xerr"
)

// driverWriter forwards device reports (CPR, OSC color replies) from the
// emulator back into the PTY's write queue. It's constructed before the
// driver exists (the emulator needs a response sink at construction time)
// and wired up once Start succeeds.
type driverWriter struct {
	d *ptydriver.Driver
}

func (w *driverWriter) Write(p []byte) (int, error) {
	if w.d != nil {
		w.d.Write(p)
	}
	return len(p), nil
}

func run(cmd *cobra.Command, args []string) error {
	file := args[0]

	settings, err := buildSettings()
	if err != nil {
		return err
	}

	registry := theme.NewRegistry()
	adaptive, ok, hint := registry.Resolve(settings.ThemeName)
	if !ok {
		return theme.ErrUnknownTheme(settings.ThemeName, hint)
	}
	mode := theme.Dark
	resolved := adaptive.Resolve(mode)

	logger := newLogger()

	fontConfig, err := buildFontConfig(settings, logger)
	if err != nil {
		return err
	}

	commandName, commandArgs, cleanup, err := resolveCommand(file)
	if err != nil {
		return err
	}
	defer cleanup()

	cols := settings.Width.InitialOr(80)
	rows := settings.Height.InitialOr(24)

	resp := &driverWriter{}
	emu := emulator.New(cols, rows,
		emulator.WithLogger(logger),
		emulator.WithResponse(resp),
		emulator.WithDefaultForeground(resolved.Foreground),
		emulator.WithDefaultBackground(resolved.Background),
	)

	driver, err := ptydriver.Start(ptydriver.Config{
		Command: commandName,
		Args:    commandArgs,
		Cols:    cols,
		Rows:    rows,
		Log:     logger,
	})
	if err != nil {
		return xerr.IO("start pty", err)
	}
	resp.d = driver

	if err := driver.Run(cmd.Context(), func(p []byte) error {
		_, werr := emu.Write(p)
		return werr
	}); err != nil {
		return xerr.IO("run command", err)
	}

	if err := resolveFinalSize(emu, settings.Width, settings.Height); err != nil {
		return err
	}

	renderGrid := cropTranscript(emu, startFlag, endFlag)

	var chrome *render.ChromeOptions
	if settings.StyleName != "" {
		styleReg := config.NewStyleRegistry()
		style, ok, hint := styleReg.Resolve(settings.StyleName)
		if !ok {
			return config.ErrUnknownStyle(settings.StyleName, hint)
		}
		chrome = &render.ChromeOptions{
			Style:      style,
			Mode:       mode,
			Title:      emu.Title(),
			Background: render.CSSColor(resolved.Background),
			FontFamily: fontConfig.Families,
			FontSize:   fontConfig.Size,
		}
	}

	var stroke *float64
	if settings.Stroke > 0 {
		s := settings.Stroke
		stroke = &s
	}

	opts := render.Options{
		Theme:        resolved,
		Font:         fontConfig,
		LineHeight:   settings.LineHeight,
		Precision:    settings.Precision,
		FaintOpacity: settings.FaintOpacity,
		BoldIsBright: true,
		Stroke:       stroke,
		Chrome:       chrome,
	}

	out, closeOut, err := openOutput(outputFlag)
	if err != nil {
		return err
	}
	defer closeOut()

	w := bufio.NewWriter(out)
	if err := render.Render(w, renderGrid, opts); err != nil {
		return xerr.Rendering("render svg", err)
	}
	if err := w.Flush(); err != nil {
		return xerr.IO("flush output", err)
	}
	return nil
}

func buildSettings() (config.Settings, error) {
	s := config.DefaultSettings()

	var err error
	if s.Width, err = config.ParseDimension(widthFlag); err != nil {
		return config.Settings{}, xerr.Config("parse --width", err)
	}
	if s.Height, err = config.ParseDimension(heightFlag); err != nil {
		return config.Settings{}, xerr.Config("parse --height", err)
	}
	if s.Padding, err = config.ParsePadding(paddingFlag); err != nil {
		return config.Settings{}, xerr.Config("parse --padding", err)
	}

	s.FontFamily = fontFamilyFlag
	s.FontSize = fontSizeFlag
	s.FontWeights = config.FontWeights{
		Normal: config.ParseFontWeight(fontWeightFlag),
		Bold:   config.ParseFontWeight(fontWeightBoldFlag),
		Faint:  config.ParseFontWeight(fontWeightFaintFlag),
	}
	s.LineHeight = lineHeightFlag
	s.FaintOpacity = faintOpacityFlag
	s.Precision = precisionFlag
	s.ThemeName = themeFlag

	return s, nil
}

// resolveFinalSize settles the viewport at its recommended size for any
// dimension left auto, or at its fit value otherwise, reflowing the
// transcript in place. Width is resolved (and applied) before height,
// since rewrapping at a new width changes how many display rows the
// transcript occupies.
func resolveFinalSize(emu *emulator.Emulator, width, height config.Dimension) error {
	curW, curH := emu.Grid().Dimensions()

	fw := curW
	if width.Kind == config.DimensionAuto {
		fw = emu.RecommendedWidth()
	} else {
		fw = width.Fit(curW)
	}
	if fw != curW {
		if err := emu.SetWidth(fw); err != nil {
			return xerr.Rendering("resize width", err)
		}
	}

	_, curH = emu.Grid().Dimensions()
	fh := curH
	if height.Kind == config.DimensionAuto {
		fh = emu.RecommendedHeight()
	} else {
		fh = height.Fit(curH)
	}
	if fh != curH {
		if err := emu.SetHeight(fh); err != nil {
			return xerr.Rendering("resize height", err)
		}
	}
	return nil
}

// cropTranscript assembles the full transcript (scrollback followed by
// the visible viewport) and slices it to [start, end), matching the
// "first line to capture" / "last line to capture" semantics of the
// --start/--end flags. A negative bound means "unbounded" on that side.
func cropTranscript(emu *emulator.Emulator, start, end int) *grid.Grid {
	full := append(emu.Scrollback().Rows(), emu.Grid().VisibleRows()...)

	lo := 0
	if start >= 0 {
		lo = start
	}
	hi := len(full)
	if end >= 0 && end < hi {
		hi = end
	}
	if lo > hi {
		lo = hi
	}
	if lo < 0 {
		lo = 0
	}
	slice := full[lo:hi]

	width, _ := emu.Grid().Dimensions()
	g := grid.New(width, len(slice))
	g.ReplaceRows(slice)
	return g
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, xerr.IO("create output "+path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
