// Command termframe captures a child process's output under a PTY,
// replays it through the terminal emulator, and renders the resulting
// grid as an SVG document.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vtrender/termframe/internal/xerr"
)

var (
	widthFlag          string
	heightFlag         string
	paddingFlag        string
	fontFamilyFlag     string
	fontSizeFlag       float64
	fontWeightFlag     string
	fontWeightBoldFlag string
	fontWeightFaintFlag string
	lineHeightFlag     float64
	faintOpacityFlag   float64
	precisionFlag      int
	themeFlag          string
	startFlag          int
	endFlag            int
	outputFlag         string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "termframe FILE",
		Short: "Render a captured terminal session as SVG",
		Long:  "termframe runs a script or command under a pseudo-terminal and renders the resulting screen as a scalable vector image.",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}

	rootCmd.Flags().StringVarP(&widthFlag, "width", "W", "auto", "Width of the virtual terminal (N, auto, or min..max[:step])")
	rootCmd.Flags().StringVarP(&heightFlag, "height", "H", "auto", "Height of the virtual terminal (N, auto, or min..max[:step])")
	rootCmd.Flags().StringVar(&paddingFlag, "padding", "0", "Padding for the inner text (uniform|v,h|t,b,l,r); validated, but not applied by the renderer")
	rootCmd.Flags().StringVar(&fontFamilyFlag, "font-family", "monospace", "Font family list")
	rootCmd.Flags().Float64Var(&fontSizeFlag, "font-size", 12, "Font size in pixels")
	rootCmd.Flags().StringVar(&fontWeightFlag, "font-weight", "normal", "Font weight for normal-intensity text")
	rootCmd.Flags().StringVar(&fontWeightBoldFlag, "font-weight-bold", "bold", "Font weight for bold text")
	rootCmd.Flags().StringVar(&fontWeightFaintFlag, "font-weight-faint", "normal", "Font weight for faint text")
	rootCmd.Flags().Float64Var(&lineHeightFlag, "line-height", 1.2, "Line height, as a multiple of font size")
	rootCmd.Flags().Float64Var(&faintOpacityFlag, "faint-opacity", 0.5, "Opacity applied to faint-intensity text")
	rootCmd.Flags().IntVar(&precisionFlag, "precision", 2, "Decimal precision for emitted coordinates")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "default", "Color theme name")
	rootCmd.Flags().IntVar(&startFlag, "start", -1, "First row to capture (default: from the beginning)")
	rootCmd.Flags().IntVar(&endFlag, "end", -1, "Last row to capture, exclusive (default: to the end)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "-", "Output file, or - for stdout")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "termframe: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: false}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
}

// exitCodeFor maps a returned error to a process exit code. Every error
// run() itself produces is a *xerr.Error with an explicit Kind; anything
// else reaching here came from cobra's own flag/argument parsing, which
// is by elimination a usage error.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	var xe *xerr.Error
	if errors.As(err, &xe) {
		return xerr.ExitCode(err)
	}
	return 2
}
