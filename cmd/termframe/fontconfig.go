package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vtrender/termframe/internal/config"
	"github.com/vtrender/termframe/internal/fontcache"
	"github.com/vtrender/termframe/internal/render"
	"github.com/vtrender/termframe/internal/xerr"
)

// fallbackMetrics describes a generic monospace face, used whenever no
// font files are configured: the same numbers internal/fontcache falls
// back to when a decoded face lacks the metrics it reads. A file that
// fails to decode at all is a configuration error, not a fallback.
var fallbackMetrics = render.FontMetrics{Width: 0.6, Ascender: 0.8, Descender: -0.2}

// buildFontConfig resolves settings.Fonts into a render.FontConfig,
// fetching and decoding each file through a fontcache.Client. Every file
// in a family is treated as covering the full weight range at normal
// style, since the configuration schema doesn't carry per-file weight or
// style metadata (the spec's FontFace model names "weight range, style"
// as caller-supplied data; for file-based fonts that has to default to
// "serves everything" since the CLI has no flag for it).
func buildFontConfig(settings config.Settings, logger zerolog.Logger) (render.FontConfig, error) {
	fc := render.FontConfig{
		Families:     splitFamilies(settings.FontFamily),
		Size:         settings.FontSize,
		NormalWeight: weightValue(settings.FontWeights.Normal),
		BoldWeight:   weightValue(settings.FontWeights.Bold),
		FaintWeight:  weightValue(settings.FontWeights.Faint),
		Metrics:      fallbackMetrics,
	}

	if len(settings.Fonts) == 0 {
		return fc, nil
	}

	client := fontcache.NewClient(fontCacheDir(), logger)
	haveMetrics := false

	for _, face := range settings.Fonts {
		for _, file := range face.Files {
			data, err := client.Fetch(file)
			if err != nil {
				return render.FontConfig{}, xerr.IO(fmt.Sprintf("fetch font %q", file), err)
			}
			decoded, err := fontcache.Decode(data)
			if err != nil {
				return render.FontConfig{}, xerr.Config(fmt.Sprintf("decode font %q", file), err)
			}
			if !haveMetrics {
				asc, desc := decoded.Metrics()
				fc.Metrics = render.FontMetrics{Width: decoded.Width(), Ascender: asc, Descender: desc}
				haveMetrics = true
			}
			weightRange := render.WeightRange{Min: 100, Max: 900}
			fc.Faces = append(fc.Faces, decoded.ToFace(weightRange, render.StyleNormal, file, filepath.Ext(file), fc.Metrics.Width))
		}
	}

	return fc, nil
}

func splitFamilies(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"monospace"}
	}
	return out
}

func weightValue(fw config.FontWeight) uint16 {
	if fw.Fixed != 0 {
		return fw.Fixed
	}
	if strings.EqualFold(fw.Named, "bold") {
		return 700
	}
	return 400
}

func fontCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "termframe", "fonts")
}
