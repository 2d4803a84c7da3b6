package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FontWeight is either a named weight or a fixed OpenType weight
// (100-900).
type FontWeight struct {
	Named string // "normal", "bold", or "" when Fixed is set
	Fixed uint16
}

// FontWeights carries the three weights the renderer picks a font face
// by: the weight used for normal-intensity cells, bold cells, and
// half/faint-intensity cells.
type FontWeights struct {
	Normal FontWeight
	Bold   FontWeight
	Faint  FontWeight
}

// FontFace names a font family and the file(s) providing its glyphs (a
// local path or a fetchable URL, resolved by internal/fontcache).
type FontFace struct {
	Family string
	Files  []string
}

// Settings is the fully-resolved rendering configuration: terminal
// dimensions, font selection, spacing, and output precision.
type Settings struct {
	Width       Dimension
	Height      Dimension
	FontFamily  string
	FontSize    float64
	FontWeights FontWeights
	LineHeight  float64
	FaintOpacity float64
	Precision   int
	ThemeName   string
	StyleName   string
	Padding     Padding
	Stroke      float64
	Fonts       []FontFace
	EmbedFonts  bool
}

// DefaultSettings returns the built-in baseline settings, matching the
// defaults a freshly installed CLI would render with absent any config
// file or flag overrides.
func DefaultSettings() Settings {
	return Settings{
		Width:        Auto(),
		Height:       Auto(),
		FontFamily:   "monospace",
		FontSize:     12,
		FontWeights:  FontWeights{Normal: FontWeight{Named: "normal"}, Bold: FontWeight{Named: "bold"}, Faint: FontWeight{Named: "normal"}},
		LineHeight:   1.2,
		FaintOpacity: 0.5,
		Precision:    2,
		ThemeName:    "default",
		StyleName:    "",
		Padding:      Uniform(0),
		Stroke:       0,
		EmbedFonts:   false,
	}
}

// settingsDoc is the on-disk shape, with every field optional so a
// partial document can be merged onto DefaultSettings.
type settingsDoc struct {
	Terminal *struct {
		Width  *string `toml:"width" yaml:"width" json:"width"`
		Height *string `toml:"height" yaml:"height" json:"height"`
	} `toml:"terminal" yaml:"terminal" json:"terminal"`
	Font *struct {
		Family  *string `toml:"family" yaml:"family" json:"family"`
		Size    *float64 `toml:"size" yaml:"size" json:"size"`
		Weights *struct {
			Normal *string `toml:"normal" yaml:"normal" json:"normal"`
			Bold   *string `toml:"bold" yaml:"bold" json:"bold"`
			Faint  *string `toml:"faint" yaml:"faint" json:"faint"`
		} `toml:"weights" yaml:"weights" json:"weights"`
	} `toml:"font" yaml:"font" json:"font"`
	FaintOpacity *float64 `toml:"faint-opacity" yaml:"faint-opacity" json:"faint-opacity"`
	LineHeight   *float64 `toml:"line-height" yaml:"line-height" json:"line-height"`
	Precision    *int     `toml:"precision" yaml:"precision" json:"precision"`
	Theme        *string  `toml:"theme" yaml:"theme" json:"theme"`
	WindowStyle  *string  `toml:"window-style" yaml:"window-style" json:"window-style"`
	Padding      *string  `toml:"padding" yaml:"padding" json:"padding"`
	Stroke       *float64 `toml:"stroke" yaml:"stroke" json:"stroke"`
	EmbedFonts   *bool    `toml:"embed-fonts" yaml:"embed-fonts" json:"embed-fonts"`
	Fonts        []struct {
		Family string   `toml:"family" yaml:"family" json:"family"`
		Files  []string `toml:"files" yaml:"files" json:"files"`
	} `toml:"fonts" yaml:"fonts" json:"fonts"`
}

// LoadSettings decodes a config document (TOML/YAML/JSON, chosen by
// path's extension) and merges it onto DefaultSettings; fields absent
// from the document keep their default value.
func LoadSettings(data []byte, path string) (Settings, error) {
	s := DefaultSettings()

	var doc settingsDoc
	var err error
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "toml", "":
		_, err = toml.Decode(string(data), &doc)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &doc)
	case "json":
		err = json.Unmarshal(data, &doc)
	default:
		return Settings{}, fmt.Errorf("config: unrecognized format %q", ext)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if doc.Terminal != nil {
		if doc.Terminal.Width != nil {
			if s.Width, err = ParseDimension(*doc.Terminal.Width); err != nil {
				return Settings{}, err
			}
		}
		if doc.Terminal.Height != nil {
			if s.Height, err = ParseDimension(*doc.Terminal.Height); err != nil {
				return Settings{}, err
			}
		}
	}
	if doc.Font != nil {
		if doc.Font.Family != nil {
			s.FontFamily = *doc.Font.Family
		}
		if doc.Font.Size != nil {
			s.FontSize = *doc.Font.Size
		}
		if doc.Font.Weights != nil {
			if doc.Font.Weights.Normal != nil {
				s.FontWeights.Normal = ParseFontWeight(*doc.Font.Weights.Normal)
			}
			if doc.Font.Weights.Bold != nil {
				s.FontWeights.Bold = ParseFontWeight(*doc.Font.Weights.Bold)
			}
			if doc.Font.Weights.Faint != nil {
				s.FontWeights.Faint = ParseFontWeight(*doc.Font.Weights.Faint)
			}
		}
	}
	if doc.FaintOpacity != nil {
		s.FaintOpacity = *doc.FaintOpacity
	}
	if doc.LineHeight != nil {
		s.LineHeight = *doc.LineHeight
	}
	if doc.Precision != nil {
		s.Precision = *doc.Precision
	}
	if doc.Theme != nil {
		s.ThemeName = *doc.Theme
	}
	if doc.WindowStyle != nil {
		s.StyleName = *doc.WindowStyle
	}
	if doc.Padding != nil {
		if s.Padding, err = ParsePadding(*doc.Padding); err != nil {
			return Settings{}, err
		}
	}
	if doc.Stroke != nil {
		s.Stroke = *doc.Stroke
	}
	if doc.EmbedFonts != nil {
		s.EmbedFonts = *doc.EmbedFonts
	}
	for _, f := range doc.Fonts {
		s.Fonts = append(s.Fonts, FontFace{Family: f.Family, Files: f.Files})
	}

	return s, nil
}

// ParseFontWeight parses a font weight flag/config value: "normal",
// "bold", or a fixed numeric OpenType weight (100-900).
func ParseFontWeight(s string) FontWeight {
	switch strings.ToLower(s) {
	case "normal":
		return FontWeight{Named: "normal"}
	case "bold":
		return FontWeight{Named: "bold"}
	default:
		var n uint16
		if _, err := fmt.Sscanf(s, "%d", &n); err == nil {
			return FontWeight{Fixed: n}
		}
		return FontWeight{Named: "normal"}
	}
}
