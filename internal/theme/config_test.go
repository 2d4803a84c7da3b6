package theme

import "testing"

func TestDecodeFixedColorsTOML(t *testing.T) {
	doc := []byte(`
[colors]
background = "#101010"
foreground = "#e0e0e0"

[colors.palette]
"1" = "#ff0000"
`)
	d, err := Decode(doc, ".toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Colors == nil {
		t.Fatal("expected a fixed colors document")
	}

	at, err := d.ToAdaptiveTheme()
	if err != nil {
		t.Fatalf("unexpected error converting to theme: %v", err)
	}
	if !at.Dark.Background.Equal(at.Light.Background) {
		t.Error("expected a fixed document to resolve to the same theme for both modes")
	}
}

func TestDecodeAdaptiveModesYAML(t *testing.T) {
	doc := []byte(`
modes:
  dark:
    background: "#000000"
    foreground: "#ffffff"
  light:
    background: "#ffffff"
    foreground: "#000000"
`)
	d, err := Decode(doc, ".yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Modes == nil {
		t.Fatal("expected an adaptive modes document")
	}

	at, err := d.ToAdaptiveTheme()
	if err != nil {
		t.Fatalf("unexpected error converting to theme: %v", err)
	}
	if at.Dark.Background.Equal(at.Light.Background) {
		t.Error("expected dark and light to differ")
	}
}

func TestDecodeRejectsUnknownFormat(t *testing.T) {
	if _, err := Decode([]byte("x"), ".ini"); err == nil {
		t.Error("expected an error for an unrecognized theme format")
	}
}

func TestToAdaptiveThemeRejectsEmptyDocument(t *testing.T) {
	if _, err := (Document{}).ToAdaptiveTheme(); err == nil {
		t.Error("expected an error when neither colors nor modes is set")
	}
}

func TestParseHexColorVariants(t *testing.T) {
	c, err := parseHexColor("#ff00ff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.R != 0xff || c.G != 0x00 || c.B != 0xff || c.A != 0xff {
		t.Errorf("unexpected rgb parse: %v", c)
	}

	c, err = parseHexColor("#ff00ff80")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.A != 0x80 {
		t.Errorf("expected alpha 0x80, got %#x", c.A)
	}

	if _, err := parseHexColor("#fff"); err == nil {
		t.Error("expected an error for a 3-digit hex color")
	}
}

func TestDecodeFileUsesPathExtension(t *testing.T) {
	doc := []byte(`{"colors": {"background": "#000000", "foreground": "#ffffff"}}`)
	d, err := DecodeFile(doc, "mytheme.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Colors == nil {
		t.Fatal("expected colors decoded from a .json path")
	}
}
