package plotimg

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()

	if s.Title != "Equirectangular Projection Scatter Plot" {
		t.Errorf("title = %q", s.Title)
	}
	if s.WidthInches != 10 || s.HeightInches != 6 {
		t.Errorf("figure size = %gx%g, want 10x6", s.WidthInches, s.HeightInches)
	}
	if s.DPI != 300 {
		t.Errorf("dpi = %d, want 300", s.DPI)
	}
	if !s.Grid {
		t.Error("grid should default to on")
	}
	if err := s.validate(); err != nil {
		t.Errorf("default style does not validate: %v", err)
	}
}

func TestLoadStylePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	body := "title: Fremantle depot routes\ndpi: 96\nmarker_color: \"#1f77b4\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write style file: %v", err)
	}

	s, err := LoadStyle(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Title != "Fremantle depot routes" {
		t.Errorf("title = %q", s.Title)
	}
	if s.DPI != 96 {
		t.Errorf("dpi = %d, want 96", s.DPI)
	}
	// Keys the file does not name keep their defaults.
	if s.WidthInches != 10 || !s.Grid {
		t.Errorf("defaults not preserved: %+v", s)
	}
}

func TestLoadStyleErrors(t *testing.T) {
	if _, err := LoadStyle(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "style.yaml")
	if err := os.WriteFile(path, []byte("dpi: -5\n"), 0o644); err != nil {
		t.Fatalf("write style file: %v", err)
	}
	if _, err := LoadStyle(path); err == nil {
		t.Fatal("expected error for negative dpi")
	}

	if err := os.WriteFile(path, []byte("marker_color: purple\n"), 0o644); err != nil {
		t.Fatalf("write style file: %v", err)
	}
	if _, err := LoadStyle(path); err == nil {
		t.Fatal("expected error for non-hex color")
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#1f77b4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	if c != want {
		t.Fatalf("color = %+v, want %+v", c, want)
	}

	for _, bad := range []string{"", "red", "#fff", "#gggggg", "0000ff"} {
		if _, err := parseHexColor(bad); err == nil {
			t.Errorf("parseHexColor(%q) should fail", bad)
		}
	}
}
