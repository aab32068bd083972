package plotimg

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Figure styling. Zero values are not meaningful; start from DefaultStyle
// and override selectively (LoadStyle does this for YAML files).
type Style struct {
	Title           string  `yaml:"title"`
	WidthInches     float64 `yaml:"width_inches"`
	HeightInches    float64 `yaml:"height_inches"`
	DPI             int     `yaml:"dpi"`
	MarkerColor     string  `yaml:"marker_color"`
	MarkerRadiusPts float64 `yaml:"marker_radius_points"`
	ArrowColor      string  `yaml:"arrow_color"`
	ArrowWidthPts   float64 `yaml:"arrow_width_points"`
	ArrowHeadLenPts float64 `yaml:"arrow_head_length_points"`
	Grid            bool    `yaml:"grid"`
}

// DefaultStyle matches the layout the figures have always used:
// blue order markers, red route arrows, gridded 10x6 inch canvas at 300 DPI.
func DefaultStyle() Style {
	return Style{
		Title:           "Equirectangular Projection Scatter Plot",
		WidthInches:     10,
		HeightInches:    6,
		DPI:             300,
		MarkerColor:     "#0000ff",
		MarkerRadiusPts: 3,
		ArrowColor:      "#ff0000",
		ArrowWidthPts:   1.5,
		ArrowHeadLenPts: 6,
		Grid:            true,
	}
}

// LoadStyle reads a YAML style file and overlays it on the defaults,
// so partial files only override the keys they name.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("load style: read %q: %w", path, err)
	}

	s := DefaultStyle()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Style{}, fmt.Errorf("load style: parse %q: %w", path, err)
	}

	if err := s.validate(); err != nil {
		return Style{}, fmt.Errorf("load style: %q: %w", path, err)
	}

	return s, nil
}

func (s Style) validate() error {
	if s.WidthInches <= 0 || s.HeightInches <= 0 {
		return fmt.Errorf("figure size must be positive (got %gx%g)", s.WidthInches, s.HeightInches)
	}
	if s.DPI <= 0 {
		return fmt.Errorf("dpi must be positive (got %d)", s.DPI)
	}
	if _, err := parseHexColor(s.MarkerColor); err != nil {
		return fmt.Errorf("marker_color: %w", err)
	}
	if _, err := parseHexColor(s.ArrowColor); err != nil {
		return fmt.Errorf("arrow_color: %w", err)
	}
	return nil
}

// parseHexColor parses "#rrggbb" into an opaque RGBA color.
func parseHexColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q must look like #rrggbb", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q must look like #rrggbb", s)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
