package plotimg

import (
	"context"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/Scrubzie/route-visualiser/internal/domain"
)

// Supported output encodings.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Renderer draws projected scenes with gonum/plot: one scatter marker per
// order and one directed arrow per route leg, on a labelled, gridded canvas.
type Renderer struct {
	format string
	style  Style

	arrowStyle draw.LineStyle
}

// NewRenderer builds a renderer for the given format ("png" or "svg").
func NewRenderer(format string, style Style) (*Renderer, error) {
	if format != FormatPNG && format != FormatSVG {
		return nil, fmt.Errorf("new renderer: unsupported format %q", format)
	}
	if err := style.validate(); err != nil {
		return nil, fmt.Errorf("new renderer: %w", err)
	}

	arrowColor, err := parseHexColor(style.ArrowColor)
	if err != nil {
		return nil, fmt.Errorf("new renderer: %w", err)
	}

	return &Renderer{
		format: format,
		style:  style,
		arrowStyle: draw.LineStyle{
			Color: arrowColor,
			Width: vg.Points(style.ArrowWidthPts),
		},
	}, nil
}

// Render encodes the scene and writes the figure to w.
func (r *Renderer) Render(ctx context.Context, scene *domain.Scene, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if scene == nil {
		return fmt.Errorf("render: scene must be non-nil")
	}

	p, err := r.buildPlot(scene)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if err := r.encode(p, w); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

func (r *Renderer) buildPlot(scene *domain.Scene) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = r.style.Title
	p.X.Label.Text = "Longitude (km)"
	p.Y.Label.Text = "Latitude (km)"

	if r.style.Grid {
		p.Add(plotter.NewGrid())
	}

	xys := make(plotter.XYs, len(scene.Points))
	for i, pt := range scene.Points {
		xys[i] = plotter.XY{X: pt.Pos.X, Y: pt.Pos.Y}
	}

	markers, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, fmt.Errorf("build scatter: %w", err)
	}

	markerColor, err := parseHexColor(r.style.MarkerColor)
	if err != nil {
		return nil, err
	}
	markers.GlyphStyle = draw.GlyphStyle{
		Color:  markerColor,
		Radius: vg.Points(r.style.MarkerRadiusPts),
		Shape:  draw.CircleGlyph{},
	}

	p.Add(markers)

	if len(scene.Edges) > 0 {
		p.Add(&arrows{
			edges:   scene.Edges,
			line:    r.arrowStyle,
			headLen: vg.Points(r.style.ArrowHeadLenPts),
		})
	}

	return p, nil
}

func (r *Renderer) encode(p *plot.Plot, w io.Writer) error {
	width := vg.Length(r.style.WidthInches) * vg.Inch
	height := vg.Length(r.style.HeightInches) * vg.Inch

	switch r.format {
	case FormatSVG:
		c := vgsvg.New(width, height)
		p.Draw(draw.New(c))
		if _, err := c.WriteTo(w); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
	default:
		c := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(r.style.DPI))
		p.Draw(draw.New(c))
		png := vgimg.PngCanvas{Canvas: c}
		if _, err := png.WriteTo(w); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
	}

	return nil
}
