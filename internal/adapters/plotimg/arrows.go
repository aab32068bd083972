package plotimg

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Scrubzie/route-visualiser/internal/domain"
)

// Barb angle between the shaft and each head stroke.
const headAngle = 25 * math.Pi / 180

// arrows is a plot.Plotter that draws each route leg as a straight line
// with a two-stroke arrowhead at the destination end. gonum/plot has no
// built-in arrow plotter, so this implements the extension interfaces.
type arrows struct {
	edges   []domain.Edge
	line    draw.LineStyle
	headLen vg.Length
}

// Plot draws all edges in data coordinates transformed onto the canvas.
func (a *arrows) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for _, e := range a.edges {
		x0, y0 := trX(e.From.X), trY(e.From.Y)
		x1, y1 := trX(e.To.X), trY(e.To.Y)

		c.StrokeLine2(a.line, x0, y0, x1, y1)

		// Zero-length legs get a marker-only rendering; atan2(0,0) would
		// draw a degenerate head in an arbitrary direction.
		if x0 == x1 && y0 == y1 {
			continue
		}

		ang := math.Atan2(float64(y1-y0), float64(x1-x0))
		for _, barb := range []float64{ang + math.Pi - headAngle, ang + math.Pi + headAngle} {
			bx := x1 + vg.Length(float64(a.headLen)*math.Cos(barb))
			by := y1 + vg.Length(float64(a.headLen)*math.Sin(barb))
			c.StrokeLine2(a.line, x1, y1, bx, by)
		}
	}
}

// DataRange reports the extent of all edges so the axes include them even
// if a future caller plots edges without the matching scatter points.
func (a *arrows) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)

	for _, e := range a.edges {
		xmin = math.Min(xmin, math.Min(e.From.X, e.To.X))
		xmax = math.Max(xmax, math.Max(e.From.X, e.To.X))
		ymin = math.Min(ymin, math.Min(e.From.Y, e.To.Y))
		ymax = math.Max(ymax, math.Max(e.From.Y, e.To.Y))
	}

	return xmin, xmax, ymin, ymax
}
