package projection

import (
	"math"

	"github.com/Scrubzie/route-visualiser/internal/domain"
)

const (
	// EarthRadiusKm is the mean Earth radius used for distance scaling.
	EarthRadiusKm = 6371.0

	// ReferenceLatitude is the parallel (in degrees) at which east-west
	// distances are true. The projection is tuned for the Perth metro
	// data sets this tool is run against.
	ReferenceLatitude = -31.952258602714696
)

// Longitude scale factor, fixed by the reference latitude.
var lonScale = math.Cos(radians(ReferenceLatitude))

// Project maps geographic coordinates onto a 2D plane using an
// approximation of the equirectangular projection.
//
// Latitude maps linearly to kilometres north of the equator; longitude is
// compressed by the cosine of the reference latitude so that local
// east-west distances are approximately correct. The result is not a
// faithful map projection far from the reference parallel, which is fine
// for visual inspection of a single metro area.
func Project(c domain.Coordinates) domain.PlanarPoint {
	return domain.PlanarPoint{
		X: EarthRadiusKm * radians(c.Lon) * lonScale,
		Y: EarthRadiusKm * radians(c.Lat),
	}
}

// ProjectAll projects a batch of coordinates, preserving order.
func ProjectAll(coords []domain.Coordinates) []domain.PlanarPoint {
	out := make([]domain.PlanarPoint, len(coords))
	for i, c := range coords {
		out[i] = Project(c)
	}
	return out
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
