package domain

// Immutable geographic coordinates in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// A projected position on the render plane, in kilometres.
// X carries longitude, Y carries latitude.
type PlanarPoint struct {
	X float64
	Y float64
}
