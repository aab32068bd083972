package domain

// Route is the visiting order for a single vehicle, expressed as an
// ordered sequence of order identifiers. Consecutive identifiers form
// the directed legs the vehicle drives.
type Route []int

// A directed hop between two projected order locations.
type Edge struct {
	From PlanarPoint
	To   PlanarPoint
}

// A single projected order on the render plane.
type ScenePoint struct {
	OrderID int
	Pos     PlanarPoint
}

// Scene is the fully projected render model: one point per order plus a
// directed edge for every consecutive pair of stops in every route.
// It is immutable drawing data and contains no side effects.
type Scene struct {
	Points []ScenePoint
	Edges  []Edge
}
