package ports

import (
	"context"

	"github.com/Scrubzie/route-visualiser/internal/domain"
	"github.com/Scrubzie/route-visualiser/internal/input"
)

// Port: a boundary for loading route data from a backing store.
type RouteSource interface {
	// Load and validate the delivery locations.
	LoadRouteInput(ctx context.Context) (*input.RouteInput, error)
	// Load the per-vehicle visiting orders.
	LoadRoutes(ctx context.Context) ([]domain.Route, error)
}
