package files

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Scrubzie/route-visualiser/internal/domain"
	"github.com/Scrubzie/route-visualiser/internal/input"
)

// JSONRouteSource reads route data from flat JSON files on disk:
// a locations file in RouteInput format and an optional routes file
// holding the per-vehicle visiting orders.
type JSONRouteSource struct {
	LocationsPath string
	RoutesPath    string
}

func NewJSONRouteSource(locationsPath, routesPath string) *JSONRouteSource {
	return &JSONRouteSource{
		LocationsPath: locationsPath,
		RoutesPath:    routesPath,
	}
}

// LoadRouteInput reads and validates the locations file.
func (s *JSONRouteSource) LoadRouteInput(ctx context.Context) (*input.RouteInput, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load route input: %w", err)
	}
	if s.LocationsPath == "" {
		return nil, errors.New("load route input: locations path must be non-empty")
	}

	data, err := os.ReadFile(s.LocationsPath)
	if err != nil {
		return nil, fmt.Errorf("load route input: read %q: %w", s.LocationsPath, err)
	}

	in, err := input.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load route input: %q: %w", s.LocationsPath, err)
	}

	return in, nil
}

// LoadRoutes reads the routes file. A source configured without a routes
// file yields no routes, which renders a markers-only figure.
func (s *JSONRouteSource) LoadRoutes(ctx context.Context) ([]domain.Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load routes: %w", err)
	}
	if s.RoutesPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(s.RoutesPath)
	if err != nil {
		return nil, fmt.Errorf("load routes: read %q: %w", s.RoutesPath, err)
	}

	routes, err := input.ParseRoutes(data)
	if err != nil {
		return nil, fmt.Errorf("load routes: %q: %w", s.RoutesPath, err)
	}

	return routes, nil
}
