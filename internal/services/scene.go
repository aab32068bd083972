package services

import (
	"errors"
	"fmt"

	"github.com/Scrubzie/route-visualiser/internal/domain"
	"github.com/Scrubzie/route-visualiser/internal/input"
	"github.com/Scrubzie/route-visualiser/internal/projection"
)

// BuildScene projects every order onto the render plane and expands the
// routes into directed planar edges between consecutive stops.
//
// Every order id referenced by a route must exist in the locations data;
// a dangling reference is reported as an error rather than silently
// producing a partial figure. Routes with fewer than two stops contribute
// no edges.
func BuildScene(in *input.RouteInput, routes []domain.Route) (*domain.Scene, error) {
	if in == nil {
		return nil, errors.New("build scene: route input must be non-nil")
	}

	byID := make(map[int]domain.PlanarPoint, len(in.Orders))
	points := make([]domain.ScenePoint, 0, len(in.Orders))
	for _, o := range in.Orders {
		p := projection.Project(o.Coordinates())
		byID[o.OrderID] = p
		points = append(points, domain.ScenePoint{OrderID: o.OrderID, Pos: p})
	}

	// Check references up front so single-stop routes are covered too.
	for ri, route := range routes {
		for _, id := range route {
			if _, ok := byID[id]; !ok {
				return nil, fmt.Errorf("build scene: route %d references unknown order_id %d", ri, id)
			}
		}
	}

	var edges []domain.Edge
	for _, route := range routes {
		for i := 0; i < len(route)-1; i++ {
			edges = append(edges, domain.Edge{
				From: byID[route[i]],
				To:   byID[route[i+1]],
			})
		}
	}

	return &domain.Scene{Points: points, Edges: edges}, nil
}

// BuildRouteScene builds a scene for a single vehicle's route, used when
// saving one figure per route.
func BuildRouteScene(in *input.RouteInput, route domain.Route) (*domain.Scene, error) {
	scene, err := BuildScene(in, []domain.Route{route})
	if err != nil {
		return nil, fmt.Errorf("build route scene: %w", err)
	}
	return scene, nil
}
