package input

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Scrubzie/route-visualiser/internal/domain"
)

// Shared validator instance; struct tag rules are stateless.
var validate = validator.New(validator.WithRequiredStructEnabled())

// A single delivery location record as it appears in the locations file.
type OrderInput struct {
	OrderID int     `json:"order_id" validate:"gte=0"`
	Lat     float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon     float64 `json:"lon" validate:"gte=-180,lte=180"`
}

// Coordinates returns the record's geographic position.
func (o OrderInput) Coordinates() domain.Coordinates {
	return domain.Coordinates{Lat: o.Lat, Lon: o.Lon}
}

// Clusterer settings. Parameters depend heavily on the clusterer type, so
// everything beyond the type tag is kept as-is under Params.
type ClusterConfig struct {
	Type   string         `json:"type" validate:"required"`
	Params map[string]any `json:"-"`
}

func (c *ClusterConfig) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("cluster config: %w", err)
	}

	if t, ok := raw["type"]; ok {
		if err := json.Unmarshal(t, &c.Type); err != nil {
			return fmt.Errorf("cluster config: type: %w", err)
		}
		delete(raw, "type")
	}

	if len(raw) == 0 {
		return nil
	}

	c.Params = make(map[string]any, len(raw))
	for k, v := range raw {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return fmt.Errorf("cluster config: param %q: %w", k, err)
		}
		c.Params[k] = val
	}

	return nil
}

// Solver settings carried alongside the order data.
type SolverConfig struct {
	Type         string `json:"type" validate:"required"`
	Distance     string `json:"distance" validate:"required"`
	MaxSolveSize int    `json:"max_solve_size" validate:"gte=1"`
}

// RouteInput is the full locations file: clusterer and solver settings
// plus the delivery locations to visualise.
type RouteInput struct {
	VehicleClusterConfig ClusterConfig `json:"vehicle_cluster_config" validate:"required"`
	SolverConfig         SolverConfig  `json:"solver_config" validate:"required"`
	Orders               []OrderInput  `json:"orders" validate:"required,min=1,dive"`
}

// Validate enforces the schema rules on an already-decoded RouteInput:
// field ranges via struct tags, plus order_id uniqueness.
func (in *RouteInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("validate route input: %w", err)
	}

	seen := make(map[int]struct{}, len(in.Orders))
	for _, o := range in.Orders {
		if _, ok := seen[o.OrderID]; ok {
			return fmt.Errorf("validate route input: order_id %d is not unique", o.OrderID)
		}
		seen[o.OrderID] = struct{}{}
	}

	return nil
}

// Parse decodes and validates a locations file.
// Unknown top-level keys are ignored so that richer exports remain loadable.
func Parse(data []byte) (*RouteInput, error) {
	var in RouteInput
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parse route input: %w", err)
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	return &in, nil
}

// ParseRoutes decodes a routes file: an array of arrays of order ids,
// one inner array per vehicle in visiting order. Referential checks
// against the locations file happen at scene-building time.
func ParseRoutes(data []byte) ([]domain.Route, error) {
	var raw [][]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse routes: %w", err)
	}

	routes := make([]domain.Route, len(raw))
	for i, r := range raw {
		routes[i] = domain.Route(r)
	}

	return routes, nil
}
