package input

import (
	"strings"
	"testing"
)

const validLocations = `{
	"vehicle_cluster_config": {"type": "kmeans", "k": 3, "seed": 42},
	"solver_config": {"type": "brute_force", "distance": "cartesian", "max_solve_size": 5},
	"orders": [
		{"order_id": 0, "lat": -31.899364, "lon": 115.801288},
		{"order_id": 1, "lat": -31.952258, "lon": 115.860500},
		{"order_id": 16, "lat": -32.005000, "lon": 115.900000}
	]
}`

func TestParseValid(t *testing.T) {
	in, err := Parse([]byte(validLocations))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(in.Orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(in.Orders))
	}
	if in.Orders[2].OrderID != 16 {
		t.Errorf("order_id = %d, want 16", in.Orders[2].OrderID)
	}

	if in.VehicleClusterConfig.Type != "kmeans" {
		t.Errorf("cluster type = %q, want kmeans", in.VehicleClusterConfig.Type)
	}
	// Extra clustering parameters ride along untyped.
	if got := in.VehicleClusterConfig.Params["k"]; got != float64(3) {
		t.Errorf("cluster param k = %v, want 3", got)
	}

	if in.SolverConfig.Distance != "cartesian" {
		t.Errorf("solver distance = %q, want cartesian", in.SolverConfig.Distance)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "duplicate order_id",
			body: `{
				"vehicle_cluster_config": {"type": "kmeans"},
				"solver_config": {"type": "brute_force", "distance": "cartesian", "max_solve_size": 5},
				"orders": [
					{"order_id": 1, "lat": 0, "lon": 0},
					{"order_id": 1, "lat": 1, "lon": 1}
				]
			}`,
			wantErr: "order_id 1 is not unique",
		},
		{
			name: "latitude out of range",
			body: `{
				"vehicle_cluster_config": {"type": "kmeans"},
				"solver_config": {"type": "brute_force", "distance": "cartesian", "max_solve_size": 5},
				"orders": [{"order_id": 1, "lat": 90.5, "lon": 0}]
			}`,
			wantErr: "Lat",
		},
		{
			name: "longitude out of range",
			body: `{
				"vehicle_cluster_config": {"type": "kmeans"},
				"solver_config": {"type": "brute_force", "distance": "cartesian", "max_solve_size": 5},
				"orders": [{"order_id": 1, "lat": 0, "lon": -180.01}]
			}`,
			wantErr: "Lon",
		},
		{
			name: "negative order_id",
			body: `{
				"vehicle_cluster_config": {"type": "kmeans"},
				"solver_config": {"type": "brute_force", "distance": "cartesian", "max_solve_size": 5},
				"orders": [{"order_id": -1, "lat": 0, "lon": 0}]
			}`,
			wantErr: "OrderID",
		},
		{
			name: "empty orders",
			body: `{
				"vehicle_cluster_config": {"type": "kmeans"},
				"solver_config": {"type": "brute_force", "distance": "cartesian", "max_solve_size": 5},
				"orders": []
			}`,
			wantErr: "Orders",
		},
		{
			name: "missing solver config",
			body: `{
				"vehicle_cluster_config": {"type": "kmeans"},
				"orders": [{"order_id": 1, "lat": 0, "lon": 0}]
			}`,
			wantErr: "SolverConfig",
		},
		{
			name: "zero max_solve_size",
			body: `{
				"vehicle_cluster_config": {"type": "kmeans"},
				"solver_config": {"type": "brute_force", "distance": "cartesian", "max_solve_size": 0},
				"orders": [{"order_id": 1, "lat": 0, "lon": 0}]
			}`,
			wantErr: "MaxSolveSize",
		},
		{
			name:    "not json",
			body:    `{"orders": [`,
			wantErr: "parse route input",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.body))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseBoundaryCoordinatesAreValid(t *testing.T) {
	body := `{
		"vehicle_cluster_config": {"type": "kmeans"},
		"solver_config": {"type": "brute_force", "distance": "cartesian", "max_solve_size": 1},
		"orders": [
			{"order_id": 0, "lat": -90, "lon": -180},
			{"order_id": 1, "lat": 90, "lon": 180}
		]
	}`

	if _, err := Parse([]byte(body)); err != nil {
		t.Fatalf("boundary coordinates rejected: %v", err)
	}
}

func TestParseIgnoresUnknownTopLevelKeys(t *testing.T) {
	body := `{
		"vehicle_cluster_config": {"type": "kmeans"},
		"solver_config": {"type": "brute_force", "distance": "cartesian", "max_solve_size": 1},
		"orders": [{"order_id": 0, "lat": 0, "lon": 0}],
		"exported_at": "2026-08-30T10:00:00Z"
	}`

	if _, err := Parse([]byte(body)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseRoutes(t *testing.T) {
	routes, err := ParseRoutes([]byte(`[[3, 0, 1], [16], []]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(routes) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(routes))
	}
	if len(routes[0]) != 3 || routes[0][0] != 3 {
		t.Errorf("first route = %v, want [3 0 1]", routes[0])
	}
	if len(routes[2]) != 0 {
		t.Errorf("third route should be empty, got %v", routes[2])
	}
}

func TestParseRoutesRejectsNonArray(t *testing.T) {
	if _, err := ParseRoutes([]byte(`{"routes": []}`)); err == nil {
		t.Fatal("expected error for non-array routes document")
	}
}
