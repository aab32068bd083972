package dto

import "encoding/json"

// RenderRequest carries the two route data documents in one body:
// the locations document (RouteInput format, validated by internal/input)
// and the per-vehicle visiting orders.
type RenderRequest struct {
	Locations json.RawMessage `json:"locations"`
	Routes    [][]int         `json:"routes"`
}
