package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/Scrubzie/route-visualiser/internal/api/dto"
	"github.com/Scrubzie/route-visualiser/internal/domain"
	"github.com/Scrubzie/route-visualiser/internal/input"
	"github.com/Scrubzie/route-visualiser/internal/platform/obs"
	"github.com/Scrubzie/route-visualiser/internal/ports"
	"github.com/Scrubzie/route-visualiser/internal/services"
)

var contentTypes = map[string]string{
	"png": "image/png",
	"svg": "image/svg+xml",
}

// RenderHandler turns posted route data into an encoded figure.
type RenderHandler struct {
	// Renderers keyed by format ("png", "svg").
	Renderers map[string]ports.SceneRenderer
}

// Render validates the posted documents, projects them, and responds with
// the rendered figure in the requested format (default png).
func (h *RenderHandler) Render(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "png"
	}

	renderer, ok := h.Renderers[format]
	if !ok {
		writeError(w, r, http.StatusBadRequest, "format must be one of: png, svg")
		return
	}

	var req dto.RenderRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if len(req.Locations) == 0 {
		writeError(w, r, http.StatusBadRequest, "locations is required")
		return
	}

	in, err := input.Parse(req.Locations)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	routes := make([]domain.Route, len(req.Routes))
	for i, rt := range req.Routes {
		routes[i] = domain.Route(rt)
	}

	scene, err := services.BuildScene(in, routes)
	if err != nil {
		// Route data referencing unknown orders is a client problem.
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// Render into a buffer first so failures become a JSON error
	// instead of a truncated image body.
	var buf bytes.Buffer
	renderErr := func() (err error) {
		defer obs.Time(r.Context(), "render figure")(&err)
		return renderer.Render(r.Context(), scene, &buf)
	}()
	if renderErr != nil {
		log.Printf("render failed: %v", renderErr)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("write figure failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}
