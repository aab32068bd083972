package api

import (
	"net/http"

	"github.com/Scrubzie/route-visualiser/internal/api/handlers"
	"github.com/Scrubzie/route-visualiser/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete renderers).
func NewRouter(renderers map[string]ports.SceneRenderer) http.Handler {
	mux := http.NewServeMux()

	renderHandler := &handlers.RenderHandler{Renderers: renderers}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/render", renderHandler.Render)

	return loggingMiddleware(mux)
}
