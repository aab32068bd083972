package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Scrubzie/route-visualiser/internal/adapters/plotimg"
	"github.com/Scrubzie/route-visualiser/internal/api"
	"github.com/Scrubzie/route-visualiser/internal/config"
	"github.com/Scrubzie/route-visualiser/internal/ports"
)

// main is the application composition root.
// It wires the gonum/plot renderers behind the SceneRenderer port and
// starts the HTTP render service.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")

	style := plotimg.DefaultStyle()
	if stylePath := os.Getenv("STYLE_PATH"); stylePath != "" {
		loaded, err := plotimg.LoadStyle(stylePath)
		if err != nil {
			log.Fatal(err)
		}
		style = loaded
	}

	renderers := make(map[string]ports.SceneRenderer, 2)
	for _, format := range []string{plotimg.FormatPNG, plotimg.FormatSVG} {
		r, err := plotimg.NewRenderer(format, style)
		if err != nil {
			log.Fatal(err)
		}
		renderers[format] = r
	}

	router := api.NewRouter(renderers)

	// Write timeout covers rendering large figures at 300 DPI.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
