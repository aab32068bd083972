package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Scrubzie/route-visualiser/internal/adapters/files"
	"github.com/Scrubzie/route-visualiser/internal/adapters/plotimg"
	"github.com/Scrubzie/route-visualiser/internal/config"
	"github.com/Scrubzie/route-visualiser/internal/domain"
	"github.com/Scrubzie/route-visualiser/internal/input"
	"github.com/Scrubzie/route-visualiser/internal/platform/obs"
	"github.com/Scrubzie/route-visualiser/internal/ports"
	"github.com/Scrubzie/route-visualiser/internal/services"
)

var (
	renderOut      string
	renderFormat   string
	renderStyle    string
	renderSplitDir string
)

var renderCmd = &cobra.Command{
	Use:   "render <locations.json> <routes.json>",
	Short: "Render order locations and vehicle routes to an image",
	Long: `Loads a locations file (RouteInput format) and a routes file (an array of
arrays of order ids), validates both, projects the coordinates, and writes
the figure. Paths are resolved against DATA_DIR when it is set.`,
	Args: cobra.ExactArgs(2),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default routes.<format>)")
	renderCmd.Flags().StringVar(&renderFormat, "format", plotimg.FormatPNG, "output format: png or svg")
	renderCmd.Flags().StringVar(&renderStyle, "style", "", "YAML style file overriding figure defaults")
	renderCmd.Flags().StringVar(&renderSplitDir, "split-dir", "", "write one figure per route into this directory")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var src ports.RouteSource = files.NewJSONRouteSource(resolveDataPath(args[0]), resolveDataPath(args[1]))

	in, err := src.LoadRouteInput(ctx)
	if err != nil {
		return err
	}
	routes, err := src.LoadRoutes(ctx)
	if err != nil {
		return err
	}

	style := plotimg.DefaultStyle()
	if renderStyle != "" {
		style, err = plotimg.LoadStyle(renderStyle)
		if err != nil {
			return err
		}
	}

	renderer, err := plotimg.NewRenderer(renderFormat, style)
	if err != nil {
		return err
	}

	if renderSplitDir != "" {
		return renderPerRoute(ctx, renderer, in, routes)
	}

	scene, err := services.BuildScene(in, routes)
	if err != nil {
		return err
	}

	out := renderOut
	if out == "" {
		out = "routes." + renderFormat
	}

	if err := writeFigure(ctx, renderer, scene, out); err != nil {
		return err
	}

	log.Printf("Figure written path=%s orders=%d edges=%d", out, len(scene.Points), len(scene.Edges))
	return nil
}

// renderPerRoute saves one numbered figure per vehicle route,
// each showing all order markers but only that vehicle's legs.
func renderPerRoute(ctx context.Context, renderer ports.SceneRenderer, in *input.RouteInput, routes []domain.Route) error {
	if err := os.MkdirAll(renderSplitDir, 0o755); err != nil {
		return fmt.Errorf("render per route: create %q: %w", renderSplitDir, err)
	}

	for i, route := range routes {
		scene, err := services.BuildRouteScene(in, route)
		if err != nil {
			return err
		}

		path := filepath.Join(renderSplitDir, fmt.Sprintf("route_%02d.%s", i, renderFormat))
		if err := writeFigure(ctx, renderer, scene, path); err != nil {
			return err
		}

		log.Printf("Figure written path=%s route=%d stops=%d", path, i, len(route))
	}

	return nil
}

func resolveDataPath(path string) string {
	dataDir := config.Get("DATA_DIR", "")
	if dataDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dataDir, path)
}

func writeFigure(ctx context.Context, renderer ports.SceneRenderer, scene *domain.Scene, path string) (err error) {
	defer obs.Time(ctx, "write figure")(&err)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write figure: create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("write figure: close %q: %w", path, cerr)
		}
	}()

	if err := renderer.Render(ctx, scene, f); err != nil {
		return fmt.Errorf("write figure: %q: %w", path, err)
	}

	return nil
}
