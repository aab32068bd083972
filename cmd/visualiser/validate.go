package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Scrubzie/route-visualiser/internal/adapters/files"
	"github.com/Scrubzie/route-visualiser/internal/ports"
	"github.com/Scrubzie/route-visualiser/internal/services"
)

var validateCmd = &cobra.Command{
	Use:   "validate <locations.json> [routes.json]",
	Short: "Validate route data files without rendering",
	Long: `Checks that the locations file satisfies the input schema (ranges, unique
order ids) and, when a routes file is given, that every route only references
known order ids. Exits non-zero on the first violation.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	routesPath := ""
	if len(args) == 2 {
		routesPath = resolveDataPath(args[1])
	}
	var src ports.RouteSource = files.NewJSONRouteSource(resolveDataPath(args[0]), routesPath)

	in, err := src.LoadRouteInput(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("OK: %s (%d orders)\n", args[0], len(in.Orders))

	if routesPath == "" {
		return nil
	}

	routes, err := src.LoadRoutes(ctx)
	if err != nil {
		return err
	}

	// Scene building performs the referential checks; the scene is discarded.
	if _, err := services.BuildScene(in, routes); err != nil {
		return err
	}
	fmt.Printf("OK: %s (%d routes)\n", args[1], len(routes))

	return nil
}
