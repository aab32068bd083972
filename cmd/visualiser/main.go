package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "visualiser",
	Short:         "Render delivery routes onto a 2D plane",
	Long:          "Projects order locations with an approximate equirectangular projection and draws them, with per-vehicle routes, as a figure for visual inspection.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Env defaults (DATA_DIR) may come from a local .env file.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Printf("visualiser: %v", err)
		os.Exit(1)
	}
}
