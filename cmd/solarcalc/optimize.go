package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"solar_geometry/internal/model"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Find the orientation maximizing annual irradiance",
	RunE:  runOptimize,
}

func init() {
	optimizeCmd.Flags().Float64Var(&offset, "offset", 0, "ground slope offset in degrees (positive = upward slope)")
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	if offset < -90 || offset > 90 {
		return fmt.Errorf("offset must be between -90 and 90 degrees, got %.1f", offset)
	}

	opt, _, err := buildOptimizer()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	loc := model.Location{Latitude: latitude, Longitude: longitude}
	fmt.Printf("Optimizing orientation for (%.4f, %.4f), ground slope %.1f°...\n", loc.Latitude, loc.Longitude, offset)

	result, err := opt.Optimize(loc, offset, time.Now())
	if err != nil {
		return fmt.Errorf("optimizing: %w", err)
	}

	fmt.Printf("  Optimal panel tilt:  %.1f°\n", result.OptimalTilt)
	fmt.Printf("  Optimal azimuth:     %.1f°\n", result.OptimalAzimuth)
	fmt.Printf("  Effective tilt:      %.1f°\n", result.EffectiveTilt)
	fmt.Printf("  Annual irradiance:   %s kWh/m²\n", humanize.CommafWithDigits(result.AnnualIrradianceKWhM2, 1))
	return nil
}
