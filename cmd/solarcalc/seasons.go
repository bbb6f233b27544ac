package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"solar_geometry/internal/model"
)

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "Show daily energy at the optimal orientation on solstices and equinoxes",
	Long: `Finds the optimal orientation for the location, then evaluates it on last
year's winter solstice, spring equinox, summer solstice, and fall equinox.`,
	RunE: runSeasons,
}

func init() {
	seasonsCmd.Flags().Float64Var(&offset, "offset", 0, "ground slope offset in degrees (positive = upward slope)")
	rootCmd.AddCommand(seasonsCmd)
}

func runSeasons(cmd *cobra.Command, args []string) error {
	if offset < -90 || offset > 90 {
		return fmt.Errorf("offset must be between -90 and 90 degrees, got %.1f", offset)
	}

	opt, m, err := buildOptimizer()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	loc := model.Location{Latitude: latitude, Longitude: longitude}
	result, err := opt.Optimize(loc, offset, time.Now())
	if err != nil {
		return fmt.Errorf("optimizing: %w", err)
	}

	orientation := model.Orientation{TiltDeg: result.OptimalTilt, AzimuthDeg: result.OptimalAzimuth}
	analyses, err := m.AnalyzeKeyDates(loc, orientation, time.Now().Year()-1)
	if err != nil {
		return fmt.Errorf("analyzing key dates: %w", err)
	}

	fmt.Printf("Seasonal analysis for (%.4f, %.4f) at tilt %.1f°, azimuth %.1f°:\n",
		loc.Latitude, loc.Longitude, orientation.TiltDeg, orientation.AzimuthDeg)
	for _, a := range analyses {
		daylight := "sun below horizon all day"
		if a.SunriseHour >= 0 {
			daylight = fmt.Sprintf("daylight %02d:00-%02d:00", a.SunriseHour, a.SunsetHour)
		}
		fmt.Printf("  %s: %s kWh/m²/day, min zenith %.1f°, %s\n",
			a.Date, humanize.CommafWithDigits(a.DailyEnergyKWhM2, 2), a.MinZenithDeg, daylight)
	}
	return nil
}
