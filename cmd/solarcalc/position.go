package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"solar_geometry/internal/model"
)

var positionDate string

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "Print hourly solar position and clear-sky irradiance for a day",
	RunE:  runPosition,
}

func init() {
	positionCmd.Flags().StringVar(&positionDate, "date", "", "date as YYYY-MM-DD (default today)")
	rootCmd.AddCommand(positionCmd)
}

func runPosition(cmd *cobra.Command, args []string) error {
	_, m, err := buildOptimizer()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	loc := model.Location{Latitude: latitude, Longitude: longitude}
	zone := loc.TimezoneLocation()

	day := time.Now().In(zone)
	if positionDate != "" {
		day, err = time.ParseInLocation("2006-01-02", positionDate, zone)
		if err != nil {
			return fmt.Errorf("parsing date: %w", err)
		}
	}

	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, zone)
	times := make([]time.Time, 24)
	for h := range times {
		times[h] = midnight.Add(time.Duration(h) * time.Hour)
	}

	samples, err := m.Samples(loc, times)
	if err != nil {
		return fmt.Errorf("computing samples: %w", err)
	}

	fmt.Printf("Solar position for (%.4f, %.4f) on %s (%s)\n", loc.Latitude, loc.Longitude, midnight.Format("2006-01-02"), zone)
	fmt.Println("hour  zenith   azimuth      DNI      GHI      DHI")
	for h, s := range samples {
		fmt.Printf("%4d  %6.1f°  %6.1f°  %7.1f  %7.1f  %7.1f\n",
			h, s.ApparentZenithDeg, s.AzimuthDeg, s.DNI, s.GHI, s.DHI)
	}
	return nil
}
