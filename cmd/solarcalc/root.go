package main

import (
	"os"

	"github.com/spf13/cobra"

	"solar_geometry/internal/config"
	"solar_geometry/internal/optimizer"
	"solar_geometry/internal/solar"
)

var (
	cfgFile   string
	latitude  float64
	longitude float64
	offset    float64
)

var rootCmd = &cobra.Command{
	Use:   "solarcalc",
	Short: "Estimate optimal fixed solar panel orientation",
	Long: `Solarcalc finds the fixed panel tilt and azimuth that maximize annual
clear-sky irradiance for a location, accounting for ground slope. It can also
print raw solar position data and a seasonal breakdown.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().Float64Var(&latitude, "lat", 0, "latitude in degrees")
	rootCmd.PersistentFlags().Float64Var(&longitude, "lon", 0, "longitude in degrees")
}

func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

// buildOptimizer wires the clear-sky model and grid search from config.
func buildOptimizer() (*optimizer.Optimizer, *solar.Model, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	m := solar.New()
	m.Albedo = cfg.GetAlbedo()
	m.AltitudeKm = cfg.GetAltitudeKm()

	opt := optimizer.New(m,
		optimizer.WithWorkers(cfg.GetWorkers()),
		optimizer.WithSteps(cfg.GetTiltStepDeg(), cfg.GetAzimuthStepDeg()),
	)
	return opt, m, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
