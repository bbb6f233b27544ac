package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration.
type Config struct {
	Addr string `yaml:"addr,omitempty"`

	// Clear-sky model parameters.
	Albedo     float64 `yaml:"albedo,omitempty"`
	AltitudeKm float64 `yaml:"altitude_km,omitempty"`

	// Grid search parameters.
	Workers        int     `yaml:"workers,omitempty"`
	TiltStepDeg    float64 `yaml:"tilt_step_deg,omitempty"`
	AzimuthStepDeg float64 `yaml:"azimuth_step_deg,omitempty"`
}

// Load reads the config file. A missing file yields an empty config, so
// every setting falls back to its default.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// DefaultConfigPath returns the default config file path (local directory).
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetAddr returns the listen address, defaulting to :8080.
func (c *Config) GetAddr() string {
	if c.Addr == "" {
		return ":8080"
	}
	return c.Addr
}

// GetAlbedo returns the ground reflectance, defaulting to 0.2.
func (c *Config) GetAlbedo() float64 {
	if c.Albedo <= 0 {
		return 0.2
	}
	return c.Albedo
}

// GetAltitudeKm returns the site altitude in km, defaulting to sea level.
func (c *Config) GetAltitudeKm() float64 {
	if c.AltitudeKm < 0 {
		return 0
	}
	return c.AltitudeKm
}

// GetWorkers returns the evaluation worker count, defaulting to the number
// of CPUs.
func (c *Config) GetWorkers() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// GetTiltStepDeg returns the tilt candidate step, defaulting to 5 degrees.
func (c *Config) GetTiltStepDeg() float64 {
	if c.TiltStepDeg <= 0 {
		return 5
	}
	return c.TiltStepDeg
}

// GetAzimuthStepDeg returns the azimuth candidate step, defaulting to 5 degrees.
func (c *Config) GetAzimuthStepDeg() float64 {
	if c.AzimuthStepDeg <= 0 {
		return 5
	}
	return c.AzimuthStepDeg
}
