package model

import (
	"fmt"
	"math"
	"time"
)

// Location is a point on the globe in decimal degrees.
type Location struct {
	Latitude  float64
	Longitude float64
}

// TimezoneOffsetHours derives a coarse timezone from the longitude, based on
// the earth rotating 15 degrees per hour. This is not a political timezone
// lookup; it only aligns the sampling grid to local solar time.
func (l Location) TimezoneOffsetHours() int {
	return int(math.Floor(l.Longitude / 15))
}

// TimezoneLocation returns a fixed-offset time.Location for the coarse
// timezone of this location.
func (l Location) TimezoneLocation() *time.Location {
	offset := l.TimezoneOffsetHours()
	return time.FixedZone(fmt.Sprintf("UTC%+d", offset), offset*3600)
}

// Orientation is a fixed panel orientation: tilt from horizontal and
// compass azimuth (degrees clockwise from north).
type Orientation struct {
	TiltDeg    float64
	AzimuthDeg float64
}

// SolarSample holds the sun's position and clear-sky irradiance components
// for a single timestamp.
type SolarSample struct {
	Timestamp time.Time
	// ApparentZenithDeg is the angle from vertical to the sun, degrees.
	// Above 90 means the sun is below the horizon.
	ApparentZenithDeg float64
	// AzimuthDeg is the sun's compass direction, degrees clockwise from north.
	AzimuthDeg float64
	// Clear-sky irradiance components, W/m².
	DNI float64 // direct normal
	GHI float64 // global horizontal
	DHI float64 // diffuse horizontal
}

// OptimizationResult is the outcome of a single orientation search.
type OptimizationResult struct {
	OptimalTilt           float64 `json:"optimal_tilt"`
	OptimalAzimuth        float64 `json:"optimal_azimuth"`
	EffectiveTilt         float64 `json:"effective_tilt"`
	GroundSlopeOffset     float64 `json:"ground_slope_offset"`
	AnnualIrradianceKWhM2 float64 `json:"annual_irradiance_kwh_m2"`
}
