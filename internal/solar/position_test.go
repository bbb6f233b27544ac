package solar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"solar_geometry/internal/model"
)

func TestDeclination(t *testing.T) {
	tests := []struct {
		name     string
		day      int
		expected float64
		delta    float64
	}{
		{"spring equinox", 81, 0, 0.5},
		{"summer solstice", 172, 23.45, 0.1},
		{"winter solstice", 355, -23.45, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Declination(tt.day), tt.delta)
		})
	}
}

func TestDeclinationBounds(t *testing.T) {
	for day := 1; day <= 365; day++ {
		d := Declination(day)
		assert.GreaterOrEqual(t, d, -23.45)
		assert.LessOrEqual(t, d, 23.45)
	}
}

func TestEquationOfTimeBounds(t *testing.T) {
	// EoT stays within roughly ±17 minutes over the year.
	for day := 1; day <= 365; day++ {
		assert.Less(t, absf(EquationOfTime(day)), 17.0, "day %d", day)
	}
}

func TestHourAngle(t *testing.T) {
	// 15 degrees per hour, whatever the day's time correction is.
	diff := HourAngle(13, 81, 0, 0) - HourAngle(12, 81, 0, 0)
	assert.InDelta(t, 15.0, diff, 1e-9)

	// At the zone meridian the correction is just the equation of time, so
	// noon is within a few degrees of solar noon.
	assert.InDelta(t, 0.0, HourAngle(12, 81, 0, 0), 4.0)
}

func TestPositionAt_EquatorEquinox(t *testing.T) {
	loc := model.Location{Latitude: 0, Longitude: 0}
	day := time.Date(2024, time.March, 21, 0, 0, 0, 0, time.UTC)

	minZenith := 180.0
	for h := 0; h < 24; h++ {
		pos := PositionAt(loc, day.Add(time.Duration(h)*time.Hour))
		if pos.ZenithDeg < minZenith {
			minZenith = pos.ZenithDeg
		}
	}

	// The sun passes nearly overhead at the equator on the equinox.
	assert.Less(t, minZenith, 5.0)
}

func TestPositionAt_MorningEastAfternoonWest(t *testing.T) {
	loc := model.Location{Latitude: 40, Longitude: 0}
	day := time.Date(2023, time.June, 21, 0, 0, 0, 0, time.UTC)

	morning := PositionAt(loc, day.Add(9*time.Hour))
	assert.Greater(t, morning.AzimuthDeg, 60.0)
	assert.Less(t, morning.AzimuthDeg, 180.0, "morning sun should be east of south")

	afternoon := PositionAt(loc, day.Add(15*time.Hour))
	assert.Greater(t, afternoon.AzimuthDeg, 180.0, "afternoon sun should be west of south")
	assert.Less(t, afternoon.AzimuthDeg, 300.0)
}

func TestPositionAt_NightBelowHorizon(t *testing.T) {
	loc := model.Location{Latitude: 40, Longitude: 0}
	midnight := time.Date(2023, time.June, 21, 0, 0, 0, 0, time.UTC)

	pos := PositionAt(loc, midnight)
	assert.Greater(t, pos.ZenithDeg, 90.0)
	assert.Less(t, pos.ElevationDeg, 0.0)
}

func TestPositionAt_PolesDefined(t *testing.T) {
	// Degenerate locations still yield finite positions.
	for _, lat := range []float64{90, -90} {
		loc := model.Location{Latitude: lat, Longitude: 0}
		pos := PositionAt(loc, time.Date(2023, time.June, 21, 12, 0, 0, 0, time.UTC))
		assert.False(t, isNaN(pos.ZenithDeg), "lat %v", lat)
		assert.False(t, isNaN(pos.AzimuthDeg), "lat %v", lat)
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func isNaN(v float64) bool { return v != v }
