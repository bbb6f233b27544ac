package optimizer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar_geometry/internal/model"
	"solar_geometry/internal/optimizer"
	"solar_geometry/internal/solar"
)

var refTime = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

func TestOptimize_ClearSkyNewYork(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-year grid search in short mode")
	}

	opt := optimizer.New(solar.New(), optimizer.WithWorkers(4))
	nyc := model.Location{Latitude: 40.7128, Longitude: -74.0060}

	result, err := opt.Optimize(nyc, 0, refTime)
	require.NoError(t, err)

	// A mid-latitude site wants a tilt in the same ballpark as its latitude
	// and a panel facing close to due south.
	assert.GreaterOrEqual(t, result.OptimalTilt, 15.0)
	assert.LessOrEqual(t, result.OptimalTilt, 55.0)
	assert.GreaterOrEqual(t, result.OptimalAzimuth, 135.0)
	assert.LessOrEqual(t, result.OptimalAzimuth, 225.0)
	assert.Greater(t, result.AnnualIrradianceKWhM2, 1000.0)
	assert.Less(t, result.AnnualIrradianceKWhM2, 4000.0)
}

func TestOptimize_ClearSkySydney(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-year grid search in short mode")
	}

	opt := optimizer.New(solar.New(), optimizer.WithWorkers(4))
	sydney := model.Location{Latitude: -33.8688, Longitude: 151.2093}

	result, err := opt.Optimize(sydney, 0, refTime)
	require.NoError(t, err)

	// Southern hemisphere panels face north.
	inBand := result.OptimalAzimuth >= 270 || result.OptimalAzimuth <= 90
	assert.True(t, inBand, "azimuth %v should be in the north-facing band", result.OptimalAzimuth)
	nearNorth := result.OptimalAzimuth >= 315 || result.OptimalAzimuth <= 45
	assert.True(t, nearNorth, "azimuth %v should be close to due north", result.OptimalAzimuth)
	assert.GreaterOrEqual(t, result.OptimalTilt, 10.0)
	assert.LessOrEqual(t, result.OptimalTilt, 50.0)
}

func TestOptimize_SteepSlopeCapsPanelTilt(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-year grid search in short mode")
	}

	opt := optimizer.New(solar.New(), optimizer.WithWorkers(4))
	nyc := model.Location{Latitude: 40.7128, Longitude: -74.0060}

	// A 60° upward slope shifts the candidate set to {0..30}; the panel
	// cannot reach the unconstrained optimum anymore.
	sloped, err := opt.Optimize(nyc, 60, refTime)
	require.NoError(t, err)

	assert.LessOrEqual(t, sloped.OptimalTilt, 30.0)
	assert.Equal(t, sloped.OptimalTilt+60, sloped.EffectiveTilt)
	assert.Greater(t, sloped.AnnualIrradianceKWhM2, 0.0)
}
