package solar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar_geometry/internal/model"
)

func TestAnalyzeKeyDates_NYC(t *testing.T) {
	m := New()
	nyc := model.Location{Latitude: 40.7128, Longitude: -74.0060}
	south35 := model.Orientation{TiltDeg: 35, AzimuthDeg: 180}

	analyses, err := m.AnalyzeKeyDates(nyc, south35, 2023)
	require.NoError(t, err)
	require.Len(t, analyses, 4)

	assert.Equal(t, "2023-12-21", analyses[0].Date)
	assert.Equal(t, "2023-03-20", analyses[1].Date)
	assert.Equal(t, "2023-06-21", analyses[2].Date)
	assert.Equal(t, "2023-09-23", analyses[3].Date)

	winter, summer := analyses[0], analyses[2]
	assert.Greater(t, summer.DailyEnergyKWhM2, winter.DailyEnergyKWhM2,
		"clear-sky summer day outproduces winter")
	assert.Greater(t, winter.MinZenithDeg, summer.MinZenithDeg,
		"winter noon sun sits lower")

	for _, a := range analyses {
		assert.GreaterOrEqual(t, a.SunriseHour, 0, "%s", a.Date)
		assert.Less(t, a.SunriseHour, a.SunsetHour, "%s", a.Date)
		assert.LessOrEqual(t, a.SunsetHour, 23, "%s", a.Date)
		assert.Greater(t, a.DailyEnergyKWhM2, 0.0, "%s", a.Date)
	}

	// Summer daylight lasts longer than winter daylight.
	assert.Greater(t, summer.SunsetHour-summer.SunriseHour, winter.SunsetHour-winter.SunriseHour)
}

func TestAnalyzeKeyDates_HighArctic(t *testing.T) {
	m := New()
	svalbard := model.Location{Latitude: 78.22, Longitude: 15.64}

	analyses, err := m.AnalyzeKeyDates(svalbard, model.Orientation{TiltDeg: 60, AzimuthDeg: 180}, 2023)
	require.NoError(t, err)
	require.Len(t, analyses, 4)

	winter := analyses[0]
	assert.Equal(t, -1, winter.SunriseHour, "polar night has no sunrise")
	assert.Equal(t, -1, winter.SunsetHour)
	assert.Zero(t, winter.DailyEnergyKWhM2)

	summer := analyses[2]
	assert.Equal(t, 0, summer.SunriseHour, "midnight sun never sets")
	assert.Equal(t, 23, summer.SunsetHour)
	assert.Greater(t, summer.DailyEnergyKWhM2, 0.0)
}
