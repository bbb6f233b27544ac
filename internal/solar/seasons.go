package solar

import (
	"time"

	"solar_geometry/internal/model"
)

// DayAnalysis summarizes solar conditions over one calendar day for a fixed
// panel orientation.
type DayAnalysis struct {
	Date             string  `json:"date"`
	DailyEnergyKWhM2 float64 `json:"daily_energy_kwh_m2"`
	MaxZenithDeg     float64 `json:"max_zenith_angle"`
	MinZenithDeg     float64 `json:"min_zenith_angle"`
	// SunriseHour and SunsetHour are the first and last local hours with the
	// sun above the horizon, or -1 during polar night.
	SunriseHour int `json:"sunrise_hour"`
	SunsetHour  int `json:"sunset_hour"`
}

// AnalyzeKeyDates evaluates the solstices and equinoxes of the given year for
// a location and panel orientation: daily plane-of-array energy, zenith
// extremes, and daylight hours. Order follows the seasons starting from the
// winter solstice.
func (m *Model) AnalyzeKeyDates(loc model.Location, o model.Orientation, year int) ([]DayAnalysis, error) {
	zone := loc.TimezoneLocation()
	days := []time.Time{
		time.Date(year, time.December, 21, 0, 0, 0, 0, zone),
		time.Date(year, time.March, 20, 0, 0, 0, 0, zone),
		time.Date(year, time.June, 21, 0, 0, 0, 0, zone),
		time.Date(year, time.September, 23, 0, 0, 0, 0, zone),
	}

	analyses := make([]DayAnalysis, 0, len(days))
	for _, day := range days {
		times := make([]time.Time, 24)
		for h := range times {
			times[h] = day.Add(time.Duration(h) * time.Hour)
		}

		samples, err := m.Samples(loc, times)
		if err != nil {
			return nil, err
		}

		a := DayAnalysis{
			Date:        day.Format("2006-01-02"),
			SunriseHour: -1,
			SunsetHour:  -1,
		}
		var sumWh float64
		for h, s := range samples {
			sumWh += m.PlaneOfArray(o.TiltDeg, o.AzimuthDeg, s)
			if h == 0 || s.ApparentZenithDeg > a.MaxZenithDeg {
				a.MaxZenithDeg = s.ApparentZenithDeg
			}
			if h == 0 || s.ApparentZenithDeg < a.MinZenithDeg {
				a.MinZenithDeg = s.ApparentZenithDeg
			}
			if s.ApparentZenithDeg < 90 {
				if a.SunriseHour < 0 {
					a.SunriseHour = h
				}
				a.SunsetHour = h
			}
		}
		a.DailyEnergyKWhM2 = sumWh / 1000
		analyses = append(analyses, a)
	}

	return analyses, nil
}
