package solar

import (
	"math"
	"time"

	"solar_geometry/internal/model"
)

const (
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
)

// Position is the sun's position in the sky at one instant.
type Position struct {
	// ZenithDeg is the angle from vertical, degrees. Above 90 means the sun
	// is below the horizon. Atmospheric refraction shifts the true value by
	// under half a degree near the horizon and is not corrected here.
	ZenithDeg float64
	// ElevationDeg is the angle above the horizon, degrees (90 - zenith).
	ElevationDeg float64
	// AzimuthDeg is the compass direction of the sun, degrees clockwise
	// from north (90 = east, 180 = south).
	AzimuthDeg float64
}

// Declination returns the solar declination angle in degrees for a day of
// the year (1-365). Zero at the equinoxes, ±23.45 at the solstices.
func Declination(day int) float64 {
	b := (360.0 / 365.0) * (float64(day) - 81.0) * degToRad
	return 23.45 * math.Sin(b)
}

// EquationOfTime returns the number of minutes solar time leads clock time
// on a given day of the year, due to orbital eccentricity and axial tilt.
func EquationOfTime(day int) float64 {
	b := (360.0 / 365.0) * (float64(day) - 81.0) * degToRad
	return 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)
}

// HourAngle returns the sun's hour angle in degrees for a local clock time.
// Zero at solar noon, negative in the morning, 15 degrees per hour.
func HourAngle(localHour float64, day int, longitude float64, tzHours float64) float64 {
	// Time correction: longitude offset from the zone meridian plus the
	// equation of time, both in minutes.
	tc := 4*(longitude-15*tzHours) + EquationOfTime(day)
	return 15 * (localHour + tc/60 - 12)
}

// PositionAt computes the sun's position for a timestamp, interpreted in the
// location's coarse longitude-derived timezone.
func PositionAt(loc model.Location, t time.Time) Position {
	local := t.In(loc.TimezoneLocation())
	day := local.YearDay()
	hour := float64(local.Hour()) + float64(local.Minute())/60 + float64(local.Second())/3600

	hra := HourAngle(hour, day, loc.Longitude, float64(loc.TimezoneOffsetHours())) * degToRad
	dec := Declination(day) * degToRad
	lat := loc.Latitude * degToRad

	sinElev := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(hra)
	elev := math.Asin(clamp(sinElev, -1, 1))

	// Azimuth measured clockwise from north; the acos form gives the morning
	// branch, mirrored after solar noon. At the poles cos(elev) approaches
	// zero and the clamp keeps the value defined.
	cosAz := (math.Sin(dec)*math.Cos(lat) - math.Cos(dec)*math.Sin(lat)*math.Cos(hra)) / math.Cos(elev)
	az := math.Acos(clamp(cosAz, -1, 1)) * radToDeg
	if hra > 0 {
		az = 360 - az
	}

	return Position{
		ZenithDeg:    90 - elev*radToDeg,
		ElevationDeg: elev * radToDeg,
		AzimuthDeg:   az,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
