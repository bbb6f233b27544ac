package solar

import (
	"errors"
	"math"
	"time"

	"solar_geometry/internal/model"
)

// DefaultAlbedo is the ground reflectance used for the ground-reflected
// irradiance term when none is configured. 0.2 is the usual value for grass
// and soil.
const DefaultAlbedo = 0.2

// solarConstant is the direct intensity at the top of the atmosphere, W/m².
const solarConstant = 1353.0

// Model is a clear-sky solar model. It provides the sun's position, the
// clear-sky irradiance components (DNI/GHI/DHI), and an isotropic-sky
// transposition onto a tilted surface. All methods are pure functions of
// their inputs, so a single Model is safe for concurrent use.
type Model struct {
	// Albedo is the ground reflectance for the ground-reflected POA term.
	Albedo float64
	// AltitudeKm is the site altitude above sea level. Higher sites see
	// less atmospheric attenuation.
	AltitudeKm float64
}

// New returns a Model with default atmosphere settings at sea level.
func New() *Model {
	return &Model{Albedo: DefaultAlbedo}
}

// AirMass returns the Kasten-Young relative air mass for a zenith angle in
// degrees: the path length through the atmosphere relative to a vertical
// path. Returns 0 when the sun is below the horizon.
func AirMass(zenithDeg float64) float64 {
	if zenithDeg < 0 || zenithDeg >= 90 {
		return 0
	}
	return 1 / (math.Cos(zenithDeg*degToRad) + 0.50572*math.Pow(96.07995-zenithDeg, -1.6364))
}

// DirectNormal returns the clear-sky direct normal irradiance in W/m² for a
// zenith angle. Uses the standard air-mass attenuation fit with an altitude
// correction for the thinner atmosphere above sea level.
func (m *Model) DirectNormal(zenithDeg float64) float64 {
	am := AirMass(zenithDeg)
	if am <= 0 {
		return 0
	}
	h := m.AltitudeKm
	return solarConstant * ((1-0.14*h)*math.Pow(0.7, math.Pow(am, 0.678)) + 0.14*h)
}

// Samples computes the sun position and clear-sky irradiance for every
// timestamp. Nighttime samples carry the (below-horizon) position with all
// irradiance components at zero.
func (m *Model) Samples(loc model.Location, times []time.Time) ([]model.SolarSample, error) {
	if len(times) == 0 {
		return nil, errors.New("no timestamps requested")
	}

	samples := make([]model.SolarSample, len(times))
	for i, t := range times {
		pos := PositionAt(loc, t)
		s := model.SolarSample{
			Timestamp:         t,
			ApparentZenithDeg: pos.ZenithDeg,
			AzimuthDeg:        pos.AzimuthDeg,
		}
		if pos.ZenithDeg < 90 {
			dni := m.DirectNormal(pos.ZenithDeg)
			beamH := dni * math.Cos(pos.ZenithDeg*degToRad)
			// Scattering adds roughly 10% over the horizontal beam; the
			// difference is booked as diffuse so GHI = beam + DHI holds.
			ghi := 1.1 * beamH
			s.DNI = dni
			s.GHI = ghi
			s.DHI = ghi - beamH
		}
		samples[i] = s
	}
	return samples, nil
}

// PlaneOfArray returns the global irradiance in W/m² on a tilted surface for
// one sample: beam through the angle of incidence, isotropic sky diffuse,
// and ground-reflected diffuse (Liu-Jordan transposition).
func (m *Model) PlaneOfArray(tiltDeg, azimuthDeg float64, s model.SolarSample) float64 {
	tilt := tiltDeg * degToRad
	zen := s.ApparentZenithDeg * degToRad

	cosAOI := math.Cos(zen)*math.Cos(tilt) +
		math.Sin(zen)*math.Sin(tilt)*math.Cos((s.AzimuthDeg-azimuthDeg)*degToRad)

	var beam float64
	if cosAOI > 0 {
		beam = s.DNI * cosAOI
	}
	skyDiffuse := s.DHI * (1 + math.Cos(tilt)) / 2
	ground := s.GHI * m.Albedo * (1 - math.Cos(tilt)) / 2

	return beam + skyDiffuse + ground
}
