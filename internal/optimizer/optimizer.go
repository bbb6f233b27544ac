// Package optimizer searches for the fixed panel orientation that maximizes
// total annual plane-of-array irradiance at a location, given the slope of
// the ground the panels stand on.
package optimizer

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"solar_geometry/internal/model"
)

// Model supplies solar position, clear-sky irradiance, and the tilted-surface
// transposition. Implementations must be safe for concurrent PlaneOfArray
// calls over shared samples.
type Model interface {
	Samples(loc model.Location, times []time.Time) ([]model.SolarSample, error)
	PlaneOfArray(tiltDeg, azimuthDeg float64, s model.SolarSample) float64
}

// Progress reports how far a search has advanced through the candidate grid.
type Progress struct {
	EvaluatedPairs int
	TotalPairs     int
}

// Callback receives search lifecycle events. Events may arrive from worker
// goroutines, so implementations must be safe for concurrent use.
type Callback interface {
	OnProgress(Progress)
	OnResult(model.OptimizationResult)
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithWorkers sets how many goroutines evaluate candidate tilt rows.
// Results are identical for any worker count; only wall time changes.
func WithWorkers(n int) Option {
	return func(o *Optimizer) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithSteps overrides the candidate grid step sizes in degrees.
func WithSteps(tiltStep, azimuthStep float64) Option {
	return func(o *Optimizer) {
		if tiltStep > 0 {
			o.tiltStep = tiltStep
		}
		if azimuthStep > 0 {
			o.azimuthStep = azimuthStep
		}
	}
}

// WithCallback registers a listener for progress and result events.
func WithCallback(cb Callback) Option {
	return func(o *Optimizer) { o.callback = cb }
}

// Optimizer runs the orientation grid search against an injected solar model.
type Optimizer struct {
	model       Model
	workers     int
	tiltStep    float64
	azimuthStep float64
	callback    Callback
}

// New creates an Optimizer with a 5-degree grid and serial evaluation.
func New(m Model, opts ...Option) *Optimizer {
	o := &Optimizer{
		model:       m,
		workers:     1,
		tiltStep:    5,
		azimuthStep: 5,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Optimize finds the (tilt, azimuth) pair with the highest annual plane-of-
// array irradiance. ref anchors the one-year hourly sampling window at its
// preceding local midnight; pass the current time at the outermost boundary
// and a fixed time anywhere reproducibility matters.
//
// groundSlopeOffset is the terrain angle in degrees, positive for ground
// sloping upward in the panel-facing direction. It shifts the tilt candidate
// set downward (steep ground substitutes for panel tilt) and is added back
// into the reported effective tilt.
func (o *Optimizer) Optimize(loc model.Location, groundSlopeOffset float64, ref time.Time) (model.OptimizationResult, error) {
	times := hourlyWindow(loc, ref)
	samples, err := o.model.Samples(loc, times)
	if err != nil {
		return model.OptimizationResult{}, fmt.Errorf("querying solar model: %w", err)
	}

	tilts := TiltCandidates(groundSlopeOffset, o.tiltStep)
	azimuths := AzimuthCandidates(loc.Latitude, o.azimuthStep)

	// Annual Wh/m² per candidate, indexed tilt-major so the reduction can
	// run in fixed grid order regardless of evaluation order.
	sums := make([]float64, len(tilts)*len(azimuths))

	var progressMu sync.Mutex
	evaluated := 0
	rowDone := func() {
		if o.callback == nil {
			return
		}
		progressMu.Lock()
		evaluated += len(azimuths)
		p := Progress{EvaluatedPairs: evaluated, TotalPairs: len(sums)}
		progressMu.Unlock()
		o.callback.OnProgress(p)
	}

	evalRow := func(ti int) {
		for ai, azimuth := range azimuths {
			var sum float64
			for _, s := range samples {
				sum += o.model.PlaneOfArray(tilts[ti], azimuth, s)
			}
			sums[ti*len(azimuths)+ai] = sum
		}
		rowDone()
	}

	if o.workers <= 1 {
		for ti := range tilts {
			evalRow(ti)
		}
	} else {
		rows := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < o.workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for ti := range rows {
					evalRow(ti)
				}
			}()
		}
		for ti := range tilts {
			rows <- ti
		}
		close(rows)
		wg.Wait()
	}

	// Strict > keeps the first-encountered pair on ties, scanning
	// tilt-major and azimuth-minor.
	var maxSum float64
	result := model.OptimizationResult{GroundSlopeOffset: groundSlopeOffset}
	for ti, tilt := range tilts {
		for ai, azimuth := range azimuths {
			if s := sums[ti*len(azimuths)+ai]; s > maxSum {
				maxSum = s
				result.OptimalTilt = tilt
				result.OptimalAzimuth = azimuth
			}
		}
	}

	result.EffectiveTilt = result.OptimalTilt + groundSlopeOffset
	result.AnnualIrradianceKWhM2 = maxSum / 1000

	if o.callback != nil {
		o.callback.OnResult(result)
	}
	return result, nil
}

// hourlyWindow returns 365×24+1 timestamps spaced one hour apart, starting
// at the local midnight preceding ref in the location's coarse timezone.
func hourlyWindow(loc model.Location, ref time.Time) []time.Time {
	zone := loc.TimezoneLocation()
	local := ref.In(zone)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, zone)

	times := make([]time.Time, 365*24+1)
	for i := range times {
		times[i] = start.Add(time.Duration(i) * time.Hour)
	}
	return times
}

// TiltCandidates builds the tilt candidate set: every base tilt from 0 to 90
// shifted down by the ground slope offset, clamped to [0, 90], deduplicated,
// ascending. Large offsets collapse many base tilts onto the clamp boundary.
func TiltCandidates(groundSlopeOffset, step float64) []float64 {
	var tilts []float64
	for base := 0.0; base <= 90; base += step {
		t := base - groundSlopeOffset
		if t < 0 {
			t = 0
		}
		if t > 90 {
			t = 90
		}
		tilts = append(tilts, t)
	}
	sort.Float64s(tilts)

	deduped := tilts[:1]
	for _, t := range tilts[1:] {
		if t != deduped[len(deduped)-1] {
			deduped = append(deduped, t)
		}
	}
	return deduped
}

// AzimuthCandidates builds a 180-degree-wide azimuth band centered on the
// equator-facing direction: south (180°) in the northern hemisphere, north
// (0°/360°) in the southern, where the band wraps modulo 360 while keeping
// its generation order.
func AzimuthCandidates(latitude, step float64) []float64 {
	var azimuths []float64
	if latitude >= 0 {
		for az := 90.0; az <= 270; az += step {
			azimuths = append(azimuths, az)
		}
	} else {
		for az := 270.0; az <= 450; az += step {
			azimuths = append(azimuths, math.Mod(az, 360))
		}
	}
	return azimuths
}
