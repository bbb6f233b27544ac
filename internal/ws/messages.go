package ws

import (
	"encoding/json"

	"solar_geometry/internal/model"
	"solar_geometry/internal/optimizer"
)

// Envelope wraps all WebSocket messages with a type discriminator.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Message type constants, all server -> client.
const (
	TypeOptimizeProgress = "optimize:progress"
	TypeOptimizeResult   = "optimize:result"
)

// ProgressPayload reports how much of the candidate grid has been evaluated.
type ProgressPayload struct {
	EvaluatedPairs int `json:"evaluated_pairs"`
	TotalPairs     int `json:"total_pairs"`
}

// ResultPayload carries the outcome of a finished orientation search.
type ResultPayload struct {
	OptimalTilt           float64 `json:"optimal_tilt"`
	OptimalAzimuth        float64 `json:"optimal_azimuth"`
	EffectiveTilt         float64 `json:"effective_tilt"`
	GroundSlopeOffset     float64 `json:"ground_slope_offset"`
	AnnualIrradianceKWhM2 float64 `json:"annual_irradiance_kwh_m2"`
}

func NewEnvelope(msgType string, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(Envelope{Type: msgType, Payload: raw})
}

func ProgressFromOptimizer(p optimizer.Progress) ProgressPayload {
	return ProgressPayload{
		EvaluatedPairs: p.EvaluatedPairs,
		TotalPairs:     p.TotalPairs,
	}
}

func ResultFromOptimizer(r model.OptimizationResult) ResultPayload {
	return ResultPayload{
		OptimalTilt:           r.OptimalTilt,
		OptimalAzimuth:        r.OptimalAzimuth,
		EffectiveTilt:         r.EffectiveTilt,
		GroundSlopeOffset:     r.GroundSlopeOffset,
		AnnualIrradianceKWhM2: r.AnnualIrradianceKWhM2,
	}
}
