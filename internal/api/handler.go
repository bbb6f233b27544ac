// Package api implements the JSON HTTP boundary: parameter validation and
// normalization around the orientation optimizer.
package api

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"time"

	"solar_geometry/internal/model"
)

// Optimizer runs the orientation search. Satisfied by *optimizer.Optimizer.
type Optimizer interface {
	Optimize(loc model.Location, groundSlopeOffset float64, ref time.Time) (model.OptimizationResult, error)
}

// Handler serves the solar geometry API routes.
type Handler struct {
	optimizer Optimizer
	now       func() time.Time
}

func NewHandler(opt Optimizer) *Handler {
	return &Handler{optimizer: opt, now: time.Now}
}

// Register attaches the API routes to a mux. The method patterns make the
// mux answer 405 for other verbs on these paths.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/solar-geometry", h.handleSolarGeometry)
	mux.HandleFunc("POST /api/test", h.handleEcho)
}

// Pointer fields distinguish absent (and null) parameters from zero values.
type solarGeometryRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Offset    *float64 `json:"offset"`
}

type solarGeometryResponse struct {
	Latitude              float64 `json:"latitude"`
	Longitude             float64 `json:"longitude"`
	Offset                float64 `json:"offset"`
	OptimalTilt           float64 `json:"optimal_tilt"`
	OptimalAzimuth        float64 `json:"optimal_azimuth"`
	EffectiveTilt         float64 `json:"effective_tilt"`
	AnnualIrradianceKWhM2 float64 `json:"annual_irradiance_kwh_m2"`
}

func (h *Handler) handleSolarGeometry(w http.ResponseWriter, r *http.Request) {
	var req solarGeometryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Sprintf("Invalid JSON body: %v", err))
		return
	}

	if req.Latitude == nil {
		writeError(w, "Missing required parameter: latitude")
		return
	}
	if req.Longitude == nil {
		writeError(w, "Missing required parameter: longitude")
		return
	}

	lat, lon := *req.Latitude, *req.Longitude
	if lat < -360 || lat > 360 {
		writeError(w, "Latitude must be between -360 and 360")
		return
	}
	if lon < -360 || lon > 360 {
		writeError(w, "Longitude must be between -360 and 360")
		return
	}

	// Absent and null both mean no ground slope.
	offset := 0.0
	if req.Offset != nil {
		offset = *req.Offset
	}
	if offset < -90 || offset > 90 {
		writeError(w, "Offset (ground slope) must be between -90 and 90 degrees")
		return
	}

	loc := model.Location{
		Latitude:  NormalizeLatitude(lat),
		Longitude: NormalizeLongitude(lon),
	}

	result, err := h.optimizer.Optimize(loc, offset, h.now())
	if err != nil {
		log.Printf("Optimization failed for (%.4f, %.4f): %v", loc.Latitude, loc.Longitude, err)
		writeError(w, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, solarGeometryResponse{
		Latitude:              loc.Latitude,
		Longitude:             loc.Longitude,
		Offset:                offset,
		OptimalTilt:           result.OptimalTilt,
		OptimalAzimuth:        result.OptimalAzimuth,
		EffectiveTilt:         result.EffectiveTilt,
		AnnualIrradianceKWhM2: round2(result.AnnualIrradianceKWhM2),
	})
}

type echoRequest struct {
	Date string `json:"date"`
}

func (h *Handler) handleEcho(w http.ResponseWriter, r *http.Request) {
	var req echoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Sprintf("Invalid JSON body: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"result": "received: " + req.Date,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
