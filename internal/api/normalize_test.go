package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLatitude(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"in range unchanged", 40.7128, 40.7128},
		{"negative in range unchanged", -33.87, -33.87},
		{"boundary 90", 90, 90},
		{"boundary -90", -90, -90},
		{"just past north pole reflects", 95, 85},
		{"just past south pole reflects", -95, -85},
		{"91 reflects to 89", 91, 89},
		{"180 lands on equator", 180, 0},
		{"270 reflects to south pole", 270, -90},
		{"-270 reflects to north pole", -270, 90},
		{"360 wraps to equator", 360, 0},
		{"-360 wraps to equator", -360, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NormalizeLatitude(tt.in), 1e-9)
		})
	}
}

func TestNormalizeLongitude(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"in range unchanged", -74.0060, -74.0060},
		{"boundary 180", 180, 180},
		{"boundary -180", -180, -180},
		{"185 wraps west", 185, -175},
		{"-185 wraps east", -185, 175},
		{"270 wraps", 270, -90},
		{"360 wraps to meridian", 360, 0},
		{"-360 wraps to meridian", -360, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NormalizeLongitude(tt.in), 1e-9)
		})
	}
}
