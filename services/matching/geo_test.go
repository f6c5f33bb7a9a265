package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine_ZeroDistance(t *testing.T) {
	assert.Equal(t, 0.0, Haversine(40.7128, -74.0060, 40.7128, -74.0060))
}

func TestHaversine_Symmetric(t *testing.T) {
	a := Haversine(40.7128, -74.0060, 34.0522, -118.2437)
	b := Haversine(34.0522, -118.2437, 40.7128, -74.0060)
	assert.Equal(t, a, b)
}

func TestHaversine_KnownDistances(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantKm                 float64
		delta                  float64
	}{
		{
			name: "new york to los angeles",
			lat1: 40.7128, lon1: -74.0060,
			lat2: 34.0522, lon2: -118.2437,
			wantKm: 3936, delta: 10,
		},
		{
			name: "one hundredth of a degree of latitude",
			lat1: 0, lon1: 0,
			lat2: 0.01, lon2: 0,
			wantKm: 1.112, delta: 0.01,
		},
		{
			name: "across the equator",
			lat1: -0.05, lon1: 36.0,
			lat2: 0.05, lon2: 36.0,
			wantKm: 11.12, delta: 0.05,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.wantKm, got, tt.delta)
		})
	}
}
