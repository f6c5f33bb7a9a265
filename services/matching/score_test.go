package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func km(v float64) *float64 { return &v }

func TestScore(t *testing.T) {
	tuning := DefaultTuning()

	tests := []struct {
		name       string
		rating     float64
		reviews    int
		distanceKm *float64
		want       float64
	}{
		{
			// 4.5 + min(20*0.05, 1.0) - min(1*0.1, 2.0) = 5.4
			name:   "well reviewed nearby provider",
			rating: 4.5, reviews: 20, distanceKm: km(1),
			want: 5.4,
		},
		{
			name:   "zero reviews always scores zero",
			rating: 5.0, reviews: 0, distanceKm: km(0.5),
			want: 0,
		},
		{
			name:   "review bonus is capped",
			rating: 4.0, reviews: 500, distanceKm: km(0),
			want: 5.0,
		},
		{
			name:   "distance penalty is capped",
			rating: 4.0, reviews: 1, distanceKm: km(30),
			want: 4.0 + 0.05 - 2.0,
		},
		{
			name:   "score clamps to zero",
			rating: 0.5, reviews: 1, distanceKm: km(30),
			want: 0,
		},
		{
			name:   "unknown distance skips the penalty",
			rating: 4.5, reviews: 20, distanceKm: nil,
			want: 5.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tuning.Score(tt.rating, tt.reviews, tt.distanceKm)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestScore_NeverNegative(t *testing.T) {
	tuning := DefaultTuning()
	for reviews := 0; reviews <= 3; reviews++ {
		got := tuning.Score(0, reviews, km(6.9))
		assert.GreaterOrEqual(t, got, 0.0)
	}
}
