package matching

import "homeconnect/config"

// Tuning holds the scoring and filtering coefficients. The zero value is not
// usable; construct with DefaultTuning or TuningFromConfig.
type Tuning struct {
	MaxDistanceKm       float64
	ReviewBonusStep     float64
	ReviewBonusCap      float64
	DistancePenaltyStep float64
	DistancePenaltyCap  float64
}

// DefaultTuning returns the launch values.
func DefaultTuning() Tuning {
	return Tuning{
		MaxDistanceKm:       7.0,
		ReviewBonusStep:     0.05,
		ReviewBonusCap:      1.0,
		DistancePenaltyStep: 0.1,
		DistancePenaltyCap:  2.0,
	}
}

// TuningFromConfig reads the coefficients from the loaded app config.
func TuningFromConfig() Tuning {
	return Tuning{
		MaxDistanceKm:       config.AppConfig.MatchMaxDistanceKm,
		ReviewBonusStep:     config.AppConfig.MatchReviewBonusStep,
		ReviewBonusCap:      config.AppConfig.MatchReviewBonusCap,
		DistancePenaltyStep: config.AppConfig.MatchDistancePenaltyStep,
		DistancePenaltyCap:  config.AppConfig.MatchDistancePenaltyCap,
	}
}

// Score computes the composite rating score for an eligible provider.
// A provider with zero reviews scores exactly 0: an unvetted five-star rating
// carries no signal. The distance penalty applies only when distance is known.
func (t Tuning) Score(averageRating float64, reviewCount int, distanceKm *float64) float64 {
	if reviewCount == 0 {
		return 0
	}

	score := averageRating
	score += min(float64(reviewCount)*t.ReviewBonusStep, t.ReviewBonusCap)
	if distanceKm != nil {
		score -= min(*distanceKm*t.DistancePenaltyStep, t.DistancePenaltyCap)
	}

	return max(score, 0)
}
