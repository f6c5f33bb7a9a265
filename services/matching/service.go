package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	providerRepo "homeconnect/database/repository/provider"
	"homeconnect/models"
	"homeconnect/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Service defines the provider recommendation entry point.
type Service interface {
	RecommendProviders(ctx context.Context, req models.MatchRequest) (*models.MatchResponse, error)
}

// DefaultMatchingService is the production implementation. Each call is an
// independent, stateless unit of work; the only shared pieces are the injected
// clients.
type DefaultMatchingService struct {
	ProviderRepo providerRepo.ProviderRepository
	CacheClient  *redis.Client
	Policy       AvailabilityPolicy
	Tuning       Tuning
	Logger       *zap.Logger
}

// RecommendProviders validates the request, fetches candidates for the
// requested category, filters them by distance and availability, scores the
// survivors and returns them ordered best-first.
func (s *DefaultMatchingService) RecommendProviders(ctx context.Context, req models.MatchRequest) (*models.MatchResponse, error) {
	params, err := ValidateRequest(req, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	cacheKey := s.cacheKey(req)
	if cached := s.cachedResponse(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	candidates, err := s.ProviderRepo.GetByCategory(ctx, params.Category)
	if err != nil {
		s.logger().Error("failed to fetch candidate providers",
			zap.String("category", params.Category), zap.Error(err))
		return nil, NewInternal("failed to retrieve service providers data")
	}
	if len(candidates) == 0 {
		return &models.MatchResponse{Providers: []models.RankedProvider{}}, nil
	}

	ranked := s.rank(params, candidates)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		// Equal scores: provider id ascending keeps the order deterministic.
		return ranked[i].ID < ranked[j].ID
	})

	resp := &models.MatchResponse{Providers: ranked}
	s.storeResponse(ctx, cacheKey, resp)
	return resp, nil
}

// rank applies the per-candidate eligibility gates and scores the survivors.
// A malformed record is skipped with a diagnostic, never a hard failure.
func (s *DefaultMatchingService) rank(params *Params, candidates []models.Provider) []models.RankedProvider {
	ranked := make([]models.RankedProvider, 0, len(candidates))

	for i := range candidates {
		p := &candidates[i]

		if p.Location == nil {
			s.logger().Warn("provider missing location, skipping",
				zap.String("providerId", p.ID))
			continue
		}

		distanceKm := Haversine(params.Latitude, params.Longitude,
			p.Location.Latitude, p.Location.Longitude)
		if distanceKm > s.Tuning.MaxDistanceKm {
			s.logger().Debug("provider too far, skipping",
				zap.String("providerId", p.ID), zap.Float64("distanceKm", distanceKm))
			continue
		}

		available, err := s.Policy.Qualifies(p, params.Desired)
		if err != nil {
			s.logger().Warn("provider has malformed schedule, skipping",
				zap.String("providerId", p.ID), zap.Error(err))
			continue
		}
		if !available {
			continue
		}

		score := s.Tuning.Score(p.AverageRating, p.NumberOfReviews, &distanceKm)
		rounded := roundKm(distanceKm)
		ranked = append(ranked, models.RankedProvider{
			ID:           p.ID,
			Name:         p.Name,
			ProfilePhoto: p.ProfilePhoto,
			Categories:   p.Categories,
			Service:      params.Category,
			Rating:       p.AverageRating,
			ReviewCount:  p.NumberOfReviews,
			DistanceKm:   &rounded,
			Score:        score,
		})
	}

	return ranked
}

// cacheKey derives a stable key from the request payload.
func (s *DefaultMatchingService) cacheKey(req models.MatchRequest) string {
	reqBytes, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s%x", utils.MatchCachePrefix, reqBytes)
}

// cachedResponse returns a previously computed response, or nil on any cache
// miss or failure. Cache trouble never fails a request.
func (s *DefaultMatchingService) cachedResponse(ctx context.Context, key string) *models.MatchResponse {
	if s.CacheClient == nil || key == "" {
		return nil
	}
	cached, err := s.CacheClient.Get(ctx, key).Result()
	if err != nil || cached == "" {
		return nil
	}
	var resp models.MatchResponse
	if err := json.Unmarshal([]byte(cached), &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *DefaultMatchingService) storeResponse(ctx context.Context, key string, resp *models.MatchResponse) {
	if s.CacheClient == nil || key == "" {
		return
	}
	respBytes, err := json.Marshal(resp)
	if err != nil {
		return
	}
	s.CacheClient.Set(ctx, key, respBytes, utils.MatchCacheTTL)
}

func (s *DefaultMatchingService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

// roundKm rounds a distance to two decimals for the response payload.
func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
