package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeconnect/models"
	"homeconnect/services/matching"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMatchingService struct {
	resp *models.MatchResponse
	err  error
}

func (s *stubMatchingService) RecommendProviders(context.Context, models.MatchRequest) (*models.MatchResponse, error) {
	return s.resp, s.err
}

func performRecommend(t *testing.T, svc matching.Service, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewMatchingHandler(svc, zap.NewNop())
	router.POST("/api/matching/recommend", handler.RecommendProviders)

	req := httptest.NewRequest(http.MethodPost, "/api/matching/recommend", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecommendProviders_Success(t *testing.T) {
	dist := 1.0
	svc := &stubMatchingService{resp: &models.MatchResponse{
		Providers: []models.RankedProvider{{
			ID: "p1", Name: "Hudson Plumbing", Service: "plumbing",
			Rating: 4.5, ReviewCount: 20, DistanceKm: &dist, Score: 5.4,
		}},
	}}

	w := performRecommend(t, svc, `{"serviceCategory":"plumbing","homeownerLatitude":40.7128,"homeownerLongitude":-74.0060}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.MatchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Providers, 1)
	assert.Equal(t, "p1", resp.Providers[0].ID)
}

func TestRecommendProviders_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid argument", matching.NewInvalidArgument("bad coordinates"), http.StatusBadRequest},
		{"unauthenticated", matching.NewUnauthenticated("missing identity"), http.StatusUnauthorized},
		{"internal", matching.NewInternal("fetch failed"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubMatchingService{err: tt.err}
			w := performRecommend(t, svc, `{"serviceCategory":"plumbing","homeownerLatitude":1,"homeownerLongitude":1}`)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRecommendProviders_MalformedBody(t *testing.T) {
	svc := &stubMatchingService{}
	w := performRecommend(t, svc, `{"serviceCategory":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
