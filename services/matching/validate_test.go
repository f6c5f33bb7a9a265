package matching

import (
	"math"
	"testing"
	"time"

	"homeconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func validRequest() models.MatchRequest {
	return models.MatchRequest{
		ServiceCategory:    "plumbing",
		HomeownerLatitude:  floatPtr(40.7128),
		HomeownerLongitude: floatPtr(-74.0060),
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	now := time.Now().UTC()

	params, err := ValidateRequest(validRequest(), now)
	require.NoError(t, err)
	assert.Equal(t, "plumbing", params.Category)
	assert.Equal(t, 40.7128, params.Latitude)
	assert.Equal(t, -74.0060, params.Longitude)
	assert.Nil(t, params.Desired)
}

func TestValidateRequest_DesiredDateTime(t *testing.T) {
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)

	req := validRequest()
	req.DesiredDateTime = "2025-07-10T15:00:00Z"
	params, err := ValidateRequest(req, now)
	require.NoError(t, err)
	require.NotNil(t, params.Desired)
	assert.Equal(t, time.Date(2025, 7, 10, 15, 0, 0, 0, time.UTC), *params.Desired)

	// Offsets are normalized to UTC.
	req.DesiredDateTime = "2025-07-10T18:00:00+03:00"
	params, err = ValidateRequest(req, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 10, 15, 0, 0, 0, time.UTC), *params.Desired)
}

func TestValidateRequest_PastGrace(t *testing.T) {
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)

	// Two minutes ago is inside the five-minute grace window.
	req := validRequest()
	req.DesiredDateTime = now.Add(-2 * time.Minute).Format(time.RFC3339)
	_, err := ValidateRequest(req, now)
	assert.NoError(t, err)

	// Ten minutes ago is past-dated.
	req.DesiredDateTime = now.Add(-10 * time.Minute).Format(time.RFC3339)
	_, err = ValidateRequest(req, now)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidArgument, CodeOf(err))
}

func TestValidateRequest_Rejections(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name   string
		mutate func(req *models.MatchRequest)
	}{
		{"empty category", func(r *models.MatchRequest) { r.ServiceCategory = "" }},
		{"whitespace category", func(r *models.MatchRequest) { r.ServiceCategory = "   " }},
		{"missing latitude", func(r *models.MatchRequest) { r.HomeownerLatitude = nil }},
		{"missing longitude", func(r *models.MatchRequest) { r.HomeownerLongitude = nil }},
		{"latitude out of range", func(r *models.MatchRequest) { r.HomeownerLatitude = floatPtr(999) }},
		{"longitude out of range", func(r *models.MatchRequest) { r.HomeownerLongitude = floatPtr(-180.5) }},
		{"NaN latitude", func(r *models.MatchRequest) { r.HomeownerLatitude = floatPtr(math.NaN()) }},
		{"infinite longitude", func(r *models.MatchRequest) { r.HomeownerLongitude = floatPtr(math.Inf(1)) }},
		{"malformed desired time", func(r *models.MatchRequest) { r.DesiredDateTime = "next Tuesday" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := ValidateRequest(req, now)
			require.Error(t, err)
			assert.Equal(t, CodeInvalidArgument, CodeOf(err))
		})
	}
}

func TestValidateRequest_BoundaryCoordinates(t *testing.T) {
	now := time.Now().UTC()

	req := validRequest()
	req.HomeownerLatitude = floatPtr(-90)
	req.HomeownerLongitude = floatPtr(180)
	_, err := ValidateRequest(req, now)
	assert.NoError(t, err)
}
