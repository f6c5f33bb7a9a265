package matching

import (
	"fmt"
	"math"
	"strings"
	"time"

	"homeconnect/models"
)

// pastGrace is how far in the past a desired instant may lie before the
// request is rejected as past-dated.
const pastGrace = 5 * time.Minute

// Params is the validated parameter set the pipeline operates on.
type Params struct {
	Category  string
	Latitude  float64
	Longitude float64
	// Desired is nil when the caller asked for general/today availability.
	Desired *time.Time
}

// ValidateRequest checks the request shape and numeric ranges and produces a
// validated parameter set or an invalid-argument error. now is the reference
// instant for the past-dated check.
func ValidateRequest(req models.MatchRequest, now time.Time) (*Params, error) {
	category := strings.TrimSpace(req.ServiceCategory)
	if category == "" {
		return nil, NewInvalidArgument("serviceCategory must be a non-empty string")
	}

	if req.HomeownerLatitude == nil || req.HomeownerLongitude == nil {
		return nil, NewInvalidArgument("homeownerLatitude and homeownerLongitude are required")
	}
	lat, lon := *req.HomeownerLatitude, *req.HomeownerLongitude
	if !isFinite(lat) || !isFinite(lon) {
		return nil, NewInvalidArgument("coordinates must be finite numbers")
	}
	if lat < -90 || lat > 90 {
		return nil, NewInvalidArgument(fmt.Sprintf("homeownerLatitude %v out of range [-90,90]", lat))
	}
	if lon < -180 || lon > 180 {
		return nil, NewInvalidArgument(fmt.Sprintf("homeownerLongitude %v out of range [-180,180]", lon))
	}

	params := &Params{Category: category, Latitude: lat, Longitude: lon}

	if req.DesiredDateTime != "" {
		desired, err := time.Parse(time.RFC3339, req.DesiredDateTime)
		if err != nil {
			return nil, NewInvalidArgument(fmt.Sprintf("desiredDateTime %q is not a valid ISO-8601 instant", req.DesiredDateTime))
		}
		if desired.Before(now.Add(-pastGrace)) {
			return nil, NewInvalidArgument("desiredDateTime must not be in the past")
		}
		utc := desired.UTC()
		params.Desired = &utc
	}

	return params, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
