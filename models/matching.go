package models

// MatchRequest is the inbound body of a recommendation call. Coordinates are
// pointers so a missing field can be told apart from a legitimate zero.
type MatchRequest struct {
	ServiceCategory    string   `json:"serviceCategory"`
	HomeownerLatitude  *float64 `json:"homeownerLatitude"`
	HomeownerLongitude *float64 `json:"homeownerLongitude"`
	DesiredDateTime    string   `json:"desiredDateTime,omitempty"`
}

// RankedProvider is one scored entry of a recommendation response.
type RankedProvider struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ProfilePhoto string   `json:"profilePhoto,omitempty"`
	Categories   []string `json:"categories"`
	Service      string   `json:"service"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	DistanceKm   *float64 `json:"distanceKm"`
	Score        float64  `json:"score"`
}

// MatchResponse is the success payload of a recommendation call.
type MatchResponse struct {
	Providers []RankedProvider `json:"providers"`
}
