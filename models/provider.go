package models

import "time"

// Coordinates is a plain latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Provider is a service-provider document. Records written by older app
// revisions omit several fields, so everything optional is a pointer or a
// nil-able collection; Normalize applies the documented defaults once at the
// fetch boundary.
type Provider struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Email        string       `bson:"email,omitempty" json:"email,omitempty"`
	ProfilePhoto string       `bson:"profilePhoto,omitempty" json:"profilePhoto,omitempty"`
	Categories   []string     `bson:"categories" json:"categories"`
	Location     *Coordinates `bson:"location,omitempty" json:"location,omitempty"`

	AverageRating   float64 `bson:"averageRating" json:"averageRating"`
	NumberOfReviews int     `bson:"numberOfReviews" json:"numberOfReviews"`

	// AvailableToday is the flat day-scoped availability flag. Absent means
	// available.
	AvailableToday *bool `bson:"availableToday,omitempty" json:"availableToday,omitempty"`

	// BlockedDates holds calendar dates ("2006-01-02") the provider does not
	// serve, regardless of weekly working hours.
	BlockedDates []string `bson:"blockedDates,omitempty" json:"blockedDates,omitempty"`

	// WeeklyWorkingHours maps weekday names ("Monday") to ordered
	// "HH:MM-HH:MM" ranges.
	WeeklyWorkingHours map[string][]string `bson:"weeklyWorkingHours,omitempty" json:"weeklyWorkingHours,omitempty"`

	PasswordHash string    `bson:"passwordHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt,omitempty" json:"createdAt,omitzero"`
	UpdatedAt    time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitzero"`
}

// Normalize applies defaults for fields older schema revisions omit. Called
// once when records leave the repository so filtering and scoring never deal
// with absent values.
func (p *Provider) Normalize() {
	if p.Name == "" {
		p.Name = "Unnamed Provider"
	}
	if p.Categories == nil {
		p.Categories = []string{}
	}
	if p.AverageRating < 0 {
		p.AverageRating = 0
	}
	if p.NumberOfReviews < 0 {
		p.NumberOfReviews = 0
	}
}

// IsAvailableToday reports the flat availability flag, defaulting to true
// when the field is absent.
func (p *Provider) IsAvailableToday() bool {
	return p.AvailableToday == nil || *p.AvailableToday
}
