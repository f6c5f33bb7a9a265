package provider

import (
	"fmt"
	"strings"
	"time"

	"homeconnect/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// RegisterProvider creates a new provider record with a hashed password.
func (s *DefaultProviderService) RegisterProvider(reg models.ProviderRegistration) (*models.Provider, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Email))
	if existing, _ := s.Repo.GetByEmail(email); existing != nil {
		return nil, fmt.Errorf("provider with email %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	prov := &models.Provider{
		ID:                 uuid.New().String(),
		Name:               reg.Name,
		Email:              email,
		ProfilePhoto:       reg.ProfilePhoto,
		Categories:         reg.Categories,
		Location:           reg.Location,
		WeeklyWorkingHours: reg.WeeklyWorkingHours,
		PasswordHash:       string(hash),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	prov.Normalize()

	if err := s.Repo.Create(prov); err != nil {
		return nil, fmt.Errorf("failed to register provider: %w", err)
	}
	return prov, nil
}

// GetProviderByID fetches a single provider record.
func (s *DefaultProviderService) GetProviderByID(id string) (*models.Provider, error) {
	prov, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("provider not found: %w", err)
	}
	return prov, nil
}

// UpdateProvider merges allowed updates and returns the updated provider
// record. It implements patch-style updates: only recognized keys are applied.
func (s *DefaultProviderService) UpdateProvider(id string, updates map[string]interface{}) (*models.Provider, error) {
	if _, err := s.Repo.GetByID(id); err != nil {
		return nil, fmt.Errorf("provider not found: %w", err)
	}

	updateFields := bson.M{}

	if v, ok := updates["name"].(string); ok && v != "" {
		updateFields["name"] = v
	}
	if v, ok := updates["profilePhoto"].(string); ok && v != "" {
		updateFields["profilePhoto"] = v
	}
	if v, ok := updates["categories"]; ok {
		if cats := toStringSlice(v); len(cats) > 0 {
			updateFields["categories"] = cats
		}
	}
	if v, ok := updates["availableToday"].(bool); ok {
		updateFields["availableToday"] = v
	}
	if v, ok := updates["blockedDates"]; ok {
		updateFields["blockedDates"] = toStringSlice(v)
	}
	if v, ok := updates["weeklyWorkingHours"].(map[string]interface{}); ok {
		hours := make(map[string][]string, len(v))
		for day, ranges := range v {
			hours[day] = toStringSlice(ranges)
		}
		updateFields["weeklyWorkingHours"] = hours
	}
	if geo, ok := updates["location"].(map[string]interface{}); ok {
		lat, latOK := toFloat(geo["latitude"])
		lon, lonOK := toFloat(geo["longitude"])
		if latOK && lonOK {
			updateFields["location"] = models.Coordinates{Latitude: lat, Longitude: lon}
		}
	}

	if len(updateFields) == 0 {
		return nil, fmt.Errorf("no updatable fields in request")
	}
	updateFields["updatedAt"] = time.Now().UTC()

	if err := s.Repo.UpdateWithDocument(id, bson.M{"$set": updateFields}); err != nil {
		return nil, fmt.Errorf("failed to update provider: %w", err)
	}
	return s.Repo.GetByID(id)
}

// DeleteProvider removes a provider record.
func (s *DefaultProviderService) DeleteProvider(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete provider: %w", err)
	}
	return nil
}

func toStringSlice(v interface{}) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []interface{}:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
