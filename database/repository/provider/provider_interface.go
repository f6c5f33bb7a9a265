package providerRepo

import (
	"context"

	"homeconnect/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProviderRepository defines data access methods for provider records.
// GetByCategory is the candidate fetcher of the matching pipeline.
type ProviderRepository interface {
	GetByCategory(ctx context.Context, category string) ([]models.Provider, error)
	GetByID(id string) (*models.Provider, error)
	GetByEmail(email string) (*models.Provider, error)
	Create(provider *models.Provider) error
	UpdateWithDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	ResetDailyAvailability(ctx context.Context) (int64, error)
}
