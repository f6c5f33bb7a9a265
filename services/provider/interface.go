package provider

import (
	providerRepo "homeconnect/database/repository/provider"
	"homeconnect/models"

	"go.uber.org/zap"
)

// ProviderService defines provider lifecycle operations.
type ProviderService interface {
	RegisterProvider(reg models.ProviderRegistration) (*models.Provider, error)
	AuthenticateProvider(email, password string) (*models.AuthResult, error)
	GetProviderByID(id string) (*models.Provider, error)
	UpdateProvider(id string, updates map[string]interface{}) (*models.Provider, error)
	DeleteProvider(id string) error
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo   providerRepo.ProviderRepository
	Logger *zap.Logger
}
