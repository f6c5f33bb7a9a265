package provider

import (
	"fmt"
	"strings"

	"homeconnect/models"
	"homeconnect/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthenticateProvider verifies credentials and issues a signed auth token.
func (s *DefaultProviderService) AuthenticateProvider(email, password string) (*models.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	prov, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(prov.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(prov.ID, prov.Email, utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue auth token: %w", err)
	}

	return &models.AuthResult{Provider: prov, Token: token}, nil
}
