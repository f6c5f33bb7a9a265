package models

// ProviderRegistration is the inbound payload for provider sign-up.
type ProviderRegistration struct {
	Name               string              `json:"name" binding:"required"`
	Email              string              `json:"email" binding:"required,email"`
	Password           string              `json:"password" binding:"required,min=8"`
	ProfilePhoto       string              `json:"profilePhoto,omitempty"`
	Categories         []string            `json:"categories" binding:"required,min=1"`
	Location           *Coordinates        `json:"location,omitempty"`
	WeeklyWorkingHours map[string][]string `json:"weeklyWorkingHours,omitempty"`
}

// AuthResult is returned on successful provider sign-in.
type AuthResult struct {
	Provider *Provider `json:"provider"`
	Token    string    `json:"token"`
}
