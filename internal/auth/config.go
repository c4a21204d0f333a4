package auth

import (
	"fmt"
	"time"

	"dealspace-backend/internal/config"
)

// Supported social login providers
const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret string                    `yaml:"jwt_secret" json:"jwt_secret"`
	TokenTTL  time.Duration             `yaml:"token_ttl" json:"token_ttl"`
	Issuer    string                    `yaml:"issuer" json:"issuer"`
	Providers map[string]ProviderConfig `yaml:"providers" json:"providers"`
}

// ProviderConfig holds configuration for a specific social provider
type ProviderConfig struct {
	UserInfoURL string `yaml:"userinfo_url" json:"userinfo_url"`
}

// NewAuthConfig derives the authentication configuration from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  time.Duration(cfg.JWTTTLMinutes) * time.Minute,
		Issuer:    "dealspace-backend",
		Providers: map[string]ProviderConfig{
			ProviderGoogle:   {UserInfoURL: cfg.GoogleUserInfoURL},
			ProviderFacebook: {UserInfoURL: cfg.FacebookUserInfoURL},
		},
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	for name, provider := range c.Providers {
		if provider.UserInfoURL == "" {
			return fmt.Errorf("provider '%s': userinfo_url is required", name)
		}
	}
	return nil
}

// GetProvider returns configuration for a specific provider
func (c *AuthConfig) GetProvider(provider string) (*ProviderConfig, error) {
	providerConfig, exists := c.Providers[provider]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found in configuration", provider)
	}
	return &providerConfig, nil
}
