package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "dealspace-backend/internal/errors"

	"golang.org/x/oauth2"
)

// SocialProfile is the identity returned by a social provider
type SocialProfile struct {
	Provider  string `json:"provider"`
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// SocialClient fetches user profiles from social providers with a bearer token
type SocialClient struct {
	config     *AuthConfig
	httpClient *http.Client
}

// NewSocialClient creates a new social provider client
func NewSocialClient(config *AuthConfig) *SocialClient {
	return &SocialClient{config: config}
}

// WithHTTPClient sets the base client used for provider calls
func (c *SocialClient) WithHTTPClient(client *http.Client) *SocialClient {
	c.httpClient = client
	return c
}

type googleProfile struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type facebookProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

// FetchProfile calls the provider user-info endpoint with the given access token
func (c *SocialClient) FetchProfile(ctx context.Context, provider, accessToken string) (*SocialProfile, error) {
	providerConfig, err := c.config.GetProvider(provider)
	if err != nil {
		return nil, apperrors.ErrUnsupportedProvider
	}

	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	client := oauth2.NewClient(ctx, ts)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, providerConfig.UserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build user-info request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSocialProfileFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", apperrors.ErrSocialProfileFetch, provider, resp.StatusCode)
	}

	profile := &SocialProfile{Provider: provider}
	switch provider {
	case ProviderGoogle:
		var p googleProfile
		if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode %s profile: %w", provider, err)
		}
		profile.ID, profile.Email, profile.Name, profile.AvatarURL = p.Sub, p.Email, p.Name, p.Picture
	case ProviderFacebook:
		var p facebookProfile
		if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode %s profile: %w", provider, err)
		}
		profile.ID, profile.Email, profile.Name, profile.AvatarURL = p.ID, p.Email, p.Name, p.Picture.Data.URL
	default:
		return nil, apperrors.ErrUnsupportedProvider
	}

	if profile.ID == "" {
		return nil, fmt.Errorf("%w: %s profile has no id", apperrors.ErrSocialProfileFetch, provider)
	}

	return profile, nil
}
