package services

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleProfile is the subset of the userinfo response the storefront
// cares about.
type GoogleProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleAuthService drives the Google OAuth code flow. It stays
// disabled unless both client credentials are configured.
type GoogleAuthService struct {
	oauth *oauth2.Config
}

// NewGoogleAuthService constructs a GoogleAuthService. Returns a
// disabled service when credentials are missing.
func NewGoogleAuthService(clientID, clientSecret, redirectURL string) *GoogleAuthService {
	if clientID == "" || clientSecret == "" {
		return &GoogleAuthService{}
	}

	return &GoogleAuthService{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"profile", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://accounts.google.com/o/oauth2/auth",
				TokenURL: "https://oauth2.googleapis.com/token",
			},
		},
	}
}

// Enabled reports whether Google login is configured.
func (s *GoogleAuthService) Enabled() bool {
	return s.oauth != nil
}

// AuthURL returns the consent page URL for the given state.
func (s *GoogleAuthService) AuthURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

// Exchange trades the callback code for a token and fetches the
// user's profile.
func (s *GoogleAuthService) Exchange(ctx context.Context, code string) (*GoogleProfile, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	resp, err := s.oauth.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var profile GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	return &profile, nil
}
