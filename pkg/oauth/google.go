// Package oauth implements the Google sign-in flow used by back-office staff.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	ErrInvalidCode        = errors.New("invalid authorization code")
	ErrFailedToGetUser    = errors.New("failed to get user info from Google")
	ErrInvalidState       = errors.New("invalid state parameter")
	ErrOAuthNotConfigured = errors.New("Google OAuth is not configured")
	ErrDomainNotAllowed   = errors.New("account domain is not allowed for staff sign-in")
)

// GoogleUserInfo is the profile returned by Google's userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// GoogleService handles the OAuth code exchange for staff accounts.
type GoogleService struct {
	config             *oauth2.Config
	allowedDomain      string
	frontendSuccessURL string
	frontendErrorURL   string
}

// GoogleConfig holds the Google OAuth settings.
type GoogleConfig struct {
	ClientID           string
	ClientSecret       string
	RedirectURL        string
	AllowedDomain      string
	FrontendSuccessURL string
	FrontendErrorURL   string
}

// NewGoogleService creates a new Google OAuth service.
func NewGoogleService(cfg GoogleConfig) *GoogleService {
	config := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &GoogleService{
		config:             config,
		allowedDomain:      strings.ToLower(cfg.AllowedDomain),
		frontendSuccessURL: cfg.FrontendSuccessURL,
		frontendErrorURL:   cfg.FrontendErrorURL,
	}
}

// IsConfigured reports whether client credentials are present.
func (s *GoogleService) IsConfigured() bool {
	return s.config.ClientID != "" && s.config.ClientSecret != ""
}

// AuthURL returns the consent screen URL for the given state.
func (s *GoogleService) AuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeCode exchanges the authorization code for tokens.
func (s *GoogleService) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCode, err)
	}
	return token, nil
}

// FetchUser fetches the profile behind the access token and enforces the
// allowed staff domain when one is configured.
func (s *GoogleService) FetchUser(ctx context.Context, token *oauth2.Token) (*GoogleUserInfo, error) {
	client := s.config.Client(ctx, token)

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetUser, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d, body: %s", ErrFailedToGetUser, resp.StatusCode, string(body))
	}

	var userInfo GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetUser, err)
	}

	if s.allowedDomain != "" {
		at := strings.LastIndex(userInfo.Email, "@")
		if at < 0 || strings.ToLower(userInfo.Email[at+1:]) != s.allowedDomain {
			return nil, ErrDomainNotAllowed
		}
	}

	return &userInfo, nil
}

// FrontendSuccessURL is where the browser is sent after a successful sign-in.
func (s *GoogleService) FrontendSuccessURL() string {
	return s.frontendSuccessURL
}

// FrontendErrorURL is where the browser is sent when sign-in fails.
func (s *GoogleService) FrontendErrorURL() string {
	return s.frontendErrorURL
}
