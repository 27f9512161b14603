package controller

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

const (
	tokenPath = "/management/v1/oauth2/token"

	// Tokens sem expires_in são tratados como válidos por este tempo.
	defaultTokenTTL   = 45 * time.Minute
	tokenExpiryMargin = time.Minute
)

// Token is an access token and the moment it stops being accepted.
type Token struct {
	AccessToken string
	Expiry      time.Time
}

// TokenProvider fetches a fresh access token from the controller.
type TokenProvider interface {
	FetchToken(ctx context.Context) (Token, error)
}

// PasswordTokenProvider runs the OAuth2 password grant against the controller.
type PasswordTokenProvider struct {
	config   *oauth2.Config
	username string
	password string
	client   *http.Client
}

// NewPasswordTokenProvider creates a provider for the token endpoint under baseURL.
func NewPasswordTokenProvider(baseURL, username, password string, client *http.Client) *PasswordTokenProvider {
	return &PasswordTokenProvider{
		config: &oauth2.Config{
			Endpoint: oauth2.Endpoint{
				TokenURL:  baseURL + tokenPath,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		username: username,
		password: password,
		client:   client,
	}
}

// FetchToken requests a new token with the configured credentials.
func (p *PasswordTokenProvider) FetchToken(ctx context.Context) (Token, error) {
	if p.client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)
	}

	tok, err := p.config.PasswordCredentialsToken(ctx, p.username, p.password)
	if err != nil {
		return Token{}, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	return Token{AccessToken: tok.AccessToken, Expiry: tok.Expiry}, nil
}

// CachedTokenProvider wraps a TokenProvider and caches the access token
// until shortly before it expires.
type CachedTokenProvider struct {
	provider TokenProvider
	now      func() time.Time
	mu       sync.RWMutex
	token    string
	expiry   time.Time
}

// NewCachedTokenProvider creates a new cached token provider
func NewCachedTokenProvider(provider TokenProvider) *CachedTokenProvider {
	return &CachedTokenProvider{
		provider: provider,
		now:      time.Now,
	}
}

// GetAccessToken returns a cached token if valid, otherwise fetches a new one
func (c *CachedTokenProvider) GetAccessToken(ctx context.Context) (string, error) {
	c.mu.RLock()
	if c.token != "" && c.now().Before(c.expiry) {
		token := c.token
		c.mu.RUnlock()

		return token, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// outra goroutine pode ter renovado enquanto esperávamos o lock
	if c.token != "" && c.now().Before(c.expiry) {
		return c.token, nil
	}

	tok, err := c.provider.FetchToken(ctx)
	if err != nil {
		return "", err
	}

	now := c.now()
	expiry := tok.Expiry
	if expiry.IsZero() {
		expiry = now.Add(defaultTokenTTL)
	}

	// tokens de vida curta usam no máximo metade do TTL como margem
	margin := tokenExpiryMargin
	if half := expiry.Sub(now) / 2; half < margin {
		margin = max(half, 0)
	}

	c.token = tok.AccessToken
	c.expiry = expiry.Add(-margin)

	return c.token, nil
}

// InvalidateToken clears the cached token
func (c *CachedTokenProvider) InvalidateToken() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.expiry = time.Time{}
}
