package controller

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	calls  int
	expiry time.Time
	err    error
}

func (p *countingProvider) FetchToken(context.Context) (Token, error) {
	p.calls++
	if p.err != nil {
		return Token{}, p.err
	}
	return Token{AccessToken: "t", Expiry: p.expiry}, nil
}

func TestCachedTokenProvider(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiry    time.Time
		advance   time.Duration
		wantCalls int
	}{
		{"reuses valid token", now.Add(time.Hour), 10 * time.Minute, 1},
		{"refreshes inside the safety margin", now.Add(time.Hour), 59*time.Minute + 30*time.Second, 2},
		{"missing expiry uses default ttl", time.Time{}, 30 * time.Minute, 1},
		{"missing expiry eventually refreshes", time.Time{}, defaultTokenTTL, 2},
		{"short-lived token is reused", now.Add(30 * time.Second), 10 * time.Second, 1},
		{"short-lived token refreshes after half its ttl", now.Add(30 * time.Second), 20 * time.Second, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &countingProvider{expiry: tt.expiry}
			cache := NewCachedTokenProvider(provider)
			clock := now
			cache.now = func() time.Time { return clock }

			_, err := cache.GetAccessToken(context.Background())
			require.NoError(t, err)

			clock = clock.Add(tt.advance)
			token, err := cache.GetAccessToken(context.Background())
			require.NoError(t, err)

			assert.Equal(t, "t", token)
			assert.Equal(t, tt.wantCalls, provider.calls)
		})
	}
}

func TestCachedTokenProvider_Invalidate(t *testing.T) {
	provider := &countingProvider{}
	cache := NewCachedTokenProvider(provider)

	_, _ = cache.GetAccessToken(context.Background())
	cache.InvalidateToken()
	_, _ = cache.GetAccessToken(context.Background())

	assert.Equal(t, 2, provider.calls)
}

func TestCachedTokenProvider_ErrorsAreNotCached(t *testing.T) {
	provider := &countingProvider{err: ErrAuthFailed}
	cache := NewCachedTokenProvider(provider)

	_, err := cache.GetAccessToken(context.Background())
	assert.ErrorIs(t, err, ErrAuthFailed)

	provider.err = nil
	token, err := cache.GetAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "t", token)
}

func TestPasswordTokenProvider(t *testing.T) {
	ts := newTestServer(t)

	tok, err := NewPasswordTokenProvider(ts.URL, "admin", "secret", ts.Client()).FetchToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "token-1", tok.AccessToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), tok.Expiry, time.Minute)

	_, err = NewPasswordTokenProvider(ts.URL, "admin", "wrong", ts.Client()).FetchToken(context.Background())
	assert.ErrorIs(t, err, ErrAuthFailed)
}
