package http

import (
	"context"
	"sync"
	"time"
)

// expirySkew refreshes tokens slightly before their reported expiry so a
// token never dies mid-request.
const expirySkew = 30 * time.Second

// TokenFetchFunc fetches a fresh access token, returning the token and its
// expiry time.
type TokenFetchFunc func(ctx context.Context) (string, time.Time, error)

// TokenCache holds one client's access token with expiry-based
// invalidation. Each carrier client owns exactly one instance; the cache is
// never shared across clients. The clock is injectable for tests.
type TokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
	now       func() time.Time
}

// NewTokenCache creates a token cache using the real clock.
func NewTokenCache() *TokenCache {
	return NewTokenCacheWithClock(time.Now)
}

// NewTokenCacheWithClock creates a token cache with an injected clock.
func NewTokenCacheWithClock(now func() time.Time) *TokenCache {
	return &TokenCache{now: now}
}

// Get returns the cached token, fetching a fresh one when the cache is
// empty or expired. Concurrent callers are serialized so at most one fetch
// is in flight at a time.
func (tc *TokenCache) Get(ctx context.Context, fetch TokenFetchFunc) (string, error) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if tc.token != "" && tc.now().Add(expirySkew).Before(tc.expiresAt) {
		return tc.token, nil
	}

	token, expiresAt, err := fetch(ctx)
	if err != nil {
		return "", err
	}

	tc.token = token
	tc.expiresAt = expiresAt
	return token, nil
}

// Invalidate drops the cached token so the next Get fetches a fresh one.
// Called when a carrier rejects a token before its reported expiry.
func (tc *TokenCache) Invalidate() {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.token = ""
	tc.expiresAt = time.Time{}
}
