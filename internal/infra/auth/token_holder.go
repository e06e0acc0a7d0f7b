package auth

import (
	"context"
	"sync"
)

// TokenHolder is a mutable TokenSource. The login flow stores the freshly
// issued access token here; clearing it turns the session back into a guest
// on the next watcher sync.
type TokenHolder struct {
	mu    sync.RWMutex
	token string
}

// NewTokenHolder creates an empty holder, i.e. a guest session.
func NewTokenHolder() *TokenHolder {
	return &TokenHolder{}
}

// Token implements service.TokenSource.
func (h *TokenHolder) Token(ctx context.Context) (string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.token, nil
}

// Set replaces the stored token. An empty string clears the session.
func (h *TokenHolder) Set(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = token
}
