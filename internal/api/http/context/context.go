package context

import (
	"context"
)

type tokenKey struct{}

// Manager stores the caller's bearer token on the request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetTokenToContext returns a copy of ctx carrying token.
func (m *Manager) SetTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// GetTokenFromContext returns the token stored by SetTokenToContext.
// An empty token is reported as absent.
func (m *Manager) GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
