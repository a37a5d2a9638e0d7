package model

import "context"

// ContextManager stores and retrieves the caller's bearer token on a request context.
type ContextManager interface {
	SetTokenToContext(ctx context.Context, token string) context.Context
	GetTokenFromContext(ctx context.Context) (string, bool)
}
