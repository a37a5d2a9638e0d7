package middleware

import (
	"net/http"
	"strings"

	"github.com/dtroode/gophtasks-server/internal/api/http/handler"
	"github.com/dtroode/gophtasks-server/internal/apierrors"
	"github.com/dtroode/gophtasks-server/internal/model"
)

const bearerScheme = "Bearer"

// Token requires an "Authorization: Bearer <token>" header and stores the
// token on the request context.
type Token struct {
	contextManager model.ContextManager
}

// NewToken creates a new Token middleware.
func NewToken(contextManager model.ContextManager) *Token {
	return &Token{contextManager: contextManager}
}

// Handle renders MISSING_TOKEN without calling next when the header is absent or malformed.
func (m *Token) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := ParseBearer(r.Header.Get("Authorization"))
		if !ok {
			handler.WriteError(w, apierrors.NewErrMissingToken())
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetTokenToContext(r.Context(), token)))
	})
}

// ParseBearer extracts the token from an Authorization header value.
func ParseBearer(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != bearerScheme || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
