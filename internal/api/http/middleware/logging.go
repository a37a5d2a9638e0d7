package middleware

import (
	"net/http"
	"time"

	"github.com/dtroode/gophtasks-server/internal/logger"
)

// Logging logs every HTTP request and its outcome.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle logs method, route, duration and status for each request.
func (l *Logging) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		route := routeOf(r)

		l.logger.Info("HTTP request started",
			"method", r.Method,
			"route", route,
			"start_time", start.Format(time.RFC3339))

		wrapped := wrapResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		l.logger.Info("HTTP request completed",
			"method", r.Method,
			"route", route,
			"duration_ms", time.Since(start).Milliseconds(),
			"status", wrapped.statusCode)

		if wrapped.statusCode >= http.StatusInternalServerError {
			l.logger.Error("HTTP request failed",
				"method", r.Method,
				"route", route,
				"status", wrapped.statusCode)
		}
	})
}
