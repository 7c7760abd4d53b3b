package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/datalake/receiver/internal/auth"
	"github.com/datalake/receiver/internal/metrics"
	"github.com/datalake/receiver/internal/response"
)

// RequireToken returns middleware that enforces the shared bearer token on
// upload routes. The presented token value is never logged.
func RequireToken(gate *auth.Gate, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !gate.Allows(r.Header.Get("Authorization")) {
				metrics.Unauthorized.Inc()
				logger.Warn("unauthorized access attempt",
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr))
				response.Unauthorized(w, "Unauthorized: Invalid or missing access token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
