package middleware

import (
	"log/slog"
	"net/http"
)

// Audit logs which operator issued an authenticated request.
func Audit(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, err := GetSubjectFromContext(r.Context())
			if err != nil {
				subject = "unknown"
			}
			logger.InfoContext(r.Context(), "operator request",
				slog.String("operator", subject),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path))
			next.ServeHTTP(w, r)
		})
	}
}
