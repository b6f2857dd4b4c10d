package middleware

import (
	"net/http"

	"github.com/StevenGabule/portfolio/pkg/portal"
)

// ClientIP resolves the caller address once so the guards, the logs and
// Sentry all key on the same value.
func ClientIP(proxies portal.TrustedProxies, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := portal.WithClientIP(r.Context(), proxies.ClientIP(r))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
