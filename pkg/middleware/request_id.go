package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/StevenGabule/portfolio/pkg/portal"
	"github.com/google/uuid"
)

const maxRequestIDLength = 128

// RequestID keeps a sane incoming X-Request-ID or mints a new one, stores it
// in the request context and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(portal.RequestIDHeader))

		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		w.Header().Set(portal.RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), portal.RequestIDKey, id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(portal.RequestIDKey).(string); ok {
		return id
	}

	return ""
}
