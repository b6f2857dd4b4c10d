package endpoint

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/getsentry/sentry-go"
)

func NewApiHandler(fn ApiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)

		if err == nil {
			return
		}

		logApiError(r, err)
		captureApiError(r, err)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.WriteHeader(err.Status)

		resp := ErrorResponse{
			Error:  err.Message,
			Status: err.Status,
			Data:   err.Data,
		}

		if result := json.NewEncoder(w).Encode(resp); result != nil {
			slog.Error("Could not encode error response", "error", result)
		}
	}
}

func logApiError(r *http.Request, apiErr *ApiError) {
	attrs := []any{"message", apiErr.Message, "status", apiErr.Status, "path", r.URL.Path}

	if apiErr.Status >= http.StatusInternalServerError {
		slog.Error("API Error", attrs...)

		return
	}

	slog.Warn("API Error", attrs...)
}

func captureApiError(r *http.Request, apiErr *ApiError) {
	if apiErr == nil {
		return
	}

	errToCapture := error(apiErr)
	if apiErr.Err != nil {
		errToCapture = apiErr.Err
	}

	notify := func(hub *sentry.Hub) {
		hub.WithScope(func(scope *sentry.Scope) {
			NewScopeApiError(scope, r, apiErr).Enrich()

			hub.CaptureException(errToCapture)
		})
	}

	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		notify(hub)
		return
	}

	notify(sentry.CurrentHub())
}

// getSentryLevel keeps expected client errors out of the alerting path.
func getSentryLevel(status int) sentry.Level {
	switch {
	case status == http.StatusUnauthorized,
		status == http.StatusForbidden,
		status == http.StatusNotFound,
		status == http.StatusTooManyRequests:
		return sentry.LevelInfo
	case status >= 400 && status < 500:
		return sentry.LevelWarning
	default:
		return sentry.LevelError
	}
}
