package endpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/StevenGabule/portfolio/pkg/portal"
	"github.com/getsentry/sentry-go"
)

func TestNewApiHandler(t *testing.T) {
	h := NewApiHandler(func(w http.ResponseWriter, r *http.Request) *ApiError {
		return UnprocessableEntity("invalid form", map[string]any{"email": "Please enter a valid email address"})
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("POST", "/contact", nil))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d", rec.Code)
	}

	var resp ErrorResponse

	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Error == "" || resp.Status != http.StatusUnprocessableEntity {
		t.Fatalf("invalid response %+v", resp)
	}

	if resp.Data["email"] != "Please enter a valid email address" {
		t.Fatalf("expected field errors in data, got %+v", resp.Data)
	}
}

func TestNewApiHandlerSuccessWritesNothingExtra(t *testing.T) {
	h := NewApiHandler(func(w http.ResponseWriter, r *http.Request) *ApiError {
		w.WriteHeader(http.StatusNoContent)

		return nil
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
}

func TestApiErrorUnwrap(t *testing.T) {
	root := errors.New("root")
	apiErr := LogInternalError("boom", root)

	if !errors.Is(apiErr, root) {
		t.Fatalf("expected api error to wrap its cause")
	}

	var nilErr *ApiError
	if nilErr.Error() != "Internal Server Error" {
		t.Fatalf("unexpected nil message %q", nilErr.Error())
	}
}

func TestConstructorsStatus(t *testing.T) {
	cases := map[int]*ApiError{
		http.StatusNotFound:            NotFound("post"),
		http.StatusBadRequest:          BadRequestError("bad"),
		http.StatusInternalServerError: LogInternalError("oops", errors.New("disk")),
		http.StatusUnprocessableEntity: UnprocessableEntity("form", map[string]any{"name": "required"}),
		http.StatusUnauthorized:        LogUnauthorisedError("creds", errors.New("nope")),
	}

	for status, apiErr := range cases {
		if apiErr.Status != status {
			t.Fatalf("expected %d, got %d", status, apiErr.Status)
		}

		if apiErr.Err == nil {
			t.Fatalf("expected an underlying error for %d", status)
		}
	}
}

func TestScopeApiErrorRequestID(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(portal.RequestIDHeader, "header-id")

	scopeApiError := &ScopeApiError{request: req}

	if got := scopeApiError.RequestID(); got != "header-id" {
		t.Fatalf("expected header request id, got %s", got)
	}

	ctxReq := req.WithContext(context.WithValue(req.Context(), portal.RequestIDKey, "context-id"))

	scopeApiError.request = ctxReq

	if got := scopeApiError.RequestID(); got != "context-id" {
		t.Fatalf("expected context request id, got %s", got)
	}
}

func TestScopeApiErrorBuildErrorChain(t *testing.T) {
	root := errors.New("root")
	wrapped := fmt.Errorf("layer: %w", root)

	chain := (&ScopeApiError{}).buildErrorChain(wrapped)

	if len(chain) != 2 {
		t.Fatalf("expected 2 errors in chain, got %d", len(chain))
	}

	if chain[0] != wrapped.Error() || chain[1] != root.Error() {
		t.Fatalf("unexpected error chain: %#v", chain)
	}
}

func TestScopeApiErrorEnrichSetsLevelAndTags(t *testing.T) {
	scope := sentry.NewScope()
	req := httptest.NewRequest("POST", "/contact", nil)

	apiErr := &ApiError{Status: http.StatusInternalServerError, Err: errors.New("boom")}

	NewScopeApiError(scope, req, apiErr).Enrich()

	event := scope.ApplyToEvent(sentry.NewEvent(), nil, nil)
	if event == nil {
		t.Fatalf("expected event after scope enrichment")
	}

	if event.Level != sentry.LevelError {
		t.Fatalf("expected error level, got %s", event.Level)
	}

	if got := event.Tags["http.method"]; got != "POST" {
		t.Fatalf("expected POST method tag, got %s", got)
	}

	if got := event.Tags["http.status_code"]; got != "500" {
		t.Fatalf("expected 500 status code tag, got %s", got)
	}

	if got := event.Tags["http.route"]; got != "/contact" {
		t.Fatalf("expected /contact route tag, got %s", got)
	}
}

func TestSentryLevels(t *testing.T) {
	cases := map[int]sentry.Level{
		http.StatusNotFound:            sentry.LevelInfo,
		http.StatusTooManyRequests:     sentry.LevelInfo,
		http.StatusBadRequest:          sentry.LevelWarning,
		http.StatusUnprocessableEntity: sentry.LevelWarning,
		http.StatusInternalServerError: sentry.LevelError,
	}

	for status, want := range cases {
		if got := getSentryLevel(status); got != want {
			t.Fatalf("status %d: got %s want %s", status, got, want)
		}
	}
}
