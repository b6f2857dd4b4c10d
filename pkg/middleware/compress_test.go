package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestBrotliCompressesWhenAccepted(t *testing.T) {
	payload := strings.Repeat(`{"title":"Getting Started with Next.js 15"}`, 20)

	handler := Brotli(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, payload)
	}))

	req := httptest.NewRequest("GET", "/posts", nil)
	req.Header.Set("Accept-Encoding", "gzip, br")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "br" {
		t.Fatalf("expected br encoding, got %v", rec.Header())
	}

	decoded, err := io.ReadAll(brotli.NewReader(rec.Body))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if string(decoded) != payload {
		t.Fatalf("round trip mismatch")
	}
}

func TestBrotliSkipsOtherClients(t *testing.T) {
	handler := Brotli(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "plain")
	}))

	for _, header := range []string{"", "gzip", "br;q=0"} {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept-Encoding", header)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Header().Get("Content-Encoding") != "" || rec.Body.String() != "plain" {
			t.Fatalf("%q: expected an uncompressed body, got %q", header, rec.Body.String())
		}
	}
}

func TestBrotliLeavesNotModifiedEmpty(t *testing.T) {
	handler := Brotli(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Encoding", "br")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotModified || rec.Body.Len() != 0 || rec.Header().Get("Content-Encoding") != "" {
		t.Fatalf("unexpected 304 response %d %q %v", rec.Code, rec.Body.String(), rec.Header())
	}
}

func TestBrotliPassesThroughEncodedBodies(t *testing.T) {
	handler := Brotli(promhttp.Handler())

	req := httptest.NewRequest("GET", "/metrics", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate, br")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if got := rec.Header().Values("Content-Encoding"); len(got) != 1 || got[0] != "gzip" {
		t.Fatalf("expected the gzip body to pass through, got %v", got)
	}

	reader, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("body is not plain gzip: %v", err)
	}

	decoded, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !strings.Contains(string(decoded), "go_goroutines") {
		t.Fatalf("unexpected exposition %q", string(decoded))
	}
}

func TestBrotliKeepsIdentityEncodedBodies(t *testing.T) {
	handler := Brotli(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "identity")
		_, _ = io.WriteString(w, "plain")
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Encoding", "br")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Header().Get("Content-Encoding") != "br" {
		t.Fatalf("identity bodies are still compressed, got %v", rec.Header())
	}
}

func TestBrotliETags(t *testing.T) {
	handler := Brotli(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", `"v1"`)

		if r.Header.Get("If-None-Match") == `"v1"` {
			w.WriteHeader(http.StatusNotModified)

			return
		}

		_, _ = io.WriteString(w, "body")
	}))

	req := httptest.NewRequest("GET", "/posts", nil)
	req.Header.Set("Accept-Encoding", "br")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	etag := rec.Header().Get("ETag")
	if etag != `"v1-br"` {
		t.Fatalf("compressed responses need their own validator, got %q", etag)
	}

	req = httptest.NewRequest("GET", "/posts", nil)
	req.Header.Set("Accept-Encoding", "br")
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotModified || rec.Header().Get("ETag") != `"v1-br"` {
		t.Fatalf("expected a 304 for the br validator, got %d %q", rec.Code, rec.Header().Get("ETag"))
	}

	req = httptest.NewRequest("GET", "/posts", nil)
	rec = httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Header().Get("ETag") != `"v1"` {
		t.Fatalf("identity responses keep the plain validator, got %q", rec.Header().Get("ETag"))
	}
}

func TestBrotliETagForms(t *testing.T) {
	cases := map[string]string{
		`"v1"`:    `"v1-br"`,
		`"v1-br"`: `"v1-br"`,
		`W/"v1"`:  `W/"v1"`,
		`bare`:    `bare`,
	}

	for in, want := range cases {
		if got := brotliETag(in); got != want {
			t.Fatalf("brotliETag(%s): got %s want %s", in, got, want)
		}
	}

	if got := stripBrotliETags(`"a-br", "b"`); got != `"a", "b"` {
		t.Fatalf("unexpected stripped header %s", got)
	}
}
