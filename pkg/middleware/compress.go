package middleware

import (
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

const brotliETagSuffix = "-br"

// Brotli compresses responses for clients that send Accept-Encoding: br.
// Bodyless responses (204, 304, HEAD) and bodies the handler already encoded
// pass through untouched. Strong ETags of compressed responses get a -br
// suffix, which is stripped again from If-None-Match on the way in.
func Brotli(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")

		if r.Method == http.MethodHead || !acceptsBrotli(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)

			return
		}

		if match := r.Header.Get("If-None-Match"); match != "" {
			r.Header.Set("If-None-Match", stripBrotliETags(match))
		}

		bw := &brotliWriter{ResponseWriter: w}
		defer bw.Close()

		next.ServeHTTP(bw, r)
	})
}

func acceptsBrotli(header string) bool {
	for _, part := range strings.Split(header, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")

		if !strings.EqualFold(strings.TrimSpace(coding), "br") {
			continue
		}

		return strings.ReplaceAll(strings.TrimSpace(params), " ", "") != "q=0"
	}

	return false
}

type brotliWriter struct {
	http.ResponseWriter
	encoder     *brotli.Writer
	wroteHeader bool
}

func (b *brotliWriter) WriteHeader(code int) {
	if b.wroteHeader {
		return
	}

	b.wroteHeader = true
	h := b.Header()

	if encoding := h.Get("Content-Encoding"); encoding != "" && !strings.EqualFold(encoding, "identity") {
		b.ResponseWriter.WriteHeader(code)

		return
	}

	if etag := h.Get("ETag"); etag != "" {
		h.Set("ETag", brotliETag(etag))
	}

	if bodyAllowed(code) {
		h.Del("Content-Length")
		h.Set("Content-Encoding", "br")

		b.encoder = brotli.NewWriterLevel(b.ResponseWriter, brotli.DefaultCompression)
	}

	b.ResponseWriter.WriteHeader(code)
}

func (b *brotliWriter) Write(p []byte) (int, error) {
	if !b.wroteHeader {
		b.WriteHeader(http.StatusOK)
	}

	if b.encoder == nil {
		return b.ResponseWriter.Write(p)
	}

	return b.encoder.Write(p)
}

func (b *brotliWriter) Close() error {
	if b.encoder == nil {
		return nil
	}

	return b.encoder.Close()
}

func (b *brotliWriter) Unwrap() http.ResponseWriter {
	return b.ResponseWriter
}

func bodyAllowed(code int) bool {
	return code >= 200 && code != http.StatusNoContent && code != http.StatusNotModified
}

// brotliETag marks a strong validator as belonging to the br coding. Weak
// validators already tolerate coding differences.
func brotliETag(etag string) string {
	if strings.HasPrefix(etag, "W/") || len(etag) < 2 || !strings.HasSuffix(etag, `"`) {
		return etag
	}

	if strings.HasSuffix(etag, brotliETagSuffix+`"`) {
		return etag
	}

	return strings.TrimSuffix(etag, `"`) + brotliETagSuffix + `"`
}

func stripBrotliETags(header string) string {
	tags := strings.Split(header, ",")

	for i, tag := range tags {
		tag = strings.TrimSpace(tag)
		tags[i] = strings.Replace(tag, brotliETagSuffix+`"`, `"`, 1)
	}

	return strings.Join(tags, ", ")
}
