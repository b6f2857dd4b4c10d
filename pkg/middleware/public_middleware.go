package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/StevenGabule/portfolio/pkg/cache"
	"github.com/StevenGabule/portfolio/pkg/endpoint"
	"github.com/StevenGabule/portfolio/pkg/limiter"
	"github.com/StevenGabule/portfolio/pkg/middleware/mwguards"
	"github.com/StevenGabule/portfolio/pkg/portal"
)

const (
	defaultSubmissionWindow = time.Minute
	defaultSubmissionsLimit = 5
	defaultDuplicateTTL     = 10 * time.Minute
)

const RateLimitRemainingHeader = "X-RateLimit-Remaining"

// PublicMiddleware guards anonymous write endpoints such as the contact
// form. Each client IP gets a small number of submissions per window, and an
// identical body from the same IP is refused until the duplicate TTL ends.
// The client IP is the one ClientIP resolved, so a forwarded header counts
// only when it came through a trusted proxy.
type PublicMiddleware struct {
	duplicateTTL time.Duration
	rateLimiter  *limiter.MemoryLimiter
	requestCache *cache.TTLCache
}

func MakePublicMiddleware() PublicMiddleware {
	return PublicMiddleware{
		duplicateTTL: defaultDuplicateTTL,
		rateLimiter:  limiter.NewMemoryLimiter(defaultSubmissionWindow, defaultSubmissionsLimit),
		requestCache: cache.NewTTLCache(),
	}
}

func (p PublicMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
		if err := p.GuardDependencies(); err != nil {
			return err
		}

		clientIP := portal.ParseClientIP(r)
		allowed := p.rateLimiter.Allow(clientIP)

		w.Header().Set(RateLimitRemainingHeader, strconv.Itoa(p.rateLimiter.Remaining(clientIP)))

		if !allowed {
			retry := int(math.Ceil(p.rateLimiter.RetryAfter(clientIP).Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(retry))

			return mwguards.RateLimitedError(
				"Too many submissions, please try again later",
				"submission rate limit reached for "+clientIP,
				map[string]any{"client_ip": clientIP},
			)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, endpoint.MaxRequestSize+1))
		portal.CloseWithLog(r.Body)

		if err != nil {
			return mwguards.InvalidRequestError("Could not read the request body", err.Error())
		}

		r.Body = io.NopCloser(bytes.NewReader(body))

		key := submissionKey(clientIP, body)

		if p.requestCache.UseOnce(key, p.duplicateTTL) {
			return mwguards.DuplicateSubmissionError(
				"This message was already received",
				"duplicate submission from "+clientIP,
				map[string]any{"client_ip": clientIP},
			)
		}

		return next(w, r)
	}
}

func (p PublicMiddleware) GuardDependencies() *endpoint.ApiError {
	missing := []string{}

	if p.requestCache == nil {
		missing = append(missing, "requestCache")
	}

	if p.rateLimiter == nil {
		missing = append(missing, "rateLimiter")
	}

	if len(missing) > 0 {
		err := fmt.Errorf("public middleware missing dependencies: %s", strings.Join(missing, ","))

		return endpoint.LogInternalError("public middleware missing dependencies", err)
	}

	return nil
}

func submissionKey(clientIP string, body []byte) string {
	sum := sha256.Sum256(bytes.TrimSpace(body))

	return clientIP + "|" + hex.EncodeToString(sum[:])
}
