package server

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/sambeau/unitz/internal/ratelimit"
)

// newRateLimitHandler rejects clients over their request budget with 429.
// A nil limiter disables limiting.
func newRateLimitHandler(h http.Handler, limiter *ratelimit.Limiter, window time.Duration) http.Handler {
	if limiter == nil {
		return h
	}
	retry := strconv.Itoa(max(1, int(window.Seconds())))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" && !limiter.Allow(clientIP(r)) {
			w.Header().Set("Retry-After", retry)
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		h.ServeHTTP(w, r)
	})
}

// clientIP is the rate limit key: the remote host without its port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
