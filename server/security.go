package server

import (
	"net/http"
	"slices"
	"strings"

	"github.com/sambeau/unitz/config"
)

// newSecurityHeaders sets the configured response headers on every
// response. Empty settings are skipped.
func newSecurityHeaders(h http.Handler, cfg config.SecurityConfig) http.Handler {
	headers := map[string]string{
		"X-Content-Type-Options":    cfg.ContentTypeOptions,
		"X-Frame-Options":           cfg.FrameOptions,
		"Referrer-Policy":           cfg.ReferrerPolicy,
		"Strict-Transport-Security": cfg.HSTS,
	}
	for k, v := range headers {
		if v == "" {
			delete(headers, k)
		}
	}
	if len(headers) == 0 {
		return h
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		h.ServeHTTP(w, r)
	})
}

// newProxyAware replaces RemoteAddr with the client address from
// X-Forwarded-For or X-Real-IP, so request logs and rate limits see the
// real client behind a reverse proxy. Headers are only believed when the
// peer is in TrustedIPs, or from any peer when that list is empty.
func newProxyAware(h http.Handler, cfg config.ProxyConfig) http.Handler {
	if !cfg.Trusted {
		return h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(cfg.TrustedIPs) > 0 && !slices.Contains(cfg.TrustedIPs, clientIP(r)) {
			h.ServeHTTP(w, r)
			return
		}
		if addr := forwardedFor(r); addr != "" {
			r.RemoteAddr = addr
		}
		h.ServeHTTP(w, r)
	})
}

// forwardedFor returns the original client named by proxy headers. The
// leftmost X-Forwarded-For entry wins over X-Real-IP.
func forwardedFor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	return strings.TrimSpace(r.Header.Get("X-Real-IP"))
}
