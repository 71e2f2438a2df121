package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sambeau/unitz/config"
)

func TestSecurityHeaders(t *testing.T) {
	h := newSecurityHeaders(okHandler, config.Defaults().Server.Security)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestSecurityHeaders_HSTS(t *testing.T) {
	h := newSecurityHeaders(okHandler, config.SecurityConfig{HSTS: "max-age=31536000"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "max-age=31536000", rec.Header().Get("Strict-Transport-Security"))
	assert.Empty(t, rec.Header().Get("X-Frame-Options"))
}

func TestProxyAware(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.ProxyConfig
		remote string
		xff    string
		realIP string
		want   string
	}{
		{"untrusted ignores headers", config.ProxyConfig{}, "192.0.2.1:1234", "203.0.113.7", "", "192.0.2.1"},
		{"forwarded for", config.ProxyConfig{Trusted: true}, "192.0.2.1:1234", "203.0.113.7, 10.0.0.1", "", "203.0.113.7"},
		{"real ip", config.ProxyConfig{Trusted: true}, "192.0.2.1:1234", "", "203.0.113.8", "203.0.113.8"},
		{"no headers", config.ProxyConfig{Trusted: true}, "192.0.2.1:1234", "", "", "192.0.2.1"},
		{"trusted peer", config.ProxyConfig{Trusted: true, TrustedIPs: []string{"192.0.2.1"}}, "192.0.2.1:1234", "203.0.113.7", "", "203.0.113.7"},
		{"untrusted peer", config.ProxyConfig{Trusted: true, TrustedIPs: []string{"10.0.0.1"}}, "192.0.2.1:1234", "203.0.113.7", "", "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := newProxyAware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = clientIP(r)
			}), tt.cfg)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}
