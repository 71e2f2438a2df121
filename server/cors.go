package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sambeau/unitz/config"
)

var defaultCORSMethods = []string{"GET", "POST"}

// newCORSHandler answers browser clients from the configured origins. With
// no origins configured it returns h unchanged. Preflight requests are
// answered here and never reach the API routes.
func newCORSHandler(h http.Handler, cfg config.CORSConfig) http.Handler {
	if len(cfg.Origins) == 0 {
		return h
	}
	methods := cfg.Methods
	if len(methods) == 0 {
		methods = defaultCORSMethods
	}
	anyOrigin := cfg.Origins.Contains("*")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" || !(anyOrigin || cfg.Origins.Contains(origin)) {
			h.ServeHTTP(w, r)
			return
		}

		hdr := w.Header()
		// a credentialed response must name the origin
		if cfg.Credentials || !anyOrigin {
			hdr.Set("Access-Control-Allow-Origin", origin)
		} else {
			hdr.Set("Access-Control-Allow-Origin", "*")
		}
		if cfg.Credentials {
			hdr.Set("Access-Control-Allow-Credentials", "true")
		}
		hdr.Add("Vary", "Origin")

		if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
			h.ServeHTTP(w, r)
			return
		}

		hdr.Set("Access-Control-Allow-Methods", strings.Join(methods, ", "))
		if len(cfg.Headers) > 0 {
			hdr.Set("Access-Control-Allow-Headers", strings.Join(cfg.Headers, ", "))
		} else if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
			hdr.Set("Access-Control-Allow-Headers", requested)
		}
		if cfg.MaxAge > 0 {
			hdr.Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}
		w.WriteHeader(http.StatusNoContent)
	})
}
