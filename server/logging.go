package server

import (
	"net/http"
	"time"

	"github.com/sambeau/unitz/internal/logger"
)

// requestLogger is middleware that logs HTTP requests
type requestLogger struct {
	handler http.Handler
	log     *logger.Logger
}

// responseCapture wraps http.ResponseWriter to capture status code
type responseCapture struct {
	http.ResponseWriter
	status int
}

func (rc *responseCapture) WriteHeader(code int) {
	rc.status = code
	rc.ResponseWriter.WriteHeader(code)
}

func (rc *responseCapture) Write(b []byte) (int, error) {
	if rc.status == 0 {
		rc.status = http.StatusOK
	}
	return rc.ResponseWriter.Write(b)
}

func newRequestLogger(handler http.Handler, log *logger.Logger) *requestLogger {
	return &requestLogger{handler: handler, log: log}
}

func (rl *requestLogger) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rc := &responseCapture{ResponseWriter: w}

	rl.handler.ServeHTTP(rc, r)

	rl.log.Info("request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rc.status,
		"duration", time.Since(start),
		"client_ip", clientIP(r),
	)
}
