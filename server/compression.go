package server

import (
	"compress/gzip"
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"github.com/sambeau/unitz/config"
)

var compressionLevels = map[string]int{
	"fastest": gzip.BestSpeed,
	"default": gzip.DefaultCompression,
	"best":    gzip.BestCompression,
}

// API results and plain-text errors are the only bodies worth gzipping.
var compressedTypes = []string{"application/json", "text/plain"}

// newCompressionHandler gzips API responses of at least cfg.MinSize bytes
// for clients that accept it.
func newCompressionHandler(h http.Handler, cfg config.CompressionConfig) http.Handler {
	level, ok := compressionLevels[cfg.Level]
	if !cfg.Enabled || cfg.Level == "none" {
		return h
	}
	if !ok {
		level = gzip.DefaultCompression
	}

	wrap, err := gzhttp.NewWrapper(
		gzhttp.MinSize(cfg.MinSize),
		gzhttp.CompressionLevel(level),
		gzhttp.ContentTypes(compressedTypes),
	)
	if err != nil {
		return h
	}
	return wrap(h)
}
