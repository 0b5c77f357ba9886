package i18n

import (
	"log/slog"

	"github.com/viant/afs"
)

// Option represents catalog option
type Option func(c *Catalog)

// WithLogger sets logger used to report fallbacks
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithFS sets file system service used to load bundles
func WithFS(fs afs.Service) Option {
	return func(c *Catalog) {
		c.fs = fs
	}
}

// WithFallback sets the language used when a key is missing in the selected language
func WithFallback(lang string) Option {
	return func(c *Catalog) {
		c.fallbackName = lang
	}
}
