package rule

import (
	"log/slog"

	"github.com/viant/lintrule/resolve"
)

// Option represents extension option
type Option func(e *Extension)

// WithResolver sets type resolver
func WithResolver(resolver Resolver) Option {
	return func(e *Extension) {
		e.resolver = resolver
	}
}

// WithCache sets resolution cache, every rule of an analysis run should share the same cache
func WithCache(cache *resolve.Cache) Option {
	return func(e *Extension) {
		e.cache = cache
	}
}

// WithDeriver sets resolution key deriver
func WithDeriver(deriver *resolve.Deriver) Option {
	return func(e *Extension) {
		e.deriver = deriver
	}
}

// WithTranslator sets message translator
func WithTranslator(translator Translator) Option {
	return func(e *Extension) {
		e.translator = translator
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extension) {
		e.logger = logger
	}
}

// WithDescription sets description message key
func WithDescription(key string) Option {
	return func(e *Extension) {
		e.descriptionKey = key
	}
}

// WithMessage sets default violation message key
func WithMessage(key string) Option {
	return func(e *Extension) {
		e.messageKey = key
	}
}
