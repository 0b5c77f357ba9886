package engine

import (
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/lintrule/rule"
)

// Option represents service option
type Option func(s *Service)

// RuleFactory creates a rule with shared extension options
type RuleFactory func(options ...rule.Option) rule.Rule

// WithFS sets file system service
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithResolver replaces the default type resolver
func WithResolver(resolver rule.Resolver) Option {
	return func(s *Service) {
		s.resolver = resolver
	}
}

// WithRule registers additional rule
func WithRule(factory RuleFactory) Option {
	return func(s *Service) {
		s.factories = append(s.factories, factory)
	}
}
