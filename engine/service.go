// Package engine runs rules over java compilation units.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/lintrule/config"
	"github.com/viant/lintrule/i18n"
	"github.com/viant/lintrule/logging"
	"github.com/viant/lintrule/resolve"
	"github.com/viant/lintrule/rule"
	"github.com/viant/lintrule/rules"
	"github.com/viant/lintrule/typeres"
	"github.com/viant/lintrule/unit"
	"golang.org/x/sync/errgroup"
)

// Service represents analysis service, one service holds one resolution cache for its lifetime
type Service struct {
	config    *config.Config
	fs        afs.Service
	logger    *slog.Logger
	resolver  rule.Resolver
	cache     *resolve.Cache
	catalog   *i18n.Catalog
	factories []RuleFactory
	rules     []rule.Rule
}

// Cache returns resolution cache
func (s *Service) Cache() *resolve.Cache {
	return s.cache
}

// Rules returns configured rules
func (s *Service) Rules() []rule.Rule {
	return s.rules
}

// Load reads and parses java sources, directory URLs are scanned recursively
func (s *Service) Load(ctx context.Context, URLs ...string) ([]*unit.Unit, error) {
	var result []*unit.Unit
	for _, URL := range URLs {
		locations, err := s.sources(ctx, URL)
		if err != nil {
			return nil, err
		}
		for _, location := range locations {
			source, err := s.fs.DownloadWithURL(ctx, location)
			if err != nil {
				return nil, fmt.Errorf("failed to download %v: %w", location, err)
			}
			aUnit, err := unit.Parse(ctx, location, source)
			if err != nil {
				return nil, err
			}
			result = append(result, aUnit)
		}
	}
	return result, nil
}

func (s *Service) sources(ctx context.Context, URL string) ([]string, error) {
	object, err := s.fs.Object(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to locate %v: %w", URL, err)
	}
	if !object.IsDir() {
		return []string{URL}, nil
	}
	objects, err := s.fs.List(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to list %v: %w", URL, err)
	}
	var result []string
	for i, candidate := range objects {
		if i == 0 && candidate.IsDir() && strings.TrimRight(candidate.URL(), "/") == strings.TrimRight(object.URL(), "/") {
			continue
		}
		switch {
		case candidate.IsDir():
			if skipDir(candidate.Name()) {
				continue
			}
			nested, err := s.sources(ctx, candidate.URL())
			if err != nil {
				return nil, err
			}
			result = append(result, nested...)
		case path.Ext(candidate.Name()) == ".java":
			result = append(result, candidate.URL())
		}
	}
	return result, nil
}

func skipDir(name string) bool {
	switch name {
	case "target", "build", "out", ".git":
		return true
	}
	return false
}

// Analyze runs every rule against every unit, a failing rule is recorded as processing error
// and does not stop the run
func (s *Service) Analyze(ctx context.Context, units ...*unit.Unit) (*rule.Report, error) {
	runID := uuid.New().String()
	report := rule.NewReport()
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.config.Concurrency)
	s.logger.Info("analysis started", "run", runID, "units", len(units), "rules", len(s.rules))
	for _, aUnit := range units {
		visitCtx := rule.NewContext(aUnit.Path, report)
		visitCtx.RunID = runID
		for _, aRule := range s.rules {
			aUnit, aRule := aUnit, aRule
			group.Go(func() error {
				if err := groupCtx.Err(); err != nil {
					return err
				}
				s.visit(aRule, aUnit, visitCtx)
				return nil
			})
		}
	}
	err := group.Wait()
	s.logger.Info("analysis finished", "run", runID, "violations", len(report.Violations()), "errors", len(report.Errors()), "resolved", s.cache.Len())
	return report, err
}

func (s *Service) visit(aRule rule.Rule, aUnit *unit.Unit, ctx *rule.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.fail(aRule, ctx, fmt.Errorf("panic: %v", r))
		}
	}()
	if err := aRule.Visit(aUnit, ctx); err != nil {
		s.fail(aRule, ctx, err)
	}
}

func (s *Service) fail(aRule rule.Rule, ctx *rule.Context, err error) {
	processingErr := &rule.ProcessingError{Rule: aRule.Name(), File: ctx.SourceName, Err: err}
	s.logger.Error("rule failed", "run", ctx.RunID, "rule", aRule.Name(), "file", ctx.SourceName, "error", err)
	ctx.Report.AddError(processingErr)
}

// AnalyzeURL loads and analyzes sources
func (s *Service) AnalyzeURL(ctx context.Context, URLs ...string) (*rule.Report, error) {
	units, err := s.Load(ctx, URLs...)
	if err != nil {
		return nil, err
	}
	return s.Analyze(ctx, units...)
}

// New creates analysis service
func New(ctx context.Context, cfg *config.Config, options ...Option) (*Service, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.Init()
	ret := &Service{config: cfg, cache: resolve.NewCache()}
	for _, opt := range options {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.logger == nil {
		ret.logger = logging.New(cfg.LogLevel, nil)
	}
	if ret.resolver == nil {
		ret.resolver = typeres.New(typeres.WithLogger(ret.logger))
	}
	var err error
	if ret.catalog, err = i18n.New(cfg.Language, i18n.WithFS(ret.fs), i18n.WithLogger(ret.logger)); err != nil {
		return nil, err
	}
	for _, URL := range cfg.Catalogs {
		if err = ret.catalog.Load(ctx, URL); err != nil {
			return nil, err
		}
	}
	ruleOptions := []rule.Option{
		rule.WithCache(ret.cache),
		rule.WithDeriver(resolve.NewDeriver(cfg.Placeholders...)),
		rule.WithResolver(ret.resolver),
		rule.WithTranslator(ret.catalog),
		rule.WithLogger(ret.logger),
	}
	candidates := rules.All(ruleOptions...)
	for _, factory := range ret.factories {
		candidates = append(candidates, factory(ruleOptions...))
	}
	for _, candidate := range candidates {
		if cfg.Enabled(candidate.Name()) {
			ret.rules = append(ret.rules, candidate)
		}
	}
	return ret, nil
}

// NewFromURL creates analysis service with YAML config loaded from URL
func NewFromURL(ctx context.Context, URL string, options ...Option) (*Service, error) {
	fs := afs.New()
	probe := &Service{}
	for _, opt := range options {
		opt(probe)
	}
	if probe.fs != nil {
		fs = probe.fs
	}
	cfg, err := config.Load(ctx, fs, URL)
	if err != nil {
		return nil, err
	}
	return New(ctx, cfg, options...)
}
