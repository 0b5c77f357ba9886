package rule

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/lintrule/resolve"
	"github.com/viant/lintrule/unit"
)

// Extension decorates a rule visitor: each compilation unit gets type resolved at most once
// across all rules sharing the cache, and descriptions and messages are translated before
// they reach the report.
type Extension struct {
	name       string
	visitor    Visitor
	resolver   Resolver
	cache      *resolve.Cache
	deriver    *resolve.Deriver
	translator Translator
	logger     *slog.Logger

	descriptionKey string
	messageKey     string

	mux         sync.RWMutex
	description string
	message     string
}

// Name returns rule name
func (e *Extension) Name() string {
	return e.name
}

// Visit resolves the unit when needed, then runs the rule visitor.
// A nil ctx is treated as an ad-hoc visit of a placeholder source with a private report.
func (e *Extension) Visit(aUnit *unit.Unit, ctx *Context) error {
	if ctx == nil {
		ctx = NewContext(resolve.Placeholder, nil)
	}
	if err := e.resolve(aUnit, ctx); err != nil {
		return err
	}
	return e.visitor.Visit(aUnit, ctx, e)
}

func (e *Extension) resolve(aUnit *unit.Unit, ctx *Context) error {
	if e.resolver == nil {
		return nil
	}
	key, ok := e.deriver.Derive(ctx.SourceName, aUnit)
	if !ok {
		e.logger.Debug("resolving unit without cache", "rule", e.name, "source", ctx.SourceName)
		return e.resolver.Resolve(aUnit, ctx)
	}
	ran, err := e.cache.Do(key, func() error {
		return e.resolver.Resolve(aUnit, ctx)
	})
	if ran {
		e.logger.Debug("resolved unit", "rule", e.name, "key", string(key))
	} else {
		e.logger.Debug("unit already resolved", "rule", e.name, "key", string(key))
	}
	if err != nil {
		if !ran {
			return fmt.Errorf("unit %v failed to resolve in an earlier visit: %w", key, err)
		}
		return fmt.Errorf("failed to resolve %v: %w", key, err)
	}
	return nil
}

// Description returns localized description
func (e *Extension) Description() string {
	e.mux.RLock()
	defer e.mux.RUnlock()
	return e.description
}

// Message returns localized default message
func (e *Extension) Message() string {
	e.mux.RLock()
	defer e.mux.RUnlock()
	return e.message
}

// SetDescription translates and sets description
func (e *Extension) SetDescription(description string) {
	translated := e.translator.Lookup(description)
	e.mux.Lock()
	e.description = translated
	e.mux.Unlock()
}

// SetMessage translates and sets default message
func (e *Extension) SetMessage(message string) {
	translated := e.translator.Lookup(message)
	e.mux.Lock()
	e.message = translated
	e.mux.Unlock()
}

// AddViolation reports a violation with the default message
func (e *Extension) AddViolation(ctx *Context, node *sitter.Node) {
	e.add(ctx, node, e.Message())
}

// AddViolationWithMessage reports a violation, message is translated first
func (e *Extension) AddViolationWithMessage(ctx *Context, node *sitter.Node, message string) {
	e.add(ctx, node, e.translator.Lookup(message))
}

// AddViolationWithMessageArgs reports a violation, message is translated and formatted with args
func (e *Extension) AddViolationWithMessageArgs(ctx *Context, node *sitter.Node, message string, args ...interface{}) {
	e.add(ctx, node, e.translator.LookupWithArgs(message, args...))
}

func (e *Extension) add(ctx *Context, node *sitter.Node, message string) {
	violation := &Violation{
		Rule:        e.name,
		Description: e.Description(),
		Message:     message,
		File:        ctx.SourceName,
	}
	if node != nil {
		point := node.StartPoint()
		violation.Line = int(point.Row) + 1
		violation.Column = int(point.Column) + 1
	}
	ctx.Report.Add(violation)
}

// Extend creates a rule from visitor
func Extend(name string, visitor Visitor, options ...Option) *Extension {
	ret := &Extension{name: name, visitor: visitor}
	for _, opt := range options {
		opt(ret)
	}
	if ret.cache == nil {
		ret.cache = resolve.NewCache()
	}
	if ret.deriver == nil {
		ret.deriver = resolve.NewDeriver()
	}
	if ret.translator == nil {
		ret.translator = passthrough{}
	}
	if ret.logger == nil {
		ret.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if ret.descriptionKey != "" {
		ret.SetDescription(ret.descriptionKey)
	}
	if ret.messageKey != "" {
		ret.SetMessage(ret.messageKey)
	}
	return ret
}
