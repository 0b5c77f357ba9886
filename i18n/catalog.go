// Package i18n resolves user facing rule text from message bundles.
//
// Rule authors use a message key wherever a description or violation message is expected,
// Lookup and LookupWithArgs translate the key into the selected language. A missing key or a
// formatting failure never fails the caller, the key itself is returned instead.
package i18n

import (
	"context"
	"embed"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"sync"

	"github.com/viant/afs"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed messages/*.yaml
var bundles embed.FS

// Bundle represents a single language message bundle
type Bundle struct {
	Language string            `yaml:"language"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog represents localized messages
type Catalog struct {
	fs           afs.Service
	logger       *slog.Logger
	name         string
	fallbackName string

	mux      sync.RWMutex
	tag      language.Tag
	fallback language.Tag
	messages map[language.Tag]map[string]string
}

// Language returns selected language
func (c *Catalog) Language() language.Tag {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.tag
}

// Lookup returns localized message for the key or the key itself
func (c *Catalog) Lookup(key string) string {
	template, ok := c.template(key)
	if !ok {
		c.logger.Warn("message not found", "key", key, "language", c.name)
		return key
	}
	return template
}

// LookupWithArgs returns localized message with positional arguments substituted,
// or the key itself when the message is missing or cannot be formatted
func (c *Catalog) LookupWithArgs(key string, args ...interface{}) (result string) {
	template, ok := c.template(key)
	if !ok {
		c.logger.Warn("message not found", "key", key, "language", c.name)
		return key
	}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("failed to format message", "key", key, "error", r)
			result = key
		}
	}()
	result = fmt.Sprintf(template, args...)
	// surplus arguments are ignored
	if index := strings.Index(result, "%!(EXTRA "); index != -1 {
		result = result[:index]
	}
	if strings.Contains(result, "%!") && !strings.Contains(template, "%!") {
		c.logger.Warn("failed to format message", "key", key, "message", result)
		return key
	}
	return result
}

func (c *Catalog) template(key string) (string, bool) {
	c.mux.RLock()
	defer c.mux.RUnlock()
	for _, tag := range []language.Tag{c.tag, c.fallback} {
		if template, ok := c.messages[tag][key]; ok {
			return template, true
		}
	}
	return "", false
}

// Load loads YAML bundle from URL
func (c *Catalog) Load(ctx context.Context, URL string) error {
	data, err := c.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to download bundle %v: %w", URL, err)
	}
	if err = c.add(data); err != nil {
		return fmt.Errorf("invalid bundle %v: %w", URL, err)
	}
	return nil
}

func (c *Catalog) add(data []byte) error {
	bundle := &Bundle{}
	if err := yaml.Unmarshal(data, bundle); err != nil {
		return err
	}
	tag, err := language.Parse(bundle.Language)
	if err != nil {
		return fmt.Errorf("invalid language %q: %w", bundle.Language, err)
	}
	tag = baseTag(tag)

	c.mux.Lock()
	defer c.mux.Unlock()
	messages, ok := c.messages[tag]
	if !ok {
		messages = make(map[string]string, len(bundle.Messages))
		c.messages[tag] = messages
	}
	for key, msg := range bundle.Messages {
		messages[key] = msg
	}
	c.selectLanguage()
	return nil
}

// selectLanguage matches requested language against loaded bundles
func (c *Catalog) selectLanguage() {
	var available []language.Tag
	available = append(available, c.fallback)
	for tag := range c.messages {
		if tag != c.fallback {
			available = append(available, tag)
		}
	}
	requested, err := language.Parse(c.name)
	if err != nil {
		c.tag = c.fallback
		return
	}
	_, index, confidence := language.NewMatcher(available).Match(requested)
	if confidence == language.No {
		c.tag = c.fallback
		return
	}
	c.tag = available[index]
}

func (c *Catalog) loadEmbedded() error {
	entries, err := bundles.ReadDir("messages")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		file, err := bundles.Open(path.Join("messages", entry.Name()))
		if err != nil {
			return err
		}
		data, err := io.ReadAll(file)
		_ = file.Close()
		if err != nil {
			return err
		}
		if err = c.add(data); err != nil {
			return fmt.Errorf("invalid bundle %v: %w", entry.Name(), err)
		}
	}
	return nil
}

func baseTag(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	return language.Make(base.String())
}

// New creates a catalog for the requested language with the built-in bundles loaded
func New(lang string, options ...Option) (*Catalog, error) {
	ret := &Catalog{
		name:         lang,
		fallbackName: "en",
		messages:     map[language.Tag]map[string]string{},
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.logger == nil {
		ret.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	fallback, err := language.Parse(ret.fallbackName)
	if err != nil {
		return nil, fmt.Errorf("invalid fallback language %q: %w", ret.fallbackName, err)
	}
	ret.fallback = baseTag(fallback)
	ret.tag = ret.fallback
	if err = ret.loadEmbedded(); err != nil {
		return nil, err
	}
	return ret, nil
}
