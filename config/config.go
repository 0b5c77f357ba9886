package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/lintrule/resolve"
	"gopkg.in/yaml.v3"
)

// Config represents analysis configuration
type Config struct {
	Language     string   `yaml:"language,omitempty"`     // message language, e.g. en, zh
	Catalogs     []string `yaml:"catalogs,omitempty"`     // extra message bundle URLs
	Placeholders []string `yaml:"placeholders,omitempty"` // source names that disable resolution caching
	LogLevel     string   `yaml:"logLevel,omitempty"`
	Concurrency  int      `yaml:"concurrency,omitempty"` // max rules running in parallel
	Rules        []string `yaml:"rules,omitempty"`       // enabled rule names, empty enables all
}

// Init sets defaults
func (c *Config) Init() {
	if c.Language == "" {
		c.Language = "en"
	}
	if len(c.Placeholders) == 0 {
		c.Placeholders = []string{resolve.Placeholder}
	}
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}
	if c.Concurrency <= 0 {
		c.Concurrency = 8
	}
}

// Enabled returns true if rule is enabled
func (c *Config) Enabled(name string) bool {
	if len(c.Rules) == 0 {
		return true
	}
	for _, candidate := range c.Rules {
		if candidate == name {
			return true
		}
	}
	return false
}

// DefaultConfig returns default config
func DefaultConfig() *Config {
	ret := &Config{}
	ret.Init()
	return ret
}

// Load loads YAML config from URL
func Load(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download config %v: %w", URL, err)
	}
	ret := &Config{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	ret.Init()
	return ret, nil
}
