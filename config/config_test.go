package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestLoad(t *testing.T) {
	fs := afs.New()
	ctx := context.Background()
	tests := []struct {
		description string
		yaml        string
		expect      *Config
		wantErr     bool
	}{
		{
			description: "defaults",
			yaml:        "{}",
			expect:      DefaultConfig(),
		},
		{
			description: "custom",
			yaml: `language: zh
catalogs:
  - mem://localhost/bundles/messages_zh.yaml
placeholders: ["n/a", "<memory>"]
logLevel: DEBUG
concurrency: 2
rules: [WrapperTypeEqualityRule]
`,
			expect: &Config{
				Language:     "zh",
				Catalogs:     []string{"mem://localhost/bundles/messages_zh.yaml"},
				Placeholders: []string{"n/a", "<memory>"},
				LogLevel:     "DEBUG",
				Concurrency:  2,
				Rules:        []string{"WrapperTypeEqualityRule"},
			},
		},
		{
			description: "invalid yaml",
			yaml:        "language: [",
			wantErr:     true,
		},
	}
	for i, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			URL := "mem://localhost/config/" + string(rune('a'+i)) + ".yaml"
			require.NoError(t, fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader([]byte(tc.yaml))))
			actual, err := Load(ctx, fs, URL)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func TestConfig_Enabled(t *testing.T) {
	assert.True(t, DefaultConfig().Enabled("any"))
	aConfig := &Config{Rules: []string{"A"}}
	assert.True(t, aConfig.Enabled("A"))
	assert.False(t, aConfig.Enabled("B"))
}
