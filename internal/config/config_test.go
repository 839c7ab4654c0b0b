package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "~/.magicappdev/templates", cfg.TemplatesDir)
	assert.Equal(t, "~/.magicappdev/cache", cfg.CacheDir)
	assert.Equal(t, DefaultRawURL, cfg.Remote.RawURL)
	assert.Equal(t, DefaultTreeURL, cfg.Remote.TreeURL)
	assert.Equal(t, 30*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, 3, cfg.Remote.Retries)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)
	assert.False(t, cfg.Generate.Overwrite)
	assert.NoError(t, Validate(cfg))
}

func TestWithDefaults(t *testing.T) {
	cfg := &Config{
		TemplatesDir: "/custom/templates",
		Remote:       RemoteConfig{Retries: 5},
	}

	got := cfg.WithDefaults()

	assert.Equal(t, "/custom/templates", got.TemplatesDir)
	assert.Equal(t, "~/.magicappdev/cache", got.CacheDir)
	assert.Equal(t, 5, got.Remote.Retries)
	assert.Equal(t, DefaultTimeout, got.Remote.Timeout)
	assert.Empty(t, cfg.CacheDir, "receiver must not be modified")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		fields []string
	}{
		{name: "zero config", cfg: Config{}},
		{
			name:   "whitespace dirs",
			cfg:    Config{TemplatesDir: "  ", CacheDir: "\t"},
			fields: []string{"cacheDir", "templatesDir"},
		},
		{
			name:   "bad urls",
			cfg:    Config{Remote: RemoteConfig{RawURL: "ftp://x", TreeURL: "not a url"}},
			fields: []string{"remote.rawURL", "remote.treeURL"},
		},
		{
			name:   "negative timeout and too many retries",
			cfg:    Config{Remote: RemoteConfig{Timeout: -time.Second, Retries: 11}},
			fields: []string{"remote.retries", "remote.timeout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			var got []string
			for _, e := range verrs {
				got = append(got, e.Field)
			}
			assert.Equal(t, tt.fields, got)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}
