package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveString(t *testing.T) {
	t.Setenv("MAGICAPPDEV_TEST_VALUE", "env")

	tests := []struct {
		name         string
		opts         StringOptions
		wantValue    string
		wantSource   ConfigSource
		wantShadowed map[ConfigSource]any
	}{
		{
			name:         "flag wins",
			opts:         StringOptions{Flag: "flag", EnvVar: "MAGICAPPDEV_TEST_VALUE", Config: "config", Default: "default"},
			wantValue:    "flag",
			wantSource:   SourceFlag,
			wantShadowed: map[ConfigSource]any{SourceEnv: "env", SourceConfig: "config", SourceDefault: "default"},
		},
		{
			name:         "env beats config",
			opts:         StringOptions{EnvVar: "MAGICAPPDEV_TEST_VALUE", Config: "config"},
			wantValue:    "env",
			wantSource:   SourceEnv,
			wantShadowed: map[ConfigSource]any{SourceConfig: "config"},
		},
		{
			name:         "config beats default",
			opts:         StringOptions{Config: "config", Default: "default"},
			wantValue:    "config",
			wantSource:   SourceConfig,
			wantShadowed: map[ConfigSource]any{SourceDefault: "default"},
		},
		{
			name:         "default",
			opts:         StringOptions{Default: "default"},
			wantValue:    "default",
			wantSource:   SourceDefault,
			wantShadowed: map[ConfigSource]any{},
		},
		{
			name:         "nothing set",
			opts:         StringOptions{},
			wantValue:    "",
			wantShadowed: map[ConfigSource]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rv := ResolveString(tt.opts)
			assert.Equal(t, tt.wantValue, rv.Value)
			assert.Equal(t, tt.wantSource, rv.Source)
			assert.Equal(t, tt.wantShadowed, rv.Shadowed)
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("flag", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/config.yaml")
		rv, err := ResolveConfigPath("/flag/config.yaml")
		require.NoError(t, err)
		assert.Equal(t, "/flag/config.yaml", rv.Value)
		assert.Equal(t, SourceFlag, rv.Source)
		assert.Equal(t, "/env/config.yaml", rv.Shadowed[SourceEnv])
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv(EnvConfig, "/env/config.yaml")
		rv, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, "/env/config.yaml", rv.Value)
		assert.Equal(t, SourceEnv, rv.Source)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		rv, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Contains(t, rv.Value, ".magicappdev")
		assert.Equal(t, SourceDefault, rv.Source)
	})
}

func TestResolveTimestamps(t *testing.T) {
	off, on := false, true

	rv := ResolveTimestamps(&off, &Config{Log: LogConfig{Timestamps: &on}})
	assert.Equal(t, false, rv.Value)
	assert.Equal(t, SourceFlag, rv.Source)
	assert.Equal(t, true, rv.Shadowed[SourceConfig])

	rv = ResolveTimestamps(nil, &Config{Log: LogConfig{Timestamps: &off}})
	assert.Equal(t, false, rv.Value)
	assert.Equal(t, SourceConfig, rv.Source)

	rv = ResolveTimestamps(nil, &Config{})
	assert.Equal(t, true, rv.Value)
	assert.Equal(t, SourceDefault, rv.Source)
}

func TestResolveTemplatesDir(t *testing.T) {
	rv := ResolveTemplatesDir("", &Config{TemplatesDir: "/cfg"})
	assert.Equal(t, "/cfg", rv.Value)
	assert.Equal(t, SourceConfig, rv.Source)

	rv = ResolveTemplatesDir("/flag", &Config{TemplatesDir: "/cfg"})
	assert.Equal(t, "/flag", rv.Value)
	assert.Equal(t, SourceFlag, rv.Source)
}
