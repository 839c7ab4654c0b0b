// Package config provides configuration loading and management.
package config

import "time"

// Default values written by `config init` and used for unset keys.
const (
	DefaultRawURL  = "https://raw.githubusercontent.com/magicappdev/templates/main"
	DefaultTreeURL = "https://api.github.com/repos/magicappdev/templates/git/trees/main?recursive=1"
	DefaultTimeout = 30 * time.Second
	DefaultRetries = 3
)

// RemoteConfig locates the remote template repository.
type RemoteConfig struct {
	// RawURL serves file contents at <RawURL>/<path>.
	// Env: MAGICAPPDEV_REMOTE_RAW_URL
	RawURL string `mapstructure:"rawURL" yaml:"rawURL,omitempty"`

	// TreeURL serves the recursive repository listing.
	// Env: MAGICAPPDEV_REMOTE_TREE_URL
	TreeURL string `mapstructure:"treeURL" yaml:"treeURL,omitempty"`

	// Timeout bounds a whole remote operation.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout,omitempty"`

	// Retries is how many times `template pull` attempts a download.
	Retries int `mapstructure:"retries" yaml:"retries,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Timestamps controls timestamps in log output. Nil means on.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// GenerateConfig holds defaults for generate commands.
type GenerateConfig struct {
	// Overwrite replaces existing files unless --overwrite=false is passed.
	Overwrite bool `mapstructure:"overwrite" yaml:"overwrite"`
}

// Config is the magicappdev CLI configuration, read from
// ~/.magicappdev/config.yaml.
type Config struct {
	// TemplatesDir holds user template manifests loaded at startup.
	// Env: MAGICAPPDEV_TEMPLATES_DIR
	TemplatesDir string `mapstructure:"templatesDir" yaml:"templatesDir,omitempty"`

	// CacheDir holds templates pulled from the remote repository.
	// Env: MAGICAPPDEV_CACHE_DIR
	CacheDir string `mapstructure:"cacheDir" yaml:"cacheDir,omitempty"`

	Remote   RemoteConfig   `mapstructure:"remote" yaml:"remote"`
	Log      LogConfig      `mapstructure:"log" yaml:"log,omitempty"`
	Generate GenerateConfig `mapstructure:"generate" yaml:"generate"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	ts := true
	return &Config{
		TemplatesDir: "~/.magicappdev/templates",
		CacheDir:     "~/.magicappdev/cache",
		Remote: RemoteConfig{
			RawURL:  DefaultRawURL,
			TreeURL: DefaultTreeURL,
			Timeout: DefaultTimeout,
			Retries: DefaultRetries,
		},
		Log: LogConfig{Timestamps: &ts},
	}
}

// WithDefaults returns a copy with empty fields filled from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	d := DefaultConfig()
	out := *c
	if out.TemplatesDir == "" {
		out.TemplatesDir = d.TemplatesDir
	}
	if out.CacheDir == "" {
		out.CacheDir = d.CacheDir
	}
	if out.Remote.RawURL == "" {
		out.Remote.RawURL = d.Remote.RawURL
	}
	if out.Remote.TreeURL == "" {
		out.Remote.TreeURL = d.Remote.TreeURL
	}
	if out.Remote.Timeout == 0 {
		out.Remote.Timeout = d.Remote.Timeout
	}
	if out.Remote.Retries == 0 {
		out.Remote.Retries = d.Remote.Retries
	}
	return &out
}

// ResolvedValue records where a configuration value came from.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]any
}
