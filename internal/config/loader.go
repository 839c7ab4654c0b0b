package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "MAGICAPPDEV"

// Environment variables with explicit names.
const (
	EnvConfig       = EnvPrefix + "_CONFIG"
	EnvTemplatesDir = EnvPrefix + "_TEMPLATES_DIR"
	EnvCacheDir     = EnvPrefix + "_CACHE_DIR"
	EnvRawURL       = EnvPrefix + "_REMOTE_RAW_URL"
	EnvTreeURL      = EnvPrefix + "_REMOTE_TREE_URL"
)

// Loader reads configuration from a YAML file and the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with environment bindings set up.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("templatesDir", EnvTemplatesDir)
	_ = v.BindEnv("cacheDir", EnvCacheDir)
	_ = v.BindEnv("remote.rawURL", EnvRawURL)
	_ = v.BindEnv("remote.treeURL", EnvTreeURL)
	_ = v.BindEnv("remote.timeout", EnvPrefix+"_REMOTE_TIMEOUT")
	_ = v.BindEnv("remote.retries", EnvPrefix+"_REMOTE_RETRIES")
	_ = v.BindEnv("log.timestamps", EnvPrefix+"_LOG_TIMESTAMPS")
	_ = v.BindEnv("generate.overwrite", EnvPrefix+"_GENERATE_OVERWRITE")

	return &Loader{v: v}
}

// Load reads configFile (a missing file is not an error) and overlays
// environment variables. Unset fields stay zero.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile != "" {
		expanded, err := ExpandPath(configFile)
		if err != nil {
			return nil, fmt.Errorf("expanding config path: %w", err)
		}

		l.v.SetConfigFile(expanded)
		l.v.SetConfigType("yaml")
		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// LoadWithDefaults loads configuration and fills unset fields with defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}
	return cfg.WithDefaults(), nil
}
