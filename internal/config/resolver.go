package config

import (
	"os"

	"github.com/magicappdev/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// StringOptions are the candidate values of one string setting.
type StringOptions struct {
	Key     string
	Flag    string
	EnvVar  string
	Config  string
	Default string
}

// ResolveString picks a value with precedence flag > env > config > default
// and records every lower-precedence value it shadowed.
func ResolveString(opts StringOptions) ResolvedValue {
	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.Flag},
		{SourceEnv, lookupEnv(opts.EnvVar)},
		{SourceConfig, opts.Config},
		{SourceDefault, opts.Default},
	}

	rv := ResolvedValue{Key: opts.Key, Value: "", Shadowed: map[ConfigSource]any{}}
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if rv.Source == "" {
			rv.Value = c.value
			rv.Source = c.source
			continue
		}
		rv.Shadowed[c.source] = c.value
	}
	return rv
}

func lookupEnv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}

// ResolveConfigPath resolves the config file path: --config flag, then
// MAGICAPPDEV_CONFIG, then ~/.magicappdev/config.yaml.
func ResolveConfigPath(flag string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	return ResolveString(StringOptions{
		Key:     "config",
		Flag:    flag,
		EnvVar:  EnvConfig,
		Default: paths.ConfigFile,
	}), nil
}

// ResolveTemplatesDir resolves the user templates directory.
// The environment is already merged into cfg by the loader, so only the flag
// and the loaded value compete here.
func ResolveTemplatesDir(flag string, cfg *Config) ResolvedValue {
	return ResolveString(StringOptions{
		Key:     "templatesDir",
		Flag:    flag,
		Config:  cfg.TemplatesDir,
		Default: DefaultConfig().TemplatesDir,
	})
}

// ResolveTimestamps resolves log timestamps: --timestamps flag when set, then
// log.timestamps, then on.
func ResolveTimestamps(flag *bool, cfg *Config) ResolvedValue {
	switch {
	case flag != nil:
		rv := ResolvedValue{Key: "log.timestamps", Value: *flag, Source: SourceFlag, Shadowed: map[ConfigSource]any{}}
		if cfg.Log.Timestamps != nil {
			rv.Shadowed[SourceConfig] = *cfg.Log.Timestamps
		}
		return rv
	case cfg.Log.Timestamps != nil:
		return ResolvedValue{Key: "log.timestamps", Value: *cfg.Log.Timestamps, Source: SourceConfig}
	default:
		return ResolvedValue{Key: "log.timestamps", Value: true, Source: SourceDefault}
	}
}

// LogResolvedValues logs each value's resolution at debug level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved", "key", v.Key, "value", v.Value, "source", v.Source)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
