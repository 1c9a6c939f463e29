// Package config provides configuration loading and validation for the
// testlint CLI. Rule options are validated before any traversal begins so a
// bad configuration never produces partial analysis.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/testlint/pkg/lint"
	"github.com/Sumatoshi-tech/testlint/pkg/rules/clearbeforetype"
	"github.com/Sumatoshi-tech/testlint/pkg/rules/hookpair"
	"github.com/Sumatoshi-tech/testlint/pkg/rules/pagesingleton"
)

// Sentinel validation errors.
var (
	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrInvalidLogFormat    = errors.New("invalid log format")
	ErrInvalidOutputFormat = errors.New("invalid output format")
)

// Output format names accepted by the renderer.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Config holds all configuration for the testlint CLI.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
	Rules  RulesConfig  `mapstructure:"rules"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig holds diagnostic rendering configuration.
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// RulesConfig holds per-rule options and the enabled-rule selection.
type RulesConfig struct {
	Enabled         []string              `mapstructure:"enabled"`
	PageSingleton   PageSingletonConfig   `mapstructure:"page_singleton"`
	HookPair        HookPairConfig        `mapstructure:"hook_pair"`
	ClearBeforeType ClearBeforeTypeConfig `mapstructure:"clear_before_type"`
}

// PageSingletonConfig mirrors pagesingleton.Options.
type PageSingletonConfig struct {
	Suffix    string `mapstructure:"suffix"`
	FieldName string `mapstructure:"field_name"`
}

// HookPairConfig mirrors hookpair.Options.
type HookPairConfig struct {
	Pairs []HookPairEntry `mapstructure:"pairs"`
}

// HookPairEntry names one setup/teardown pairing.
type HookPairEntry struct {
	Setup    string `mapstructure:"setup"`
	Teardown string `mapstructure:"teardown"`
}

// ClearBeforeTypeConfig mirrors clearbeforetype.Options.
type ClearBeforeTypeConfig struct {
	TypeMethod  string `mapstructure:"type_method"`
	ClearMethod string `mapstructure:"clear_method"`
}

// Load reads configuration from the given file (optional), environment
// variables with the TESTLINT_ prefix, and built-in defaults, then validates
// the result.
func Load(path string) (*Config, error) {
	loader := viper.New()
	setDefaults(loader)

	loader.SetEnvPrefix("TESTLINT")
	loader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	loader.AutomaticEnv()

	if path != "" {
		loader.SetConfigFile(path)

		err := loader.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	err := ValidateSettings(loader.AllSettings())
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = loader.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(loader *viper.Viper) {
	loader.SetDefault("log.level", "info")
	loader.SetDefault("log.format", "text")
	loader.SetDefault("output.format", FormatText)
	loader.SetDefault("output.no_color", false)
	loader.SetDefault("rules.enabled", []string{"*"})
	loader.SetDefault("rules.page_singleton.suffix", "Page")
	loader.SetDefault("rules.page_singleton.field_name", "INSTANCE")
	loader.SetDefault("rules.hook_pair.pairs", []map[string]any{
		{"setup": "before", "teardown": "after"},
	})
	loader.SetDefault("rules.clear_before_type.type_method", "type")
	loader.SetDefault("rules.clear_before_type.clear_method", "clear")
}

// Validate checks the non-rule settings. Rule options are validated twice:
// structurally by the JSON schema and semantically by the rule constructors.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %s", ErrInvalidLogLevel, c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %s", ErrInvalidLogFormat, c.Log.Format)
	}

	switch c.Output.Format {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidOutputFormat, c.Output.Format)
	}

	return nil
}

// BuildRegistry constructs the rule registry from the configured options and
// returns the rules selected by rules.enabled, in registration order.
func (c *Config) BuildRegistry() (*lint.Registry, []lint.Rule, error) {
	singleton, err := pagesingleton.NewWithOptions(pagesingleton.Options{
		Suffix:    c.Rules.PageSingleton.Suffix,
		FieldName: c.Rules.PageSingleton.FieldName,
	})
	if err != nil {
		return nil, nil, err
	}

	pairs := make([]hookpair.HookPair, 0, len(c.Rules.HookPair.Pairs))
	for _, entry := range c.Rules.HookPair.Pairs {
		pairs = append(pairs, hookpair.HookPair{Setup: entry.Setup, Teardown: entry.Teardown})
	}

	hooks, err := hookpair.NewWithOptions(hookpair.Options{Pairs: pairs})
	if err != nil {
		return nil, nil, err
	}

	clearType, err := clearbeforetype.NewWithOptions(clearbeforetype.Options{
		TypeMethod:  c.Rules.ClearBeforeType.TypeMethod,
		ClearMethod: c.Rules.ClearBeforeType.ClearMethod,
	})
	if err != nil {
		return nil, nil, err
	}

	registry, err := lint.NewRegistry([]lint.Rule{singleton, hooks, clearType})
	if err != nil {
		return nil, nil, err
	}

	selected, err := registry.Select(c.Rules.Enabled)
	if err != nil {
		return nil, nil, err
	}

	return registry, selected, nil
}
