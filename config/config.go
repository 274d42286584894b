// Package config loads jareflect settings with viper: defaults, then the user
// and project jareflect.toml files, then JAREFLECT_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"japanesereflect/errors"
	"japanesereflect/reflection"
	"japanesereflect/tokenize"
)

// FileName is the project configuration file searched for upward from the
// working directory.
const FileName = "jareflect.toml"

// EnvPrefix prefixes environment overrides: JAREFLECT_LOG_LEVEL=debug.
const EnvPrefix = "JAREFLECT"

// Config is the full configuration.
type Config struct {
	Reflection ReflectionConfig `mapstructure:"reflection" toml:"reflection" yaml:"reflection" json:"reflection"`
	Tokenizer  TokenizerConfig  `mapstructure:"tokenizer" toml:"tokenizer" yaml:"tokenizer" json:"tokenizer"`
	Log        LogConfig        `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
	Pipeline   PipelineConfig   `mapstructure:"pipeline" toml:"pipeline" yaml:"pipeline" json:"pipeline"`
}

// ReflectionConfig holds the assembler's root tags and fixed phrases.
type ReflectionConfig struct {
	AllowedRootTags []string `mapstructure:"allowed_root_tags" toml:"allowed_root_tags" yaml:"allowed_root_tags" json:"allowed_root_tags"`
	WordEnding      string   `mapstructure:"word_ending" toml:"word_ending" yaml:"word_ending" json:"word_ending"`
	UnparsedEnding  string   `mapstructure:"unparsed_ending" toml:"unparsed_ending" yaml:"unparsed_ending" json:"unparsed_ending"`
	InvalidMessage  string   `mapstructure:"invalid_message" toml:"invalid_message" yaml:"invalid_message" json:"invalid_message"`
}

// TokenizerConfig selects the kagome dictionary and segmentation mode.
type TokenizerConfig struct {
	Dict string `mapstructure:"dict" toml:"dict" yaml:"dict" json:"dict"`
	Mode string `mapstructure:"mode" toml:"mode" yaml:"mode" json:"mode"`
}

// LogConfig controls the zap logger and JSON trace dumps.
type LogConfig struct {
	Level   string `mapstructure:"level" toml:"level" yaml:"level" json:"level"`
	JSON    bool   `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
	DumpDir string `mapstructure:"dump_dir" toml:"dump_dir" yaml:"dump_dir" json:"dump_dir"`
}

// PipelineConfig bounds batch concurrency. Zero workers means one per CPU.
type PipelineConfig struct {
	Workers int `mapstructure:"workers" toml:"workers" yaml:"workers" json:"workers"`
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("reflection.allowed_root_tags", reflection.DefaultAllowedRootTags)
	v.SetDefault("reflection.word_ending", reflection.DefaultWordEnding)
	v.SetDefault("reflection.unparsed_ending", reflection.DefaultUnparsedEnding)
	v.SetDefault("reflection.invalid_message", reflection.DefaultInvalidMessage)

	v.SetDefault("tokenizer.dict", tokenize.DictUni)
	v.SetDefault("tokenizer.mode", tokenize.ModeNormal)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.dump_dir", "")

	v.SetDefault("pipeline.workers", 0)
}

var (
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load reads the configuration once and caches it.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}
	cfg, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}
	globalConfig = cfg
	return globalConfig, nil
}

// LoadWithViper unmarshals and validates the configuration held by v.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromFile loads defaults plus one TOML file, ignoring the environment.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return LoadWithViper(v)
}

// Reset clears the cached configuration.
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// GetViper returns the shared viper instance, for flag binding.
func GetViper() *viper.Viper {
	return initViper()
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// mergeConfigFiles merges the user then the project file. Environment
// variables still take precedence over both.
func mergeConfigFiles(v *viper.Viper) {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "jareflect", FileName))
	}
	if p := FindProjectConfig(); p != "" {
		paths = append(paths, p)
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		tmp := viper.New()
		tmp.SetConfigFile(p)
		tmp.SetConfigType("toml")
		if err := tmp.ReadInConfig(); err != nil {
			continue
		}
		_ = v.MergeConfigMap(tmp.AllSettings())
	}
}

// FindProjectConfig walks up from the working directory looking for
// jareflect.toml. It returns "" when none is found.
func FindProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		p := filepath.Join(dir, FileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Tokenizer.Dict {
	case tokenize.DictUni, tokenize.DictIPA:
	default:
		return errors.WithHint(
			errors.Newf("tokenizer.dict must be %q or %q, got %q", tokenize.DictUni, tokenize.DictIPA, c.Tokenizer.Dict),
			"set tokenizer.dict in jareflect.toml or JAREFLECT_TOKENIZER_DICT",
		)
	}
	switch c.Tokenizer.Mode {
	case tokenize.ModeNormal, tokenize.ModeSearch, tokenize.ModeExtended:
	default:
		return errors.Newf("tokenizer.mode must be normal, search or extended, got %q", c.Tokenizer.Mode)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.Newf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	if c.Pipeline.Workers < 0 {
		return errors.Newf("pipeline.workers must be >= 0, got %d", c.Pipeline.Workers)
	}
	if len(c.Reflection.AllowedRootTags) == 0 {
		return errors.New("reflection.allowed_root_tags cannot be empty")
	}
	return nil
}

// ReflectionOptions converts the reflection section for the assembler.
func (c *Config) ReflectionOptions() reflection.Options {
	return reflection.Options{
		AllowedRootTags: append([]string(nil), c.Reflection.AllowedRootTags...),
		WordEnding:      c.Reflection.WordEnding,
		UnparsedEnding:  c.Reflection.UnparsedEnding,
		InvalidMessage:  c.Reflection.InvalidMessage,
	}
}
