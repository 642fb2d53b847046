package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/ppiankov/pocheck/internal/model"
	"github.com/spf13/viper"
)

// DefaultPath is the config file looked up when --config is not given
const DefaultPath = "poLanguageChecker.json"

// EnvPrefix is the prefix of environment variables that override file values
const EnvPrefix = "POCHECK"

// Load reads the JSON config file at path, applies defaults for missing keys
// and validates the result. A missing file is an error.
func Load(path string) (*model.Config, error) {
	if path == "" {
		path = DefaultPath
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: config file %s does not exist", model.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: stat %s: %v", model.ErrConfiguration, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", model.ErrConfiguration, path)
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", model.ErrConfiguration, path, err)
	}

	return decode(v)
}

// newViper returns a viper instance carrying every default
func newViper() *viper.Viper {
	v := viper.New()
	def := model.DefaultConfig()

	v.SetDefault("checkSourceString", def.CheckSourceString)
	v.SetDefault("checkTranslationString", def.CheckTranslationString)
	v.SetDefault("customDictionary", def.CustomDictionary)
	v.SetDefault("disabledRules", def.DisabledRules)
	v.SetDefault("enableCorrections", def.EnableCorrections)
	v.SetDefault("checker.backend", def.Checker.Backend)
	v.SetDefault("checker.url", def.Checker.URL)
	v.SetDefault("checker.model", def.Checker.Model)
	v.SetDefault("checker.apiKey", def.Checker.APIKey)
	v.SetDefault("checker.timeout", def.Checker.Timeout)
	v.SetDefault("checker.requestsPerSecond", def.Checker.RequestsPerSecond)
	v.SetDefault("checker.burst", def.Checker.Burst)
	v.SetDefault("checker.cacheSize", def.Checker.CacheSize)

	// POCHECK_CHECKER_URL overrides checker.url
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// decode unmarshals without weak typing. Strings are only converted by
// parsing, so env values like "true" or "10" decode and "yes" does not.
func decode(v *viper.Viper) (*model.Config, error) {
	var cfg model.Config
	strict := func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = false
		// Duration first: its kind is int64
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.StringToBasicTypeHookFunc(),
		)
	}
	if err := v.Unmarshal(&cfg, strict); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrConfiguration, err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the decoder cannot catch
func Validate(cfg *model.Config) error {
	switch strings.ToLower(cfg.Checker.Backend) {
	case model.BackendLanguageTool, model.BackendOpenAI:
		cfg.Checker.Backend = strings.ToLower(cfg.Checker.Backend)
	default:
		return fmt.Errorf("%w: unknown checker backend %q (supported: languagetool, openai)", model.ErrConfiguration, cfg.Checker.Backend)
	}

	if cfg.Checker.Backend == model.BackendLanguageTool && cfg.Checker.URL == "" {
		return fmt.Errorf("%w: checker.url must be set for languagetool", model.ErrConfiguration)
	}
	if cfg.Checker.Timeout < 0 {
		return fmt.Errorf("%w: checker.timeout must not be negative", model.ErrConfiguration)
	}
	if cfg.Checker.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: checker.requestsPerSecond must not be negative", model.ErrConfiguration)
	}
	if cfg.Checker.CacheSize < 0 {
		return fmt.Errorf("%w: checker.cacheSize must not be negative", model.ErrConfiguration)
	}

	if cfg.CustomDictionary == nil {
		cfg.CustomDictionary = []string{}
	}
	if cfg.DisabledRules == nil {
		cfg.DisabledRules = []string{}
	}
	return nil
}

// Template returns the default config laid out the way it is written to disk
func Template() map[string]any {
	def := model.DefaultConfig()
	return map[string]any{
		"checkSourceString":      def.CheckSourceString,
		"checkTranslationString": def.CheckTranslationString,
		"customDictionary":       def.CustomDictionary,
		"disabledRules":          def.DisabledRules,
		"enableCorrections":      def.EnableCorrections,
		"checker": map[string]any{
			"backend":           def.Checker.Backend,
			"url":               def.Checker.URL,
			"model":             def.Checker.Model,
			"timeout":           def.Checker.Timeout.String(),
			"requestsPerSecond": def.Checker.RequestsPerSecond,
			"burst":             def.Checker.Burst,
			"cacheSize":         def.Checker.CacheSize,
		},
	}
}
