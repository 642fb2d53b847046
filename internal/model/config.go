package model

import "time"

// Config is the complete pocheck configuration as read from the JSON config file
type Config struct {
	CheckSourceString      bool     `mapstructure:"checkSourceString" json:"checkSourceString" yaml:"checkSourceString"`
	CheckTranslationString bool     `mapstructure:"checkTranslationString" json:"checkTranslationString" yaml:"checkTranslationString"`
	CustomDictionary       []string `mapstructure:"customDictionary" json:"customDictionary" yaml:"customDictionary"`
	DisabledRules          []string `mapstructure:"disabledRules" json:"disabledRules" yaml:"disabledRules"`

	// EnableCorrections is reserved. It is parsed but has no effect.
	EnableCorrections bool `mapstructure:"enableCorrections" json:"enableCorrections" yaml:"enableCorrections"`

	Checker CheckerConfig `mapstructure:"checker" json:"checker" yaml:"checker"`
}

// CheckerConfig selects and tunes the grammar checking backend
type CheckerConfig struct {
	Backend           string        `mapstructure:"backend" json:"backend" yaml:"backend"` // languagetool, openai
	URL               string        `mapstructure:"url" json:"url" yaml:"url"`
	Model             string        `mapstructure:"model" json:"model" yaml:"model"`
	APIKey            string        `mapstructure:"apiKey" json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	Timeout           time.Duration `mapstructure:"timeout" json:"timeout" yaml:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requestsPerSecond" json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int           `mapstructure:"burst" json:"burst" yaml:"burst"`
	CacheSize         int           `mapstructure:"cacheSize" json:"cacheSize" yaml:"cacheSize"`
}

const (
	BackendLanguageTool = "languagetool"
	BackendOpenAI       = "openai"
)

// DefaultConfig returns the configuration used for every key missing from the file
func DefaultConfig() *Config {
	return &Config{
		CheckSourceString:      true,
		CheckTranslationString: false,
		CustomDictionary:       []string{},
		DisabledRules:          []string{},
		EnableCorrections:      false,
		Checker: CheckerConfig{
			Backend:           BackendLanguageTool,
			URL:               "http://localhost:8081",
			Model:             "gpt-4o-mini",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 0,
			Burst:             1,
			CacheSize:         500,
		},
	}
}
