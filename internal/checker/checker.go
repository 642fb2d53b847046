// Package checker talks to grammar checking services.
package checker

import (
	"context"
	"time"

	"github.com/ppiankov/pocheck/internal/model"
	"go.uber.org/zap"
)

// Checker is a grammar and spelling service that reports findings for a string
type Checker interface {
	// Name returns the backend name
	Name() string

	// Check submits text and returns every finding, in service order
	Check(ctx context.Context, text string) ([]model.Finding, error)

	// Close releases the connection to the service
	Close() error
}

// MaxSuggestions caps the replacements kept per finding
const MaxSuggestions = 10

// Options holds everything needed to open a checker
type Options struct {
	// Backend name: "languagetool" or "openai"
	Backend string

	// Language code passed to the service (e.g. en-US, de-DE, auto)
	Language string

	// URL of the LanguageTool server or an OpenAI-compatible endpoint
	URL string

	// Model name, openai backend only
	Model string

	// APIKey for the openai backend
	APIKey string

	// Timeout per request
	Timeout time.Duration

	// DisabledRules are rule IDs the service must not report
	DisabledRules []string

	// RequestsPerSecond throttles requests, 0 means unlimited
	RequestsPerSecond float64
	Burst             int

	// CacheSize is the number of results memoized per run, 0 disables caching
	CacheSize int

	Logger *zap.SugaredLogger
}

// OptionsFromConfig converts the checker section of the config file
func OptionsFromConfig(cfg *model.Config, language string) Options {
	return Options{
		Backend:           cfg.Checker.Backend,
		Language:          language,
		URL:               cfg.Checker.URL,
		Model:             cfg.Checker.Model,
		APIKey:            cfg.Checker.APIKey,
		Timeout:           cfg.Checker.Timeout,
		DisabledRules:     cfg.DisabledRules,
		RequestsPerSecond: cfg.Checker.RequestsPerSecond,
		Burst:             cfg.Checker.Burst,
		CacheSize:         cfg.Checker.CacheSize,
	}
}

func capReplacements(values []string) []string {
	if len(values) > MaxSuggestions {
		values = values[:MaxSuggestions]
	}
	return values
}
