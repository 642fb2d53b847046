package checker

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/pocheck/internal/cache"
	"github.com/ppiankov/pocheck/internal/logging"
	"github.com/ppiankov/pocheck/internal/model"
)

// Open connects to the backend named in opts and returns a ready checker.
// The caller must Close it. Configuration problems are model.ErrConfiguration,
// an unreachable service is model.ErrDependency.
func Open(ctx context.Context, opts Options) (Checker, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	var c Checker
	switch strings.ToLower(opts.Backend) {
	case model.BackendLanguageTool, "":
		lt := NewLanguageTool(opts)
		if err := lt.Ping(ctx); err != nil {
			_ = lt.Close()
			return nil, fmt.Errorf("%w: %w", model.ErrDependency, err)
		}
		c = lt

	case model.BackendOpenAI:
		if opts.APIKey == "" {
			opts.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		oa, err := NewOpenAI(opts)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrConfiguration, err)
		}
		c = oa

	default:
		return nil, fmt.Errorf("%w: unknown checker backend: %s (supported: languagetool, openai)", model.ErrConfiguration, opts.Backend)
	}

	opts.Logger.Debugw("checker opened", "backend", c.Name(), "language", opts.Language, "disabled_rules", len(opts.DisabledRules))

	if opts.CacheSize > 0 {
		c = NewCached(c, cache.NewMemoryCache(opts.CacheSize), opts.Language, opts.Logger)
	}
	return c, nil
}
