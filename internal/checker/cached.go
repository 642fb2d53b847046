package checker

import (
	"context"

	"github.com/ppiankov/pocheck/internal/cache"
	"github.com/ppiankov/pocheck/internal/model"
	"go.uber.org/zap"
)

// Cached memoizes the findings of an underlying checker per exact string.
// Catalogs repeat msgids across contexts, and with checkTranslationString an
// untranslated copy may be identical to its source.
type Cached struct {
	inner    Checker
	cache    cache.Cache
	language string
	logger   *zap.SugaredLogger
}

// NewCached wraps inner with store
func NewCached(inner Checker, store cache.Cache, language string, logger *zap.SugaredLogger) *Cached {
	return &Cached{
		inner:    inner,
		cache:    store,
		language: language,
		logger:   logger,
	}
}

// Name returns the wrapped backend's name
func (c *Cached) Name() string {
	return c.inner.Name()
}

// Check returns the cached result for text or asks the wrapped checker
func (c *Cached) Check(ctx context.Context, text string) ([]model.Finding, error) {
	key := cache.Key(c.inner.Name(), c.language, text)
	if findings, ok := c.cache.Get(key); ok {
		c.logger.Debugw("check result served from cache", "findings", len(findings))
		return findings, nil
	}

	findings, err := c.inner.Check(ctx, text)
	if err != nil {
		return nil, err
	}

	if !c.cache.Set(key, findings) {
		c.logger.Debugw("check cache full, result not stored", "entries", c.cache.Len())
	}
	return findings, nil
}

// Close clears the cache and closes the wrapped checker
func (c *Cached) Close() error {
	c.cache.Clear()
	return c.inner.Close()
}
