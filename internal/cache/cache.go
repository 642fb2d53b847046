// Package cache memoizes checker results for the duration of a run.
package cache

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/ppiankov/pocheck/internal/model"
)

// Cache stores the findings returned for a checked string
type Cache interface {
	Get(key string) ([]model.Finding, bool)
	Set(key string, findings []model.Finding) bool
	Len() int
	Clear()
}

// Key builds the cache key for text checked by backend in language
func Key(backend, language, text string) string {
	hash := sha256.Sum256([]byte(backend + "\x00" + language + "\x00" + text))
	return "pocheck:v1:" + hex.EncodeToString(hash[:])
}
