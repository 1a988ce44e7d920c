package translation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Cache stores translated text. A miss is reported as ("", false, nil).
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

const cacheKeyPrefix = "sentiscope:translation:"

// CachedTranslator serves repeated translations from a Cache. Cache errors are
// logged and treated as misses.
type CachedTranslator struct {
	next  Translator
	cache Cache
	ttl   time.Duration
}

func NewCachedTranslator(next Translator, cache Cache, ttl time.Duration) *CachedTranslator {
	return &CachedTranslator{next: next, cache: cache, ttl: ttl}
}

func (c *CachedTranslator) Name() string {
	return c.next.Name() + "+cache"
}

func (c *CachedTranslator) Translate(ctx context.Context, text string, source, target language.Tag) (string, error) {
	key := CacheKey(text, source, target)

	cached, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("[TranslationCache] Lookup failed",
			slog.String("error", err.Error()))
	} else if ok {
		slog.Debug("[TranslationCache] Hit", slog.String("key", key))
		return cached, nil
	}

	translated, err := c.next.Translate(ctx, text, source, target)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(translated) == "" {
		return translated, nil
	}
	if err := c.cache.Set(ctx, key, translated, c.ttl); err != nil {
		slog.Warn("[TranslationCache] Store failed",
			slog.String("error", err.Error()))
	}
	return translated, nil
}

// CheckHealth delegates to the wrapped backend when it supports probing.
func (c *CachedTranslator) CheckHealth(ctx context.Context) error {
	if hc, ok := c.next.(HealthChecker); ok {
		return hc.CheckHealth(ctx)
	}
	return nil
}

func CacheKey(text string, source, target language.Tag) string {
	sum := sha256.Sum256([]byte(source.String() + "|" + target.String() + "|" + text))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
