package translate

import (
	"context"
	"time"

	"github.com/ppiankov/truthlens/internal/cache"
)

// CachedTranslator memoizes successful translations. Failures are never
// cached, so a recovered collaborator is retried on the next request.
type CachedTranslator struct {
	inner Translator
	cache cache.Cache
	ttl   time.Duration
}

// WithCache wraps a translator with an in-memory result cache
func WithCache(inner Translator, c cache.Cache, ttl time.Duration) *CachedTranslator {
	return &CachedTranslator{
		inner: inner,
		cache: c,
		ttl:   ttl,
	}
}

// Name returns the underlying provider name
func (t *CachedTranslator) Name() string { return t.inner.Name() }

// Translate converts text from src to dst, serving repeats from cache
func (t *CachedTranslator) Translate(ctx context.Context, text, src, dst string) (string, error) {
	key := cache.Key(src + "\x00" + dst + "\x00" + text)

	if val, found := t.cache.Get(key); found {
		return val, nil
	}

	out, err := t.inner.Translate(ctx, text, src, dst)
	if err != nil {
		return "", err
	}

	t.cache.Set(key, out, t.ttl)

	return out, nil
}
