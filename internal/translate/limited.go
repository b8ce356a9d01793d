package translate

import (
	"context"
	"fmt"

	"github.com/ppiankov/truthlens/internal/worker"
)

// LimitedTranslator applies provider rate limiting before delegating
type LimitedTranslator struct {
	inner   Translator
	limiter *worker.Limiter
}

// WithRateLimit wraps a translator with a rate limiter
func WithRateLimit(inner Translator, limiter *worker.Limiter) *LimitedTranslator {
	return &LimitedTranslator{
		inner:   inner,
		limiter: limiter,
	}
}

// Name returns the underlying provider name
func (t *LimitedTranslator) Name() string { return t.inner.Name() }

// Translate waits for rate limit clearance, then delegates
func (t *LimitedTranslator) Translate(ctx context.Context, text, src, dst string) (string, error) {
	if err := t.limiter.Wait(ctx, t.inner.Name()); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	return t.inner.Translate(ctx, text, src, dst)
}
