package worker

import (
	"context"
	"testing"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1) // 100 rps, burst 1
	ctx := context.Background()

	if err := limiter.Wait(ctx, "google"); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	// Different provider has its own bucket
	if err := limiter.Wait(ctx, "openai"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_RateLimit(t *testing.T) {
	// 1 rps, burst 1
	limiter := NewLimiter(1, 1)
	ctx := context.Background()

	// First request ok
	if err := limiter.Wait(ctx, "google"); err != nil {
		t.Errorf("first wait failed: %v", err)
	}

	// Burst token consumed
	if limiter.Allow("google") {
		t.Errorf("expected allow to fail (exhausted tokens)")
	}

	// Different provider should be allowed
	if !limiter.Allow("openai") {
		t.Errorf("expected allow for other provider")
	}
}

func TestLimiter_SetProviderRate(t *testing.T) {
	limiter := NewLimiter(10, 10) // fast default

	// Set strict limit for specific provider
	limiter.SetProviderRate("slow", 0.1, 1)

	// First request passes (burst 1)
	if !limiter.Allow("slow") {
		t.Errorf("first request should pass")
	}

	// Second request fails
	if limiter.Allow("slow") {
		t.Errorf("second request should fail")
	}

	// Other provider still fast
	if !limiter.Allow("fast") {
		t.Errorf("other provider should pass")
	}
}
