package translate

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ppiankov/truthlens/internal/cache"
	"github.com/ppiankov/truthlens/internal/model"
	"github.com/ppiankov/truthlens/internal/util"
	"github.com/ppiankov/truthlens/internal/worker"
)

// New builds the configured translation collaborator. An empty provider
// yields the explicit Disabled state. Rate limiting and caching are layered
// on according to config.
func New(cfg *model.Config, logger zerolog.Logger) (Translator, error) {
	var t Translator

	switch strings.ToLower(cfg.Translation.Provider) {
	case "":
		return Disabled{}, nil

	case "google":
		proxyFunc := util.NewProxyFunc(cfg.Translation.HTTPProxy, cfg.Translation.HTTPSProxy, cfg.Translation.NoProxy)
		t = NewGoogleClient(cfg.Translation.Timeout, proxyFunc, logger)

	case "openai":
		client, err := NewOpenAIClient(cfg.Translation)
		if err != nil {
			return nil, fmt.Errorf("openai translator: %w", err)
		}
		t = client

	default:
		return nil, fmt.Errorf("unknown translation provider: %s (supported: google, openai)", cfg.Translation.Provider)
	}

	if cfg.RateLimiting.RequestsPerSecond > 0 {
		t = WithRateLimit(t, worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize))
	}

	if cfg.Cache.Enabled {
		t = WithCache(t, cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval), cfg.Cache.TTL)
	}

	return t, nil
}
