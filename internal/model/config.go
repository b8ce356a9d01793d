package model

import (
	"runtime"
	"time"
)

// Config holds all runtime configuration
type Config struct {
	Translation  TranslationConfig `yaml:"translation" mapstructure:"translation"`
	Detection    DetectionConfig   `yaml:"detection" mapstructure:"detection"`
	Cache        CacheConfig       `yaml:"cache" mapstructure:"cache"`
	RateLimiting RateLimitConfig   `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output       OutputConfig      `yaml:"output" mapstructure:"output"`
}

// TranslationConfig configures the external translation collaborator.
// An empty Provider is a valid, permanent state: translation is disabled
// and every stage falls back to the untranslated text.
type TranslationConfig struct {
	Provider string        `yaml:"provider" mapstructure:"provider"` // "google", "openai" or "" (disabled)
	Model    string        `yaml:"model,omitempty" mapstructure:"model"`
	APIKey   string        `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL  string        `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Proxy settings for the HTTP provider
	HTTPProxy  string `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy    string `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// DetectionConfig configures statistical language detection.
// The Devanagari script heuristic always runs regardless of this setting.
type DetectionConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// CacheConfig configures the in-memory translation cache
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// RateLimitConfig configures per-provider rate limiting of translation calls
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig configures report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Translation: TranslationConfig{
			Provider: "", // Disabled by default
			Timeout:  15 * time.Second,
		},
		Detection: DetectionConfig{
			Enabled: true,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
