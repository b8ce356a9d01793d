package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const googleEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleClient translates through the public Google Translate endpoint.
// No API key is required.
type GoogleClient struct {
	httpClient *http.Client
	endpoint   string
	logger     zerolog.Logger
}

// NewGoogleClient creates a new Google Translate client
func NewGoogleClient(timeout time.Duration, proxyFunc func(*http.Request) (*url.URL, error), logger zerolog.Logger) *GoogleClient {
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &GoogleClient{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: proxyFunc,
			},
		},
		endpoint: googleEndpoint,
		logger:   logger,
	}
}

// Name returns the provider name
func (c *GoogleClient) Name() string { return "google" }

// Translate converts text from src to dst
func (c *GoogleClient) Translate(ctx context.Context, text, src, dst string) (string, error) {
	if text == "" {
		return "", nil
	}

	if src == "" {
		src = "auto"
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", src)
	params.Set("tl", dst)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate request: status %d", resp.StatusCode)
	}

	out, err := decodeGoogleResponse(resp.Body)
	if err != nil {
		return "", err
	}

	c.logger.Debug().Str("src", src).Str("dst", dst).Int("chars", len(text)).Msg("google translate ok")

	return out, nil
}

// decodeGoogleResponse parses the endpoint's nested-array payload: the first
// element is a list of segments whose first element is the translated text.
func decodeGoogleResponse(body io.Reader) (string, error) {
	var payload []interface{}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(payload) == 0 {
		return "", fmt.Errorf("empty response")
	}

	segments, ok := payload[0].([]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected response shape")
	}

	var b strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			b.WriteString(s)
		}
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("empty translation")
	}

	return out, nil
}
