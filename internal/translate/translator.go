// Package translate provides the external translation collaborator. Every
// implementation is fallible by contract: callers treat any error as
// "translation unavailable" and fall back to the source text, never
// surfacing the failure.
package translate

import (
	"context"
	"errors"
)

// Translator converts text between languages
type Translator interface {
	// Name returns the provider name
	Name() string

	// Translate converts text from src to dst. Language codes are ISO 639-1.
	Translate(ctx context.Context, text, src, dst string) (string, error)
}

// ErrDisabled is returned by the Disabled collaborator on every call
var ErrDisabled = errors.New("translation disabled")

// Disabled is the explicit "no translator configured" state. It is a valid,
// permanent configuration, not an error condition.
type Disabled struct{}

// Name returns the provider name
func (Disabled) Name() string { return "disabled" }

// Translate always reports the collaborator as unavailable
func (Disabled) Translate(_ context.Context, _, _, _ string) (string, error) {
	return "", ErrDisabled
}
