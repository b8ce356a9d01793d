package language

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector identifies the dominant language of a text
type Detector interface {
	// Detect returns an ISO 639-1 code, or an error when the text is too
	// short or ambiguous to classify
	Detect(text string) (string, error)
}

// linguaDetector wraps the statistical n-gram detector
type linguaDetector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates the statistical language detector. Model loading is
// deferred to the first detection call.
func NewDetector() Detector {
	return &linguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

// Detect returns an ISO 639-1 code for the text
func (d *linguaDetector) Detect(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty text")
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", fmt.Errorf("language not recognized")
	}

	return strings.ToLower(lang.IsoCode639_1().String()), nil
}
