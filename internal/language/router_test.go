package language

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

// fakeDetector returns a fixed code or error
type fakeDetector struct {
	code string
	err  error
}

func (f *fakeDetector) Detect(string) (string, error) { return f.code, f.err }

// fakeTranslator records calls and can fail
type fakeTranslator struct {
	out    string
	err    error
	called bool
}

func (f *fakeTranslator) Name() string { return "fake" }

func (f *fakeTranslator) Translate(_ context.Context, text, _, _ string) (string, error) {
	f.called = true
	if f.err != nil {
		return "", f.err
	}
	if f.out != "" {
		return f.out, nil
	}
	return text, nil
}

func TestRouter_DevanagariDefaultsToHindi(t *testing.T) {
	router := NewRouter(nil, nil, zerolog.Nop())

	_, lang := router.Route(context.Background(), "सरकार ने स्कूल बंद कर दिए")
	if lang != "hi" {
		t.Errorf("expected hi, got %s", lang)
	}
}

func TestRouter_MarathiClueWins(t *testing.T) {
	router := NewRouter(nil, nil, zerolog.Nop())

	_, lang := router.Route(context.Background(), "हे खरे आहे का")
	if lang != "mr" {
		t.Errorf("expected mr, got %s", lang)
	}
}

func TestRouter_EmptyTextIsUnknown(t *testing.T) {
	router := NewRouter(&fakeDetector{code: "en"}, nil, zerolog.Nop())

	text, lang := router.Route(context.Background(), "")
	if text != "" || lang != Unknown {
		t.Errorf("expected empty/unknown, got %q/%s", text, lang)
	}
}

func TestRouter_DetectorFailureIsUnknown(t *testing.T) {
	router := NewRouter(&fakeDetector{err: errors.New("too short")}, nil, zerolog.Nop())

	text, lang := router.Route(context.Background(), "xyzzy")
	if text != "xyzzy" || lang != Unknown {
		t.Errorf("expected original/unknown, got %q/%s", text, lang)
	}
}

func TestRouter_NoDetectorIsUnknown(t *testing.T) {
	router := NewRouter(nil, nil, zerolog.Nop())

	_, lang := router.Route(context.Background(), "plain latin text")
	if lang != Unknown {
		t.Errorf("expected unknown without detector, got %s", lang)
	}
}

func TestRouter_EnglishSkipsTranslation(t *testing.T) {
	translator := &fakeTranslator{}
	router := NewRouter(&fakeDetector{code: "en"}, translator, zerolog.Nop())

	text, lang := router.Route(context.Background(), "breaking news today")
	if lang != "en" {
		t.Errorf("expected en, got %s", lang)
	}
	if text != "breaking news today" {
		t.Errorf("expected original text, got %q", text)
	}
	if translator.called {
		t.Error("translator must not be called for English text")
	}
}

func TestRouter_TranslatesForeignText(t *testing.T) {
	translator := &fakeTranslator{out: "the government closed schools"}
	router := NewRouter(nil, translator, zerolog.Nop())

	text, lang := router.Route(context.Background(), "सरकारने शाळा बंद केल्या आहे")
	if lang != "mr" {
		t.Errorf("expected mr, got %s", lang)
	}
	if text != "the government closed schools" {
		t.Errorf("expected translated text, got %q", text)
	}
}

func TestRouter_TranslationFailureKeepsOriginal(t *testing.T) {
	translator := &fakeTranslator{err: errors.New("service down")}
	router := NewRouter(nil, translator, zerolog.Nop())

	input := "सरकार ने स्कूल बंद कर दिए"
	text, lang := router.Route(context.Background(), input)
	if text != input {
		t.Errorf("expected original text on failure, got %q", text)
	}
	if lang != "hi" {
		t.Errorf("language determined so far must survive: expected hi, got %s", lang)
	}
}
