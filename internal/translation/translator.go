// Package translation converts input text into the sentiment lexicon's language.
// Translation is best effort: failures are reported as warnings and the
// original text is used instead.
package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spacesedan/sentiscope/internal/models"
	"golang.org/x/text/language"
)

var ErrUnavailable = errors.New("translation service unavailable")

type Translator interface {
	Translate(ctx context.Context, text string, source, target language.Tag) (string, error)
	Name() string
}

// HealthChecker is implemented by backends that can probe their service.
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// Failure describes a translation attempt that fell back to the original text.
type Failure struct {
	Backend string
	Err     error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("translation via %s failed: %v", f.Backend, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Translate makes a single attempt to translate text. It never fails: on error
// the result carries the original text and a warning. A nil translator, or equal
// source and target languages, return the text unchanged without a warning.
func Translate(ctx context.Context, t Translator, text string, source, target language.Tag) models.TranslationResult {
	result := models.TranslationResult{Original: text, Translated: text}
	if t == nil || sameLanguage(source, target) {
		return result
	}

	start := time.Now()
	translated, err := t.Translate(ctx, text, source, target)
	if err == nil && strings.TrimSpace(translated) == "" && strings.TrimSpace(text) != "" {
		err = fmt.Errorf("%w: empty translation", ErrUnavailable)
	}
	if err != nil {
		failure := &Failure{Backend: t.Name(), Err: err}
		slog.Warn("[Translator] Falling back to original text",
			slog.String("backend", t.Name()),
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		result.Warning = failure.Error()
		return result
	}

	slog.Debug("[Translator] Translation successful",
		slog.String("backend", t.Name()),
		slog.Int("chars", len(text)),
		slog.Duration("elapsed", time.Since(start)))

	result.Translated = translated
	return result
}

func sameLanguage(a, b language.Tag) bool {
	baseA, _ := a.Base()
	baseB, _ := b.Base()
	return baseA == baseB
}
