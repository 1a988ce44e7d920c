package clients

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bregydoc/gtranslate"
	"golang.org/x/text/language"
)

var (
	googleTranslatorInstance *GoogleTranslator
	googleTranslatorOnce     sync.Once
)

type translateFunc func(text string, params gtranslate.TranslationParams) (string, error)

// GoogleTranslator uses the public Google Translate web endpoint.
type GoogleTranslator struct {
	translate translateFunc
}

func GetGoogleTranslator() *GoogleTranslator {
	googleTranslatorOnce.Do(func() {
		googleTranslatorInstance = &GoogleTranslator{translate: gtranslate.TranslateWithParams}
		slog.Info("[GoogleTranslator] Translator initialized")
	})
	return googleTranslatorInstance
}

func (g *GoogleTranslator) Name() string {
	return "google"
}

func (g *GoogleTranslator) Translate(ctx context.Context, text string, source, target language.Tag) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	translated, err := g.translate(text, gtranslate.TranslationParams{
		From:  languageCode(source),
		To:    languageCode(target),
		Tries: 1,
	})
	if err != nil {
		return "", fmt.Errorf("[GoogleTranslator] translate %s->%s: %w",
			languageCode(source), languageCode(target), err)
	}
	return translated, nil
}

// languageCode returns the ISO 639-1 base of tag, e.g. "es" for "es-MX".
func languageCode(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
