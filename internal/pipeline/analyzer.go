// Package pipeline runs one analysis: translate, score, count.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/spacesedan/sentiscope/internal/models"
	"github.com/spacesedan/sentiscope/internal/sentiment"
	"github.com/spacesedan/sentiscope/internal/textstats"
	"github.com/spacesedan/sentiscope/internal/translation"
	"golang.org/x/text/language"
)

var ErrEmptyInput = errors.New("please provide some text to analyze")

// Analyzer holds the process-wide translator and scorer. It keeps no state
// between calls and is safe for concurrent use.
type Analyzer struct {
	translator translation.Translator
	scorer     sentiment.Scorer
	source     language.Tag
	target     language.Tag
}

// NewAnalyzer builds an Analyzer. A nil translator disables translation.
func NewAnalyzer(translator translation.Translator, scorer sentiment.Scorer, source, target language.Tag) *Analyzer {
	return &Analyzer{
		translator: translator,
		scorer:     scorer,
		source:     source,
		target:     target,
	}
}

func (a *Analyzer) TranslatorName() string {
	if a.translator == nil {
		return "none"
	}
	return a.translator.Name()
}

func ValidateInput(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyInput
	}
	return nil
}

// Analyze translates text, then scores and counts the translation. Only blank
// input is an error; a failed translation is reported in Warnings.
func (a *Analyzer) Analyze(ctx context.Context, text string) (models.AnalysisResult, error) {
	if err := ValidateInput(text); err != nil {
		return models.AnalysisResult{}, err
	}

	start := time.Now()

	tr := translation.Translate(ctx, a.translator, text, a.source, a.target)
	score := a.scorer.Score(tr.Translated)
	table := textstats.CountWords(tr.Translated)

	result := models.AnalysisResult{
		Sentiment:      score,
		WordFrequency:  table,
		OriginalText:   tr.Original,
		TranslatedText: tr.Translated,
		SourceLang:     a.source.String(),
		TargetLang:     a.target.String(),
		Translator:     a.TranslatorName(),
		Scorer:         a.scorer.Name(),
		Elapsed:        time.Since(start),
	}
	if tr.Failed() {
		result.Warnings = append(result.Warnings, tr.Warning)
	}

	slog.Info("[Analyzer] Analysis complete",
		slog.Float64("polarity", score.Polarity),
		slog.Float64("subjectivity", score.Subjectivity),
		slog.Int("distinct_words", len(table)),
		slog.Bool("translated", !tr.Failed()),
		slog.Duration("elapsed", result.Elapsed))

	return result, nil
}
