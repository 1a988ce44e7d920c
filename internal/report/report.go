// Package report turns an analysis result into the values the presentation
// layer renders: gauges, labels, the top words and a text preview.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/spacesedan/sentiscope/internal/models"
	"github.com/spacesedan/sentiscope/internal/sentiment"
	"github.com/spacesedan/sentiscope/internal/textstats"
)

const (
	TopWordsLimit  = 10
	PreviewLength  = 1000
	NotEnoughWords = "Not enough words to show."
)

func Build(result models.AnalysisResult) models.Report {
	top := textstats.Top(result.WordFrequency, TopWordsLimit)

	return models.Report{
		Polarity:          result.Sentiment.Polarity,
		Subjectivity:      result.Sentiment.Subjectivity,
		SentimentGauge:    (result.Sentiment.Polarity + 1) / 2,
		SubjectivityGauge: result.Sentiment.Subjectivity,
		PolarityLabel:     sentiment.ClassifyPolarity(result.Sentiment.Polarity),
		SubjectivityLabel: sentiment.ClassifySubjectivity(result.Sentiment.Subjectivity),
		TopWords:          top,
		NotEnoughWords:    len(top) == 0,
		OriginalText:      result.OriginalText,
		TranslatedText:    result.TranslatedText,
		Warnings:          result.Warnings,
	}
}

// Preview returns the first PreviewLength characters of text, with "..."
// appended when it was cut.
func Preview(text string) string {
	runes := []rune(text)
	if len(runes) <= PreviewLength {
		return text
	}
	return string(runes[:PreviewLength]) + "..."
}

// Render writes a plain-text version of the report.
func Render(w io.Writer, r models.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Sentiment:    %s (%.2f)\n", r.PolarityLabel, r.Polarity)
	fmt.Fprintf(&b, "              %s\n", gauge(r.SentimentGauge))
	fmt.Fprintf(&b, "Subjectivity: %s (%.2f)\n", r.SubjectivityLabel, r.Subjectivity)
	fmt.Fprintf(&b, "              %s\n", gauge(r.SubjectivityGauge))

	b.WriteString("\nMost frequent words:\n")
	if r.NotEnoughWords {
		b.WriteString("  " + NotEnoughWords + "\n")
	}
	for _, wc := range r.TopWords {
		fmt.Fprintf(&b, "  %-20s %d\n", wc.Word, wc.Count)
	}

	for _, warning := range r.Warnings {
		fmt.Fprintf(&b, "\nWarning: %s\n", warning)
	}

	fmt.Fprintf(&b, "\nOriginal text:\n%s\n\nTranslated text:\n%s\n", r.OriginalText, r.TranslatedText)

	_, err := io.WriteString(w, b.String())
	return err
}

const gaugeWidth = 20

func gauge(value float64) string {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	filled := int(value*gaugeWidth + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", gaugeWidth-filled) + "]"
}
