package sentiment

import (
	"log/slog"

	"github.com/jonreiter/govader"
	"github.com/spacesedan/sentiscope/internal/models"
)

// VaderScorer takes polarity from VADER's compound score. Subjectivity comes
// from the pattern lexicon when it knows any word of the text, otherwise from
// VADER's non-neutral proportion.
type VaderScorer struct {
	analyzer     *govader.SentimentIntensityAnalyzer
	subjectivity *PatternScorer
}

func NewVaderScorer() *VaderScorer {
	v := &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}

	lex, err := BundledLexicon()
	if err != nil {
		slog.Warn("[Sentiment] Subjectivity lexicon unavailable, using VADER proportions",
			slog.String("error", err.Error()))
		return v
	}
	v.subjectivity = NewPatternScorerFromLexicon(lex)
	return v
}

func (v *VaderScorer) Name() string {
	return BackendVader
}

func (v *VaderScorer) Score(text string) models.SentimentScore {
	plainText := ConvertMarkdownToText(text)
	if plainText == "" {
		return models.SentimentScore{}
	}

	sentiment := v.analyzer.PolarityScores(plainText)

	subjectivity := sentiment.Positive + sentiment.Negative
	if v.subjectivity != nil {
		if s, ok := v.subjectivity.Subjectivity(plainText); ok {
			subjectivity = s
		}
	}

	return models.SentimentScore{
		Polarity:     clamp(sentiment.Compound, -1, 1),
		Subjectivity: clamp(subjectivity, 0, 1),
	}
}
