// Package sentiment scores English text for polarity and subjectivity using
// lexicon-based analyzers.
package sentiment

import (
	"fmt"

	"github.com/spacesedan/sentiscope/internal/models"
)

// Scorer computes polarity in [-1, 1] and subjectivity in [0, 1].
// Implementations must be safe for concurrent use.
type Scorer interface {
	Score(text string) models.SentimentScore
	Name() string
}

const (
	BackendPattern = "pattern"
	BackendVader   = "vader"
)

func NewScorer(backend string) (Scorer, error) {
	switch backend {
	case BackendVader, "":
		return NewVaderScorer(), nil
	case BackendPattern:
		return NewPatternScorer()
	default:
		return nil, fmt.Errorf("[Sentiment] unknown scorer backend %q", backend)
	}
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
