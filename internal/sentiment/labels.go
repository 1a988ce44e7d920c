package sentiment

import "github.com/spacesedan/sentiscope/internal/models"

const (
	PolarityThreshold     = 0.05
	SubjectivityThreshold = 0.5
)

func ClassifyPolarity(polarity float64) models.PolarityLabel {
	switch {
	case polarity > PolarityThreshold:
		return models.PolarityPositive
	case polarity < -PolarityThreshold:
		return models.PolarityNegative
	default:
		return models.PolarityNeutral
	}
}

func ClassifySubjectivity(subjectivity float64) models.SubjectivityLabel {
	if subjectivity > SubjectivityThreshold {
		return models.SubjectivityHigh
	}
	return models.SubjectivityLow
}
