package models

type PolarityLabel string

const (
	PolarityPositive PolarityLabel = "positive"
	PolarityNegative PolarityLabel = "negative"
	PolarityNeutral  PolarityLabel = "neutral"
)

type SubjectivityLabel string

const (
	SubjectivityHigh SubjectivityLabel = "high subjectivity"
	SubjectivityLow  SubjectivityLabel = "low subjectivity"
)

// Report is what the presentation layer renders for one analysis.
type Report struct {
	Polarity          float64           `json:"polarity"`
	Subjectivity      float64           `json:"subjectivity"`
	SentimentGauge    float64           `json:"sentiment_gauge"`
	SubjectivityGauge float64           `json:"subjectivity_gauge"`
	PolarityLabel     PolarityLabel     `json:"polarity_label"`
	SubjectivityLabel SubjectivityLabel `json:"subjectivity_label"`
	TopWords          []WordCount       `json:"top_words"`
	NotEnoughWords    bool              `json:"not_enough_words"`
	OriginalText      string            `json:"original_text"`
	TranslatedText    string            `json:"translated_text"`
	Warnings          []string          `json:"warnings,omitempty"`
}

type UploadedText struct {
	Name    string `json:"name"`
	Content string `json:"-"`
	Preview string `json:"preview"`
}
