package models

import "time"

// AnalysisRequest is the body of an analysis call. The source language is fixed
// by configuration, not chosen per request.
type AnalysisRequest struct {
	Text string `json:"text"`
}

type TranslationResult struct {
	Original   string `json:"original_text"`
	Translated string `json:"translated_text"`
	// Warning is set when translation failed and Translated fell back to Original.
	Warning string `json:"warning,omitempty"`
}

func (t TranslationResult) Failed() bool {
	return t.Warning != ""
}

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// WordFrequencyTable is ordered by descending count, ties in order of first appearance.
type WordFrequencyTable []WordCount

type SentimentScore struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

type AnalysisResult struct {
	Sentiment      SentimentScore     `json:"sentiment"`
	WordFrequency  WordFrequencyTable `json:"word_frequency"`
	OriginalText   string             `json:"original_text"`
	TranslatedText string             `json:"translated_text"`
	Warnings       []string           `json:"warnings,omitempty"`
	SourceLang     string             `json:"source_lang"`
	TargetLang     string             `json:"target_lang"`
	Translator     string             `json:"translator"`
	Scorer         string             `json:"scorer"`
	Elapsed        time.Duration      `json:"elapsed"`
}
