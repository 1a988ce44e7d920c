package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatternScorer(t *testing.T) *PatternScorer {
	t.Helper()
	ps, err := NewPatternScorer()
	require.NoError(t, err)
	return ps
}

func TestBundledLexicon(t *testing.T) {
	lex, err := BundledLexicon()
	require.NoError(t, err)

	assert.Equal(t, "en", lex.Language)
	assert.NotEmpty(t, lex.Words)
	assert.NotEmpty(t, lex.Modifiers)
	assert.Contains(t, lex.Negations, "not")

	for _, w := range lex.Words {
		assert.GreaterOrEqual(t, w.Polarity, -1.0, w.Word)
		assert.LessOrEqual(t, w.Polarity, 1.0, w.Word)
		assert.GreaterOrEqual(t, w.Subjectivity, 0.0, w.Word)
		assert.LessOrEqual(t, w.Subjectivity, 1.0, w.Word)
	}
}

func TestPatternScorer(t *testing.T) {
	ps := newPatternScorer(t)

	tests := []struct {
		text         string
		polarity     float64
		subjectivity float64
		desc         string
	}{
		{"This is a good day", 0.7, 0.6, "single positive adjective"},
		{"What a GOOD day!!!", 0.7, 0.6, "case and punctuation ignored"},
		{"This is not good", -0.35, 0.6, "negation flips and halves"},
		{"This isn't bad", 0.35, 0.67, "contracted negation"},
		{"This isn’t bad", 0.35, 0.67, "curled apostrophe"},
		{"A very good day", 0.91, 0.78, "intensifier"},
		{"Not very good", -0.455, 0.78, "negated intensifier"},
		{"An extremely excellent result", 1.0, 1.0, "clamped to range"},
		{"Good food but terrible service", -0.15, 0.8, "mixed words are averaged"},
		{"It was 'great'.", 0.8, 0.75, "single-quoted word"},
		{"This is 'not' good", -0.35, 0.6, "quoted negation"},
		{"The chef's food was delicious", 1.0, 1.0, "possessive before lexicon word"},
		{"The cat sat on the mat", 0, 0, "no lexicon words"},
		{"", 0, 0, "empty text"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			score := ps.Score(tt.text)
			assert.InDelta(t, tt.polarity, score.Polarity, 1e-9)
			assert.InDelta(t, tt.subjectivity, score.Subjectivity, 1e-9)
		})
	}
}

func TestPatternScorerCustomLexicon(t *testing.T) {
	ps := NewPatternScorerFromLexicon(&Lexicon{
		Words:     []LexiconEntry{{Word: "Shiny", Polarity: 0.4, Subjectivity: 0.2}},
		Modifiers: []ModifierEntry{{Word: "VERY", Factor: 2}},
		Negations: []string{"hardly"},
	})

	assert.InDelta(t, 0.8, ps.Score("very shiny").Polarity, 1e-9)
	assert.InDelta(t, -0.2, ps.Score("hardly shiny").Polarity, 1e-9)
	assert.Equal(t, BackendPattern, ps.Name())
}

func TestPatternScorerRanges(t *testing.T) {
	ps := newPatternScorer(t)
	inputs := []string{
		"absolutely perfect perfect perfect",
		"extremely terrible awful horrible",
		"not not not bad",
		"very very very good",
		"big small old new",
	}
	for _, in := range inputs {
		score := ps.Score(in)
		assert.GreaterOrEqual(t, score.Polarity, -1.0, in)
		assert.LessOrEqual(t, score.Polarity, 1.0, in)
		assert.GreaterOrEqual(t, score.Subjectivity, 0.0, in)
		assert.LessOrEqual(t, score.Subjectivity, 1.0, in)
	}
}

func TestPatternTokens(t *testing.T) {
	assert.Equal(t,
		[]string{"it", "the", "movie", "best", "scene", "don't", "stop"},
		patternTokens("It's the movie's 'best' scene, don’t 'stop'"))
	assert.Empty(t, patternTokens("' '' '''"))
}
