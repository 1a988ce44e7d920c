package sentiment

import (
	"embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/spacesedan/sentiscope/internal/models"
)

//go:embed data/lexicon_en.json
var lexiconFS embed.FS

const (
	lexiconFile      = "data/lexicon_en.json"
	negationFactor   = -0.5
	negationSuffix   = "n't"
	apostropheCurled = "’"
	possessiveSuffix = "'s"
)

var tokenPattern = regexp.MustCompile(`[\p{L}']+`)

type Lexicon struct {
	Language  string          `json:"language"`
	Words     []LexiconEntry  `json:"words"`
	Modifiers []ModifierEntry `json:"modifiers"`
	Negations []string        `json:"negations"`
}

type LexiconEntry struct {
	Word         string  `json:"word"`
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

type ModifierEntry struct {
	Word   string  `json:"word"`
	Factor float64 `json:"factor"`
}

var (
	bundledLexicon    *Lexicon
	bundledLexiconErr error
	bundledOnce       sync.Once
)

// BundledLexicon parses the embedded English lexicon once per process.
func BundledLexicon() (*Lexicon, error) {
	bundledOnce.Do(func() {
		raw, err := lexiconFS.ReadFile(lexiconFile)
		if err != nil {
			bundledLexiconErr = fmt.Errorf("[Sentiment] failed to read lexicon: %w", err)
			return
		}
		var lex Lexicon
		if err := json.Unmarshal(raw, &lex); err != nil {
			bundledLexiconErr = fmt.Errorf("[Sentiment] failed to parse lexicon: %w", err)
			return
		}
		bundledLexicon = &lex
	})
	return bundledLexicon, bundledLexiconErr
}

// PatternScorer averages the polarity and subjectivity of every lexicon word in
// the text. A directly preceding modifier scales the word, and a negation
// before that flips and halves its polarity.
type PatternScorer struct {
	words     map[string]LexiconEntry
	modifiers map[string]float64
	negations map[string]struct{}
}

func NewPatternScorer() (*PatternScorer, error) {
	lex, err := BundledLexicon()
	if err != nil {
		return nil, err
	}
	return NewPatternScorerFromLexicon(lex), nil
}

func NewPatternScorerFromLexicon(lex *Lexicon) *PatternScorer {
	ps := &PatternScorer{
		words:     make(map[string]LexiconEntry, len(lex.Words)),
		modifiers: make(map[string]float64, len(lex.Modifiers)),
		negations: make(map[string]struct{}, len(lex.Negations)),
	}
	for _, w := range lex.Words {
		ps.words[strings.ToLower(w.Word)] = w
	}
	for _, m := range lex.Modifiers {
		ps.modifiers[strings.ToLower(m.Word)] = m.Factor
	}
	for _, n := range lex.Negations {
		ps.negations[strings.ToLower(n)] = struct{}{}
	}
	return ps
}

func (ps *PatternScorer) Name() string {
	return BackendPattern
}

func (ps *PatternScorer) Score(text string) models.SentimentScore {
	score, _ := ps.score(text)
	return score
}

// Subjectivity returns the mean subjectivity of the lexicon words in text and
// whether any lexicon word was found.
func (ps *PatternScorer) Subjectivity(text string) (float64, bool) {
	score, scored := ps.score(text)
	return score.Subjectivity, scored > 0
}

func (ps *PatternScorer) score(text string) (models.SentimentScore, int) {
	tokens := patternTokens(text)

	var polaritySum, subjectivitySum float64
	scored := 0

	for i, tok := range tokens {
		entry, ok := ps.words[tok]
		if !ok {
			continue
		}

		polarity, subjectivity := entry.Polarity, entry.Subjectivity
		prev := i - 1
		if prev >= 0 {
			if factor, ok := ps.modifiers[tokens[prev]]; ok {
				polarity *= factor
				subjectivity *= factor
				prev--
			}
		}
		if prev >= 0 && ps.isNegation(tokens[prev]) {
			polarity *= negationFactor
		}

		polaritySum += clamp(polarity, -1, 1)
		subjectivitySum += clamp(subjectivity, 0, 1)
		scored++
	}

	if scored == 0 {
		return models.SentimentScore{}, 0
	}

	return models.SentimentScore{
		Polarity:     clamp(polaritySum/float64(scored), -1, 1),
		Subjectivity: clamp(subjectivitySum/float64(scored), 0, 1),
	}, scored
}

// patternTokens lowercases text and splits it into words. Quotes around a word
// and a possessive 's are dropped; inner apostrophes such as n't are kept.
func patternTokens(text string) []string {
	text = strings.ReplaceAll(strings.ToLower(text), apostropheCurled, "'")
	raw := tokenPattern.FindAllString(text, -1)

	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		tok = strings.Trim(tok, "'")
		tok = strings.TrimSuffix(tok, possessiveSuffix)
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func (ps *PatternScorer) isNegation(token string) bool {
	if _, ok := ps.negations[token]; ok {
		return true
	}
	return strings.HasSuffix(token, negationSuffix)
}
