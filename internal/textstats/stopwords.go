package textstats

// stopwords mixes Spanish and English function words. Words in other languages
// are never filtered; the set is kept as-is for compatibility with existing reports.
var stopwords = map[string]struct{}{
	"a": {}, "al": {}, "como": {}, "con": {}, "de": {}, "del": {}, "el": {}, "ella": {},
	"ellos": {}, "en": {}, "es": {}, "la": {}, "lo": {}, "los": {}, "las": {}, "por": {},
	"para": {}, "que": {}, "un": {}, "una": {}, "y": {}, "yo": {}, "tú": {}, "mi": {},
	"mis": {}, "tu": {}, "tus": {},
	"the": {}, "and": {}, "for": {}, "from": {}, "you": {}, "your": {}, "this": {},
	"that": {}, "with": {}, "was": {}, "are": {}, "have": {}, "has": {},
}

func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}

// Stopwords returns a copy of the filtered set.
func Stopwords() []string {
	words := make([]string, 0, len(stopwords))
	for w := range stopwords {
		words = append(words, w)
	}
	return words
}
