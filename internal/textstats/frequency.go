// Package textstats ranks the content words of a text by frequency.
package textstats

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/spacesedan/sentiscope/internal/models"
)

const minWordLength = 3

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Tokenize lowercases text and returns every word token in order, unfiltered.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// CountWords counts the tokens of text that are at least three characters long
// and not stopwords. The table is sorted by descending count; equal counts keep
// the order in which the word first appeared.
func CountWords(text string) models.WordFrequencyTable {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, word := range Tokenize(text) {
		if utf8.RuneCountInString(word) < minWordLength || IsStopword(word) {
			continue
		}
		if _, seen := counts[word]; !seen {
			order = append(order, word)
		}
		counts[word]++
	}

	table := make(models.WordFrequencyTable, 0, len(order))
	for _, word := range order {
		table = append(table, models.WordCount{Word: word, Count: counts[word]})
	}

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})

	return table
}

// Top returns at most n leading entries of table.
func Top(table models.WordFrequencyTable, n int) models.WordFrequencyTable {
	if n <= 0 {
		return models.WordFrequencyTable{}
	}
	if len(table) < n {
		n = len(table)
	}
	top := make(models.WordFrequencyTable, n)
	copy(top, table[:n])
	return top
}
