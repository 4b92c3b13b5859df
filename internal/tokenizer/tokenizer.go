package tokenizer

import (
	"github.com/gcbaptista/search-server/internal/errors"
)

// wordSeparator is the only character that splits text into words.
const wordSeparator = ' '

// HasSpecialSymbols reports whether word contains a control character (code below space).
func HasSpecialSymbols(word string) bool {
	for _, c := range word {
		if c < wordSeparator {
			return true
		}
	}
	return false
}

// SplitIntoWords splits text on single spaces.
// Runs of spaces and leading/trailing spaces never produce empty words.
// It fails with a MalformedInputError if any word contains a control character.
func SplitIntoWords(text string) ([]string, error) {
	words := make([]string, 0) // Initialize as empty slice, not nil
	start := -1
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == wordSeparator {
			if start >= 0 {
				words = append(words, text[start:i])
				start = -1
			}
			continue
		}
		if c < wordSeparator {
			end := i
			for end < len(text) && text[end] != wordSeparator {
				end++
			}
			from := i
			if start >= 0 {
				from = start
			}
			return nil, errors.NewMalformedInputError(text[from:end])
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, text[start:])
	}
	return words, nil
}

// MakeUniqueNonEmptyStrings deduplicates words and drops empty strings.
// Words supplied this way skip splitting but are still checked for control characters.
func MakeUniqueNonEmptyStrings(words []string) (map[string]struct{}, error) {
	unique := make(map[string]struct{}, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		if HasSpecialSymbols(word) {
			return nil, errors.NewMalformedInputError(word)
		}
		unique[word] = struct{}{}
	}
	return unique, nil
}
