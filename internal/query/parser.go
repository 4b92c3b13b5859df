// Package query turns raw query strings into plus and minus word sets.
package query

import (
	"sort"
	"strings"

	"github.com/gcbaptista/search-server/internal/errors"
	"github.com/gcbaptista/search-server/internal/tokenizer"
)

const minusPrefix = "-"

// Query holds the required (plus) and excluded (minus) words of a query.
// The two sets are independent: a word may appear in both.
type Query struct {
	PlusWords  map[string]struct{}
	MinusWords map[string]struct{}
}

// SortedPlusWords returns the plus words in ascending order.
func (q Query) SortedPlusWords() []string {
	return sortedKeys(q.PlusWords)
}

// SortedMinusWords returns the minus words in ascending order.
func (q Query) SortedMinusWords() []string {
	return sortedKeys(q.MinusWords)
}

func sortedKeys(set map[string]struct{}) []string {
	words := make([]string, 0, len(set))
	for word := range set {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// Parser parses queries against a fixed stop-word set.
type Parser struct {
	stopWords map[string]struct{}
}

// NewParser creates a Parser. The stop-word set is not copied and must not change.
func NewParser(stopWords map[string]struct{}) *Parser {
	if stopWords == nil {
		stopWords = make(map[string]struct{})
	}
	return &Parser{stopWords: stopWords}
}

// IsStopWord reports whether word is in the stop-word set.
func (p *Parser) IsStopWord(word string) bool {
	_, ok := p.stopWords[word]
	return ok
}

type queryWord struct {
	data    string
	isMinus bool
	isStop  bool
}

func (p *Parser) parseQueryWord(text string) (queryWord, error) {
	word := text
	isMinus := false
	if strings.HasPrefix(word, minusPrefix) {
		isMinus = true
		word = word[len(minusPrefix):]
	}
	if word == "" {
		return queryWord{}, errors.NewEmptyMinusWordError()
	}
	if strings.HasPrefix(word, minusPrefix) {
		return queryWord{}, errors.NewDoubleMinusError(text)
	}
	return queryWord{data: word, isMinus: isMinus, isStop: p.IsStopWord(word)}, nil
}

// Parse splits raw into words and sorts them into plus and minus sets.
// Stop-words are dropped after the minus prefix is stripped.
func (p *Parser) Parse(raw string) (Query, error) {
	q := Query{
		PlusWords:  make(map[string]struct{}),
		MinusWords: make(map[string]struct{}),
	}
	words, err := tokenizer.SplitIntoWords(raw)
	if err != nil {
		return Query{}, err
	}
	for _, word := range words {
		qw, err := p.parseQueryWord(word)
		if err != nil {
			return Query{}, err
		}
		if qw.isStop {
			continue
		}
		if qw.isMinus {
			q.MinusWords[qw.data] = struct{}{}
		} else {
			q.PlusWords[qw.data] = struct{}{}
		}
	}
	return q, nil
}
