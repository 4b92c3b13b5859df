package index

import "sort"

// Postings maps a document id to the term frequency of one word in that document.
type Postings map[int]float64

// InvertedIndex maps a word to the documents containing it, with the word's
// term frequency in each. DocWords keeps the same data keyed by document.
type InvertedIndex struct {
	Index    map[string]Postings
	DocWords map[int]map[string]float64
}

// NewInvertedIndex creates an empty InvertedIndex.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{
		Index:    make(map[string]Postings),
		DocWords: make(map[int]map[string]float64),
	}
}

// AddDocument adds 1/len(words) to the frequency of every occurrence of a word.
// An empty word list leaves the index untouched.
func (ii *InvertedIndex) AddDocument(docID int, words []string) {
	if len(words) == 0 {
		return
	}
	invWordCount := 1.0 / float64(len(words))
	freqs := make(map[string]float64)
	for _, word := range words {
		postings, ok := ii.Index[word]
		if !ok {
			postings = make(Postings)
			ii.Index[word] = postings
		}
		postings[docID] += invWordCount
		freqs[word] += invWordCount
	}
	ii.DocWords[docID] = freqs
}

// Postings returns the documents containing word.
func (ii *InvertedIndex) Postings(word string) (Postings, bool) {
	postings, ok := ii.Index[word]
	return postings, ok
}

// DocumentFrequency returns the number of documents containing word.
func (ii *InvertedIndex) DocumentFrequency(word string) int {
	return len(ii.Index[word])
}

// Contains reports whether word occurs in the given document.
func (ii *InvertedIndex) Contains(word string, docID int) bool {
	postings, ok := ii.Index[word]
	if !ok {
		return false
	}
	_, found := postings[docID]
	return found
}

// WordFrequencies returns a copy of the term frequencies of a document.
// Unknown documents yield an empty map.
func (ii *InvertedIndex) WordFrequencies(docID int) map[string]float64 {
	freqs := make(map[string]float64, len(ii.DocWords[docID]))
	for word, tf := range ii.DocWords[docID] {
		freqs[word] = tf
	}
	return freqs
}

// Terms returns every indexed word in ascending order.
func (ii *InvertedIndex) Terms() []string {
	terms := make([]string, 0, len(ii.Index))
	for term := range ii.Index {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
