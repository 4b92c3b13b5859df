package search

import (
	"math"

	"github.com/gcbaptista/search-server/index"
	"github.com/gcbaptista/search-server/store"
)

// TFIDFCalculator computes inverse document frequencies over the live corpus.
type TFIDFCalculator struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
}

// NewTFIDFCalculator creates a new TF-IDF calculator
func NewTFIDFCalculator(invIndex *index.InvertedIndex, docStore *store.DocumentStore) *TFIDFCalculator {
	return &TFIDFCalculator{
		invertedIndex: invIndex,
		documentStore: docStore,
	}
}

// InverseDocumentFrequency returns ln(N / df) where N = total documents, df = documents containing word.
// It is 0 for an empty corpus or an unknown word.
func (calc *TFIDFCalculator) InverseDocumentFrequency(word string) float64 {
	totalDocs := calc.documentStore.Count()
	if totalDocs == 0 {
		return 0.0
	}
	docFreq := calc.invertedIndex.DocumentFrequency(word)
	if docFreq == 0 {
		return 0.0
	}
	return math.Log(float64(totalDocs) / float64(docFreq))
}
