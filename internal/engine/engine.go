package engine

import (
	"fmt"

	"github.com/gcbaptista/search-server/index"
	"github.com/gcbaptista/search-server/internal/indexing"
	"github.com/gcbaptista/search-server/internal/query"
	"github.com/gcbaptista/search-server/internal/search"
	"github.com/gcbaptista/search-server/internal/tokenizer"
	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/services"
	"github.com/gcbaptista/search-server/store"
)

// Engine owns one corpus: its stop-words, document store and inverted index.
// It implements services.SearchServer without locking: AddDocument must not run
// concurrently with any other call, while reads may run in parallel with each other.
// Use SyncEngine when callers cannot guarantee that.
type Engine struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	indexer       *indexing.Service
	searcher      *search.Service
}

// New creates an Engine from a collection of stop-words.
// Empty strings are ignored and duplicates collapse.
func New(stopWords []string) (*Engine, error) {
	stopSet, err := tokenizer.MakeUniqueNonEmptyStrings(stopWords)
	if err != nil {
		return nil, fmt.Errorf("invalid stop words: %w", err)
	}
	parser := query.NewParser(stopSet)

	invIndex := index.NewInvertedIndex()
	docStore := store.NewDocumentStore()

	indexerService, err := indexing.NewService(invIndex, docStore, parser)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexer service: %w", err)
	}
	searchService, err := search.NewService(invIndex, docStore, parser)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	return &Engine{
		invertedIndex: invIndex,
		documentStore: docStore,
		indexer:       indexerService,
		searcher:      searchService,
	}, nil
}

// NewFromText creates an Engine from a space-separated stop-word string.
func NewFromText(stopWordsText string) (*Engine, error) {
	words, err := tokenizer.SplitIntoWords(stopWordsText)
	if err != nil {
		return nil, fmt.Errorf("invalid stop words: %w", err)
	}
	return New(words)
}

// AddDocument delegates to the underlying Indexer service.
func (e *Engine) AddDocument(id int, text string, status model.DocumentStatus, ratings []int) error {
	return e.indexer.AddDocument(id, text, status, ratings)
}

// FindTopDocuments returns up to five ACTUAL documents for rawQuery.
func (e *Engine) FindTopDocuments(rawQuery string) ([]model.Document, error) {
	return e.searcher.FindTopDocuments(rawQuery)
}

// FindTopDocumentsByStatus returns up to five documents with the given status.
func (e *Engine) FindTopDocumentsByStatus(rawQuery string, status model.DocumentStatus) ([]model.Document, error) {
	return e.searcher.FindTopDocumentsByStatus(rawQuery, status)
}

// FindTopDocumentsWith returns up to five documents accepted by predicate.
func (e *Engine) FindTopDocumentsWith(rawQuery string, predicate services.DocumentPredicate) ([]model.Document, error) {
	return e.searcher.FindTopDocumentsWith(rawQuery, predicate)
}

// MatchDocument delegates to the underlying search service.
func (e *Engine) MatchDocument(rawQuery string, id int) (model.MatchResult, error) {
	return e.searcher.MatchDocument(rawQuery, id)
}

// DocumentCount returns the number of indexed documents.
func (e *Engine) DocumentCount() int {
	return e.documentStore.Count()
}

// DocumentIDAt returns the id added at position in insertion order.
func (e *Engine) DocumentIDAt(position int) (int, error) {
	return e.documentStore.IDAt(position)
}

// DocumentIDs returns all ids in insertion order.
func (e *Engine) DocumentIDs() []int {
	return e.documentStore.AllIDs()
}

// WordFrequencies returns the term frequencies of document id, empty if unknown.
func (e *Engine) WordFrequencies(id int) map[string]float64 {
	return e.invertedIndex.WordFrequencies(id)
}
