package services

import (
	"github.com/gcbaptista/search-server/model"
)

// DocumentPredicate decides whether a document may appear in search results.
type DocumentPredicate func(id int, status model.DocumentStatus, rating int) bool

// ByStatus returns a predicate accepting only documents with the given status.
func ByStatus(status model.DocumentStatus) DocumentPredicate {
	return func(_ int, documentStatus model.DocumentStatus, _ int) bool {
		return documentStatus == status
	}
}

// Indexer defines operations for adding data to an index
type Indexer interface {
	AddDocument(id int, text string, status model.DocumentStatus, ratings []int) error
}

// Searcher defines operations for querying an index
type Searcher interface {
	FindTopDocuments(rawQuery string) ([]model.Document, error)
	FindTopDocumentsByStatus(rawQuery string, status model.DocumentStatus) ([]model.Document, error)
	FindTopDocumentsWith(rawQuery string, predicate DocumentPredicate) ([]model.Document, error)
}

// Matcher explains how a single document relates to a query
type Matcher interface {
	MatchDocument(rawQuery string, id int) (model.MatchResult, error)
}

// DocumentRegistry exposes the ordered set of indexed ids
type DocumentRegistry interface {
	DocumentCount() int
	DocumentIDAt(position int) (int, error)
	DocumentIDs() []int
	WordFrequencies(id int) map[string]float64
}

// SearchServer combines every operation of an index.
// Implementations without locking allow one writer or many readers at a time;
// AddDocument must never run concurrently with any other call.
type SearchServer interface {
	Indexer
	Searcher
	Matcher
	DocumentRegistry
}
