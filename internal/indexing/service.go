package indexing

import (
	"fmt"

	"github.com/gcbaptista/search-server/index"
	"github.com/gcbaptista/search-server/internal/errors"
	"github.com/gcbaptista/search-server/internal/query"
	"github.com/gcbaptista/search-server/internal/tokenizer"
	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/store"
)

// Service implements the indexing logic for a single index.
// It fulfills the services.Indexer interface.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	parser        *query.Parser
}

// NewService creates a new indexing Service.
// The parser supplies the stop-word set removed from document text.
func NewService(invertedIndex *index.InvertedIndex, documentStore *store.DocumentStore, parser *query.Parser) (*Service, error) {
	if invertedIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if documentStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if parser == nil {
		return nil, fmt.Errorf("query parser cannot be nil")
	}
	if invertedIndex.Index == nil {
		// Initialize the maps if nil to prevent panics later
		invertedIndex.Index = make(map[string]index.Postings)
	}
	if invertedIndex.DocWords == nil {
		invertedIndex.DocWords = make(map[int]map[string]float64)
	}
	if documentStore.Docs == nil {
		documentStore.Docs = make(map[int]store.DocumentData)
	}
	return &Service{
		invertedIndex: invertedIndex,
		documentStore: documentStore,
		parser:        parser,
	}, nil
}

// AddDocument validates and indexes a single document.
// Nothing is mutated unless every check passes.
func (s *Service) AddDocument(id int, text string, status model.DocumentStatus, ratings []int) error {
	if id < 0 {
		return errors.NewInvalidIDError(id)
	}
	if s.documentStore.Has(id) {
		return errors.NewDuplicateIDError(id)
	}

	words, err := s.splitIntoWordsNoStop(text)
	if err != nil {
		return fmt.Errorf("failed to add document %d: %w", id, err)
	}

	s.invertedIndex.AddDocument(id, words)
	s.documentStore.Put(id, store.DocumentData{
		Rating: ComputeAverageRating(ratings),
		Status: status,
	})
	return nil
}

func (s *Service) splitIntoWordsNoStop(text string) ([]string, error) {
	words, err := tokenizer.SplitIntoWords(text)
	if err != nil {
		return nil, err
	}
	kept := words[:0]
	for _, word := range words {
		if !s.parser.IsStopWord(word) {
			kept = append(kept, word)
		}
	}
	return kept, nil
}

// ComputeAverageRating returns the mean of ratings truncated toward zero, or 0 for no ratings.
func ComputeAverageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, rating := range ratings {
		sum += rating
	}
	return sum / len(ratings)
}
