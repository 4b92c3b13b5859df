package search

import (
	"fmt"
	"math"
	"sort"

	"github.com/gcbaptista/search-server/index"
	"github.com/gcbaptista/search-server/internal/errors"
	"github.com/gcbaptista/search-server/internal/query"
	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/services"
	"github.com/gcbaptista/search-server/store"
)

const (
	// MaxResultDocumentCount caps the number of documents FindTopDocuments returns.
	MaxResultDocumentCount = 5
	// RelevanceEpsilon is the tolerance under which two relevances are equal.
	RelevanceEpsilon = 1e-6
)

// Service implements ranking and match explanation for a single index.
// It will fulfill the services.Searcher and services.Matcher interfaces.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	parser        *query.Parser
	calculator    *TFIDFCalculator
}

// NewService creates a new search Service.
func NewService(invIndex *index.InvertedIndex, docStore *store.DocumentStore, parser *query.Parser) (*Service, error) {
	if invIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if docStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if parser == nil {
		return nil, fmt.Errorf("query parser cannot be nil")
	}
	return &Service{
		invertedIndex: invIndex,
		documentStore: docStore,
		parser:        parser,
		calculator:    NewTFIDFCalculator(invIndex, docStore),
	}, nil
}

// FindTopDocuments returns the best ACTUAL documents for rawQuery.
func (s *Service) FindTopDocuments(rawQuery string) ([]model.Document, error) {
	return s.FindTopDocumentsByStatus(rawQuery, model.StatusActual)
}

// FindTopDocumentsByStatus returns the best documents having exactly the given status.
func (s *Service) FindTopDocumentsByStatus(rawQuery string, status model.DocumentStatus) ([]model.Document, error) {
	return s.FindTopDocumentsWith(rawQuery, services.ByStatus(status))
}

// FindTopDocumentsWith ranks documents accepted by predicate and returns at most
// MaxResultDocumentCount of them, by relevance then rating.
func (s *Service) FindTopDocumentsWith(rawQuery string, predicate services.DocumentPredicate) ([]model.Document, error) {
	if predicate == nil {
		return nil, errors.NewValidationError("predicate", "cannot be nil")
	}
	q, err := s.parser.Parse(rawQuery)
	if err != nil {
		return nil, err
	}

	matched := s.findAllDocuments(q, predicate)
	SortDocuments(matched)
	if len(matched) > MaxResultDocumentCount {
		matched = matched[:MaxResultDocumentCount]
	}
	return matched, nil
}

// findAllDocuments scores every document containing a plus word and accepted by
// predicate, then drops any document containing a minus word.
func (s *Service) findAllDocuments(q query.Query, predicate services.DocumentPredicate) []model.Document {
	documentToRelevance := make(map[int]float64)
	for word := range q.PlusWords {
		postings, ok := s.invertedIndex.Postings(word)
		if !ok {
			continue
		}
		idf := s.calculator.InverseDocumentFrequency(word)
		for docID, termFreq := range postings {
			data, _ := s.documentStore.Get(docID)
			if predicate(docID, data.Status, data.Rating) {
				documentToRelevance[docID] += termFreq * idf
			}
		}
	}

	for word := range q.MinusWords {
		postings, ok := s.invertedIndex.Postings(word)
		if !ok {
			continue
		}
		for docID := range postings {
			delete(documentToRelevance, docID)
		}
	}

	matched := make([]model.Document, 0, len(documentToRelevance))
	for docID, relevance := range documentToRelevance {
		data, _ := s.documentStore.Get(docID)
		matched = append(matched, model.Document{
			ID:        docID,
			Relevance: relevance,
			Rating:    data.Rating,
		})
	}
	// Map iteration is random; emit candidates by ascending id so ordering is repeatable.
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID < matched[j].ID
	})
	return matched
}

// SortDocuments orders documents by relevance descending. Relevances closer than
// RelevanceEpsilon are ordered by rating descending. Remaining ties keep their order.
func SortDocuments(docs []model.Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		lhs, rhs := docs[i], docs[j]
		if math.Abs(lhs.Relevance-rhs.Relevance) < RelevanceEpsilon {
			return lhs.Rating > rhs.Rating
		}
		return lhs.Relevance > rhs.Relevance
	})
}

// MatchDocument reports which plus words of rawQuery occur in document id.
// The word list is empty if any minus word occurs in the document.
func (s *Service) MatchDocument(rawQuery string, id int) (model.MatchResult, error) {
	data, ok := s.documentStore.Get(id)
	if !ok {
		return model.MatchResult{}, errors.NewUnknownDocumentIDError(id)
	}
	q, err := s.parser.Parse(rawQuery)
	if err != nil {
		return model.MatchResult{}, err
	}

	result := model.MatchResult{Words: make([]string, 0), Status: data.Status}
	for _, word := range q.SortedMinusWords() {
		if s.invertedIndex.Contains(word, id) {
			return result, nil
		}
	}
	for _, word := range q.SortedPlusWords() {
		if s.invertedIndex.Contains(word, id) {
			result.Words = append(result.Words, word)
		}
	}
	return result, nil
}
