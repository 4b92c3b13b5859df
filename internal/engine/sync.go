package engine

import (
	"sync"

	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/services"
)

// SyncEngine wraps an Engine with an exclusive-writer/shared-reader lock.
// AddDocument takes the write lock; every other operation takes the read lock.
type SyncEngine struct {
	mu     sync.RWMutex
	engine *Engine
}

// NewSync wraps engine. The engine must not be used directly afterwards.
func NewSync(engine *Engine) *SyncEngine {
	return &SyncEngine{engine: engine}
}

// AddDocument indexes a document under the write lock.
func (s *SyncEngine) AddDocument(id int, text string, status model.DocumentStatus, ratings []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.AddDocument(id, text, status, ratings)
}

// FindTopDocuments returns up to five ACTUAL documents for rawQuery.
func (s *SyncEngine) FindTopDocuments(rawQuery string) ([]model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.FindTopDocuments(rawQuery)
}

// FindTopDocumentsByStatus returns up to five documents with the given status.
func (s *SyncEngine) FindTopDocumentsByStatus(rawQuery string, status model.DocumentStatus) ([]model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.FindTopDocumentsByStatus(rawQuery, status)
}

// FindTopDocumentsWith returns up to five documents accepted by predicate.
func (s *SyncEngine) FindTopDocumentsWith(rawQuery string, predicate services.DocumentPredicate) ([]model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.FindTopDocumentsWith(rawQuery, predicate)
}

// MatchDocument lists the query plus words found in document id.
func (s *SyncEngine) MatchDocument(rawQuery string, id int) (model.MatchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.MatchDocument(rawQuery, id)
}

// DocumentCount returns the number of indexed documents.
func (s *SyncEngine) DocumentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.DocumentCount()
}

// DocumentIDAt returns the id added at position in insertion order.
func (s *SyncEngine) DocumentIDAt(position int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.DocumentIDAt(position)
}

// DocumentIDs returns all ids in insertion order.
func (s *SyncEngine) DocumentIDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.DocumentIDs()
}

// WordFrequencies returns the term frequencies of document id, empty if unknown.
func (s *SyncEngine) WordFrequencies(id int) map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.WordFrequencies(id)
}

var (
	_ services.SearchServer = (*Engine)(nil)
	_ services.SearchServer = (*SyncEngine)(nil)
)
