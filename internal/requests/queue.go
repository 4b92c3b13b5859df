// Package requests tracks recent search requests and how many returned nothing.
package requests

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/search-server/internal/errors"
	"github.com/gcbaptista/search-server/internal/logger"
	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/services"
)

// DefaultWindow keeps one request per minute of a day.
const DefaultWindow = 1440

// Queue forwards queries to a Searcher and remembers the last window requests.
// It is safe for concurrent use as long as the Searcher is.
type Queue struct {
	mu        sync.Mutex
	searcher  services.Searcher
	window    int
	requests  []model.SearchRequest
	noResults int
	metrics   *Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// NewQueue creates a Queue. metrics may be nil.
func NewQueue(searcher services.Searcher, window int, metrics *Metrics) (*Queue, error) {
	if searcher == nil {
		return nil, fmt.Errorf("searcher cannot be nil")
	}
	if window <= 0 {
		return nil, errors.NewValidationError("request_window", "must be positive")
	}
	return &Queue{
		searcher: searcher,
		window:   window,
		requests: make([]model.SearchRequest, 0, window),
		metrics:  metrics,
		logger:   logger.WithComponent("requests"),
		now:      time.Now,
	}, nil
}

// AddFindRequest runs FindTopDocuments and records the request.
func (q *Queue) AddFindRequest(rawQuery string) ([]model.Document, error) {
	docs, err := q.searcher.FindTopDocuments(rawQuery)
	return q.track(rawQuery, docs, err)
}

// AddFindRequestByStatus runs FindTopDocumentsByStatus and records the request.
func (q *Queue) AddFindRequestByStatus(rawQuery string, status model.DocumentStatus) ([]model.Document, error) {
	docs, err := q.searcher.FindTopDocumentsByStatus(rawQuery, status)
	return q.track(rawQuery, docs, err)
}

// AddFindRequestWith runs FindTopDocumentsWith and records the request.
func (q *Queue) AddFindRequestWith(rawQuery string, predicate services.DocumentPredicate) ([]model.Document, error) {
	docs, err := q.searcher.FindTopDocumentsWith(rawQuery, predicate)
	return q.track(rawQuery, docs, err)
}

// track records a finished request. Failed requests are counted in metrics only.
func (q *Queue) track(rawQuery string, docs []model.Document, searchErr error) ([]model.Document, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if searchErr != nil {
		q.metrics.observe(outcomeError, 0, q.noResults)
		q.logger.Debug("search request failed", "query", rawQuery, "error", searchErr)
		return nil, searchErr
	}

	request := model.SearchRequest{
		ID:          uuid.New().String(),
		Query:       rawQuery,
		ResultCount: len(docs),
		Timestamp:   q.now(),
	}
	q.requests = append(q.requests, request)
	if !request.HasResults() {
		q.noResults++
	}

	// Keep only the latest window requests
	if len(q.requests) > q.window {
		evicted := q.requests[0]
		if !evicted.HasResults() {
			q.noResults--
		}
		q.requests = append(q.requests[:0], q.requests[1:]...)
	}

	outcome := outcomeResults
	if !request.HasResults() {
		outcome = outcomeNoResults
		q.logger.Debug("search request returned no results", "query", rawQuery, "request_id", request.ID)
	}
	q.metrics.observe(outcome, request.ResultCount, q.noResults)
	return docs, nil
}

// NoResultRequests returns how many tracked requests returned no documents.
func (q *Queue) NoResultRequests() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.noResults
}

// Requests returns a copy of the tracked requests, oldest first.
func (q *Queue) Requests() []model.SearchRequest {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]model.SearchRequest, len(q.requests))
	copy(out, q.requests)
	return out
}

// Stats returns a summary of the tracked window.
func (q *Queue) Stats() model.RequestStats {
	q.mu.Lock()
	defer q.mu.Unlock()
	return model.RequestStats{
		Tracked:          len(q.requests),
		NoResultRequests: q.noResults,
		Window:           q.window,
	}
}
