package store

import (
	"github.com/gcbaptista/search-server/internal/errors"
	"github.com/gcbaptista/search-server/model"
)

// DocumentData is the metadata kept for an indexed document.
// The raw text is not retained.
type DocumentData struct {
	Rating int
	Status model.DocumentStatus
}

// DocumentStore owns per-document metadata and the registry of ids in insertion order.
// It is append-only and has no locking of its own.
type DocumentStore struct {
	Docs map[int]DocumentData
	IDs  []int
}

// NewDocumentStore creates an empty DocumentStore.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		Docs: make(map[int]DocumentData),
		IDs:  make([]int, 0),
	}
}

// Has reports whether id was added.
func (ds *DocumentStore) Has(id int) bool {
	_, ok := ds.Docs[id]
	return ok
}

// Put records metadata for a new id and appends it to the registry.
// Callers must check Has first; ids are never overwritten.
func (ds *DocumentStore) Put(id int, data DocumentData) {
	ds.Docs[id] = data
	ds.IDs = append(ds.IDs, id)
}

// Get returns the metadata for id.
func (ds *DocumentStore) Get(id int) (DocumentData, bool) {
	data, ok := ds.Docs[id]
	return data, ok
}

// Count returns the number of indexed documents.
func (ds *DocumentStore) Count() int {
	return len(ds.IDs)
}

// IDAt returns the id added at the given registry position.
func (ds *DocumentStore) IDAt(position int) (int, error) {
	if position < 0 || position >= len(ds.IDs) {
		return 0, errors.NewIndexOutOfRangeError(position, len(ds.IDs))
	}
	return ds.IDs[position], nil
}

// AllIDs returns a copy of the registry in insertion order.
func (ds *DocumentStore) AllIDs() []int {
	ids := make([]int, len(ds.IDs))
	copy(ids, ds.IDs)
	return ids
}
