package indexing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/search-server/index"
	searcherrors "github.com/gcbaptista/search-server/internal/errors"
	"github.com/gcbaptista/search-server/internal/query"
	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/store"
)

func setupTestIndexingService(t *testing.T) (*Service, *index.InvertedIndex, *store.DocumentStore) {
	t.Helper()
	invIdx := index.NewInvertedIndex()
	docStore := store.NewDocumentStore()
	parser := query.NewParser(map[string]struct{}{"and": {}, "in": {}, "with": {}})

	service, err := NewService(invIdx, docStore, parser)
	require.NoError(t, err, "Failed to create indexing service")
	return service, invIdx, docStore
}

func TestNewService_NilArguments(t *testing.T) {
	parser := query.NewParser(nil)
	_, err := NewService(nil, store.NewDocumentStore(), parser)
	assert.Error(t, err)
	_, err = NewService(index.NewInvertedIndex(), nil, parser)
	assert.Error(t, err)
	_, err = NewService(index.NewInvertedIndex(), store.NewDocumentStore(), nil)
	assert.Error(t, err)

	// Zero-value containers are initialized
	service, err := NewService(&index.InvertedIndex{}, &store.DocumentStore{}, parser)
	require.NoError(t, err)
	require.NoError(t, service.AddDocument(1, "cat", model.StatusActual, nil))
}

func TestAddDocument_IndexesWithoutStopWords(t *testing.T) {
	service, invIdx, docStore := setupTestIndexingService(t)

	err := service.AddDocument(0, "white cat and fashionable collar", model.StatusActual, []int{8, -3})
	require.NoError(t, err)

	assert.Equal(t, 1, docStore.Count())
	assert.False(t, invIdx.Contains("and", 0), "stop words are not indexed")
	assert.InDelta(t, 0.25, invIdx.Index["cat"][0], 1e-9)

	data, ok := docStore.Get(0)
	require.True(t, ok)
	assert.Equal(t, 2, data.Rating)
	assert.Equal(t, model.StatusActual, data.Status)
}

func TestAddDocument_InvalidID(t *testing.T) {
	service, _, docStore := setupTestIndexingService(t)

	err := service.AddDocument(-1, "fluffy dog and fashionable collar", model.StatusActual, []int{7, 2, 7})
	assert.True(t, errors.Is(err, searcherrors.ErrInvalidID), "got %v", err)
	assert.Equal(t, 0, docStore.Count())
}

func TestAddDocument_InvalidIDCheckedBeforeText(t *testing.T) {
	service, _, _ := setupTestIndexingService(t)

	err := service.AddDocument(-1, "big do\tg", model.StatusActual, nil)
	assert.True(t, errors.Is(err, searcherrors.ErrInvalidID), "got %v", err)
}

func TestAddDocument_DuplicateID(t *testing.T) {
	service, invIdx, docStore := setupTestIndexingService(t)
	require.NoError(t, service.AddDocument(1, "fluffy cat fluffy tail", model.StatusActual, []int{7, 2, 7}))

	err := service.AddDocument(1, "white starling and fashionable bell", model.StatusActual, []int{5, -12, 2, 1})
	assert.True(t, errors.Is(err, searcherrors.ErrDuplicateID), "got %v", err)

	err = service.AddDocument(1, "big do\tg", model.StatusActual, nil)
	assert.True(t, errors.Is(err, searcherrors.ErrDuplicateID), "duplicate is reported before text validation, got %v", err)

	assert.Equal(t, 1, docStore.Count())
	assert.False(t, invIdx.Contains("starling", 1))
	assert.True(t, invIdx.Contains("fluffy", 1))
	data, _ := docStore.Get(1)
	assert.Equal(t, 5, data.Rating)
}

func TestAddDocument_MalformedTextIsAtomic(t *testing.T) {
	service, invIdx, docStore := setupTestIndexingService(t)

	err := service.AddDocument(4, "big do\tg star\tling", model.StatusActual, []int{1, 2, 3})
	assert.True(t, errors.Is(err, searcherrors.ErrMalformedInput), "got %v", err)

	assert.Equal(t, 0, docStore.Count())
	assert.False(t, docStore.Has(4))
	assert.Empty(t, invIdx.Index, "no partial index mutation")

	// The id stays free after a failed add
	require.NoError(t, service.AddDocument(4, "big dog", model.StatusActual, nil))
	assert.Equal(t, 1, docStore.Count())
}

func TestAddDocument_OnlyStopWords(t *testing.T) {
	service, invIdx, docStore := setupTestIndexingService(t)

	require.NoError(t, service.AddDocument(9, "and in with", model.StatusIrrelevant, nil))
	assert.Equal(t, 1, docStore.Count())
	assert.Empty(t, invIdx.Index)
	assert.Empty(t, invIdx.WordFrequencies(9))
}

func TestComputeAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    int
	}{
		{"empty", nil, 0},
		{"single", []int{9}, 9},
		{"truncated", []int{7, 2, 7}, 5},
		{"mixed signs", []int{8, -3}, 2},
		{"negative truncates toward zero", []int{5, -12, 2, 1}, -1},
		{"all negative", []int{-7, -2, -7}, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeAverageRating(tt.ratings))
		})
	}
}
