// Package testing provides utilities and helpers for testing the search server.
package testing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/search-server/internal/engine"
	"github.com/gcbaptista/search-server/model"
)

// TestStopWords is the stop-word text used by CreateTestEngine
const TestStopWords = "and in with"

// TestDocument is a document fixture
type TestDocument struct {
	ID      int
	Text    string
	Status  model.DocumentStatus
	Ratings []int
}

// TestDocuments returns the standard fixture corpus
func TestDocuments() []TestDocument {
	return []TestDocument{
		{ID: 1, Text: "fluffy cat fluffy tail", Status: model.StatusActual, Ratings: []int{7, 2, 7}},
		{ID: 0, Text: "white cat and fashionable collar", Status: model.StatusActual, Ratings: []int{8, -3}},
		{ID: 2, Text: "well-groomed dog expressive eyes", Status: model.StatusActual, Ratings: []int{5, -12, 2, 1}},
		{ID: 3, Text: "well-groomed starling Evgeniy", Status: model.StatusBanned, Ratings: []int{9}},
	}
}

// CreateTestEngine creates a new engine with TestStopWords and no documents
func CreateTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng, err := engine.NewFromText(TestStopWords)
	require.NoError(t, err, "Failed to create test engine")
	return eng
}

// AddTestDocuments adds the fixture corpus to an engine
func AddTestDocuments(t *testing.T, eng *engine.Engine) []TestDocument {
	t.Helper()
	docs := TestDocuments()
	for _, doc := range docs {
		err := eng.AddDocument(doc.ID, doc.Text, doc.Status, doc.Ratings)
		require.NoError(t, err, "Failed to add test document %d", doc.ID)
	}
	return docs
}

// CreatePopulatedEngine creates a test engine holding the fixture corpus
func CreatePopulatedEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng := CreateTestEngine(t)
	AddTestDocuments(t, eng)
	return eng
}

// AssertRankedOrder checks the result length cap and the relevance/rating ordering
func AssertRankedOrder(t *testing.T, docs []model.Document) {
	t.Helper()
	assert.LessOrEqual(t, len(docs), 5, "too many results")
	for i := 1; i < len(docs); i++ {
		prev, cur := docs[i-1], docs[i]
		if math.Abs(prev.Relevance-cur.Relevance) < 1e-6 {
			assert.GreaterOrEqual(t, prev.Rating, cur.Rating, "tie at position %d not ordered by rating", i)
		} else {
			assert.Greater(t, prev.Relevance, cur.Relevance, "position %d not ordered by relevance", i)
		}
	}
}

// ResultIDs extracts document ids in result order
func ResultIDs(docs []model.Document) []int {
	ids := make([]int, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
	}
	return ids
}
