package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvertedIndex_AddDocument(t *testing.T) {
	ii := NewInvertedIndex()
	ii.AddDocument(1, []string{"fluffy", "cat", "fluffy", "tail"})
	ii.AddDocument(0, []string{"white", "cat", "fashionable", "collar"})

	postings, ok := ii.Postings("fluffy")
	assert.True(t, ok)
	assert.InDelta(t, 0.5, postings[1], 1e-9)
	assert.Len(t, postings, 1)

	assert.Equal(t, 2, ii.DocumentFrequency("cat"))
	assert.Equal(t, 0, ii.DocumentFrequency("dog"))
	assert.True(t, ii.Contains("collar", 0))
	assert.False(t, ii.Contains("collar", 1))
	assert.False(t, ii.Contains("dog", 1))
}

func TestInvertedIndex_FrequenciesSumToOne(t *testing.T) {
	ii := NewInvertedIndex()
	ii.AddDocument(4, []string{"a", "b", "b", "c", "a", "a"})

	sum := 0.0
	for _, tf := range ii.WordFrequencies(4) {
		sum += tf
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.InDelta(t, 0.5, ii.WordFrequencies(4)["a"], 1e-9)
}

func TestInvertedIndex_EmptyDocument(t *testing.T) {
	ii := NewInvertedIndex()
	ii.AddDocument(1, nil)

	assert.Empty(t, ii.Index, "no entries with zero frequency")
	assert.Empty(t, ii.WordFrequencies(1))
}

func TestInvertedIndex_WordFrequenciesIsCopy(t *testing.T) {
	ii := NewInvertedIndex()
	ii.AddDocument(1, []string{"cat"})

	freqs := ii.WordFrequencies(1)
	freqs["cat"] = 42
	assert.InDelta(t, 1.0, ii.WordFrequencies(1)["cat"], 1e-9)
	assert.Empty(t, ii.WordFrequencies(99))
}

func TestInvertedIndex_Terms(t *testing.T) {
	ii := NewInvertedIndex()
	ii.AddDocument(1, []string{"tail", "cat", "fluffy"})
	ii.AddDocument(2, []string{"cat"})

	assert.Equal(t, []string{"cat", "fluffy", "tail"}, ii.Terms())
}
