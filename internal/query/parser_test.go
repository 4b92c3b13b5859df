package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	searcherrors "github.com/gcbaptista/search-server/internal/errors"
)

func newTestParser() *Parser {
	return NewParser(map[string]struct{}{"and": {}, "in": {}, "with": {}})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		plus  []string
		minus []string
	}{
		{"empty query", "", []string{}, []string{}},
		{"plus words", "fluffy well-groomed cat", []string{"cat", "fluffy", "well-groomed"}, []string{}},
		{"minus words", "cat -collar -tail", []string{"cat"}, []string{"collar", "tail"}},
		{"duplicates collapse", "cat cat -dog -dog", []string{"cat"}, []string{"dog"}},
		{"stop words dropped", "cat and dog", []string{"cat", "dog"}, []string{}},
		{"minus stop word dropped", "cat -in", []string{"cat"}, []string{}},
		{"only minus words", "-cat -dog", []string{}, []string{"cat", "dog"}},
		{"inner hyphen is not minus", "well-groomed", []string{"well-groomed"}, []string{}},
		{"word in both sets", "cat -cat", []string{"cat"}, []string{"cat"}},
		{"trailing minus inside word", "cat-", []string{"cat-"}, []string{}},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := p.Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.plus, q.SortedPlusWords())
			assert.Equal(t, tt.minus, q.SortedMinusWords())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"double minus", "--fluffy", searcherrors.ErrDoubleMinus},
		{"triple minus", "cat ---dog", searcherrors.ErrDoubleMinus},
		{"lone minus", "cat - ", searcherrors.ErrEmptyMinusWord},
		{"lone minus at start", "- cat", searcherrors.ErrEmptyMinusWord},
		{"double minus only", "--", searcherrors.ErrDoubleMinus},
		{"control character", "fluffy well-gro\tomed cat", searcherrors.ErrMalformedInput},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestIsStopWord(t *testing.T) {
	p := newTestParser()
	assert.True(t, p.IsStopWord("and"))
	assert.False(t, p.IsStopWord("cat"))

	empty := NewParser(nil)
	assert.False(t, empty.IsStopWord("and"))
}
