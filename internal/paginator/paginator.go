// Package paginator splits result sequences into fixed-size pages.
package paginator

import (
	"github.com/gcbaptista/search-server/internal/errors"
)

// Page is a contiguous slice of the paginated items.
type Page[T any] struct {
	Number int // 1-based
	Items  []T
}

// Size returns the number of items on the page.
func (p Page[T]) Size() int {
	return len(p.Items)
}

// Paginate splits items into pages of pageSize; the last page may be shorter.
// Pages share the backing array of items. No items yields no pages.
func Paginate[T any](items []T, pageSize int) ([]Page[T], error) {
	if pageSize <= 0 {
		return nil, errors.NewValidationError("page_size", "must be positive")
	}
	pages := make([]Page[T], 0, (len(items)+pageSize-1)/pageSize)
	for start := 0; start < len(items); start += pageSize {
		end := min(start+pageSize, len(items))
		pages = append(pages, Page[T]{
			Number: len(pages) + 1,
			Items:  items[start:end:end],
		})
	}
	return pages, nil
}
