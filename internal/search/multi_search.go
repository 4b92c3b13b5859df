package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/services"
)

// ProcessQueries runs FindTopDocuments for every query in parallel and returns the
// results in query order. workers <= 0 means no limit.
// The searcher must not be mutated while queries run.
func ProcessQueries(ctx context.Context, searcher services.Searcher, queries []string, workers int) ([][]model.Document, error) {
	return ProcessQueriesWith(ctx, searcher, queries, services.ByStatus(model.StatusActual), workers)
}

// ProcessQueriesWith is ProcessQueries with results filtered by predicate.
func ProcessQueriesWith(ctx context.Context, searcher services.Searcher, queries []string, predicate services.DocumentPredicate, workers int) ([][]model.Document, error) {
	results := make([][]model.Document, len(queries))
	if len(queries) == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, rawQuery := range queries {
		i, rawQuery := i, rawQuery
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			docs, err := searcher.FindTopDocumentsWith(rawQuery, predicate)
			if err != nil {
				return fmt.Errorf("error executing query %q: %w", rawQuery, err)
			}
			results[i] = docs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ProcessQueriesJoined is ProcessQueries with the per-query results concatenated.
func ProcessQueriesJoined(ctx context.Context, searcher services.Searcher, queries []string, workers int) ([]model.Document, error) {
	perQuery, err := ProcessQueries(ctx, searcher, queries, workers)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, docs := range perQuery {
		total += len(docs)
	}
	joined := make([]model.Document, 0, total)
	for _, docs := range perQuery {
		joined = append(joined, docs...)
	}
	return joined, nil
}
