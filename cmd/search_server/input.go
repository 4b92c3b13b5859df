package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gcbaptista/search-server/config"
	"github.com/gcbaptista/search-server/model"
)

// readInput parses the line protocol:
//
//	stop words
//	document count N
//	N times: document text, then "k r1 ... rk" ratings
//	remaining non-empty lines: queries
//
// Documents get ids 0..N-1 and status ACTUAL.
func readInput(r io.Reader, settings *config.Settings) error {
	scanner := bufio.NewScanner(r)
	line := 0
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		line++
		return scanner.Text(), true
	}

	stopWords, ok := next()
	if !ok {
		return fmt.Errorf("missing stop words line")
	}
	settings.StopWords = stopWords

	countLine, ok := next()
	if !ok {
		return fmt.Errorf("missing document count line")
	}
	count, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil || count < 0 {
		return fmt.Errorf("line %d: invalid document count %q", line, countLine)
	}

	docs := make([]config.DocumentConfig, 0, count)
	for id := 0; id < count; id++ {
		text, ok := next()
		if !ok {
			return fmt.Errorf("missing text for document %d", id)
		}
		ratingsLine, ok := next()
		if !ok {
			return fmt.Errorf("missing ratings for document %d", id)
		}
		ratings, err := parseRatings(ratingsLine)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		docs = append(docs, config.DocumentConfig{
			ID:      id,
			Text:    text,
			Status:  model.StatusActual,
			Ratings: ratings,
		})
	}
	settings.Documents = docs

	for {
		query, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(query) != "" {
			settings.Queries = append(settings.Queries, query)
		}
	}
	return scanner.Err()
}

// parseRatings reads "k r1 ... rk".
func parseRatings(s string) ([]int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty ratings line")
	}
	count, err := strconv.Atoi(fields[0])
	if err != nil || count < 0 {
		return nil, fmt.Errorf("invalid ratings count %q", fields[0])
	}
	if len(fields)-1 != count {
		return nil, fmt.Errorf("expected %d ratings, got %d", count, len(fields)-1)
	}
	ratings := make([]int, count)
	for i, field := range fields[1:] {
		rating, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid rating %q", field)
		}
		ratings[i] = rating
	}
	return ratings, nil
}
