package model

import (
	"fmt"
	"strconv"
	"strings"
)

// DocumentStatus is the lifecycle label a caller attaches to a document.
// Statuses never delete anything; they only feed the ranking predicate.
type DocumentStatus int

const (
	StatusActual DocumentStatus = iota
	StatusIrrelevant
	StatusBanned
	StatusRemoved
)

var statusNames = map[DocumentStatus]string{
	StatusActual:     "ACTUAL",
	StatusIrrelevant: "IRRELEVANT",
	StatusBanned:     "BANNED",
	StatusRemoved:    "REMOVED",
}

func (s DocumentStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("DocumentStatus(%d)", int(s))
}

// ParseDocumentStatus accepts the status names case-insensitively.
// "ACTIVE" and "EXCLUDED" are accepted as aliases for ACTUAL and BANNED.
func ParseDocumentStatus(s string) (DocumentStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ACTUAL", "ACTIVE":
		return StatusActual, nil
	case "IRRELEVANT":
		return StatusIrrelevant, nil
	case "BANNED", "EXCLUDED":
		return StatusBanned, nil
	case "REMOVED":
		return StatusRemoved, nil
	}
	return 0, fmt.Errorf("unknown document status %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s DocumentStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, used by YAML and JSON decoding.
func (s *DocumentStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseDocumentStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Document is a single ranked search result.
type Document struct {
	ID        int     `json:"document_id"`
	Relevance float64 `json:"relevance"`
	Rating    int     `json:"rating"`
}

// String prints relevance with six significant digits.
func (d Document) String() string {
	relevance := strconv.FormatFloat(d.Relevance, 'g', 6, 64)
	return fmt.Sprintf("{ document_id = %d, relevance = %s, rating = %d }", d.ID, relevance, d.Rating)
}

// MatchResult lists the plus words of a query found in one document.
// Words is empty when a minus word of the query is present in the document.
type MatchResult struct {
	Words  []string       `json:"words"`
	Status DocumentStatus `json:"status"`
}
