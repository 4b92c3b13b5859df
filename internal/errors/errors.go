package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrMalformedInput is returned when text contains control characters
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidID is returned when a document id is negative
	ErrInvalidID = errors.New("invalid document id")

	// ErrDuplicateID is returned when a document id is already indexed
	ErrDuplicateID = errors.New("duplicate document id")

	// ErrDoubleMinus is returned when a query word starts with more than one minus
	ErrDoubleMinus = errors.New("double minus in query word")

	// ErrEmptyMinusWord is returned when a query contains a lone minus
	ErrEmptyMinusWord = errors.New("empty minus word")

	// ErrUnknownDocumentID is returned when a document id was never added
	ErrUnknownDocumentID = errors.New("unknown document id")

	// ErrIndexOutOfRange is returned when a registry position is past the end
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// MalformedInputError represents text rejected because of a control character
type MalformedInputError struct {
	Word string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("word %q contains special symbols", e.Word)
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// NewMalformedInputError creates a new MalformedInputError
func NewMalformedInputError(word string) *MalformedInputError {
	return &MalformedInputError{Word: word}
}

// InvalidIDError represents a negative document id
type InvalidIDError struct {
	DocumentID int
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("document id %d is negative", e.DocumentID)
}

func (e *InvalidIDError) Is(target error) bool {
	return target == ErrInvalidID
}

// NewInvalidIDError creates a new InvalidIDError
func NewInvalidIDError(documentID int) *InvalidIDError {
	return &InvalidIDError{DocumentID: documentID}
}

// DuplicateIDError represents an attempt to add an id that is already indexed
type DuplicateIDError struct {
	DocumentID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("document with id %d already exists", e.DocumentID)
}

func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}

// NewDuplicateIDError creates a new DuplicateIDError
func NewDuplicateIDError(documentID int) *DuplicateIDError {
	return &DuplicateIDError{DocumentID: documentID}
}

// QuerySyntaxError represents a malformed minus word in a query.
// Kind is either ErrDoubleMinus or ErrEmptyMinusWord.
type QuerySyntaxError struct {
	Word string
	Kind error
}

func (e *QuerySyntaxError) Error() string {
	if e.Kind == ErrEmptyMinusWord {
		return "no word after minus"
	}
	return fmt.Sprintf("query word %q contains an extra minus", e.Word)
}

func (e *QuerySyntaxError) Is(target error) bool {
	return target == e.Kind
}

// NewDoubleMinusError creates a QuerySyntaxError for a word like "--word"
func NewDoubleMinusError(word string) *QuerySyntaxError {
	return &QuerySyntaxError{Word: word, Kind: ErrDoubleMinus}
}

// NewEmptyMinusWordError creates a QuerySyntaxError for a lone "-"
func NewEmptyMinusWordError() *QuerySyntaxError {
	return &QuerySyntaxError{Word: "-", Kind: ErrEmptyMinusWord}
}

// UnknownDocumentIDError represents a lookup of a document that was never added
type UnknownDocumentIDError struct {
	DocumentID int
}

func (e *UnknownDocumentIDError) Error() string {
	return fmt.Sprintf("document with id %d not found", e.DocumentID)
}

func (e *UnknownDocumentIDError) Is(target error) bool {
	return target == ErrUnknownDocumentID
}

// NewUnknownDocumentIDError creates a new UnknownDocumentIDError
func NewUnknownDocumentIDError(documentID int) *UnknownDocumentIDError {
	return &UnknownDocumentIDError{DocumentID: documentID}
}

// IndexOutOfRangeError represents a registry position outside [0, count)
type IndexOutOfRangeError struct {
	Position int
	Count    int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("position %d is out of range [0, %d)", e.Position, e.Count)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// NewIndexOutOfRangeError creates a new IndexOutOfRangeError
func NewIndexOutOfRangeError(position, count int) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{Position: position, Count: count}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
