package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRoot is returned when the search root is missing or not a directory.
	ErrInvalidRoot = errors.New("invalid root directory")
	// ErrNoTerms is returned when a request carries no search terms.
	ErrNoTerms = errors.New("at least one search term is required")
	// ErrEmptyTerm is returned when one of the search terms is the empty string.
	ErrEmptyTerm = errors.New("search terms must not be empty")
	// ErrInvalidEncoding marks file content that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")
)

// FileErrorKind classifies why a file was abandoned during a scan.
type FileErrorKind int

const (
	// KindRead covers open and read failures.
	KindRead FileErrorKind = iota
	// KindEncoding covers content that is not valid UTF-8.
	KindEncoding
	// KindMalformed covers records the CSV parser could not recover from.
	KindMalformed
)

// String returns the string representation of FileErrorKind.
func (k FileErrorKind) String() string {
	switch k {
	case KindRead:
		return "read"
	case KindEncoding:
		return "encoding"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// FileError reports a CSV file that contributed no matches because it could not be processed.
// It is never fatal to a scan.
type FileError struct {
	Path string        // File that failed
	Kind FileErrorKind // Failure category
	Line int           // Line reported by the parser, 0 when unknown
	Err  error         // Underlying error
}

// NewFileError creates a FileError for path.
func NewFileError(path string, kind FileErrorKind, line int, err error) *FileError {
	return &FileError{
		Path: path,
		Kind: kind,
		Line: line,
		Err:  err,
	}
}

// Error implements the error interface for FileError.
func (e *FileError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Path)
	switch e.Kind {
	case KindMalformed:
		sb.WriteString(": malformed record")
		if e.Line > 0 {
			sb.WriteString(fmt.Sprintf(" at line %d", e.Line))
		}
	case KindEncoding:
		sb.WriteString(": undecodable content")
		if e.Line > 0 {
			sb.WriteString(fmt.Sprintf(" at line %d", e.Line))
		}
	default:
		sb.WriteString(": read failed")
	}
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

// Unwrap returns the underlying error for error wrapping support.
func (e *FileError) Unwrap() error {
	return e.Err
}

// IsFileError reports whether err is or wraps a FileError.
func IsFileError(err error) bool {
	var fe *FileError
	return errors.As(err, &fe)
}
