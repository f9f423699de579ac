package models

import (
	"fmt"
	"os"
	"strings"
)

// SearchRequest describes a single scan over a directory tree.
// Construct it with NewSearchRequest; the zero value is not usable.
type SearchRequest struct {
	root          string
	terms         []string
	caseSensitive bool
}

// NewSearchRequest validates its inputs and returns an immutable request.
// The root must exist and be a directory, and at least one non-empty term is required.
func NewSearchRequest(root string, terms []string, caseSensitive bool) (*SearchRequest, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}

	if len(terms) == 0 {
		return nil, ErrNoTerms
	}
	for i, term := range terms {
		if term == "" {
			return nil, fmt.Errorf("%w (position %d)", ErrEmptyTerm, i+1)
		}
	}

	copied := make([]string, len(terms))
	copy(copied, terms)

	return &SearchRequest{
		root:          root,
		terms:         copied,
		caseSensitive: caseSensitive,
	}, nil
}

// Root returns the directory the scan starts from
func (r *SearchRequest) Root() string {
	return r.root
}

// Terms returns a copy of the search terms in the order they were given
func (r *SearchRequest) Terms() []string {
	out := make([]string, len(r.terms))
	copy(out, r.terms)
	return out
}

// CaseSensitive reports whether case folding is disabled
func (r *SearchRequest) CaseSensitive() bool {
	return r.caseSensitive
}

// String renders the request for log lines.
func (r *SearchRequest) String() string {
	mode := "case-insensitive"
	if r.caseSensitive {
		mode = "case-sensitive"
	}
	return fmt.Sprintf("root=%s terms=[%s] %s", r.root, strings.Join(r.terms, ", "), mode)
}
