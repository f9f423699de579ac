package search

import "strings"

// Matcher tests rows against an ordered list of search terms.
type Matcher struct {
	terms         []string
	needles       []string
	caseSensitive bool
}

// NewMatcher prepares terms for matching. Case folding of the terms happens here, once.
func NewMatcher(terms []string, caseSensitive bool) *Matcher {
	m := &Matcher{
		terms:         make([]string, len(terms)),
		needles:       make([]string, len(terms)),
		caseSensitive: caseSensitive,
	}
	copy(m.terms, terms)
	for i, term := range terms {
		if caseSensitive {
			m.needles[i] = term
		} else {
			m.needles[i] = strings.ToLower(term)
		}
	}
	return m
}

// Match reports the first term, in the order given, contained in the row's space-joined cells.
// The returned term is the caller's original spelling.
func (m *Matcher) Match(row []string) (string, bool) {
	text := strings.Join(row, " ")
	if !m.caseSensitive {
		text = strings.ToLower(text)
	}
	for i, needle := range m.needles {
		if strings.Contains(text, needle) {
			return m.terms[i], true
		}
	}
	return "", false
}
