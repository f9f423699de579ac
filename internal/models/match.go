package models

import "strings"

// HeaderMap maps a trimmed column name to its zero-based index in the header row
type HeaderMap map[string]int

// NewHeaderMap builds a HeaderMap from a header row.
// Names are trimmed of surrounding whitespace; when a name repeats, the first column wins.
func NewHeaderMap(header []string) HeaderMap {
	m := make(HeaderMap, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, exists := m[name]; exists {
			continue
		}
		m[name] = i
	}
	return m
}

// Index returns the column index for name and whether it exists
func (h HeaderMap) Index(name string) (int, bool) {
	if h == nil {
		return 0, false
	}
	i, ok := h[strings.TrimSpace(name)]
	return i, ok
}

// MatchRecord is one matching data row together with where it came from.
type MatchRecord struct {
	// File is the path of the CSV file, joined onto the search root
	File string
	// Line is the 1-based record position; the header is line 1
	Line int
	// Row holds the cell values in file order
	Row []string
	// Header is the file's first record, nil if the file had none
	Header []string
	// HeaderMap indexes Header by trimmed column name
	HeaderMap HeaderMap
	// Term is the first search term (as supplied) found in the row
	Term string
}

// Value returns the cell under column name.
// An unknown column or a row too short to reach the column yields "".
func (m MatchRecord) Value(column string) string {
	i, ok := m.HeaderMap.Index(column)
	if !ok || i < 0 || i >= len(m.Row) {
		return ""
	}
	return m.Row[i]
}

// Text joins the row's cells with single spaces
func (m MatchRecord) Text() string {
	return strings.Join(m.Row, " ")
}
