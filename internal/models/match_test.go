package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHeaderMap(t *testing.T) {
	m := NewHeaderMap([]string{" Name ", "Amount", "Name", "\tNotes"})

	assert.Equal(t, HeaderMap{"Name": 0, "Amount": 1, "Notes": 3}, m)
}

func TestHeaderMap_Index(t *testing.T) {
	m := NewHeaderMap([]string{"Name", "Amount"})

	i, ok := m.Index("Amount")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = m.Index("  Name ")
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = m.Index("Missing")
	assert.False(t, ok)

	var nilMap HeaderMap
	_, ok = nilMap.Index("Name")
	assert.False(t, ok)
}

func TestMatchRecord_Value(t *testing.T) {
	header := []string{"Name", "Amount", "Notes"}
	rec := MatchRecord{
		File:      "a.csv",
		Line:      2,
		Row:       []string{"Alice", "10"},
		Header:    header,
		HeaderMap: NewHeaderMap(header),
	}

	tests := []struct {
		column string
		want   string
	}{
		{"Name", "Alice"},
		{"Amount", "10"},
		{"Notes", ""},   // index past the end of a short row
		{"Country", ""}, // not in this file's header
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			assert.Equal(t, tt.want, rec.Value(tt.column))
		})
	}
}

func TestMatchRecord_ValueWithoutHeader(t *testing.T) {
	rec := MatchRecord{Row: []string{"x"}}
	assert.Equal(t, "", rec.Value("Name"))
}

func TestMatchRecord_Text(t *testing.T) {
	rec := MatchRecord{Row: []string{"Alice", "10", "a, b"}}
	assert.Equal(t, "Alice 10 a, b", rec.Text())
}
