package models

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *FileError
		want string
	}{
		{
			name: "read failure",
			err:  NewFileError("data/a.csv", KindRead, 0, fs.ErrPermission),
			want: "data/a.csv: read failed: permission denied",
		},
		{
			name: "malformed with line",
			err:  NewFileError("b.csv", KindMalformed, 4, errors.New("bare quote")),
			want: "b.csv: malformed record at line 4: bare quote",
		},
		{
			name: "encoding with line",
			err:  NewFileError("c.csv", KindEncoding, 2, ErrInvalidEncoding),
			want: "c.csv: undecodable content at line 2: invalid UTF-8 encoding",
		},
		{
			name: "no cause",
			err:  NewFileError("d.csv", KindRead, 0, nil),
			want: "d.csv: read failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestFileError_Unwrap(t *testing.T) {
	fe := NewFileError("c.csv", KindEncoding, 1, ErrInvalidEncoding)
	wrapped := fmt.Errorf("scan: %w", fe)

	assert.True(t, errors.Is(wrapped, ErrInvalidEncoding))
	assert.True(t, IsFileError(wrapped))
	assert.False(t, IsFileError(errors.New("plain")))
}

func TestFileErrorKind_String(t *testing.T) {
	assert.Equal(t, "read", KindRead.String())
	assert.Equal(t, "encoding", KindEncoding.String())
	assert.Equal(t, "malformed", KindMalformed.String())
	assert.Equal(t, "unknown", FileErrorKind(42).String())
}
