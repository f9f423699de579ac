package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files []string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("h\n"), 0644))
	}
}

func relNames(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestScanDirectory(t *testing.T) {
	// tmpDir/
	//   a.csv
	//   B.CSV
	//   notes.txt
	//   sub/
	//     c.csv
	//     deep/
	//       d.csv
	//   .hidden/
	//     h.csv
	//   node_modules/
	//     n.csv
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, []string{
		"a.csv",
		"B.CSV",
		"notes.txt",
		"sub/c.csv",
		"sub/deep/d.csv",
		".hidden/h.csv",
		"node_modules/n.csv",
	})

	tests := []struct {
		name string
		opts ScanOptions
		want []string
	}{
		{
			name: "non-recursive",
			opts: ScanOptions{Extensions: []string{".csv"}},
			want: []string{"B.CSV", "a.csv"},
		},
		{
			name: "recursive keeps hidden dirs by default",
			opts: ScanOptions{Extensions: []string{".csv"}, Recursive: true},
			want: []string{".hidden/h.csv", "B.CSV", "a.csv", "node_modules/n.csv", "sub/c.csv", "sub/deep/d.csv"},
		},
		{
			name: "skip hidden",
			opts: ScanOptions{Extensions: []string{".csv"}, Recursive: true, SkipHidden: true},
			want: []string{"B.CSV", "a.csv", "node_modules/n.csv", "sub/c.csv", "sub/deep/d.csv"},
		},
		{
			name: "exclude dirs",
			opts: ScanOptions{Extensions: []string{"csv"}, Recursive: true, ExcludeDirs: []string{"node_modules", ".hidden"}},
			want: []string{"B.CSV", "a.csv", "sub/c.csv", "sub/deep/d.csv"},
		},
		{
			name: "max depth 2",
			opts: ScanOptions{Extensions: []string{".csv"}, Recursive: true, MaxDepth: 2, SkipHidden: true},
			want: []string{"B.CSV", "a.csv", "node_modules/n.csv", "sub/c.csv"},
		},
		{
			name: "max depth 1 is root only",
			opts: ScanOptions{Extensions: []string{".csv"}, Recursive: true, MaxDepth: 1},
			want: []string{"B.CSV", "a.csv"},
		},
		{
			name: "no extension filter",
			opts: ScanOptions{},
			want: []string{"B.CSV", "a.csv", "notes.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanDirectory(tmpDir, tt.opts)
			require.NoError(t, err)
			assert.Empty(t, result.Errors)
			assert.Equal(t, tt.want, relNames(t, tmpDir, result.Files))
		})
	}
}

func TestScanDirectory_PathsJoinedOntoRoot(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, []string{"x/y.csv"})

	result, err := ScanDirectory(tmpDir, ScanOptions{Extensions: []string{".csv"}, Recursive: true})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, filepath.Join(tmpDir, "x", "y.csv"), result.Files[0])
}

func TestScanDirectory_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := ScanDirectory(filepath.Join(tmpDir, "missing"), ScanOptions{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to access directory"))

	_, err = ScanDirectory(file, ScanOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotDirectory))
}

func TestScanDirectory_EmptyDirectory(t *testing.T) {
	result, err := ScanDirectory(t.TempDir(), ScanOptions{Extensions: []string{".csv"}, Recursive: true})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Empty(t, result.Errors)
}

func TestScanDirectory_UnreadableSubdirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	tmpDir := t.TempDir()
	writeTree(t, tmpDir, []string{"ok.csv", "locked/secret.csv"})
	locked := filepath.Join(tmpDir, "locked")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	result, err := ScanDirectory(tmpDir, ScanOptions{Extensions: []string{".csv"}, Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"ok.csv"}, relNames(t, tmpDir, result.Files))
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Error(), "locked")
}

func TestHasExtension(t *testing.T) {
	assert.True(t, HasExtension("a.csv", ".csv"))
	assert.True(t, HasExtension("A.CsV", ".csv"))
	assert.False(t, HasExtension("a.csv.bak", ".csv"))
	assert.False(t, HasExtension("csv", ".csv"))
}
