package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/harrison/csvsearch/internal/models"
	"github.com/harrison/csvsearch/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanFixture(t *testing.T) (*models.SearchRequest, *search.Result) {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"a.csv":   "Name,Amount\nAlice,10\nBob,20\n",
		"bad.csv": "Name\n\"unterminated\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(content), 0644))
	}

	req, err := models.NewSearchRequest(root, []string{"ALICE"}, false)
	require.NoError(t, err)
	result, err := search.NewSearcher(nil, search.Options{}).Search(req)
	require.NoError(t, err)
	return req, result
}

func TestNew(t *testing.T) {
	req, result := scanFixture(t)

	r := New(req, result)

	_, err := uuid.Parse(r.ID)
	assert.NoError(t, err)
	assert.False(t, r.GeneratedAt.IsZero())
	assert.Equal(t, req.Root(), r.Root)
	assert.Equal(t, []string{"ALICE"}, r.Terms)
	assert.Equal(t, 2, r.FilesScanned)
	assert.Equal(t, 1, r.MatchCount)

	require.Len(t, r.Matches, 1)
	assert.Equal(t, 2, r.Matches[0].Line)
	assert.Equal(t, "ALICE", r.Matches[0].Term)
	assert.Equal(t, map[string]string{"Name": "Alice", "Amount": "10"}, r.Matches[0].Values)

	require.Len(t, r.Failures, 1)
	assert.Equal(t, "malformed", r.Failures[0].Kind)
	assert.Equal(t, filepath.Join(req.Root(), "bad.csv"), r.Failures[0].File)
}

func TestNew_UniqueIDs(t *testing.T) {
	req, result := scanFixture(t)
	assert.NotEqual(t, New(req, result).ID, New(req, result).ID)
}

func TestWriteFileAndLoad(t *testing.T) {
	req, result := scanFixture(t)
	r := New(req, result)

	path := filepath.Join(t.TempDir(), "out", "report.yaml")
	require.NoError(t, WriteFile(path, r))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, r.ID, loaded.ID)
	assert.True(t, r.GeneratedAt.Equal(loaded.GeneratedAt))
	assert.Equal(t, r.Matches, loaded.Matches)
	assert.Equal(t, r.Failures, loaded.Failures)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-report-", "temp file left behind")
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	req, result := scanFixture(t)
	path := filepath.Join(t.TempDir(), "report.yaml")

	first := New(req, result)
	require.NoError(t, WriteFile(path, first))
	second := New(req, result)
	require.NoError(t, WriteFile(path, second))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, second.ID, loaded.ID)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("matches: [unclosed\n"), 0644))
	_, err = Load(bad)
	assert.Error(t, err)
}
