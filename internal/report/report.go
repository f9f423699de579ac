// Package report exports a finished search as a YAML document.
//
// Reports are written with the same discipline the rest of the tool uses for
// files it owns: an exclusive lock on "<path>.lock" is held while the content
// goes to a temporary file in the target directory, which is then renamed over
// the target. Readers never observe a half-written report.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/harrison/csvsearch/internal/models"
	"github.com/harrison/csvsearch/internal/search"
	"gopkg.in/yaml.v3"
)

// Report is the exported form of one search
type Report struct {
	ID            string    `yaml:"id"`
	GeneratedAt   time.Time `yaml:"generated_at"`
	Root          string    `yaml:"root"`
	Terms         []string  `yaml:"terms"`
	CaseSensitive bool      `yaml:"case_sensitive"`
	FilesScanned  int       `yaml:"files_scanned"`
	MatchCount    int       `yaml:"match_count"`
	Matches       []Match   `yaml:"matches"`
	Failures      []Failure `yaml:"failures,omitempty"`
}

// Match is one matching row
type Match struct {
	File   string            `yaml:"file"`
	Line   int               `yaml:"line"`
	Term   string            `yaml:"term"`
	Row    []string          `yaml:"row"`
	Values map[string]string `yaml:"values,omitempty"`
}

// Failure is one file that contributed nothing
type Failure struct {
	File  string `yaml:"file"`
	Kind  string `yaml:"kind"`
	Line  int    `yaml:"line,omitempty"`
	Error string `yaml:"error"`
}

// New builds a report for req from result
func New(req *models.SearchRequest, result *search.Result) *Report {
	r := &Report{
		ID:            uuid.NewString(),
		GeneratedAt:   time.Now().UTC(),
		Root:          req.Root(),
		Terms:         req.Terms(),
		CaseSensitive: req.CaseSensitive(),
		FilesScanned:  result.Summary.FilesScanned,
		MatchCount:    len(result.Matches),
		Matches:       make([]Match, 0, len(result.Matches)),
	}

	for _, m := range result.Matches {
		r.Matches = append(r.Matches, Match{
			File:   m.File,
			Line:   m.Line,
			Term:   m.Term,
			Row:    m.Row,
			Values: namedValues(m),
		})
	}

	for _, fe := range result.Errors {
		msg := ""
		if fe.Err != nil {
			msg = fe.Err.Error()
		}
		r.Failures = append(r.Failures, Failure{
			File:  fe.Path,
			Kind:  fe.Kind.String(),
			Line:  fe.Line,
			Error: msg,
		})
	}

	return r
}

// namedValues pairs each trimmed header name with the row's cell
func namedValues(m models.MatchRecord) map[string]string {
	if len(m.HeaderMap) == 0 {
		return nil
	}
	values := make(map[string]string, len(m.HeaderMap))
	for name := range m.HeaderMap {
		values[name] = m.Value(name)
	}
	return values
}

// WriteFile encodes r as YAML and replaces path with it atomically.
// The lock path is derived by appending ".lock" to the target path.
func WriteFile(path string, r *Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", path, err)
	}
	defer lock.Unlock()

	return atomicWrite(path, data)
}

// atomicWrite writes data next to path and renames it into place
func atomicWrite(path string, data []byte) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-report-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	committed := false
	defer func() {
		if !committed {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	committed = true
	return nil
}

// Load reads a report written by WriteFile
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	return &r, nil
}
