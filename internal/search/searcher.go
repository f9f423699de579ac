package search

import (
	"fmt"
	"time"

	"github.com/harrison/csvsearch/internal/fileutil"
	"github.com/harrison/csvsearch/internal/logger"
	"github.com/harrison/csvsearch/internal/models"
)

// csvExtension is the only file type the scan opens.
const csvExtension = ".csv"

// Logger receives scan diagnostics.
type Logger interface {
	LogScanStart(req *models.SearchRequest, files int)
	LogFileSkipped(path, reason string)
	LogFileError(err *models.FileError)
	LogWalkError(err error)
	LogScanComplete(summary models.ScanSummary)
}

// ProgressReporter is told about each file as it is opened.
type ProgressReporter interface {
	Start(total int)
	Step(path string)
	Complete()
}

// Options controls which directories the traversal enters.
type Options struct {
	ExcludeDirs []string
	SkipHidden  bool
	MaxDepth    int
}

// Result is the outcome of one scan.
type Result struct {
	// Matches are ordered by file in walk order, then by line
	Matches []models.MatchRecord
	// Errors lists files that contributed nothing because they failed
	Errors []*models.FileError
	// WalkErrors lists traversal problems that did not stop the scan
	WalkErrors []error
	// Summary holds the scan totals
	Summary models.ScanSummary
}

// Searcher runs requests against the file system.
type Searcher struct {
	logger   Logger
	progress ProgressReporter
	opts     Options
}

// NewSearcher creates a Searcher. A nil logger discards diagnostics.
func NewSearcher(log Logger, opts Options) *Searcher {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Searcher{
		logger: log,
		opts:   opts,
	}
}

// WithProgress attaches a progress reporter and returns the Searcher.
func (s *Searcher) WithProgress(p ProgressReporter) *Searcher {
	s.progress = p
	return s
}

// Search scans every CSV file under the request root.
// The only error returned is for a root that cannot be walked; per-file
// failures are collected in Result.Errors.
func (s *Searcher) Search(req *models.SearchRequest) (*Result, error) {
	start := time.Now()

	scanned, err := fileutil.ScanDirectory(req.Root(), fileutil.ScanOptions{
		Extensions:  []string{csvExtension},
		Recursive:   true,
		ExcludeDirs: s.opts.ExcludeDirs,
		SkipHidden:  s.opts.SkipHidden,
		MaxDepth:    s.opts.MaxDepth,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidRoot, err)
	}

	result := &Result{
		Matches:    make([]models.MatchRecord, 0),
		Errors:     make([]*models.FileError, 0),
		WalkErrors: scanned.Errors,
	}
	for _, werr := range scanned.Errors {
		s.logger.LogWalkError(werr)
	}

	s.logger.LogScanStart(req, len(scanned.Files))
	if s.progress != nil {
		s.progress.Start(len(scanned.Files))
	}

	matcher := NewMatcher(req.Terms(), req.CaseSensitive())
	for _, path := range scanned.Files {
		if s.progress != nil {
			s.progress.Step(path)
		}

		scan, ferr := scanFile(path, matcher)
		if ferr != nil {
			s.logger.LogFileError(ferr)
			result.Errors = append(result.Errors, ferr)
			continue
		}

		switch scan.records {
		case 0:
			s.logger.LogFileSkipped(path, "no records")
		case 1:
			s.logger.LogFileSkipped(path, "header only")
		}
		result.Matches = append(result.Matches, scan.matches...)
	}

	if s.progress != nil {
		s.progress.Complete()
	}

	result.Summary = models.ScanSummary{
		FilesScanned: len(scanned.Files),
		Matches:      len(result.Matches),
		FailedFiles:  len(result.Errors),
		Duration:     time.Since(start),
	}
	s.logger.LogScanComplete(result.Summary)

	return result, nil
}

// Search runs req with default options and no diagnostics output.
func Search(req *models.SearchRequest) ([]models.MatchRecord, error) {
	result, err := NewSearcher(nil, Options{}).Search(req)
	if err != nil {
		return nil, err
	}
	return result.Matches, nil
}
