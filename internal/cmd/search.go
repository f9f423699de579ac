package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/harrison/csvsearch/internal/config"
	"github.com/harrison/csvsearch/internal/display"
	"github.com/harrison/csvsearch/internal/logger"
	"github.com/harrison/csvsearch/internal/models"
	"github.com/harrison/csvsearch/internal/report"
	"github.com/harrison/csvsearch/internal/search"
)

// searchOptions holds the parsed command line
type searchOptions struct {
	root          string
	terms         []string
	caseSensitive bool
	format        string
	columns       []string
	configPath    string
	logLevel      string
	excludeDirs   []string
	skipHidden    bool
	maxDepth      int
	progress      bool
	reportPath    string

	overrides configOverrides
}

// configOverrides points at flag values the user set explicitly
type configOverrides struct {
	logLevel    *string
	format      *string
	columns     *[]string
	excludeDirs *[]string
	skipHidden  *bool
	maxDepth    *int
}

// runSearch validates the request, scans, renders and optionally exports the results.
// The root is checked before the config is read.
// Per-file failures are reported on stderr and do not make it fail.
func runSearch(opts *searchOptions, stdout, stderr io.Writer) error {
	req, err := models.NewSearchRequest(opts.root, opts.terms, opts.caseSensitive)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRoot) {
			return fmt.Errorf("%s is not a valid directory", opts.root)
		}
		return err
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(stderr, cfg.LogLevel)
	stderrColor := logger.IsTerminal(stderr)

	searcher := search.NewSearcher(log, search.Options{
		ExcludeDirs: cfg.ExcludeDirs,
		SkipHidden:  cfg.SkipHidden,
		MaxDepth:    cfg.MaxDepth,
	})
	if opts.progress {
		searcher.WithProgress(display.NewProgressIndicator(stderr, stderrColor))
	}

	result, err := searcher.Search(req)
	if err != nil {
		return fmt.Errorf("%s is not a valid directory: %w", opts.root, err)
	}

	renderer := display.NewRenderer(stdout, display.Options{
		Format:         cfg.Format,
		SummaryColumns: cfg.SummaryColumns,
		MaxCellWidth:   cfg.MaxCellWidth,
		Color:          logger.IsTerminal(stdout),
	})
	if err := renderer.Render(result.Matches); err != nil {
		return fmt.Errorf("failed to render results: %w", err)
	}

	if len(result.Errors) > 0 {
		warning := display.WarnFailedFiles(result.Errors)
		warning.Color = stderrColor
		warning.Display(stderr)
	}

	if opts.reportPath != "" {
		if err := report.WriteFile(opts.reportPath, report.New(req, result)); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		log.LogInfo(fmt.Sprintf("Report written to %s", opts.reportPath))
	}

	return nil
}

// loadConfig reads the config file, applies flag overrides and validates the result
func loadConfig(opts *searchOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		if _, statErr := os.Stat(opts.configPath); statErr != nil {
			return nil, fmt.Errorf("load config: %w", statErr)
		}
		cfg, err = config.LoadConfig(opts.configPath)
	} else {
		cfg, err = config.LoadConfigFromDir(".")
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	o := opts.overrides
	cfg.MergeWithFlags(o.logLevel, o.format, o.columns, o.excludeDirs, o.skipHidden, o.maxDepth)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
